package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogHasUniqueKeys(t *testing.T) {
	t.Parallel()

	catalog := Default()
	require.NotZero(t, catalog.Len())

	seen := make(map[string]bool)
	for _, desc := range catalog.Descriptors() {
		key := desc.Plugin + "/" + desc.Name
		assert.False(t, seen[key], "duplicate rule %s", key)
		seen[key] = true

		require.NotNil(t, desc.Build, "rule %s has no builder", key)
		require.NotEmpty(t, desc.Plugin)
		require.NotEmpty(t, desc.Name)
	}
}

func TestDefaultCatalogBuildsWithDefaults(t *testing.T) {
	t.Parallel()

	for _, desc := range Default().Descriptors() {
		rule, err := desc.Build(nil)
		require.NoError(t, err, "rule %s/%s", desc.Plugin, desc.Name)
		assert.Equal(t, desc.Plugin, rule.Plugin())
		assert.Equal(t, desc.Name, rule.Name())
	}
}

func TestNoConsoleOptions(t *testing.T) {
	t.Parallel()

	rule, err := build[NoConsole](map[string]any{"allow": []any{"warn", "error"}})
	require.NoError(t, err)

	noConsole, ok := rule.(*NoConsole)
	require.True(t, ok)
	assert.Equal(t, []string{"warn", "error"}, noConsole.Allow)
}

func TestNoUnusedVarsOptions(t *testing.T) {
	t.Parallel()

	rule, err := newNoUnusedVars(map[string]any{"args": "all", "varsIgnorePattern": "^_"})
	require.NoError(t, err)

	unused, ok := rule.(*NoUnusedVars)
	require.True(t, ok)
	assert.Equal(t, "all", unused.Args)
	assert.Equal(t, "^_", unused.VarsIgnorePattern)
}

func TestNoUnusedVarsDefaults(t *testing.T) {
	t.Parallel()

	rule, err := newNoUnusedVars(nil)
	require.NoError(t, err)
	assert.Equal(t, "after-used", rule.(*NoUnusedVars).Args)
}

func TestNoUnusedVarsRejectsUnknownArgsMode(t *testing.T) {
	t.Parallel()

	_, err := newNoUnusedVars(map[string]any{"args": "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestEqeqeqModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		options  any
		name     string
		wantMode string
		wantErr  bool
	}{
		{name: "default", options: nil, wantMode: "always"},
		{name: "smart", options: "smart", wantMode: "smart"},
		{name: "allow-null", options: "allow-null", wantMode: "allow-null"},
		{name: "unknown mode", options: "never", wantErr: true},
		{name: "non-string options", options: map[string]any{"mode": "smart"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule, err := newEqeqeq(tt.options)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, rule.(*Eqeqeq).Mode)
		})
	}
}

func TestFilenameCaseValidation(t *testing.T) {
	t.Parallel()

	rule, err := newFilenameCase(map[string]any{"case": "snakeCase"})
	require.NoError(t, err)
	assert.Equal(t, "snakeCase", rule.(*FilenameCase).Case)

	_, err = newFilenameCase(map[string]any{"case": "shoutingCase"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shoutingCase")
}
