package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOverridesEmptyCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		doc  any
		name string
	}{
		{name: "non-object document", doc: []any{"x"}},
		{name: "missing rules key", doc: map[string]any{"extends": []any{}}},
		{name: "rules is not an object", doc: map[string]any{"rules": []any{"no-console"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			overrides, err := resolveOverrides(tt.doc)
			require.NoError(t, err)
			assert.Empty(t, overrides)
		})
	}
}

func TestResolveOverridesParsesEntries(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"rules": map[string]any{
		"no-console":                         "error",
		"react/jsx-key":                      "off",
		"@typescript-eslint/no-explicit-any": []any{"warn", map[string]any{"fixToUnknown": true}},
		"eqeqeq":                             []any{"error"},
	}}

	overrides, err := resolveOverrides(doc)
	require.NoError(t, err)
	require.Len(t, overrides, 4)

	assert.Equal(t, Override{Severity: SeverityError}, overrides[RuleKey{Plugin: "eslint", Name: "no-console"}])
	assert.Equal(t, Override{Severity: SeverityOff}, overrides[RuleKey{Plugin: "react", Name: "jsx-key"}])

	// scoped plugin key is normalized before it lands in the map
	anyRule := overrides[RuleKey{Plugin: "typescript", Name: "no-explicit-any"}]
	assert.Equal(t, SeverityWarn, anyRule.Severity)
	assert.Equal(t, map[string]any{"fixToUnknown": true}, anyRule.Config)

	// single element array form carries no config
	eqeqeq := overrides[RuleKey{Plugin: "eslint", Name: "eqeqeq"}]
	assert.Equal(t, SeverityError, eqeqeq.Severity)
	assert.Nil(t, eqeqeq.Config)
}

func TestResolveOverridesFirstFailureAborts(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"rules": map[string]any{
		"no-console": map[string]any{"level": "error"},
	}}

	overrides, err := resolveOverrides(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRuleValue)
	assert.Contains(t, err.Error(), "no-console")
	assert.Nil(t, overrides)
}

func TestResolveOverridesBadSeverityToken(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"rules": map[string]any{
		"no-console": "loud",
	}}

	_, err := resolveOverrides(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestResolveRuleValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value      any
		wantConfig any
		name       string
		want       Severity
		wantErr    bool
	}{
		{name: "severity string", value: "off", want: SeverityOff},
		{name: "array with config", value: []any{"warn", map[string]any{"opt": float64(1)}},
			want: SeverityWarn, wantConfig: map[string]any{"opt": float64(1)}},
		{name: "array without config", value: []any{"error"}, want: SeverityError},
		{name: "empty array", value: []any{}, wantErr: true},
		{name: "number", value: float64(2), wantErr: true},
		{name: "object", value: map[string]any{}, wantErr: true},
		{name: "bad token in array", value: []any{"loud"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			severity, ruleConfig, err := resolveRuleValue(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, severity)
			assert.Equal(t, tt.wantConfig, ruleConfig)
		})
	}
}
