package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "cache.db")
	manager, err := NewManager(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	return manager
}

func TestManagerOpensAndMigrates(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)

	var version int
	require.NoError(t, manager.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewManager(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening must not re-run applied migrations
	second, err := NewManager(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestSummaryRoundTrip(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)
	ctx := context.Background()

	stored := &Summary{
		ConfigPath: ".eslintrc.json",
		ConfigHash: HashConfig([]byte(`{"extends":["eslint:recommended"]}`)),
		Rules: []RuleEntry{
			{Plugin: "eslint", Name: "no-console", Severity: "error"},
			{Plugin: "eslint", Name: "no-unused-vars", Severity: "warn"},
		},
	}
	require.NoError(t, manager.PutSummary(ctx, stored))

	loaded, err := manager.GetSummary(ctx, ".eslintrc.json")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, stored.ConfigPath, loaded.ConfigPath)
	assert.Equal(t, stored.ConfigHash, loaded.ConfigHash)
	assert.Equal(t, stored.Rules, loaded.Rules)
	assert.NotZero(t, loaded.ResolvedAt)
}

func TestGetSummaryMissing(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)

	summary, err := manager.GetSummary(context.Background(), "unknown.json")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestPutSummaryReplacesExisting(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, manager.PutSummary(ctx, &Summary{
		ConfigPath: ".eslintrc.json",
		ConfigHash: "old",
		Rules:      []RuleEntry{{Plugin: "eslint", Name: "no-console", Severity: "warn"}},
	}))
	require.NoError(t, manager.PutSummary(ctx, &Summary{
		ConfigPath: ".eslintrc.json",
		ConfigHash: "new",
	}))

	loaded, err := manager.GetSummary(ctx, ".eslintrc.json")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "new", loaded.ConfigHash)
	assert.Empty(t, loaded.Rules)
}

func TestHashConfig(t *testing.T) {
	t.Parallel()

	data := []byte(`{"rules":{}}`)
	assert.Equal(t, HashConfig(data), HashConfig(data))
	assert.NotEqual(t, HashConfig(data), HashConfig([]byte(`{"rules":{"no-eval":"error"}}`)))
	assert.Len(t, HashConfig(data), 64)
}
