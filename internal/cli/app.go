// Package cli implements the application layer behind the lintrc commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/lintrc/lintrc/internal/cache"
	"github.com/lintrc/lintrc/internal/config"
	"github.com/lintrc/lintrc/internal/logging"
	"github.com/lintrc/lintrc/internal/prompt"
	"github.com/lintrc/lintrc/internal/rules"
	"github.com/lintrc/lintrc/internal/storage"
)

// starterConfig is written by InitConfig as a minimal working example.
const starterConfig = `{
  "extends": ["eslint:recommended"],
  "rules": {
    "no-console": "warn"
  }
}
`

// App wires the filesystem, rule catalog, and cache behind the CLI commands.
type App struct {
	fs         afero.Fs
	catalog    *rules.Catalog
	configPath string
	cachePath  string
}

// NewApp creates an App backed by the OS filesystem and the built-in catalog.
// The cache lives under the XDG data directory; if that directory cannot be
// created the app still works, just without a cache.
func NewApp(configPath string) *App {
	fs := afero.NewOsFs()
	cachePath, err := storage.New(fs).CachePath()
	if err != nil {
		cachePath = ""
	}
	return &App{
		fs:         fs,
		catalog:    rules.Default(),
		configPath: configPath,
		cachePath:  cachePath,
	}
}

// NewAppWithOptions creates an App with explicit dependencies for tests.
// An empty cachePath disables the resolution cache.
func NewAppWithOptions(fs afero.Fs, catalog *rules.Catalog, configPath, cachePath string) *App {
	return &App{fs: fs, catalog: catalog, configPath: configPath, cachePath: cachePath}
}

// Rules resolves the config and returns a listing of the active rules,
// recording a summary in the cache for later status checks.
func (a *App) Rules(ctx context.Context) (string, error) {
	resolved, err := config.ResolveFile(a.fs, a.configPath, a.catalog)
	if err != nil {
		return "", err
	}

	logging.Get(ctx).Debug().
		Str("config", a.configPath).
		Int("rules", len(resolved)).
		Msg("resolved rule set")

	if err := a.recordSummary(ctx, resolved); err != nil {
		// Cache trouble must not fail the listing
		logging.Get(ctx).Warn().Err(err).Msg("failed to record resolution summary")
	}

	return formatRules(a.configPath, resolved), nil
}

// ValidateConfig fully resolves the config and reports success with counts.
// Resolution errors propagate unchanged so the command prints the structured
// failure.
func (a *App) ValidateConfig(ctx context.Context) (string, error) {
	resolved, err := config.ResolveFile(a.fs, a.configPath, a.catalog)
	if err != nil {
		return "", err
	}

	logging.Get(ctx).Debug().Str("config", a.configPath).Msg("config validated")

	return fmt.Sprintf("[✓] %s is valid: %d of %d rules active\n",
		a.configPath, len(resolved), a.catalog.Len()), nil
}

// Status reports the cached resolution for the config and whether the file
// has changed since it was recorded.
func (a *App) Status(ctx context.Context) (string, error) {
	if a.cachePath == "" {
		return "Resolution cache is disabled\n", nil
	}

	manager, err := cache.NewManager(ctx, a.cachePath)
	if err != nil {
		return "", fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() { _ = manager.Close() }()

	summary, err := manager.GetSummary(ctx, a.configPath)
	if err != nil {
		return "", err
	}
	if summary == nil {
		return fmt.Sprintf("No cached resolution for %s - run 'lintrc rules' first\n", a.configPath), nil
	}

	var output strings.Builder
	_, _ = fmt.Fprintf(&output, "Config: %s\n", summary.ConfigPath)
	_, _ = fmt.Fprintf(&output, "Active rules: %d\n", len(summary.Rules))

	data, err := afero.ReadFile(a.fs, a.configPath)
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(&output, "Config file is no longer readable: %v\n", err)
	case cache.HashConfig(data) == summary.ConfigHash:
		_, _ = fmt.Fprintln(&output, "Cached resolution is current")
	default:
		_, _ = fmt.Fprintln(&output, "Config changed since last resolution - run 'lintrc rules' to refresh")
	}

	return output.String(), nil
}

// InitConfig writes a starter config file, asking before overwriting an
// existing one.
func (a *App) InitConfig(ctx context.Context, prompter prompt.Prompter) (string, error) {
	if _, err := a.fs.Stat(a.configPath); err == nil {
		overwrite, err := prompt.Confirm(prompter, fmt.Sprintf("%s already exists. Overwrite?", a.configPath))
		if err != nil {
			return "", err
		}
		if !overwrite {
			return "Aborted, existing config left unchanged\n", nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check config %s: %w", a.configPath, err)
	}

	if err := afero.WriteFile(a.fs, a.configPath, []byte(starterConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config %s: %w", a.configPath, err)
	}

	logging.Get(ctx).Info().Str("config", a.configPath).Msg("wrote starter config")

	return fmt.Sprintf("[✓] Wrote %s\n", a.configPath), nil
}

// recordSummary stores the resolution outcome in the cache, keyed by config path.
func (a *App) recordSummary(ctx context.Context, resolved []config.Resolved) error {
	if a.cachePath == "" {
		return nil
	}

	data, err := afero.ReadFile(a.fs, a.configPath)
	if err != nil {
		return fmt.Errorf("failed to re-read config %s: %w", a.configPath, err)
	}

	manager, err := cache.NewManager(ctx, a.cachePath)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() { _ = manager.Close() }()

	entries := make([]cache.RuleEntry, 0, len(resolved))
	for _, r := range resolved {
		entries = append(entries, cache.RuleEntry{
			Plugin:   r.Rule.Plugin(),
			Name:     r.Rule.Name(),
			Severity: r.Severity.String(),
		})
	}

	return manager.PutSummary(ctx, &cache.Summary{
		ConfigPath: a.configPath,
		ConfigHash: cache.HashConfig(data),
		Rules:      entries,
	})
}

// formatRules renders the resolved rule listing with padded indices and
// colored severities.
func formatRules(configPath string, resolved []config.Resolved) string {
	if len(resolved) == 0 {
		return fmt.Sprintf("No rules active for %s\n", configPath)
	}

	indexWidth := len(fmt.Sprintf("%d", len(resolved)))

	var output strings.Builder
	_, _ = fmt.Fprintf(&output, "Active rules for %s:\n", configPath)
	for i, r := range resolved {
		_, _ = fmt.Fprintf(&output, "[%0*d] %s/%s (%s)\n",
			indexWidth, i+1, r.Rule.Plugin(), r.Rule.Name(), colorSeverity(r.Severity))
	}

	return output.String()
}

func colorSeverity(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return color.RedString(severity.String())
	case config.SeverityWarn:
		return color.YellowString(severity.String())
	default:
		return severity.String()
	}
}
