package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RuleEntry is one active rule in a stored resolution summary.
type RuleEntry struct {
	Plugin   string `json:"plugin"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

// Summary records the outcome of one resolution for a config file.
type Summary struct {
	ConfigPath string      `json:"config_path"`
	ConfigHash string      `json:"config_hash"`
	Rules      []RuleEntry `json:"rules"`
	ResolvedAt int64       `json:"resolved_at"`
}

// HashConfig fingerprints config file content for staleness checks.
func HashConfig(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PutSummary stores the resolution summary for its config path, replacing
// any previous entry.
func (m *Manager) PutSummary(ctx context.Context, summary *Summary) error {
	if summary.ResolvedAt == 0 {
		summary.ResolvedAt = time.Now().Unix()
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	_, err = m.db.ExecContext(ctx,
		`INSERT INTO resolutions (config_path, config_hash, summary, resolved_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(config_path) DO UPDATE SET
			config_hash = excluded.config_hash,
			summary = excluded.summary,
			resolved_at = excluded.resolved_at`,
		summary.ConfigPath, summary.ConfigHash, data, summary.ResolvedAt)
	if err != nil {
		return fmt.Errorf("failed to store summary for %s: %w", summary.ConfigPath, err)
	}

	return nil
}

// GetSummary returns the stored summary for a config path, or nil if none exists.
func (m *Manager) GetSummary(ctx context.Context, configPath string) (*Summary, error) {
	var data []byte
	err := m.db.QueryRowContext(ctx,
		"SELECT summary FROM resolutions WHERE config_path = ?", configPath).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load summary for %s: %w", configPath, err)
	}

	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary for %s: %w", configPath, err)
	}

	return &summary, nil
}
