// Package config resolves the active rule set for a lint run from an
// .eslintrc-style document: presets named in "extends" enable whole rule
// families by default, and explicit "rules" entries override them.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a configuration file into a generic document tree.
// JSON is assumed unless the file extension is .yml or .yaml. The returned
// value is a fresh tree of map[string]any / []any / scalars and is never
// mutated by resolution.
func Load(fsys afero.Fs, path string) (any, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return doc, nil
}
