package config

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"

	"github.com/lintrc/lintrc/internal/rules"
)

// Resolved pairs a configured rule instance with its effective severity.
// Rules included through a preset alone report at warn.
type Resolved struct {
	Rule     rules.Rule
	Severity Severity
}

// ResolveFile loads a configuration file and resolves it against the catalog.
func ResolveFile(fsys afero.Fs, path string, catalog *rules.Catalog) ([]Resolved, error) {
	doc, err := Load(fsys, path)
	if err != nil {
		return nil, err
	}
	return ResolveDocument(doc, catalog)
}

// ResolveDocument computes the active rule set for a parsed document.
//
// "extends" provides the defaults and "rules" provides the overrides: a
// catalog rule is included when its plugin is in the extends set and no
// explicit entry says otherwise, or when an explicit entry enables it. An
// explicit entry always wins over preset membership, in both directions.
// The result is sorted by rule name so output order does not depend on
// catalog order or document key order.
func ResolveDocument(doc any, catalog *rules.Catalog) ([]Resolved, error) {
	extends, err := resolveExtends(doc)
	if err != nil {
		return nil, err
	}

	overrides, err := resolveOverrides(doc)
	if err != nil {
		return nil, err
	}

	var resolved []Resolved
	for _, desc := range catalog.Descriptors() {
		_, inExtends := extends[desc.Plugin]

		override, explicit := overrides[RuleKey{Plugin: desc.Plugin, Name: desc.Name}]

		if !(inExtends && !explicit) && !override.Severity.IsEnabled() {
			continue
		}

		rule, err := desc.Build(override.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to configure rule %s/%s: %w", desc.Plugin, desc.Name, err)
		}

		severity := override.Severity
		if !explicit {
			severity = SeverityWarn
		}

		resolved = append(resolved, Resolved{Rule: rule, Severity: severity})
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Rule.Name() < resolved[j].Rule.Name()
	})

	return resolved, nil
}
