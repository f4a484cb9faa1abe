package config

import "strings"

// DefaultPlugin is the plugin assumed for bare rule keys like "no-console".
const DefaultPlugin = "eslint"

// RuleKey identifies a rule as a (plugin, name) pair. Equality is by both
// fields, so it can be used directly as a map key.
type RuleKey struct {
	Plugin string
	Name   string
}

func (k RuleKey) String() string {
	return k.Plugin + "/" + k.Name
}

// ParseRuleKey normalizes a raw rule key from the "rules" object. The key is
// split on the first "/"; without one the plugin defaults to "eslint" and the
// name is the key unchanged. A leading "@" on the plugin is stripped, and the
// scoped "typescript-eslint" plugin folds into "typescript". The name is
// taken verbatim, empty names included.
func ParseRuleKey(raw string) RuleKey {
	plugin, name, found := strings.Cut(raw, "/")
	if !found {
		return RuleKey{Plugin: DefaultPlugin, Name: raw}
	}

	plugin = strings.TrimPrefix(plugin, "@")
	if plugin == "typescript-eslint" {
		plugin = "typescript"
	}

	return RuleKey{Plugin: plugin, Name: name}
}
