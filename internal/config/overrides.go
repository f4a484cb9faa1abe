package config

import "fmt"

// Override is an explicit per-rule entry from the "rules" object. Config
// holds the rule's own options value (the second array element) when given.
type Override struct {
	Config   any
	Severity Severity
}

// resolveOverrides parses the document's "rules" object into a map keyed by
// normalized rule identity. A non-object document, an absent "rules" key, or
// a non-object "rules" value all yield an empty map; those are legitimate
// configs, not errors. Any malformed entry aborts the whole parse.
func resolveOverrides(doc any) (map[RuleKey]Override, error) {
	overrides := make(map[RuleKey]Override)

	obj, ok := doc.(map[string]any)
	if !ok {
		return overrides, nil
	}

	entries, ok := obj["rules"].(map[string]any)
	if !ok {
		return overrides, nil
	}

	for key, value := range entries {
		severity, ruleConfig, err := resolveRuleValue(value)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", key, err)
		}
		overrides[ParseRuleKey(key)] = Override{Severity: severity, Config: ruleConfig}
	}

	return overrides, nil
}

// resolveRuleValue parses the two accepted entry shapes:
//
//	"rule": "off"
//	"rule": ["off", {"option": true}]
//
// The array form's second element, when present, is the rule's own options
// value and is passed through untouched.
func resolveRuleValue(value any) (Severity, any, error) {
	switch v := value.(type) {
	case string:
		severity, err := parseSeverityToken(v)
		if err != nil {
			return SeverityOff, nil, err
		}
		return severity, nil, nil
	case []any:
		if len(v) == 0 {
			break
		}
		severity, err := ParseSeverity(v[0])
		if err != nil {
			return SeverityOff, nil, err
		}
		var ruleConfig any
		if len(v) > 1 {
			ruleConfig = v[1]
		}
		return severity, ruleConfig, nil
	}

	return SeverityOff, nil, fmt.Errorf("%w: %v", ErrInvalidRuleValue, value)
}
