package config

import "fmt"

// Severity is the tri-state reporting level for a rule.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

// IsEnabled reports whether a rule at this severity participates in a run.
func (s Severity) IsEnabled() bool {
	return s == SeverityWarn || s == SeverityError
}

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "off"
	}
}

// ParseSeverity parses a severity from a document value: either a bare token
// string or an array whose first element is one. The vocabulary is exactly
// "off", "warn", and "error".
func ParseSeverity(value any) (Severity, error) {
	switch v := value.(type) {
	case string:
		return parseSeverityToken(v)
	case []any:
		if len(v) > 0 {
			if token, ok := v[0].(string); ok {
				return parseSeverityToken(token)
			}
		}
	}
	return SeverityOff, fmt.Errorf("%w: %v", ErrInvalidSeverity, value)
}

func parseSeverityToken(token string) (Severity, error) {
	switch token {
	case "off":
		return SeverityOff, nil
	case "warn":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityOff, fmt.Errorf("%w: %q", ErrInvalidSeverity, token)
	}
}
