package config

import "errors"

// Structural failure kinds raised while parsing a configuration document.
// Each is wrapped with the offending path, key, or value at the point of
// failure, so callers can match with errors.Is and still report context.
var (
	// ErrExtendsNotArray means the "extends" property exists but is not an array.
	ErrExtendsNotArray = errors.New(`property "extends" must be an array`)

	// ErrInvalidSeverity means a severity token is outside the off/warn/error vocabulary.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrInvalidRuleValue means a "rules" entry is neither a severity string
	// nor a non-empty array starting with one.
	ErrInvalidRuleValue = errors.New("invalid rule value")
)
