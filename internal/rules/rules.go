// Package rules defines the catalog of lint rules lintrc can activate.
// Each rule is addressed by a (plugin, name) pair and owns the decoding of
// its options value from the configuration document.
package rules

import (
	"encoding/json"
	"fmt"
)

// Rule is a fully configured rule instance.
type Rule interface {
	Plugin() string
	Name() string
}

// Descriptor registers one rule with the catalog. Build turns the optional
// options value from the config document into a configured instance; a nil
// options value must yield the rule's defaults.
type Descriptor struct {
	Build  func(options any) (Rule, error)
	Plugin string
	Name   string
}

// Catalog is an immutable, ordered collection of rule descriptors. It is
// passed explicitly into resolution so synthetic catalogs can be used in
// tests instead of ambient globals.
type Catalog struct {
	descriptors []Descriptor
}

// NewCatalog creates a catalog from the given descriptors.
func NewCatalog(descriptors ...Descriptor) *Catalog {
	return &Catalog{descriptors: append([]Descriptor(nil), descriptors...)}
}

// Descriptors returns a copy of the catalog's descriptors in registration order.
func (c *Catalog) Descriptors() []Descriptor {
	return append([]Descriptor(nil), c.descriptors...)
}

// Len returns the number of registered rules.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

// decodeOptions maps a generic options value onto a rule's typed options
// struct through a JSON round trip. A nil value leaves the struct at its
// zero-value defaults.
func decodeOptions(options, out any) error {
	if options == nil {
		return nil
	}

	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}

	return nil
}
