// Package types maps ZCL schema type tags to the host types used in generated code.
package types

import (
	"errors"
	"fmt"

	"github.com/tidwall/btree"
)

// ErrUnknownType is returned by Resolve for tags that have no catalog entry.
var ErrUnknownType = errors.New("unknown schema type")

// TypeInfo holds the code generation properties for a schema type tag.
type TypeInfo struct {
	// Tag is the schema type tag, e.g. "UNSIGNED_16_BIT_INTEGER".
	Tag string
	// HostType is the C# type used for the tag.
	HostType string
	// GoType is the Go type used for the tag.
	GoType string
	// WireCode is the ZCL data type identifier, 0 when the tag has none.
	WireCode uint8
	// Analog marks numeric types whose values are compared by magnitude
	// (reportable change) rather than by equality.
	Analog bool
}

// Catalog is an immutable tag -> TypeInfo table. A Catalog is never modified
// after construction, so it can be shared between goroutines without locking.
type Catalog struct {
	entries btree.Map[string, TypeInfo]
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{}
	for _, info := range defaultEntries {
		c.entries.Set(info.Tag, info)
	}
	return c
}

// Resolve returns the TypeInfo registered for tag. Unknown tags yield an error
// wrapping ErrUnknownType; callers must not fall back to a default type.
func (c *Catalog) Resolve(tag string) (TypeInfo, error) {
	if info, ok := c.entries.Get(tag); ok {
		return info, nil
	}
	return TypeInfo{}, fmt.Errorf("%w: %q", ErrUnknownType, tag)
}

// Len returns the number of tags in the catalog.
func (c *Catalog) Len() int {
	return c.entries.Len()
}

// All returns every entry ordered by tag.
func (c *Catalog) All() []TypeInfo {
	out := make([]TypeInfo, 0, c.entries.Len())
	c.entries.Scan(func(_ string, info TypeInfo) bool {
		out = append(out, info)
		return true
	})
	return out
}

// Override replaces parts of one catalog entry. Empty strings and nil
// pointers keep the values of the entry being overridden.
type Override struct {
	HostType string
	GoType   string
	WireCode *uint8
	Analog   *bool
}

// WithOverrides returns a new catalog with the given overrides layered on top
// of c. Map keys are the tags. A tag unknown to c needs at least a HostType.
// The receiver is left untouched.
func (c *Catalog) WithOverrides(overrides map[string]Override) (*Catalog, error) {
	next := &Catalog{}
	c.entries.Scan(func(tag string, info TypeInfo) bool {
		next.entries.Set(tag, info)
		return true
	})
	for tag, o := range overrides {
		if tag == "" {
			return nil, fmt.Errorf("type override with empty tag")
		}
		info, _ := next.entries.Get(tag)
		info.Tag = tag
		if o.HostType != "" {
			info.HostType = o.HostType
		}
		if o.GoType != "" {
			info.GoType = o.GoType
		}
		if o.WireCode != nil {
			info.WireCode = *o.WireCode
		}
		if o.Analog != nil {
			info.Analog = *o.Analog
		}
		if info.HostType == "" {
			return nil, fmt.Errorf("type override %q: no host type", tag)
		}
		if info.GoType == "" {
			info.GoType = info.HostType
		}
		next.entries.Set(tag, info)
	}
	return next, nil
}
