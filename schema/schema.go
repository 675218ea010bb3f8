// Package schema holds the in-memory schema node tree and its JSON/YAML
// loaders. Nodes are read-only once loaded; the validator never mutates them.
package schema

import "regexp"

// Node is one schema in the tree. Optional keywords are pointers so that an
// absent keyword is distinguishable from its zero value; an absent keyword is
// simply skipped during validation.
type Node struct {
	Title       string
	Description string

	// Core
	Type []string // empty = any; JSON Schema allows a union of type names
	Enum []any

	// Numbers
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool
	ExclusiveMaximum bool
	MultipleOf       *float64

	// Strings
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp

	// Arrays
	MinItems        *int
	MaxItems        *int
	UniqueItems     bool
	Items           *ItemsSpec
	AdditionalItems *AdditionalItems

	// Objects
	Properties           map[string]*Node
	Required             []string
	AdditionalProperties *AdditionalProperties
}

// ItemsSpec is the resolved shape of the "items" keyword: either one schema
// for every element (list validation) or one schema per position (tuple
// validation). Exactly one of the fields is set; the shape is resolved once
// at load time and never re-inspected per element.
type ItemsSpec struct {
	List  *Node
	Tuple []*Node
}

// IsTuple reports whether positional (tuple) validation applies.
func (s *ItemsSpec) IsTuple() bool { return s != nil && s.Tuple != nil }

// AdditionalItems is the policy for elements beyond the tuple arity. A nil
// *AdditionalItems means the keyword is absent (permissive: elements are
// accepted as if matched against an empty schema).
type AdditionalItems struct {
	Forbidden bool  // additionalItems: false
	Schema    *Node // additionalItems: { ... }
}

// AdditionalProperties mirrors AdditionalItems for object members. A nil
// pointer means the keyword is absent.
type AdditionalProperties struct {
	Forbidden bool
	Schema    *Node
}
