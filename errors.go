package valjson

import (
	"errors"
	"fmt"
	"strings"
)

// Constraint codes (exported consts for IDE completion and type safety by
// convention). Each code is the JSON Schema keyword that produced the issue,
// so callers can key message templates off it.
const (
	CodeType                 = "type"
	CodeEnum                 = "enum"
	CodeMinimum              = "minimum"
	CodeMaximum              = "maximum"
	CodeMultipleOf           = "multipleOf"
	CodeMinLength            = "minLength"
	CodeMaxLength            = "maxLength"
	CodePattern              = "pattern"
	CodeRequired             = "required"
	CodeAdditionalProperties = "additionalProperties"
	// Array keywords
	CodeMinItems        = "minItems"
	CodeMaxItems        = "maxItems"
	CodeUniqueItems     = "uniqueItems"
	CodeAdditionalItems = "additionalItems"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	// Params carries structured parameters (e.g., {"minItems": 1}) for i18n
	// and observability.
	Params map[string]any
}

// Issues is an ordered collection of validation entries that implements
// error. Insertion order is preserved; entries are never merged or deduped.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. minItems at /tags
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
