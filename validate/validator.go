// Package validate implements the recursive validation engine. A Validator
// walks a decoded document against a schema.Node tree and accumulates every
// violation it finds into a single ordered issue list; no check short-circuits
// another, so callers always receive complete diagnostics in one pass.
//
// Evaluation is synchronous recursive descent: call-stack growth is bounded
// by the nesting depth of the schema and document.
package validate

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	valjson "github.com/yatagawa/valjson"
	"github.com/yatagawa/valjson/i18n"
	"github.com/yatagawa/valjson/schema"
)

// Validator validates decoded documents against one schema tree. It is
// stateless between calls; issue accumulation is threaded explicitly, so a
// Validator may be shared across goroutines as long as the schema tree is
// not mutated.
type Validator struct {
	root *schema.Node
}

// New returns a Validator for the given schema tree. The tree must be
// well-formed; the schema loaders guarantee that.
func New(root *schema.Node) *Validator {
	return &Validator{root: root}
}

// Validate walks the whole document and returns every violation in
// encounter order. An empty result means the document conforms.
func (vd *Validator) Validate(doc any) valjson.Issues {
	var iss valjson.Issues
	vd.validateValue(doc, vd.root, valjson.Root(), "", &iss)
	return iss
}

// validateValue applies every keyword of n to v. label names the containing
// property or index; it only surfaces in messages that need to reference the
// enclosing context (tuple-mode additionalItems).
func (vd *Validator) validateValue(v any, n *schema.Node, at valjson.PathRef, label string, iss *valjson.Issues) {
	if n == nil {
		return
	}
	checkType(v, n, at, iss)
	checkEnum(v, n, at, iss)
	checkNumber(v, n, at, iss)
	checkString(v, n, at, iss)
	if m, ok := v.(map[string]any); ok {
		vd.validateObject(m, n, at, iss)
	}
	if arr, ok := v.([]any); ok {
		vd.validateArray(arr, n, at, label, iss)
	}
}

func checkType(v any, n *schema.Node, at valjson.PathRef, iss *valjson.Issues) {
	if len(n.Type) == 0 {
		return
	}
	for _, want := range n.Type {
		if typeMatches(v, want) {
			return
		}
	}
	expected := strings.Join(n.Type, " or ")
	*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeType,
		typeMismatchMessage(v, expected),
		map[string]any{"expected": expected, "found": kindOf(v)}))
}

func typeMismatchMessage(v any, expected string) string {
	return fmt.Sprintf("invalid type: %s (expected %s)", kindOf(v), expected)
}

func checkEnum(v any, n *schema.Node, at valjson.PathRef, iss *valjson.Issues) {
	if len(n.Enum) == 0 {
		return
	}
	if _, ok := v.(undefinedValue); ok {
		return
	}
	key := canonicalKey(v)
	for _, e := range n.Enum {
		if canonicalKey(e) == key {
			return
		}
	}
	*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeEnum,
		i18n.T(valjson.CodeEnum, nil), map[string]any{"enum": n.Enum}))
}

func checkNumber(v any, n *schema.Node, at valjson.PathRef, iss *valjson.Issues) {
	if n.Minimum == nil && n.Maximum == nil && n.MultipleOf == nil {
		return
	}
	f, ok := numValue(v)
	if !ok {
		return
	}
	if n.Minimum != nil && (f < *n.Minimum || (n.ExclusiveMinimum && f == *n.Minimum)) {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMinimum,
			i18n.T(valjson.CodeMinimum, nil),
			map[string]any{"minimum": *n.Minimum, "exclusive": n.ExclusiveMinimum}))
	}
	if n.Maximum != nil && (f > *n.Maximum || (n.ExclusiveMaximum && f == *n.Maximum)) {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMaximum,
			i18n.T(valjson.CodeMaximum, nil),
			map[string]any{"maximum": *n.Maximum, "exclusive": n.ExclusiveMaximum}))
	}
	if n.MultipleOf != nil && *n.MultipleOf != 0 {
		q := f / *n.MultipleOf
		if math.Abs(q-math.Round(q)) > 1e-9 {
			*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMultipleOf,
				i18n.T(valjson.CodeMultipleOf, nil), map[string]any{"multipleOf": *n.MultipleOf}))
		}
	}
}

func checkString(v any, n *schema.Node, at valjson.PathRef, iss *valjson.Issues) {
	if n.MinLength == nil && n.MaxLength == nil && n.Pattern == nil {
		return
	}
	s, ok := v.(string)
	if !ok {
		return
	}
	if n.MinLength != nil && utf8.RuneCountInString(s) < *n.MinLength {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMinLength,
			i18n.T(valjson.CodeMinLength, nil), map[string]any{"minLength": *n.MinLength}))
	}
	if n.MaxLength != nil && utf8.RuneCountInString(s) > *n.MaxLength {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMaxLength,
			i18n.T(valjson.CodeMaxLength, nil), map[string]any{"maxLength": *n.MaxLength}))
	}
	if n.Pattern != nil && !n.Pattern.MatchString(s) {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodePattern,
			i18n.T(valjson.CodePattern, nil), map[string]any{"pattern": n.Pattern.String()}))
	}
}

// validateObject applies required/properties/additionalProperties. Keys are
// visited in sorted order so issue order is deterministic.
func (vd *Validator) validateObject(m map[string]any, n *schema.Node, at valjson.PathRef, iss *valjson.Issues) {
	for _, r := range n.Required {
		if _, ok := m[r]; !ok {
			*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at.Field(r), valjson.CodeRequired,
				i18n.T(valjson.CodeRequired, nil), map[string]any{"property": r}))
		}
	}
	if len(n.Properties) > 0 {
		names := make([]string, 0, len(n.Properties))
		for k := range n.Properties {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			if val, ok := m[k]; ok {
				vd.validateValue(val, n.Properties[k], at.Field(k), k, iss)
			}
		}
	}
	if n.AdditionalProperties != nil {
		extras := make([]string, 0, len(m))
		for k := range m {
			if _, declared := n.Properties[k]; !declared {
				extras = append(extras, k)
			}
		}
		sort.Strings(extras)
		for _, k := range extras {
			if n.AdditionalProperties.Forbidden {
				*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at.Field(k), valjson.CodeAdditionalProperties,
					i18n.T(valjson.CodeAdditionalProperties, nil), map[string]any{"property": k}))
				continue
			}
			vd.validateValue(m[k], n.AdditionalProperties.Schema, at.Field(k), k, iss)
		}
	}
}
