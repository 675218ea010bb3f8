package validate

import (
	"fmt"
	"strconv"

	valjson "github.com/yatagawa/valjson"
	"github.com/yatagawa/valjson/i18n"
	"github.com/yatagawa/valjson/schema"
)

// validateArray applies the array keywords to arr. The four top-level checks
// (minItems, maxItems, uniqueItems, items) are independent: each runs
// whenever its keyword is present, regardless of the others' outcomes.
// contextIndex names the property or index holding this array; tuple-mode
// additionalItems errors reference it.
func (vd *Validator) validateArray(arr []any, n *schema.Node, at valjson.PathRef, contextIndex string, iss *valjson.Issues) {
	if n.MinItems != nil && len(arr) < *n.MinItems {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMinItems,
			i18n.T(valjson.CodeMinItems, nil), map[string]any{"minItems": *n.MinItems}))
	}
	if n.MaxItems != nil && len(arr) > *n.MaxItems {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeMaxItems,
			i18n.T(valjson.CodeMaxItems, nil), map[string]any{"maxItems": *n.MaxItems}))
	}
	if n.UniqueItems {
		checkUniqueItems(arr, at, iss)
	}
	if n.Items == nil {
		return
	}
	if n.Items.IsTuple() {
		vd.validateTupleItems(arr, n.Items.Tuple, n.AdditionalItems, at, contextIndex, iss)
		return
	}
	vd.validateListItems(arr, n.Items.List, n.AdditionalItems, at, iss)
}

// checkUniqueItems counts distinct canonical representations. However many
// elements collide, at most one issue is emitted, and it does not identify
// the colliding elements.
func checkUniqueItems(arr []any, at valjson.PathRef, iss *valjson.Issues) {
	seen := make(map[string]struct{}, len(arr))
	for _, el := range arr {
		seen[canonicalKey(el)] = struct{}{}
	}
	if len(seen) < len(arr) {
		*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at, valjson.CodeUniqueItems,
			i18n.T(valjson.CodeUniqueItems, nil), map[string]any{"uniqueItems": true}))
	}
}

// validateListItems checks every element against the one shared item schema.
//
// When the item schema declares a single primitive type and no
// additionalItems keyword is present at all, a fast path classifies each
// element's kind directly instead of recursing: mismatches emit a type issue
// naming the found kind, matches are fed to one reusable primitive instance
// whose internally accumulated issues merge once at the end.
//
// Otherwise each element is validated independently, with a speculative
// retry against additionalItems when the first attempt fails (see retry
// resolution below).
func (vd *Validator) validateListItems(arr []any, item *schema.Node, addl *schema.AdditionalItems, at valjson.PathRef, iss *valjson.Issues) {
	if addl == nil && fastPathEligible(item) {
		want := item.Type[0]
		inst := primitiveFor(item)
		for i, el := range arr {
			if !typeMatches(el, want) {
				*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at.Index(i), valjson.CodeType,
					typeMismatchMessage(el, want),
					map[string]any{"expected": want, "found": kindOf(el)}))
				continue
			}
			inst.observe(el, at.Index(i))
		}
		inst.flush(iss)
		return
	}

	for i, el := range arr {
		base := len(*iss)
		vd.validateValue(el, item, at.Index(i), strconv.Itoa(i), iss)
		if len(*iss) == base || addl == nil || addl.Forbidden {
			// Clean pass, or no usable additionalItems schema to retry
			// against: the first attempt stands.
			continue
		}
		// Speculative retry: roll back to the pre-element baseline and try
		// the element against additionalItems instead.
		first := append(valjson.Issues(nil), (*iss)[base:]...)
		*iss = (*iss)[:base]
		vd.validateValue(el, addl.Schema, at.Index(i), strconv.Itoa(i), iss)
		second := len(*iss) - base
		switch {
		case second < len(first):
			// Retry outcome wins; its issues are already in place.
		case second == len(first):
			// Equal counts discard BOTH attempts and accept the element.
			// This tie-break is preserved for compatibility with the
			// engine's historical comparison logic; "prefer the primary
			// schema" would be the principled alternative.
			*iss = (*iss)[:base]
		default:
			*iss = append((*iss)[:base], first...)
		}
	}
}

// validateTupleItems checks element k against positional schema k. Beyond
// the tuple arity the additionalItems policy decides: a schema validates,
// Forbidden reports, absence accepts. Positions the array omits are checked
// against a synthesized undefined placeholder — unless the array is empty,
// in which case minItems is the only guard (handled by the caller).
func (vd *Validator) validateTupleItems(arr []any, tuple []*schema.Node, addl *schema.AdditionalItems, at valjson.PathRef, contextIndex string, iss *valjson.Issues) {
	for k, el := range arr {
		switch {
		case k < len(tuple):
			vd.validateValue(el, tuple[k], at.Index(k), strconv.Itoa(k), iss)
		case addl != nil && addl.Forbidden:
			msg := fmt.Sprintf("item %d exceeds the tuple schema and is not allowed", k)
			if contextIndex != "" {
				msg = fmt.Sprintf("item %d in %q exceeds the tuple schema and is not allowed", k, contextIndex)
			}
			*iss = valjson.AppendIssues(*iss, valjson.IssueAt(at.Index(k), valjson.CodeAdditionalItems,
				msg, map[string]any{"additionalItems": false}))
		case addl != nil && addl.Schema != nil:
			vd.validateValue(el, addl.Schema, at.Index(k), strconv.Itoa(k), iss)
		default:
			// additionalItems absent: accepted as if matched against an
			// empty schema.
		}
	}
	if len(arr) > 0 && len(tuple) > len(arr) {
		for j := len(arr); j < len(tuple); j++ {
			vd.validateValue(Undefined, tuple[j], at.Index(j), strconv.Itoa(j), iss)
		}
	}
}

// fastPathEligible reports whether the shared item schema declares exactly
// one of the primitive types the fast path can classify without recursing.
func fastPathEligible(n *schema.Node) bool {
	if len(n.Type) != 1 {
		return false
	}
	switch n.Type[0] {
	case "string", "number", "integer":
		return true
	}
	return false
}
