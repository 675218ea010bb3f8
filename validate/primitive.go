package validate

import (
	valjson "github.com/yatagawa/valjson"
	"github.com/yatagawa/valjson/schema"
)

// undefinedValue is the kind of a structurally absent value. It fails every
// type check and is skipped by all value-shaped keywords.
type undefinedValue struct{}

// Undefined is the placeholder used where a value is structurally absent,
// e.g. tuple positions the array omits.
var Undefined any = undefinedValue{}

// primitiveInstance is a reusable validator for one primitive item schema.
// The list-mode fast path shares a single instance across all elements of an
// array so issues from the item schema's remaining keywords (enum, bounds,
// length, pattern) are batched and merged once at the end rather than per
// element. Instances are not shared across unrelated arrays.
type primitiveInstance struct {
	node *schema.Node
	iss  valjson.Issues
}

// primitiveFor returns a fresh instance for the given primitive item schema.
func primitiveFor(n *schema.Node) *primitiveInstance {
	return &primitiveInstance{node: n}
}

// observe records keyword checks for one element already known to match the
// instance's declared type.
func (p *primitiveInstance) observe(v any, at valjson.PathRef) {
	checkEnum(v, p.node, at, &p.iss)
	checkNumber(v, p.node, at, &p.iss)
	checkString(v, p.node, at, &p.iss)
}

// flush merges the internally accumulated issues into dst and resets the
// instance.
func (p *primitiveInstance) flush(dst *valjson.Issues) {
	*dst = valjson.AppendIssues(*dst, p.iss...)
	p.iss = nil
}
