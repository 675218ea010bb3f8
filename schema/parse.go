package schema

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"

	json "github.com/goccy/go-json"
)

// ParseJSON decodes a JSON schema document and builds the node tree. The
// loader owns the well-formedness guarantee the validator relies on: every
// keyword shape is checked here and malformed schemas are rejected with an
// error, so the engine never has to guard against them.
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema: root must be an object, got %T", raw)
	}
	return FromMap(m)
}

// FromMap builds a Node tree from an already-decoded JSON-like map
// (map[string]any with json.Number/float64/int numbers).
func FromMap(m map[string]any) (*Node, error) {
	return build(m, "/")
}

func build(m map[string]any, at string) (*Node, error) {
	n := &Node{}
	n.Title, _ = m["title"].(string)
	n.Description, _ = m["description"].(string)

	if v, ok := m["type"]; ok {
		switch t := v.(type) {
		case string:
			n.Type = []string{t}
		case []any:
			for _, e := range t {
				s, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("schema: %s: type entries must be strings, got %T", at, e)
				}
				n.Type = append(n.Type, s)
			}
		default:
			return nil, fmt.Errorf("schema: %s: type must be a string or array of strings, got %T", at, v)
		}
	}
	if v, ok := m["enum"]; ok {
		vs, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("schema: %s: enum must be an array, got %T", at, v)
		}
		n.Enum = vs
	}

	var err error
	if n.Minimum, err = floatField(m, "minimum", at); err != nil {
		return nil, err
	}
	if n.Maximum, err = floatField(m, "maximum", at); err != nil {
		return nil, err
	}
	if n.MultipleOf, err = floatField(m, "multipleOf", at); err != nil {
		return nil, err
	}
	if n.ExclusiveMinimum, err = boolField(m, "exclusiveMinimum", at); err != nil {
		return nil, err
	}
	if n.ExclusiveMaximum, err = boolField(m, "exclusiveMaximum", at); err != nil {
		return nil, err
	}
	if n.MinLength, err = countField(m, "minLength", at); err != nil {
		return nil, err
	}
	if n.MaxLength, err = countField(m, "maxLength", at); err != nil {
		return nil, err
	}
	if v, ok := m["pattern"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("schema: %s: pattern must be a string, got %T", at, v)
		}
		re, err := regexp.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("schema: %s: pattern: %w", at, err)
		}
		n.Pattern = re
	}

	if n.MinItems, err = countField(m, "minItems", at); err != nil {
		return nil, err
	}
	if n.MaxItems, err = countField(m, "maxItems", at); err != nil {
		return nil, err
	}
	if n.UniqueItems, err = boolField(m, "uniqueItems", at); err != nil {
		return nil, err
	}
	if v, ok := m["items"]; ok {
		if n.Items, err = buildItems(v, child(at, "items")); err != nil {
			return nil, err
		}
	}
	if v, ok := m["additionalItems"]; ok {
		spec, err := buildAdditional(v, child(at, "additionalItems"))
		if err != nil {
			return nil, err
		}
		if spec != nil {
			n.AdditionalItems = &AdditionalItems{Forbidden: spec.Forbidden, Schema: spec.Schema}
		}
	}

	if v, ok := m["properties"]; ok {
		pm, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("schema: %s: properties must be an object, got %T", at, v)
		}
		n.Properties = make(map[string]*Node, len(pm))
		for _, k := range sortedKeys(pm) {
			sub, ok := pm[k].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("schema: %s: property %q must be an object, got %T", at, k, pm[k])
			}
			pn, err := build(sub, child(child(at, "properties"), k))
			if err != nil {
				return nil, err
			}
			n.Properties[k] = pn
		}
	}
	if v, ok := m["required"]; ok {
		rs, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("schema: %s: required must be an array, got %T", at, v)
		}
		for _, e := range rs {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("schema: %s: required entries must be strings, got %T", at, e)
			}
			n.Required = append(n.Required, s)
		}
	}
	if v, ok := m["additionalProperties"]; ok {
		spec, err := buildAdditional(v, child(at, "additionalProperties"))
		if err != nil {
			return nil, err
		}
		if spec != nil {
			n.AdditionalProperties = spec
		}
	}
	return n, nil
}

// buildItems resolves the two legal runtime shapes of "items" once, at load
// time: one schema object (list validation) or an array of schema objects
// (tuple validation).
func buildItems(v any, at string) (*ItemsSpec, error) {
	switch t := v.(type) {
	case map[string]any:
		n, err := build(t, at)
		if err != nil {
			return nil, err
		}
		return &ItemsSpec{List: n}, nil
	case []any:
		tuple := make([]*Node, 0, len(t))
		for i, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("schema: %s/%d: tuple entries must be objects, got %T", at, i, e)
			}
			n, err := build(m, fmt.Sprintf("%s/%d", at, i))
			if err != nil {
				return nil, err
			}
			tuple = append(tuple, n)
		}
		return &ItemsSpec{Tuple: tuple}, nil
	default:
		return nil, fmt.Errorf("schema: %s: items must be an object or an array of objects, got %T", at, v)
	}
}

// buildAdditional handles the boolean-or-schema shape shared by
// additionalItems and additionalProperties. An explicit `true` behaves like
// the absent keyword (always-matching empty schema), so it loads as nil.
func buildAdditional(v any, at string) (*AdditionalProperties, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return nil, nil
		}
		return &AdditionalProperties{Forbidden: true}, nil
	case map[string]any:
		n, err := build(t, at)
		if err != nil {
			return nil, err
		}
		return &AdditionalProperties{Schema: n}, nil
	default:
		return nil, fmt.Errorf("schema: %s: must be a boolean or an object, got %T", at, v)
	}
}

func boolField(m map[string]any, key, at string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("schema: %s: %s must be a boolean, got %T", at, key, v)
	}
	return b, nil
}

// countField loads a non-negative integer keyword (minItems, maxLength, ...).
func countField(m map[string]any, key, at string) (*int, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %s must be an integer, got %T", at, key, v)
	}
	i := int(f)
	if float64(i) != f {
		return nil, fmt.Errorf("schema: %s: %s must be an integer, got %v", at, key, v)
	}
	if i < 0 {
		return nil, fmt.Errorf("schema: %s: %s must be >= 0, got %d", at, key, i)
	}
	return &i, nil
}

func floatField(m map[string]any, key, at string) (*float64, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %s must be a number, got %T", at, key, v)
	}
	return &f, nil
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	}
	return 0, fmt.Errorf("not a number: %T", v)
}

func sortedKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func child(at, key string) string {
	if at == "/" {
		return "/" + key
	}
	return at + "/" + key
}
