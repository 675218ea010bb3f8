package decode

import (
	"gopkg.in/yaml.v3"
)

// YAMLValue decodes a single YAML document into the generic value tree,
// normalizing map[any]any into map[string]any recursively.
func YAMLValue(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return NormalizeYAML(raw), nil
}

// NormalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-like values recursively. Non-string map keys are dropped.
func NormalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = NormalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = NormalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = NormalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
