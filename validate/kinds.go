package validate

import (
	"encoding/json"
	"fmt"
	"math"
)

// kindOf names the runtime kind of a decoded value for type-error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, int, int64, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func typeMatches(v any, want string) bool {
	switch want {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		return isNumeric(v)
	case "integer":
		return isInteger(v)
	case "null":
		return v == nil
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "any":
		return true
	default:
		// Unknown type names are treated as pass
		return true
	}
}

func isNumeric(v any) bool {
	switch t := v.(type) {
	case json.Number:
		_, err := t.Float64()
		return err == nil
	case float64, int, int64, uint64:
		return true
	}
	return false
}

func isInteger(v any) bool {
	switch t := v.(type) {
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return true
		}
		f, err := t.Float64()
		return err == nil && f == math.Trunc(f)
	case float64:
		return t == math.Trunc(t)
	case int, int64, uint64:
		return true
	}
	return false
}

// numValue extracts the numeric value when v is any numeric representation.
func numValue(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}
