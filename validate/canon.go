package validate

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// canonicalKey renders a deterministic, kind-tagged representation of a
// value: equal keys iff the values are deeply structurally equal. Each kind
// carries its own tag so values of different kinds never collide even when a
// naive string coercion would conflate them (numeric 1 vs string "1").
// Numbers canonicalize through float64, so numerically equal representations
// ("1" and "1.0") collide deliberately.
func canonicalKey(v any) string {
	b := &strings.Builder{}
	writeCanonical(b, v)
	return b.String()
}

func writeCanonical(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("z")
	case undefinedValue:
		b.WriteString("u")
	case bool:
		if t {
			b.WriteString("b:1")
		} else {
			b.WriteString("b:0")
		}
	case string:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			b.WriteString("n:")
			b.WriteString(t.String())
			return
		}
		writeCanonicalFloat(b, f)
	case float64:
		writeCanonicalFloat(b, t)
	case int:
		writeCanonicalFloat(b, float64(t))
	case int64:
		writeCanonicalFloat(b, float64(t))
	case uint64:
		writeCanonicalFloat(b, float64(t))
	case []any:
		b.WriteString("a[")
		for i, el := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, el)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("o{")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeCanonical(b, t[k])
		}
		b.WriteByte('}')
	default:
		// Foreign values (custom number types etc.) fall back to their JSON
		// encoding under a distinct tag.
		b.WriteString("x:")
		if data, err := gojson.Marshal(t); err == nil {
			b.Write(data)
		}
	}
}

func writeCanonicalFloat(b *strings.Builder, f float64) {
	b.WriteString("n:")
	b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}
