package valjson

import (
	"io"

	"github.com/yatagawa/valjson/internal/decode"
)

// DecodeJSON decodes a JSON document into the generic value tree consumed by
// the validator (map[string]any / []any / json.Number / string / bool / nil).
// Numbers are kept as json.Number so integer checks stay exact.
func DecodeJSON(data []byte) (any, error) {
	return decode.JSONBytes(data)
}

// DecodeJSONReader is the io.Reader variant of DecodeJSON.
func DecodeJSONReader(r io.Reader) (any, error) {
	return decode.JSONReader(r)
}

// DecodeYAML decodes a YAML document into the same generic value tree,
// normalizing map[any]any keys to strings.
func DecodeYAML(data []byte) (any, error) {
	return decode.YAMLValue(data)
}
