package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yatagawa/valjson/internal/decode"
)

// ParseYAML decodes a single-document YAML schema and builds the node tree.
// YAML maps with non-string keys are normalized away before building, so the
// same loader path serves both JSON and YAML inputs.
func ParseYAML(data []byte) (*Node, error) {
	v, err := decode.YAMLValue(data)
	if err != nil {
		return nil, fmt.Errorf("schema: yaml: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema: yaml: root must be a mapping, got %T", v)
	}
	return FromMap(m)
}

// ParseYAMLAll scans a multi-document YAML stream and builds one node tree
// per document. Non-mapping documents are rejected.
func ParseYAMLAll(data []byte) ([]*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*Node
	for {
		var raw any
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("schema: yaml: %w", err)
		}
		m, ok := decode.NormalizeYAML(raw).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("schema: yaml: document %d is not a mapping", len(out))
		}
		n, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("schema: yaml: no documents")
	}
	return out, nil
}
