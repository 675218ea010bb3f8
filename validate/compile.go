package validate

import (
	"github.com/yatagawa/valjson/schema"
)

// CompileJSON loads a JSON schema document and returns a ready Validator.
func CompileJSON(data []byte) (*Validator, error) {
	n, err := schema.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return New(n), nil
}

// CompileYAML loads a single-document YAML schema and returns a ready
// Validator.
func CompileYAML(data []byte) (*Validator, error) {
	n, err := schema.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return New(n), nil
}
