package decode

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// JSONBytes decodes a JSON document into a generic value tree using
// goccy/go-json.
func JSONBytes(b []byte) (any, error) {
	return JSONReader(bytes.NewReader(b))
}

// JSONReader is the io.Reader variant of JSONBytes.
func JSONReader(r io.Reader) (any, error) {
	return AnyFromSource(NewJSONSource(r))
}

// ---- TokenSource implementation using the go-json Decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type jsonSource struct {
	dec   *j.Decoder
	stack []frame
}

// NewJSONSource wraps an io.Reader into a TokenSource for JSON.
func NewJSONSource(r io.Reader) TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return Token{}, io.EOF
		}
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject}, nil
		case '}':
			s.pop()
			return Token{Kind: KindEndObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray}, nil
		case ']':
			s.pop()
			return Token{Kind: KindEndArray}, nil
		}
		return Token{}, io.ErrUnexpectedEOF
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v}, nil
			}
		}
		s.afterValue()
		return Token{Kind: KindString, String: v}, nil
	case j.Number:
		s.afterValue()
		return Token{Kind: KindNumber, Number: v.String()}, nil
	case bool:
		s.afterValue()
		return Token{Kind: KindBool, Bool: v}, nil
	case nil:
		s.afterValue()
		return Token{Kind: KindNull}, nil
	}
	return Token{}, io.ErrUnexpectedEOF
}

// pop leaves a container and, when the parent is an object, re-arms key
// expectation for the member that follows.
func (s *jsonSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.afterValue()
}

func (s *jsonSource) afterValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
