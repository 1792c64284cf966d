// Package json adapts the standard library encoding/json tokenizer to the
// engine.TokenSource contract. It exists as a dependency-free fallback; the
// default driver lives in source/gojson.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/godec-io/godec/internal/engine"
)

type jsonSource struct {
	dec        *json.Decoder
	track      tracker
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()
	off := s.lastOffset

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.track.begin(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: off}, nil
		case '}':
			s.track.end()
			return eng.Token{Kind: eng.KindEndObject, Offset: off}, nil
		case '[':
			s.track.begin(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: off}, nil
		default: // ']'
			s.track.end()
			return eng.Token{Kind: eng.KindEndArray, Offset: off}, nil
		}
	case string:
		if s.track.takeKey() {
			return eng.Token{Kind: eng.KindKey, String: v, Offset: off}, nil
		}
		s.track.value()
		return eng.Token{Kind: eng.KindString, String: v, Offset: off}, nil
	case bool:
		s.track.value()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: off}, nil
	case json.Number:
		s.track.value()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: off}, nil
	case float64:
		s.track.value()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	default: // nil
		s.track.value()
		return eng.Token{Kind: eng.KindNull, Offset: off}, nil
	}
}

func (s *jsonSource) Location() int64 { return s.lastOffset }

// tracker keeps just enough container state to tell object keys apart from
// string values, because encoding/json reports both as bare strings.
type tracker struct {
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

func (t *tracker) begin(object bool) {
	t.stack = append(t.stack, frame{object: object, expectingKey: object})
}

func (t *tracker) end() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
	t.value()
}

// takeKey reports whether the next string token is an object key, consuming
// the key position when it is.
func (t *tracker) takeKey() bool {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

// value marks a member value complete, returning the enclosing object to key
// position.
func (t *tracker) value() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
