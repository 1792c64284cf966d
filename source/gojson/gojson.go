// Package gojson is the default input driver, tokenizing JSON with
// goccy/go-json. The token mapping mirrors source/json; only the underlying
// decoder differs.
package gojson

import (
	"bytes"
	stdjson "encoding/json"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/godec-io/godec/internal/engine"
)

type source struct {
	dec   *j.Decoder
	track tracker
	err   error // when set, returned by every NextToken call
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json. The
// go-json tokenizer does not check the placement of ',' and ':' (it yields
// the tokens of "[1,]" without complaint), so the bytes are syntax-checked
// first and malformed input fails on the first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	s := NewReader(bytes.NewReader(b)).(*source)
	if err := stdjson.Unmarshal(b, new(stdjson.RawMessage)); err != nil {
		s.err = err
	}
	return s
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.track.begin(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '}':
			s.track.end()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		case '[':
			s.track.begin(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		default: // ']'
			s.track.end()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	case string:
		if s.track.takeKey() {
			return eng.Token{Kind: eng.KindKey, String: v, Offset: -1}, nil
		}
		s.track.value()
		return eng.Token{Kind: eng.KindString, String: v, Offset: -1}, nil
	case bool:
		s.track.value()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.track.value()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.track.value()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	default: // nil
		s.track.value()
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	}
}

// Location is unknown for the go-json decoder; enforcement byte limits fall
// back to the reader-level cap applied by the caller.
func (s *source) Location() int64 { return -1 }

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

func (t *tracker) value() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
