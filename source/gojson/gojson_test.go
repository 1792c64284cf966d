package gojson_test

import (
	"io"
	"testing"

	eng "github.com/godec-io/godec/internal/engine"
	gojsonsrc "github.com/godec-io/godec/source/gojson"
)

func drain(t *testing.T, src eng.TokenSource) []eng.Token {
	t.Helper()
	var toks []eng.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			return toks
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		toks = append(toks, tok)
	}
}

func TestTokenStream(t *testing.T) {
	toks := drain(t, gojsonsrc.NewBytes([]byte(`{"a":[1,true,null],"b":"x"}`)))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindBeginArray,
		eng.KindNumber, eng.KindBool, eng.KindNull,
		eng.KindEndArray,
		eng.KindKey, eng.KindString,
		eng.KindEndObject,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i := range want {
		if toks[i].Kind != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, toks[i].Kind, want[i])
		}
	}
	if toks[1].String != "a" || toks[3].Number != "1" || toks[8].String != "x" {
		t.Fatalf("payloads: %+v", toks)
	}
}

func TestNestedObjectsTrackKeyPosition(t *testing.T) {
	toks := drain(t, gojsonsrc.NewBytes([]byte(`{"o":{"i":"s"}}`)))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindEndObject, eng.KindEndObject,
	}
	for i := range want {
		if toks[i].Kind != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, toks[i].Kind, want[i])
		}
	}
}

func TestNumberKeepsLiteralText(t *testing.T) {
	toks := drain(t, gojsonsrc.NewBytes([]byte(`[9007199254740993]`)))
	if toks[1].Number != "9007199254740993" {
		t.Fatalf("got %q", toks[1].Number)
	}
}
