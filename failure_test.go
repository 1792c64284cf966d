package godec_test

import (
	"strings"
	"testing"

	godec "github.com/godec-io/godec"
)

func TestFailure_BadPrimitiveMessage(t *testing.T) {
	f := godec.BadPrimitive("$.age", "an int", godec.Str("maybe"))
	want := "Error at: `$.age`\nExpecting an int but instead got: \"maybe\""
	if got := f.Error(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFailure_BadPrimitiveExtraMessage(t *testing.T) {
	f := godec.BadPrimitiveExtra("$", "an int8", godec.Number("300"),
		"Value was either too large or too small for an int8")
	want := "Error at: `$`\n" +
		"Expecting an int8 but instead got: 300\n" +
		"Reason: Value was either too large or too small for an int8"
	if got := f.Error(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFailure_BadTypeRendersMultiline(t *testing.T) {
	v := godec.Obj(godec.Pair("a", godec.Int(1)))
	f := godec.BadType("$", "an array", v)
	got := f.Error()
	if !strings.HasPrefix(got, "Error at: `$`\nExpecting an array but instead got:\n") {
		t.Fatalf("unexpected prefix:\n%s", got)
	}
	if !strings.Contains(got, "    \"a\": 1") {
		t.Fatalf("offending value must be indented by four spaces:\n%s", got)
	}
}

func TestFailure_BadPathNamesUnknownNode(t *testing.T) {
	v := godec.Obj(godec.Pair("a", godec.Int(1)))
	f := godec.BadPath("$", "an object with path `a.b`", v, "b")
	got := f.Error()
	if !strings.HasSuffix(got, "Node `b` is unknown.") {
		t.Fatalf("missing node line:\n%s", got)
	}
}

func TestFailure_TooSmallArrayMessage(t *testing.T) {
	f := godec.TooSmallArray("$", 3, godec.Arr(godec.Int(1)))
	got := f.Error()
	if !strings.Contains(got, "Expecting a longer array. Need index `3` but instead got:") {
		t.Fatalf("got:\n%s", got)
	}
}

func TestFailure_FailWithMessage(t *testing.T) {
	f := godec.FailWith("$.x", "boom")
	want := "Error at: `$.x`\nThe following `failure` occurred with the decoder: boom"
	if got := f.Error(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFailure_OneOfJoinsAlternatives(t *testing.T) {
	a := godec.BadPrimitive("$", "a string", godec.Int(1)).Error()
	b := godec.BadPrimitive("$", "a boolean", godec.Int(1)).Error()
	f := godec.OneOf("$", []string{a, b})
	want := "The following errors were found:\n\n" + a + "\n\n" + b
	if got := f.Error(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPathJoin(t *testing.T) {
	p := godec.JoinIndex(godec.JoinField(godec.RootPath, "users"), 3)
	if p != "$.users[3]" {
		t.Fatalf("got %s", p)
	}
}
