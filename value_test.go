package godec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	godec "github.com/godec-io/godec"
)

func TestValue_ZeroIsUndefined(t *testing.T) {
	var v godec.Value
	if v.KindOf() != godec.KindUndefined {
		t.Fatalf("expected undefined kind, got %v", v.KindOf())
	}
	if !v.IsUndefined() || !v.IsNullish() {
		t.Fatalf("zero value must be undefined and nullish")
	}
	if v.IsNull() {
		t.Fatalf("undefined is not null")
	}
}

func TestValue_Accessors(t *testing.T) {
	if b, ok := godec.Bool(true).AsBool(); !ok || !b {
		t.Fatalf("AsBool: got %v, %v", b, ok)
	}
	if s, ok := godec.Str("hi").AsString(); !ok || s != "hi" {
		t.Fatalf("AsString: got %q, %v", s, ok)
	}
	if _, ok := godec.Str("hi").AsBool(); ok {
		t.Fatalf("AsBool on a string must fail")
	}
	if txt, ok := godec.Int(-42).NumberText(); !ok || txt != "-42" {
		t.Fatalf("NumberText: got %q, %v", txt, ok)
	}
	if f, ok := godec.Number("1.5").AsFloat(); !ok || f != 1.5 {
		t.Fatalf("AsFloat: got %v, %v", f, ok)
	}
}

func TestValue_IntegerText(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"0", true},
		{"-7", true},
		{"12345678901234567890", true},
		{"1.0", false},
		{"1e3", false},
		{"-", false},
	}
	for _, tc := range cases {
		_, ok := godec.Number(tc.text).IntegerText()
		if ok != tc.want {
			t.Errorf("IntegerText(%q): got %v, want %v", tc.text, ok, tc.want)
		}
	}
	if _, ok := godec.Str("12").IntegerText(); ok {
		t.Fatalf("a string is never integral")
	}
}

func TestValue_ObjectOrderPreserved(t *testing.T) {
	v := godec.Obj(
		godec.Pair("z", godec.Int(1)),
		godec.Pair("a", godec.Int(2)),
		godec.Pair("m", godec.Int(3)),
	)
	want := []string{"z", "a", "m"}
	if diff := cmp.Diff(want, v.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := v.Render(0); got != `{"z":1,"a":2,"m":3}` {
		t.Fatalf("render: got %s", got)
	}
}

func TestValue_FieldLookup(t *testing.T) {
	v := godec.Obj(godec.Pair("a", godec.Str("x")))
	if fv, ok := v.Field("a"); !ok || fv.KindOf() != godec.KindString {
		t.Fatalf("Field(a): got %v, %v", fv, ok)
	}
	if _, ok := v.Field("b"); ok {
		t.Fatalf("Field(b) must be absent")
	}
	if _, ok := godec.Arr().Field("a"); ok {
		t.Fatalf("Field on a non-object must fail")
	}
}

func TestValue_ArrayAccess(t *testing.T) {
	v := godec.Arr(godec.Int(1), godec.Int(2))
	if v.Len() != 2 {
		t.Fatalf("Len: got %d", v.Len())
	}
	if !v.At(5).IsUndefined() || !v.At(-1).IsUndefined() {
		t.Fatalf("out-of-range At must yield undefined")
	}
}

func TestValue_NumberKeepsLiteralText(t *testing.T) {
	big := "9007199254740993"
	v := godec.Number(big)
	if got := v.Render(0); got != big {
		t.Fatalf("literal text lost: got %s", got)
	}
}

func TestValue_RenderIndent(t *testing.T) {
	v := godec.Obj(godec.Pair("a", godec.Arr(godec.Int(1))))
	want := "{\n  \"a\": [\n    1\n  ]\n}"
	if got := v.Render(2); got != want {
		t.Fatalf("indent render:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestValue_UndefinedRendersAsNull(t *testing.T) {
	if got := godec.Undefined().Render(0); got != "null" {
		t.Fatalf("got %s", got)
	}
}

func TestValue_StringEscaping(t *testing.T) {
	if got := godec.Str("a\"b\n").Render(0); got != `"a\"b\n"` {
		t.Fatalf("got %s", got)
	}
}
