package yaml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	godec "github.com/godec-io/godec"
	yamlsrc "github.com/godec-io/godec/source/yaml"
)

func parse(t *testing.T, src string) godec.Value {
	t.Helper()
	v, err := yamlsrc.ParseString(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return v
}

func TestParse_Scalars(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"null", "null"},
		{"~", "null"},
		{"true", "true"},
		{"42", "42"},
		{"-7", "-7"},
		{"0x10", "16"},
		{"18446744073709551615", "18446744073709551615"},
		{"1.5", "1.5"},
		{".inf", "null"},
		{".nan", "null"},
		{"hello", `"hello"`},
		{`"42"`, `"42"`},
	}
	for _, tc := range cases {
		if got := parse(t, tc.src).Render(0); got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestParse_EmptyDocumentIsNull(t *testing.T) {
	if got := parse(t, "").Render(0); got != "null" {
		t.Fatalf("got %s", got)
	}
}

func TestParse_MappingKeepsOrder(t *testing.T) {
	v := parse(t, "z: 1\na: 2\nm: 3\n")
	if diff := cmp.Diff([]string{"z", "a", "m"}, v.Keys()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestParse_Nested(t *testing.T) {
	src := `
server:
  host: localhost
  ports:
    - 80
    - 443
debug: false
`
	v := parse(t, src)
	if got := v.Render(0); got != `{"server":{"host":"localhost","ports":[80,443]},"debug":false}` {
		t.Fatalf("got %s", got)
	}
}

func TestParse_AnchorsAndAliases(t *testing.T) {
	src := `
base: &b
  retries: 3
service:
  <<: *b
  name: api
copy: *b
`
	v := parse(t, src)
	c, ok := v.Field("copy")
	if !ok {
		t.Fatalf("copy missing: %s", v.Render(0))
	}
	if got := c.Render(0); got != `{"retries":3}` {
		t.Fatalf("alias: got %s", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := yamlsrc.ParseString(":\n- x"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestParse_QuotedKeysStayStrings(t *testing.T) {
	v := parse(t, `"1": one`)
	fv, ok := v.Field("1")
	if !ok {
		t.Fatalf("key lookup failed: %s", v.Render(0))
	}
	if s, _ := fv.AsString(); s != "one" {
		t.Fatalf("got %q", s)
	}
}
