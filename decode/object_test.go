package decode_test

import (
	"strings"
	"testing"

	"github.com/godec-io/godec/decode"
)

type account struct {
	Name  string
	Age   int
	Email *string
	City  *string
}

var accountDec = decode.Object(func(g *decode.Getters) account {
	return account{
		Name:  decode.ReqField(g, "name", decode.Decoder[string](decode.String)),
		Age:   decode.ReqField(g, "age", decode.Decoder[int](decode.Int)),
		Email: decode.OptField(g, "email", decode.Decoder[string](decode.String)),
		City:  decode.OptAt(g, []string{"address", "city"}, decode.Decoder[string](decode.String)),
	}
})

func TestObject_AllPresent(t *testing.T) {
	a, err := run(t, accountDec, `{"name":"Ada","age":36,"email":"ada@example.org","address":{"city":"London"}}`)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if a.Name != "Ada" || a.Age != 36 {
		t.Fatalf("got %+v", a)
	}
	if a.Email == nil || *a.Email != "ada@example.org" {
		t.Fatalf("email: got %v", a.Email)
	}
	if a.City == nil || *a.City != "London" {
		t.Fatalf("city: got %v", a.City)
	}
}

func TestObject_OptionalAbsent(t *testing.T) {
	a, err := run(t, accountDec, `{"name":"Ada","age":36}`)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if a.Email != nil || a.City != nil {
		t.Fatalf("absent optionals must be nil: %+v", a)
	}
}

func TestObject_SingleFailureSurfacesAsIs(t *testing.T) {
	got := mustFail(t, accountDec, `{"name":"Ada"}`)
	if !strings.HasPrefix(got, "Error at: `$`\nExpecting an object with a field named `age`") {
		t.Fatalf("got:\n%s", got)
	}
}

func TestObject_MultipleFailuresAggregate(t *testing.T) {
	got := mustFail(t, accountDec, `{"email":5}`)
	if !strings.HasPrefix(got, "The following errors were found:\n\n") {
		t.Fatalf("got:\n%s", got)
	}
	for _, frag := range []string{"`name`", "`age`", "Error at: `$.email`"} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %s in:\n%s", frag, got)
		}
	}
	// Getter-call order is report order.
	if strings.Index(got, "`name`") > strings.Index(got, "`age`") {
		t.Fatalf("failures must keep getter-call order:\n%s", got)
	}
}

func TestObject_ZeroValueForFailedGetter(t *testing.T) {
	var captured account
	dec := decode.Object(func(g *decode.Getters) account {
		captured = account{
			Name: decode.ReqField(g, "name", decode.Decoder[string](decode.String)),
			Age:  decode.ReqField(g, "age", decode.Decoder[int](decode.Int)),
		}
		return captured
	})
	mustFail(t, dec, `{"age":3}`)
	if captured.Name != "" || captured.Age != 3 {
		t.Fatalf("the build must keep going past a failed getter: %+v", captured)
	}
}

func TestObject_ReqAt(t *testing.T) {
	dec := decode.Object(func(g *decode.Getters) string {
		return decode.ReqAt(g, []string{"a", "b"}, decode.Decoder[string](decode.String))
	})
	s, err := run(t, dec, `{"a":{"b":"deep"}}`)
	if err != nil || s != "deep" {
		t.Fatalf("got %q, %v", s, err)
	}
	got := mustFail(t, dec, `{"a":{}}`)
	if !strings.Contains(got, "Node `b` is unknown.") {
		t.Fatalf("got:\n%s", got)
	}
}

func TestObject_ReqRaw(t *testing.T) {
	dec := decode.Object(func(g *decode.Getters) []string {
		return decode.ReqRaw(g, decode.Decoder[[]string](decode.Keys))
	})
	ks, err := run(t, dec, `{"x":1,"y":2}`)
	if err != nil || len(ks) != 2 {
		t.Fatalf("got %v, %v", ks, err)
	}
}

func TestObject_OptRawDowngradesAbsence(t *testing.T) {
	dec := decode.Object(func(g *decode.Getters) *string {
		return decode.OptRaw(g, decode.Field("missing", decode.Decoder[string](decode.String)))
	})
	p, err := run(t, dec, `{"x":1}`)
	if err != nil || p != nil {
		t.Fatalf("missing field must downgrade to nil: got %v, %v", p, err)
	}
}

func TestObject_OptRawKeepsRealFailures(t *testing.T) {
	dec := decode.Object(func(g *decode.Getters) *string {
		return decode.OptRaw(g, decode.Field("x", decode.Decoder[string](decode.String)))
	})
	got := mustFail(t, dec, `{"x":42}`)
	if !strings.Contains(got, "Expecting a string") {
		t.Fatalf("a present malformed value must still fail:\n%s", got)
	}
}

func TestObject_OptRawTreatsNullAsAbsent(t *testing.T) {
	dec := decode.Object(func(g *decode.Getters) *string {
		return decode.OptRaw(g, decode.Field("x", decode.Decoder[string](decode.String)))
	})
	p, err := run(t, dec, `{"x":null}`)
	if err != nil || p != nil {
		t.Fatalf("got %v, %v", p, err)
	}
}

func TestGetters_Value(t *testing.T) {
	dec := decode.Object(func(g *decode.Getters) int {
		return g.Value().Len()
	})
	n, err := run(t, dec, `{"a":1,"b":2,"c":3}`)
	if err != nil || n != 3 {
		t.Fatalf("got %d, %v", n, err)
	}
}
