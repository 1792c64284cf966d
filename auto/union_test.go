package auto_test

import (
	"strings"
	"testing"

	"github.com/godec-io/godec/auto"
)

type shape interface{ area() float64 }

type circle struct{ Radius float64 }

func (c circle) area() float64 { return 3.14159 * c.Radius * c.Radius }

type rect struct{ W, H float64 }

func (r rect) area() float64 { return r.W * r.H }

type unknownShape struct{}

func (unknownShape) area() float64 { return 0 }

type priority uint8

const (
	low priority = iota
	normal
	high
)

func init() {
	auto.RegisterUnion[shape](
		auto.Case[circle]("Circle"),
		auto.Case[rect]("Rect"),
		auto.Case[unknownShape]("Unknown"),
	)
	auto.RegisterEnum(low, normal, high)
}

type drawing struct {
	Main shape
	P    priority
}

func TestUnion_EncodeShapes(t *testing.T) {
	if s := auto.ToString(0, drawing{Main: circle{Radius: 2}, P: high}); s != `{"Main":["Circle",2],"P":2}` {
		t.Fatalf("got %s", s)
	}
	if s := auto.ToString(0, drawing{Main: unknownShape{}, P: low}); s != `{"Main":"Unknown","P":0}` {
		t.Fatalf("no-payload case encodes as its bare name: %s", s)
	}
	if s := auto.ToString(0, drawing{P: low}); s != `{"Main":null,"P":0}` {
		t.Fatalf("nil interface encodes as null: %s", s)
	}
}

func TestUnion_DecodeShapes(t *testing.T) {
	d, err := auto.FromString[drawing](`{"Main":["Rect",3,4],"P":1}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, ok := d.Main.(rect)
	if !ok || r.W != 3 || r.H != 4 {
		t.Fatalf("got %#v", d.Main)
	}
	if d.P != normal {
		t.Fatalf("got priority %v", d.P)
	}
}

func TestUnion_BareNameForPayloadFreeCase(t *testing.T) {
	d, err := auto.FromString[drawing](`{"Main":"Unknown","P":0}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := d.Main.(unknownShape); !ok {
		t.Fatalf("got %#v", d.Main)
	}
	// A one-element array wrapping is tolerated.
	if d, err = auto.FromString[drawing](`{"Main":["Unknown"],"P":0}`); err != nil {
		t.Fatalf("wrapped form: %v", err)
	}
	if _, ok := d.Main.(unknownShape); !ok {
		t.Fatalf("got %#v", d.Main)
	}
}

func TestUnion_DecodeErrors(t *testing.T) {
	cases := []struct {
		src  string
		frag string
	}{
		{`{"Main":"Nope","P":0}`, "Cannot find the case `Nope`"},
		{`{"Main":["Nope",1],"P":0}`, "Cannot find the case `Nope`"},
		{`{"Main":"Circle","P":0}`, "Case `Circle` carries fields and must be an array"},
		{`{"Main":["Circle"],"P":0}`, "Need index"},
		{`{"Main":["Circle",1,2],"P":0}`, "The array has too many elements"},
		{`{"Main":["Circle","wide"],"P":0}`, "Error at: `$.Main[1]`"},
		{`{"Main":7,"P":0}`, "a string or an array describing a union case"},
		{`{"Main":[7],"P":0}`, "Expecting a string"},
	}
	for _, tc := range cases {
		_, err := auto.FromString[drawing](tc.src)
		if err == nil {
			t.Errorf("%s: expected failure", tc.src)
			continue
		}
		if !strings.Contains(err.Error(), tc.frag) {
			t.Errorf("%s: missing %q in:\n%s", tc.src, tc.frag, err.Error())
		}
	}
}

func TestUnion_UnregisteredConcreteTypePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "not a registered case") {
			t.Fatalf("expected a panic, got %v", r)
		}
	}()
	enc := auto.Encoder[drawing]()
	enc(drawing{Main: badShape{}})
}

type badShape struct{ Z float64 }

func (badShape) area() float64 { return 0 }

func TestEnum_DecodeRejectsUnknownMember(t *testing.T) {
	_, err := auto.FromString[drawing](`{"Main":"Unknown","P":9}`)
	if err == nil || !strings.Contains(err.Error(), "Unknown value provided for the enum") {
		t.Fatalf("got: %v", err)
	}
}

func TestRegisterUnion_Validation(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		f()
	}
	mustPanic("non-interface", func() {
		auto.RegisterUnion[circle](auto.Case[circle]("C"))
	})
	mustPanic("non-struct case", func() {
		auto.RegisterUnion[shape](auto.Case[int]("N"))
	})
	mustPanic("duplicate name", func() {
		auto.RegisterUnion[shape](auto.Case[circle]("C"), auto.Case[rect]("C"))
	})
}

func TestRegisterEnum_RejectsNonIntegerBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	auto.RegisterEnum("a", "b")
}
