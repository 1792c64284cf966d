package godec

import (
	"bytes"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Kind enumerates the JSON value kinds. The zero Kind is KindUndefined, which
// stands for "no value at all" (for example a missing object field) and never
// appears inside a parsed document.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// Member is a single key/value entry of a JSON object. Objects keep their
// members in insertion order.
type Member struct {
	Key   string
	Value Value
}

// Pair builds an object Member.
func Pair(key string, v Value) Member { return Member{Key: key, Value: v} }

// Value is an immutable JSON value. The zero Value is undefined. Numbers keep
// their exact source text so 64-bit integers, big integers and decimals
// survive a parse/serialize round trip.
type Value struct {
	kind Kind
	b    bool
	s    string // string payload, or the literal text of a number
	arr  []Value
	obj  []Member
}

// ---- constructors ----

// Undefined returns the undefined value (same as the zero Value).
func Undefined() Value { return Value{} }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Number wraps a number given as its literal text. The text must be a valid
// JSON number; callers producing it via strconv satisfy this.
func Number(text string) Value { return Value{kind: KindNumber, s: text} }

// Int wraps an integer.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// Uint wraps an unsigned integer.
func Uint(u uint64) Value { return Number(strconv.FormatUint(u, 10)) }

// Float wraps a finite float. The caller is responsible for rejecting NaN and
// infinities; encoders map those to null before reaching here.
func Float(f float64) Value {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Arr builds an array from the given items.
func Arr(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// ArrOf builds an array from a slice without copying.
func ArrOf(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Obj builds an object from the given members, preserving their order.
func Obj(members ...Member) Value { return Value{kind: KindObject, obj: members} }

// ObjOf builds an object from a member slice without copying.
func ObjOf(members []Member) Value { return Value{kind: KindObject, obj: members} }

// ---- inspection ----

// KindOf reports the value's kind.
func (v Value) KindOf() Kind { return v.kind }

// IsUndefined reports whether the value is undefined.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNullish reports whether the value is null or undefined.
func (v Value) IsNullish() bool { return v.kind == KindNull || v.kind == KindUndefined }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// NumberText returns the literal text of a number value.
func (v Value) NumberText() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// AsFloat parses a number value as float64.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IntegerText returns the number literal when it denotes an integral value
// (an optional sign followed by digits only). Floating forms such as "1.0" or
// "1e3" do not qualify.
func (v Value) IntegerText() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	s := v.s
	if s == "" {
		return "", false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return "", false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	return s, true
}

// Field looks up an object member by key. The second result is false when the
// value is not an object or the key is absent.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.obj {
		if m.Key == name {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// At returns the i-th array item; out-of-range indexes yield undefined.
func (v Value) At(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Items returns the array items. The slice must not be mutated.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Members returns the object members in insertion order. The slice must not
// be mutated.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Keys returns the object keys in insertion order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj))
	for i, m := range v.obj {
		keys[i] = m.Key
	}
	return keys
}

// ---- serialization ----

// MarshalJSON renders the value preserving object member order. Undefined
// marshals as null so a stray undefined never corrupts output.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull, KindUndefined:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		b, err := gojson.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, it := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := it.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := gojson.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := m.Value.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Render serializes the value; space == 0 yields compact output, any other
// value indents by that many spaces. Newlines are always "\n".
func (v Value) Render(space int) string {
	raw, err := v.MarshalJSON()
	if err != nil {
		return "null"
	}
	if space <= 0 {
		return string(raw)
	}
	var out bytes.Buffer
	if err := gojson.Indent(&out, raw, "", strings.Repeat(" ", space)); err != nil {
		return string(raw)
	}
	return out.String()
}

// String renders the value compactly, guarding against serialization panics
// from pathologically deep structures.
func (v Value) String() (out string) {
	defer func() {
		if recover() != nil {
			out = "<structure too deep to render>"
		}
	}()
	return v.Render(0)
}
