package auto

import (
	"reflect"
	"strconv"

	"github.com/godec-io/godec"
	"github.com/godec-io/godec/decode"
)

// Union wire shape: a case without payload is its bare name, a case with
// payload is an array of the name followed by the payload fields in
// declaration order. Decoding tolerates a no-payload case wrapped in a
// one-element array. A nil interface is null on the wire in both directions.

type caseCoder struct {
	name   string
	typ    reflect.Type
	fields []int
	coders []*coder
}

func (g *genCtx) unionCoder(t reflect.Type, cases []UnionCase) *coder {
	byName := make(map[string]*caseCoder, len(cases))
	byType := make(map[reflect.Type]*caseCoder, len(cases))
	for _, c := range cases {
		cc := &caseCoder{name: c.name, typ: c.typ}
		for i := 0; i < c.typ.NumField(); i++ {
			sf := c.typ.Field(i)
			if sf.PkgPath != "" {
				continue
			}
			cc.fields = append(cc.fields, i)
			cc.coders = append(cc.coders, g.coderFor(sf.Type, false))
		}
		byName[cc.name] = cc
		byType[cc.typ] = cc
	}
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			if rv.IsNil() {
				return godec.Null()
			}
			dyn := rv.Elem()
			cc, ok := byType[dyn.Type()]
			if !ok {
				panic("auto: " + dyn.Type().String() + " is not a registered case of " + t.String())
			}
			if len(cc.fields) == 0 {
				return godec.Str(cc.name)
			}
			items := make([]godec.Value, 0, len(cc.fields)+1)
			items = append(items, godec.Str(cc.name))
			for i, idx := range cc.fields {
				items = append(items, cc.coders[i].enc(dyn.Field(idx)))
			}
			return godec.ArrOf(items)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.IsNull() {
				return reflect.Zero(t), nil
			}
			if name, ok := v.AsString(); ok {
				cc, found := byName[name]
				if !found {
					return reflect.Value{}, godec.FailWith(path, "Cannot find the case `"+name+"` in "+t.String())
				}
				if len(cc.fields) > 0 {
					return reflect.Value{}, godec.BadPrimitiveExtra(path, "a union case", v,
						"Case `"+name+"` carries fields and must be an array")
				}
				return boxCase(t, reflect.New(cc.typ).Elem()), nil
			}
			if v.KindOf() != godec.KindArray {
				return reflect.Value{}, godec.BadPrimitive(path, "a string or an array describing a union case", v)
			}
			if v.Len() == 0 {
				return reflect.Value{}, godec.TooSmallArray(path, 0, v)
			}
			name, ok := v.At(0).AsString()
			if !ok {
				return reflect.Value{}, godec.BadPrimitive(godec.JoinIndex(path, 0), "a string", v.At(0))
			}
			cc, found := byName[name]
			if !found {
				return reflect.Value{}, godec.FailWith(path, "Cannot find the case `"+name+"` in "+t.String())
			}
			arity := len(cc.fields)
			expected := "an array of length " + strconv.Itoa(arity+1)
			if v.Len() < arity+1 {
				return reflect.Value{}, godec.TooSmallArray(path, arity, v)
			}
			if v.Len() > arity+1 {
				return reflect.Value{}, godec.BadPrimitiveExtra(path, expected, v, "The array has too many elements")
			}
			cv := reflect.New(cc.typ).Elem()
			for i, idx := range cc.fields {
				x, f := cc.coders[i].dec(godec.JoinIndex(path, i+1), v.At(i+1))
				if f != nil {
					return reflect.Value{}, f
				}
				cv.Field(idx).Set(x)
			}
			return boxCase(t, cv), nil
		},
	}
}

func boxCase(iface reflect.Type, cv reflect.Value) reflect.Value {
	out := reflect.New(iface).Elem()
	out.Set(cv)
	return out
}

// enumCoder encodes the enum's underlying integer and validates declared
// membership on decode.
func enumCoder(t reflect.Type, info enumInfo) *coder {
	kind := t.Kind()
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			switch kind {
			case reflect.Uint8, reflect.Uint16, reflect.Uint32:
				return godec.Uint(rv.Uint())
			default:
				return godec.Int(rv.Int())
			}
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			rv := reflect.New(t).Elem()
			f := setEnumValue(rv, kind, path, v)
			if f != nil {
				return reflect.Value{}, f
			}
			if _, ok := info.members[rv.Interface()]; !ok {
				return reflect.Value{}, godec.BadPrimitiveExtra(path, "an enum member", v, "Unknown value provided for the enum")
			}
			return rv, nil
		},
	}
}

func setEnumValue(rv reflect.Value, kind reflect.Kind, path string, v godec.Value) *godec.Failure {
	switch kind {
	case reflect.Int8:
		n, f := decode.Int8(path, v)
		if f != nil {
			return f
		}
		rv.SetInt(int64(n))
	case reflect.Int16:
		n, f := decode.Int16(path, v)
		if f != nil {
			return f
		}
		rv.SetInt(int64(n))
	case reflect.Int:
		n, f := decode.Int(path, v)
		if f != nil {
			return f
		}
		rv.SetInt(int64(n))
	case reflect.Int32:
		n, f := decode.Int32(path, v)
		if f != nil {
			return f
		}
		rv.SetInt(int64(n))
	case reflect.Uint8:
		n, f := decode.Uint8(path, v)
		if f != nil {
			return f
		}
		rv.SetUint(uint64(n))
	case reflect.Uint16:
		n, f := decode.Uint16(path, v)
		if f != nil {
			return f
		}
		rv.SetUint(uint64(n))
	default: // uint32
		n, f := decode.Uint32(path, v)
		if f != nil {
			return f
		}
		rv.SetUint(uint64(n))
	}
	return nil
}
