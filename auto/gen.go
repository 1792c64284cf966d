package auto

import (
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/godec-io/godec"
	"github.com/godec-io/godec/decode"
	"github.com/godec-io/godec/encode"
)

// Boxed coders work on reflect values so one generator covers every type; the
// typed public API downcasts at its boundary only.
type boxedEncoder func(reflect.Value) godec.Value

type boxedDecoder func(path string, v godec.Value) (reflect.Value, *godec.Failure)

type coder struct {
	enc boxedEncoder
	dec boxedDecoder
	// optional marks a pointer-shaped coder: decode treats a missing or null
	// input as the zero value, and record encoding may skip the field.
	optional bool
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	decimalType  = reflect.TypeOf(decimal.Decimal{})
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	valueType    = reflect.TypeOf(godec.Value{})
	anyType      = reflect.TypeOf((*any)(nil)).Elem()
)

// genCtx is the state of one generation run. Cells hold in-progress coders so
// a recursive type can reference itself before its own generation finishes.
type genCtx struct {
	opts  options
	cells map[reflect.Type]*coderCell
}

type coderCell struct{ c *coder }

func newGenCtx(o options) *genCtx {
	return &genCtx{opts: o, cells: make(map[reflect.Type]*coderCell)}
}

// coderFor generates the coder for t. inOptional marks generation beneath a
// pointer, where an unsupported type is tolerated until runtime.
func (g *genCtx) coderFor(t reflect.Type, inOptional bool) *coder {
	if c, ok := g.opts.extras.lookup(t); ok {
		return c
	}
	if cell, ok := g.cells[t]; ok {
		return deferredCoder(cell, t)
	}
	cell := &coderCell{}
	g.cells[t] = cell
	c := g.dispatch(t, inOptional)
	cell.c = c
	return c
}

// deferredCoder resolves through a cell at call time, so the coder value of a
// recursive type need not be cyclic.
func deferredCoder(cell *coderCell, t reflect.Type) *coder {
	return &coder{
		enc: func(rv reflect.Value) godec.Value { return cell.c.enc(rv) },
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			return cell.c.dec(path, v)
		},
		optional: t.Kind() == reflect.Ptr,
	}
}

func (g *genCtx) dispatch(t reflect.Type, inOptional bool) *coder {
	switch t {
	case timeType:
		return leaf(encode.Time, decode.Decoder[time.Time](decode.Time), t)
	case durationType:
		return leaf(encode.Duration, decode.Decoder[time.Duration](decode.Duration), t)
	case uuidType:
		return leaf(encode.UUID, decode.Decoder[uuid.UUID](decode.UUID), t)
	case decimalType:
		return leaf(encode.Decimal, decode.Decoder[decimal.Decimal](decode.Decimal), t)
	case bigIntType:
		// encode.BigInt writes a nil pointer as null; null reads back as nil.
		return leaf(encode.BigInt, func(path string, v godec.Value) (*big.Int, *godec.Failure) {
			if v.IsNull() {
				return nil, nil
			}
			return decode.BigInt(path, v)
		}, t)
	case valueType:
		return leaf(encode.JSONValue, decode.Decoder[godec.Value](decode.JSONValue), t)
	case anyType:
		return g.anyCoder()
	}

	if cases, ok := lookupUnion(t); ok {
		return g.unionCoder(t, cases)
	}
	if info, ok := lookupEnum(t); ok {
		return enumCoder(t, info)
	}
	if isTuple(t) {
		return g.tupleCoder(t)
	}

	switch t.Kind() {
	case reflect.Bool:
		return leaf(encode.Bool, decode.Decoder[bool](decode.Bool), t)
	case reflect.String:
		return leaf(encode.String, decode.Decoder[string](decode.String), t)
	case reflect.Int8:
		return leaf(encode.Int8, decode.Decoder[int8](decode.Int8), t)
	case reflect.Uint8:
		return leaf(encode.Uint8, decode.Decoder[uint8](decode.Uint8), t)
	case reflect.Int16:
		return leaf(encode.Int16, decode.Decoder[int16](decode.Int16), t)
	case reflect.Uint16:
		return leaf(encode.Uint16, decode.Decoder[uint16](decode.Uint16), t)
	case reflect.Int:
		return leaf(encode.Int, decode.Decoder[int](decode.Int), t)
	case reflect.Int32:
		return leaf(encode.Int32, decode.Decoder[int32](decode.Int32), t)
	case reflect.Uint32:
		return leaf(encode.Uint32, decode.Decoder[uint32](decode.Uint32), t)
	case reflect.Int64:
		return leaf(encode.Int64, decode.Decoder[int64](decode.Int64), t)
	case reflect.Uint64:
		return leaf(encode.Uint64, decode.Decoder[uint64](decode.Uint64), t)
	case reflect.Float64:
		return leaf(encode.Float64, decode.Decoder[float64](decode.Float64), t)
	case reflect.Float32:
		return leaf(encode.Float32, decode.Decoder[float32](decode.Float32), t)
	case reflect.Ptr:
		return g.pointerCoder(t)
	case reflect.Slice:
		return g.sliceCoder(t)
	case reflect.Array:
		return g.arrayCoder(t)
	case reflect.Map:
		return g.mapCoder(t)
	case reflect.Struct:
		return g.recordCoder(t)
	}

	if inOptional {
		return unsupportedCoder(t)
	}
	panic("auto: cannot generate a coder for " + t.String() +
		"; register an override through Extras")
}

// leaf adapts a typed primitive encoder/decoder pair into a boxed coder,
// converting through the possibly named type t.
func leaf[T any](enc func(T) godec.Value, dec decode.Decoder[T], t reflect.Type) *coder {
	base := reflect.TypeOf((*T)(nil)).Elem()
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			return enc(rv.Convert(base).Interface().(T))
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			x, f := dec(path, v)
			if f != nil {
				return reflect.Value{}, f
			}
			xv := reflect.ValueOf(x)
			if !xv.IsValid() {
				return reflect.Zero(t), nil
			}
			return xv.Convert(t), nil
		},
	}
}

// unsupportedCoder defers the unknown-type failure to runtime. It is only
// reachable behind a pointer, whose null short-circuit never calls it for
// absent values.
func unsupportedCoder(t reflect.Type) *coder {
	msg := "auto: cannot handle a value of type " + t.String() +
		"; register an override through Extras"
	return &coder{
		enc: func(reflect.Value) godec.Value { panic(msg) },
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			return reflect.Value{}, godec.FailWith(path, msg)
		},
	}
}

// anyCoder passes JSON values through untouched on both sides. Encoding a
// non-Value dynamic type dispatches on its runtime type through the cache.
func (g *genCtx) anyCoder() *coder {
	opts := g.opts
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			if rv.IsNil() {
				return godec.Null()
			}
			dyn := rv.Elem()
			if dyn.Type() == valueType {
				return dyn.Interface().(godec.Value)
			}
			return cachedCoderFor(opts, dyn.Type()).enc(dyn)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			out := reflect.New(anyType).Elem()
			out.Set(reflect.ValueOf(v))
			return out, nil
		},
	}
}

func (g *genCtx) pointerCoder(t reflect.Type) *coder {
	elem := g.coderFor(t.Elem(), true)
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			if rv.IsNil() {
				return godec.Null()
			}
			return elem.enc(rv.Elem())
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.IsNullish() {
				return reflect.Zero(t), nil
			}
			x, f := elem.dec(path, v)
			if f != nil {
				return reflect.Value{}, f
			}
			p := reflect.New(t.Elem())
			p.Elem().Set(x)
			return p, nil
		},
		optional: true,
	}
}

// sliceCoder writes a nil slice as null and reads null back as a nil slice,
// so nil and empty slices each survive a round trip.
func (g *genCtx) sliceCoder(t reflect.Type) *coder {
	elem := g.coderFor(t.Elem(), false)
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			if rv.IsNil() {
				return godec.Null()
			}
			items := make([]godec.Value, rv.Len())
			for i := range items {
				items[i] = elem.enc(rv.Index(i))
			}
			return godec.ArrOf(items)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.IsNull() {
				return reflect.Zero(t), nil
			}
			if v.KindOf() != godec.KindArray {
				return reflect.Value{}, godec.BadType(path, "an array", v)
			}
			n := v.Len()
			out := reflect.MakeSlice(t, n, n)
			for i := 0; i < n; i++ {
				x, f := elem.dec(godec.JoinIndex(path, i), v.At(i))
				if f != nil {
					return reflect.Value{}, f
				}
				out.Index(i).Set(x)
			}
			return out, nil
		},
	}
}

func (g *genCtx) arrayCoder(t reflect.Type) *coder {
	elem := g.coderFor(t.Elem(), false)
	arity := t.Len()
	expected := "an array of length " + strconv.Itoa(arity)
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			items := make([]godec.Value, arity)
			for i := range items {
				items[i] = elem.enc(rv.Index(i))
			}
			return godec.ArrOf(items)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.KindOf() != godec.KindArray {
				return reflect.Value{}, godec.BadType(path, expected, v)
			}
			if v.Len() < arity {
				return reflect.Value{}, godec.TooSmallArray(path, arity-1, v)
			}
			if v.Len() > arity {
				return reflect.Value{}, godec.BadPrimitiveExtra(path, expected, v, "The array has too many elements")
			}
			out := reflect.New(t).Elem()
			for i := 0; i < arity; i++ {
				x, f := elem.dec(godec.JoinIndex(path, i), v.At(i))
				if f != nil {
					return reflect.Value{}, f
				}
				out.Index(i).Set(x)
			}
			return out, nil
		},
	}
}

func isTuple(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	m, ok := t.MethodByName("TupleArity")
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1
}

func (g *genCtx) tupleCoder(t reflect.Type) *coder {
	arity := int(reflect.Zero(t).MethodByName("TupleArity").Call(nil)[0].Int())
	expected := "an array of length " + strconv.Itoa(arity)
	coders := make([]*coder, arity)
	for i := range coders {
		coders[i] = g.coderFor(t.Field(i).Type, false)
	}
	return &coder{
		enc: func(rv reflect.Value) godec.Value {
			items := make([]godec.Value, arity)
			for i := range items {
				items[i] = coders[i].enc(rv.Field(i))
			}
			return godec.ArrOf(items)
		},
		dec: func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
			if v.KindOf() != godec.KindArray {
				return reflect.Value{}, godec.BadType(path, expected, v)
			}
			if v.Len() < arity {
				return reflect.Value{}, godec.TooSmallArray(path, arity-1, v)
			}
			if v.Len() > arity {
				return reflect.Value{}, godec.BadPrimitiveExtra(path, expected, v, "The array has too many elements")
			}
			out := reflect.New(t).Elem()
			for i := 0; i < arity; i++ {
				x, f := coders[i].dec(godec.JoinIndex(path, i), v.At(i))
				if f != nil {
					return reflect.Value{}, f
				}
				out.Field(i).Set(x)
			}
			return out, nil
		},
	}
}
