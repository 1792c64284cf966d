// Package encode builds JSON values out of Go values. Encoders are total
// functions; anything that could fail (non-finite floats) maps to null on
// the wire instead of erroring.
package encode

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/godec-io/godec"
)

// Encoder renders a T as a JSON value.
type Encoder[T any] func(T) godec.Value

// ---- scalar primitives ----

func String(s string) godec.Value { return godec.Str(s) }

func Char(r rune) godec.Value { return godec.Str(string(r)) }

func Bool(b bool) godec.Value { return godec.Bool(b) }

func UUID(id uuid.UUID) godec.Value { return godec.Str(id.String()) }

// Nil is the constant null value.
func Nil() godec.Value { return godec.Null() }

// Unit encodes the empty struct as null.
func Unit(struct{}) godec.Value { return godec.Null() }

// Small integer widths fit a JSON number exactly.

func Int8(n int8) godec.Value   { return godec.Int(int64(n)) }
func Uint8(n uint8) godec.Value { return godec.Uint(uint64(n)) }

func Int16(n int16) godec.Value   { return godec.Int(int64(n)) }
func Uint16(n uint16) godec.Value { return godec.Uint(uint64(n)) }

func Int(n int) godec.Value       { return godec.Int(int64(n)) }
func Int32(n int32) godec.Value   { return godec.Int(int64(n)) }
func Uint32(n uint32) godec.Value { return godec.Uint(uint64(n)) }

// 64-bit and arbitrary-precision numbers encode as strings, because JSON
// numbers lose integer precision above 2^53 and have no decimal form.

func Int64(n int64) godec.Value { return godec.Str(strconv.FormatInt(n, 10)) }

func Uint64(n uint64) godec.Value { return godec.Str(strconv.FormatUint(n, 10)) }

func BigInt(n *big.Int) godec.Value {
	if n == nil {
		return godec.Null()
	}
	return godec.Str(n.String())
}

func Decimal(d decimal.Decimal) godec.Value { return godec.Str(d.String()) }

// Float64 encodes a JSON number; NaN and infinities become null.
func Float64(f float64) godec.Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return godec.Null()
	}
	return godec.Float(f)
}

// Float32 encodes a JSON number; NaN and infinities become null.
func Float32(f float32) godec.Value {
	f64 := float64(f)
	if math.IsNaN(f64) || math.IsInf(f64, 0) {
		return godec.Null()
	}
	return godec.Number(strconv.FormatFloat(f64, 'g', -1, 32))
}

// Time encodes an RFC 3339 timestamp with nanosecond precision, the format
// Time decoders round-trip.
func Time(t time.Time) godec.Value { return godec.Str(t.Format(time.RFC3339Nano)) }

// Duration encodes a Go duration string such as "1h30m0s".
func Duration(d time.Duration) godec.Value { return godec.Str(d.String()) }

// JSONValue passes a ready-made value through.
func JSONValue(v godec.Value) godec.Value { return v }

// ---- combinators ----

// Object builds an object preserving member order.
func Object(members []godec.Member) godec.Value { return godec.ObjOf(members) }

// Arr builds an array from ready-made values.
func Arr(items []godec.Value) godec.Value { return godec.ArrOf(items) }

// List encodes a slice element-wise.
func List[T any](enc Encoder[T], xs []T) godec.Value {
	items := make([]godec.Value, len(xs))
	for i, x := range xs {
		items[i] = enc(x)
	}
	return godec.ArrOf(items)
}

// Seq drains an iterator into an array.
func Seq[T any](enc Encoder[T], seq func(yield func(T) bool)) godec.Value {
	var items []godec.Value
	seq(func(x T) bool {
		items = append(items, enc(x))
		return true
	})
	return godec.ArrOf(items)
}

// Dict encodes a string-keyed map as an object with sorted keys, so output
// is deterministic regardless of map iteration order.
func Dict[T any](enc Encoder[T], m map[string]T) godec.Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	members := make([]godec.Member, len(keys))
	for i, k := range keys {
		members[i] = godec.Pair(k, enc(m[k]))
	}
	return godec.ObjOf(members)
}

// Option encodes nil as null and dereferences otherwise.
func Option[T any](enc Encoder[T], x *T) godec.Value {
	if x == nil {
		return godec.Null()
	}
	return enc(*x)
}

// MapOf encodes a map with arbitrary key type as an array of [key, value]
// pairs, sorted by the rendered key for determinism.
func MapOf[K comparable, V any](keyEnc Encoder[K], valueEnc Encoder[V], m map[K]V) godec.Value {
	pairs := make([]godec.Value, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, godec.Arr(keyEnc(k), valueEnc(v)))
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].At(0).String() < pairs[j].At(0).String()
	})
	return godec.ArrOf(pairs)
}

// ---- tuples ----

func Tuple2[A, B any](ea Encoder[A], eb Encoder[B]) Encoder[godec.Tuple2[A, B]] {
	return func(t godec.Tuple2[A, B]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B))
	}
}

func Tuple3[A, B, C any](ea Encoder[A], eb Encoder[B], ec Encoder[C]) Encoder[godec.Tuple3[A, B, C]] {
	return func(t godec.Tuple3[A, B, C]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B), ec(t.C))
	}
}

func Tuple4[A, B, C, D any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D]) Encoder[godec.Tuple4[A, B, C, D]] {
	return func(t godec.Tuple4[A, B, C, D]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B), ec(t.C), ed(t.D))
	}
}

func Tuple5[A, B, C, D, E any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E]) Encoder[godec.Tuple5[A, B, C, D, E]] {
	return func(t godec.Tuple5[A, B, C, D, E]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B), ec(t.C), ed(t.D), ee(t.E))
	}
}

func Tuple6[A, B, C, D, E, F any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], ef Encoder[F]) Encoder[godec.Tuple6[A, B, C, D, E, F]] {
	return func(t godec.Tuple6[A, B, C, D, E, F]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B), ec(t.C), ed(t.D), ee(t.E), ef(t.F))
	}
}

func Tuple7[A, B, C, D, E, F, G any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], ef Encoder[F], eg Encoder[G]) Encoder[godec.Tuple7[A, B, C, D, E, F, G]] {
	return func(t godec.Tuple7[A, B, C, D, E, F, G]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B), ec(t.C), ed(t.D), ee(t.E), ef(t.F), eg(t.G))
	}
}

func Tuple8[A, B, C, D, E, F, G, H any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], ef Encoder[F], eg Encoder[G], eh Encoder[H]) Encoder[godec.Tuple8[A, B, C, D, E, F, G, H]] {
	return func(t godec.Tuple8[A, B, C, D, E, F, G, H]) godec.Value {
		return godec.Arr(ea(t.A), eb(t.B), ec(t.C), ed(t.D), ee(t.E), ef(t.F), eg(t.G), eh(t.H))
	}
}

// ---- enums ----

// Enum encoders extract the underlying integer of a user enumeration.

func EnumInt8[E ~int8](e E) godec.Value     { return Int8(int8(e)) }
func EnumUint8[E ~uint8](e E) godec.Value   { return Uint8(uint8(e)) }
func EnumInt16[E ~int16](e E) godec.Value   { return Int16(int16(e)) }
func EnumUint16[E ~uint16](e E) godec.Value { return Uint16(uint16(e)) }
func EnumInt[E ~int](e E) godec.Value       { return Int(int(e)) }
func EnumUint32[E ~uint32](e E) godec.Value { return Uint32(uint32(e)) }

// ---- rendering ----

// ToString serializes a value; space == 0 yields compact output, any other
// value indents by that many spaces. Newlines are always "\n".
func ToString(space int, v godec.Value) string { return v.Render(space) }
