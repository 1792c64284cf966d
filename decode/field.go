package decode

import (
	"strings"

	"github.com/godec-io/godec"
)

// ---- object navigation ----

// Field requires an object with the named field and descends into it. The
// field being null still counts as present; the inner decoder sees the null.
func Field[T any](name string, dec Decoder[T]) Decoder[T] {
	return func(path string, v godec.Value) (T, *godec.Failure) {
		var zero T
		if v.KindOf() != godec.KindObject {
			return zero, godec.BadType(path, "an object", v)
		}
		fv, ok := v.Field(name)
		if !ok {
			return zero, godec.BadField(path, "an object with a field named `"+name+"`", v)
		}
		return dec(godec.JoinField(path, name), fv)
	}
}

// At chains Field through every name. A failure carries the path of the last
// node reached: the object that lacks the next name, or the null or
// non-object node that could not be entered.
func At[T any](names []string, dec Decoder[T]) Decoder[T] {
	return func(path string, v godec.Value) (T, *godec.Failure) {
		var zero T
		expected := "an object with path `" + strings.Join(names, ".") + "`"
		cur := v
		curPath := path
		for _, name := range names {
			if cur.KindOf() != godec.KindObject {
				return zero, godec.BadPath(curPath, expected, cur, name)
			}
			fv, ok := cur.Field(name)
			if !ok {
				return zero, godec.BadPath(curPath, expected, cur, name)
			}
			cur = fv
			curPath = godec.JoinField(curPath, name)
		}
		return dec(curPath, cur)
	}
}

// Optional requires an object; a missing or null field yields nil without
// running the inner decoder, anything else decodes and is returned by
// pointer.
func Optional[T any](name string, dec Decoder[T]) Decoder[*T] {
	return func(path string, v godec.Value) (*T, *godec.Failure) {
		if v.KindOf() != godec.KindObject {
			return nil, godec.BadType(path, "an object", v)
		}
		fv, ok := v.Field(name)
		if !ok || fv.IsNullish() {
			return nil, nil
		}
		x, f := dec(godec.JoinField(path, name), fv)
		if f != nil {
			return nil, f
		}
		return &x, nil
	}
}

// OptionalAt chains Optional through every name: a missing or null node at
// any depth yields nil, a non-object node that is not null is an error.
func OptionalAt[T any](names []string, dec Decoder[T]) Decoder[*T] {
	return func(path string, v godec.Value) (*T, *godec.Failure) {
		cur := v
		curPath := path
		for _, name := range names {
			if cur.IsNullish() {
				return nil, nil
			}
			if cur.KindOf() != godec.KindObject {
				return nil, godec.BadType(curPath, "an object", cur)
			}
			fv, ok := cur.Field(name)
			if !ok {
				return nil, nil
			}
			cur = fv
			curPath = godec.JoinField(curPath, name)
		}
		if cur.IsNullish() {
			return nil, nil
		}
		x, f := dec(curPath, cur)
		if f != nil {
			return nil, f
		}
		return &x, nil
	}
}

// Index requires an array long enough to hold index i and descends into it.
func Index[T any](i int, dec Decoder[T]) Decoder[T] {
	return func(path string, v godec.Value) (T, *godec.Failure) {
		var zero T
		if v.KindOf() != godec.KindArray {
			return zero, godec.BadType(path, "an array", v)
		}
		if i >= v.Len() {
			return zero, godec.TooSmallArray(path, i, v)
		}
		return dec(godec.JoinIndex(path, i), v.At(i))
	}
}

// Option maps null (or a missing value) to nil and decodes anything else by
// pointer.
func Option[T any](dec Decoder[T]) Decoder[*T] {
	return func(path string, v godec.Value) (*T, *godec.Failure) {
		if v.IsNullish() {
			return nil, nil
		}
		x, f := dec(path, v)
		if f != nil {
			return nil, f
		}
		return &x, nil
	}
}

// ---- collections ----

// List decodes an array element-wise, stopping at the first element error.
func List[T any](dec Decoder[T]) Decoder[[]T] {
	return collect("a list", dec)
}

// Array is List under the name used when the caller thinks in fixed
// sequences.
func Array[T any](dec Decoder[T]) Decoder[[]T] {
	return collect("an array", dec)
}

func collect[T any](expected string, dec Decoder[T]) Decoder[[]T] {
	return func(path string, v godec.Value) ([]T, *godec.Failure) {
		if v.KindOf() != godec.KindArray {
			return nil, godec.BadType(path, expected, v)
		}
		items := v.Items()
		out := make([]T, 0, len(items))
		for i, item := range items {
			x, f := dec(godec.JoinIndex(path, i), item)
			if f != nil {
				return nil, f
			}
			out = append(out, x)
		}
		return out, nil
	}
}

// Keys yields an object's key names in insertion order.
func Keys(path string, v godec.Value) ([]string, *godec.Failure) {
	if v.KindOf() != godec.KindObject {
		return nil, godec.BadType(path, "an object", v)
	}
	return v.Keys(), nil
}

// KeyValuePairs decodes every member value of an object, yielding key/value
// tuples in insertion order. The per-value path descends by key.
func KeyValuePairs[T any](dec Decoder[T]) Decoder[[]godec.Tuple2[string, T]] {
	return func(path string, v godec.Value) ([]godec.Tuple2[string, T], *godec.Failure) {
		if v.KindOf() != godec.KindObject {
			return nil, godec.BadType(path, "an object", v)
		}
		members := v.Members()
		out := make([]godec.Tuple2[string, T], 0, len(members))
		for _, m := range members {
			x, f := dec(godec.JoinField(path, m.Key), m.Value)
			if f != nil {
				return nil, f
			}
			out = append(out, godec.Tuple2[string, T]{A: m.Key, B: x})
		}
		return out, nil
	}
}

// Dict decodes an object into a string-keyed map. Duplicate keys cannot
// occur here; the parser already collapsed them.
func Dict[T any](dec Decoder[T]) Decoder[map[string]T] {
	return func(path string, v godec.Value) (map[string]T, *godec.Failure) {
		pairs, f := KeyValuePairs(dec)(path, v)
		if f != nil {
			return nil, f
		}
		out := make(map[string]T, len(pairs))
		for _, p := range pairs {
			out[p.A] = p.B
		}
		return out, nil
	}
}

// MapOf decodes an array of [key, value] pairs into a map, allowing
// non-string key types.
func MapOf[K comparable, V any](keyDec Decoder[K], valueDec Decoder[V]) Decoder[map[K]V] {
	return func(path string, v godec.Value) (map[K]V, *godec.Failure) {
		pairs, f := List(Tuple2(keyDec, valueDec))(path, v)
		if f != nil {
			return nil, f
		}
		out := make(map[K]V, len(pairs))
		for _, p := range pairs {
			out[p.A] = p.B
		}
		return out, nil
	}
}
