package decode

import (
	"strconv"

	"github.com/godec-io/godec"
)

// Tuple decoders read fixed-arity JSON arrays into the TupleN structs. The
// array must hold exactly as many elements as the tuple has components.

func tupleItems(path string, v godec.Value, arity int) ([]godec.Value, *godec.Failure) {
	expected := "an array of length " + strconv.Itoa(arity)
	if v.KindOf() != godec.KindArray {
		return nil, godec.BadType(path, expected, v)
	}
	if v.Len() < arity {
		return nil, godec.TooSmallArray(path, arity-1, v)
	}
	if v.Len() > arity {
		return nil, godec.BadPrimitiveExtra(path, expected, v, "The array has too many elements")
	}
	return v.Items(), nil
}

func Tuple2[A, B any](da Decoder[A], db Decoder[B]) Decoder[godec.Tuple2[A, B]] {
	return func(path string, v godec.Value) (godec.Tuple2[A, B], *godec.Failure) {
		var out godec.Tuple2[A, B]
		items, f := tupleItems(path, v, 2)
		if f != nil {
			return out, f
		}
		if out.A, f = da(godec.JoinIndex(path, 0), items[0]); f != nil {
			return godec.Tuple2[A, B]{}, f
		}
		if out.B, f = db(godec.JoinIndex(path, 1), items[1]); f != nil {
			return godec.Tuple2[A, B]{}, f
		}
		return out, nil
	}
}

func Tuple3[A, B, C any](da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[godec.Tuple3[A, B, C]] {
	return func(path string, v godec.Value) (godec.Tuple3[A, B, C], *godec.Failure) {
		var out godec.Tuple3[A, B, C]
		items, f := tupleItems(path, v, 3)
		if f != nil {
			return out, f
		}
		if out.A, f = da(godec.JoinIndex(path, 0), items[0]); f != nil {
			return godec.Tuple3[A, B, C]{}, f
		}
		if out.B, f = db(godec.JoinIndex(path, 1), items[1]); f != nil {
			return godec.Tuple3[A, B, C]{}, f
		}
		if out.C, f = dc(godec.JoinIndex(path, 2), items[2]); f != nil {
			return godec.Tuple3[A, B, C]{}, f
		}
		return out, nil
	}
}

func Tuple4[A, B, C, D any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[godec.Tuple4[A, B, C, D]] {
	return func(path string, v godec.Value) (godec.Tuple4[A, B, C, D], *godec.Failure) {
		var out godec.Tuple4[A, B, C, D]
		items, f := tupleItems(path, v, 4)
		if f != nil {
			return out, f
		}
		if out.A, f = da(godec.JoinIndex(path, 0), items[0]); f != nil {
			return godec.Tuple4[A, B, C, D]{}, f
		}
		if out.B, f = db(godec.JoinIndex(path, 1), items[1]); f != nil {
			return godec.Tuple4[A, B, C, D]{}, f
		}
		if out.C, f = dc(godec.JoinIndex(path, 2), items[2]); f != nil {
			return godec.Tuple4[A, B, C, D]{}, f
		}
		if out.D, f = dd(godec.JoinIndex(path, 3), items[3]); f != nil {
			return godec.Tuple4[A, B, C, D]{}, f
		}
		return out, nil
	}
}

func Tuple5[A, B, C, D, E any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[godec.Tuple5[A, B, C, D, E]] {
	return func(path string, v godec.Value) (godec.Tuple5[A, B, C, D, E], *godec.Failure) {
		var out godec.Tuple5[A, B, C, D, E]
		items, f := tupleItems(path, v, 5)
		if f != nil {
			return out, f
		}
		if out.A, f = da(godec.JoinIndex(path, 0), items[0]); f != nil {
			return godec.Tuple5[A, B, C, D, E]{}, f
		}
		if out.B, f = db(godec.JoinIndex(path, 1), items[1]); f != nil {
			return godec.Tuple5[A, B, C, D, E]{}, f
		}
		if out.C, f = dc(godec.JoinIndex(path, 2), items[2]); f != nil {
			return godec.Tuple5[A, B, C, D, E]{}, f
		}
		if out.D, f = dd(godec.JoinIndex(path, 3), items[3]); f != nil {
			return godec.Tuple5[A, B, C, D, E]{}, f
		}
		if out.E, f = de(godec.JoinIndex(path, 4), items[4]); f != nil {
			return godec.Tuple5[A, B, C, D, E]{}, f
		}
		return out, nil
	}
}

func Tuple6[A, B, C, D, E, F any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[godec.Tuple6[A, B, C, D, E, F]] {
	return func(path string, v godec.Value) (godec.Tuple6[A, B, C, D, E, F], *godec.Failure) {
		var out godec.Tuple6[A, B, C, D, E, F]
		items, fl := tupleItems(path, v, 6)
		if fl != nil {
			return out, fl
		}
		if out.A, fl = da(godec.JoinIndex(path, 0), items[0]); fl != nil {
			return godec.Tuple6[A, B, C, D, E, F]{}, fl
		}
		if out.B, fl = db(godec.JoinIndex(path, 1), items[1]); fl != nil {
			return godec.Tuple6[A, B, C, D, E, F]{}, fl
		}
		if out.C, fl = dc(godec.JoinIndex(path, 2), items[2]); fl != nil {
			return godec.Tuple6[A, B, C, D, E, F]{}, fl
		}
		if out.D, fl = dd(godec.JoinIndex(path, 3), items[3]); fl != nil {
			return godec.Tuple6[A, B, C, D, E, F]{}, fl
		}
		if out.E, fl = de(godec.JoinIndex(path, 4), items[4]); fl != nil {
			return godec.Tuple6[A, B, C, D, E, F]{}, fl
		}
		if out.F, fl = df(godec.JoinIndex(path, 5), items[5]); fl != nil {
			return godec.Tuple6[A, B, C, D, E, F]{}, fl
		}
		return out, nil
	}
}

func Tuple7[A, B, C, D, E, F, G any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G]) Decoder[godec.Tuple7[A, B, C, D, E, F, G]] {
	return func(path string, v godec.Value) (godec.Tuple7[A, B, C, D, E, F, G], *godec.Failure) {
		var out godec.Tuple7[A, B, C, D, E, F, G]
		items, fl := tupleItems(path, v, 7)
		if fl != nil {
			return out, fl
		}
		if out.A, fl = da(godec.JoinIndex(path, 0), items[0]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		if out.B, fl = db(godec.JoinIndex(path, 1), items[1]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		if out.C, fl = dc(godec.JoinIndex(path, 2), items[2]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		if out.D, fl = dd(godec.JoinIndex(path, 3), items[3]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		if out.E, fl = de(godec.JoinIndex(path, 4), items[4]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		if out.F, fl = df(godec.JoinIndex(path, 5), items[5]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		if out.G, fl = dg(godec.JoinIndex(path, 6), items[6]); fl != nil {
			return godec.Tuple7[A, B, C, D, E, F, G]{}, fl
		}
		return out, nil
	}
}

func Tuple8[A, B, C, D, E, F, G, H any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H]) Decoder[godec.Tuple8[A, B, C, D, E, F, G, H]] {
	return func(path string, v godec.Value) (godec.Tuple8[A, B, C, D, E, F, G, H], *godec.Failure) {
		var out godec.Tuple8[A, B, C, D, E, F, G, H]
		items, fl := tupleItems(path, v, 8)
		if fl != nil {
			return out, fl
		}
		if out.A, fl = da(godec.JoinIndex(path, 0), items[0]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.B, fl = db(godec.JoinIndex(path, 1), items[1]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.C, fl = dc(godec.JoinIndex(path, 2), items[2]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.D, fl = dd(godec.JoinIndex(path, 3), items[3]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.E, fl = de(godec.JoinIndex(path, 4), items[4]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.F, fl = df(godec.JoinIndex(path, 5), items[5]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.G, fl = dg(godec.JoinIndex(path, 6), items[6]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		if out.H, fl = dh(godec.JoinIndex(path, 7), items[7]); fl != nil {
			return godec.Tuple8[A, B, C, D, E, F, G, H]{}, fl
		}
		return out, nil
	}
}
