package decode

import "github.com/godec-io/godec"

// MapN applies a pure function to the results of N decoders run against the
// same value. The first failing decoder, in parameter order, wins.

func Map[A, Z any](f func(A) Z, da Decoder[A]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a), nil
	}
}

func Map2[A, B, Z any](f func(A, B) Z, da Decoder[A], db Decoder[B]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b), nil
	}
}

func Map3[A, B, C, Z any](f func(A, B, C) Z, da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		c, fl := dc(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b, c), nil
	}
}

func Map4[A, B, C, D, Z any](f func(A, B, C, D) Z, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		c, fl := dc(path, v)
		if fl != nil {
			return zero, fl
		}
		d, fl := dd(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b, c, d), nil
	}
}

func Map5[A, B, C, D, E, Z any](f func(A, B, C, D, E) Z, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		c, fl := dc(path, v)
		if fl != nil {
			return zero, fl
		}
		d, fl := dd(path, v)
		if fl != nil {
			return zero, fl
		}
		e, fl := de(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b, c, d, e), nil
	}
}

func Map6[A, B, C, D, E, F, Z any](f func(A, B, C, D, E, F) Z, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		c, fl := dc(path, v)
		if fl != nil {
			return zero, fl
		}
		d, fl := dd(path, v)
		if fl != nil {
			return zero, fl
		}
		e, fl := de(path, v)
		if fl != nil {
			return zero, fl
		}
		g, fl := df(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b, c, d, e, g), nil
	}
}

func Map7[A, B, C, D, E, F, G, Z any](f func(A, B, C, D, E, F, G) Z, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		c, fl := dc(path, v)
		if fl != nil {
			return zero, fl
		}
		d, fl := dd(path, v)
		if fl != nil {
			return zero, fl
		}
		e, fl := de(path, v)
		if fl != nil {
			return zero, fl
		}
		x, fl := df(path, v)
		if fl != nil {
			return zero, fl
		}
		y, fl := dg(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b, c, d, e, x, y), nil
	}
}

func Map8[A, B, C, D, E, F, G, H, Z any](f func(A, B, C, D, E, F, G, H) Z, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H]) Decoder[Z] {
	return func(path string, v godec.Value) (Z, *godec.Failure) {
		var zero Z
		a, fl := da(path, v)
		if fl != nil {
			return zero, fl
		}
		b, fl := db(path, v)
		if fl != nil {
			return zero, fl
		}
		c, fl := dc(path, v)
		if fl != nil {
			return zero, fl
		}
		d, fl := dd(path, v)
		if fl != nil {
			return zero, fl
		}
		e, fl := de(path, v)
		if fl != nil {
			return zero, fl
		}
		x, fl := df(path, v)
		if fl != nil {
			return zero, fl
		}
		y, fl := dg(path, v)
		if fl != nil {
			return zero, fl
		}
		z, fl := dh(path, v)
		if fl != nil {
			return zero, fl
		}
		return f(a, b, c, d, e, x, y, z), nil
	}
}
