package decode

import "github.com/godec-io/godec"

// Enum decoders read the underlying integer of a user enumeration and
// require it to be one of the declared members.

func enumOf[E comparable, N any](base Decoder[N], conv func(N) E, members []E) Decoder[E] {
	allowed := make(map[E]struct{}, len(members))
	for _, m := range members {
		allowed[m] = struct{}{}
	}
	return func(path string, v godec.Value) (E, *godec.Failure) {
		var zero E
		n, f := base(path, v)
		if f != nil {
			return zero, f
		}
		e := conv(n)
		if _, ok := allowed[e]; !ok {
			return zero, godec.BadPrimitiveExtra(path, "an enum member", v, "Unknown value provided for the enum")
		}
		return e, nil
	}
}

func EnumInt8[E ~int8](members ...E) Decoder[E] {
	return enumOf(Decoder[int8](Int8), func(n int8) E { return E(n) }, members)
}

func EnumUint8[E ~uint8](members ...E) Decoder[E] {
	return enumOf(Decoder[uint8](Uint8), func(n uint8) E { return E(n) }, members)
}

func EnumInt16[E ~int16](members ...E) Decoder[E] {
	return enumOf(Decoder[int16](Int16), func(n int16) E { return E(n) }, members)
}

func EnumUint16[E ~uint16](members ...E) Decoder[E] {
	return enumOf(Decoder[uint16](Uint16), func(n uint16) E { return E(n) }, members)
}

func EnumInt[E ~int](members ...E) Decoder[E] {
	return enumOf(Decoder[int](Int), func(n int) E { return E(n) }, members)
}

func EnumUint32[E ~uint32](members ...E) Decoder[E] {
	return enumOf(Decoder[uint32](Uint32), func(n uint32) E { return E(n) }, members)
}
