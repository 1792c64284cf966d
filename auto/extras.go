package auto

import (
	"reflect"

	"github.com/godec-io/godec"
	"github.com/godec-io/godec/decode"
)

// Extras is an override table consulted before structural generation: a type
// with a registered coder pair uses it everywhere, including when the type
// appears as a field of another type. The hash identifies the table in the
// generation cache, so two tables with different contents must carry
// different hashes.
type Extras struct {
	hash     string
	encoders map[reflect.Type]boxedEncoder
	decoders map[reflect.Type]boxedDecoder
}

// NewExtras creates an empty override table with the given cache hash.
func NewExtras(hash string) *Extras {
	return &Extras{
		hash:     hash,
		encoders: make(map[reflect.Type]boxedEncoder),
		decoders: make(map[reflect.Type]boxedDecoder),
	}
}

// Hash returns the table's cache hash.
func (x *Extras) Hash() string {
	if x == nil {
		return ""
	}
	return x.hash
}

// RegisterCoder adds an encoder/decoder pair for T to the table. Coders are
// always registered as a pair so round-tripping stays total.
func RegisterCoder[T any](x *Extras, enc func(T) godec.Value, dec decode.Decoder[T]) *Extras {
	t := reflect.TypeOf((*T)(nil)).Elem()
	x.encoders[t] = func(rv reflect.Value) godec.Value {
		return enc(rv.Interface().(T))
	}
	x.decoders[t] = func(path string, v godec.Value) (reflect.Value, *godec.Failure) {
		out, f := dec(path, v)
		if f != nil {
			return reflect.Value{}, f
		}
		rv := reflect.New(t).Elem()
		if ov := reflect.ValueOf(out); ov.IsValid() {
			rv.Set(ov)
		}
		return rv, nil
	}
	return x
}

func (x *Extras) lookup(t reflect.Type) (*coder, bool) {
	if x == nil {
		return nil, false
	}
	enc, ok := x.encoders[t]
	if !ok {
		return nil, false
	}
	dec := x.decoders[t]
	return &coder{enc: enc, dec: dec}, true
}
