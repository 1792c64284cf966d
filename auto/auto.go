// Package auto derives encoders and decoders from Go types by reflection.
// Records map onto JSON objects, registered unions onto tagged
// name-or-array shapes, pointers onto nullable fields, and the usual leaf
// types (times, durations, UUIDs, decimals, big integers) onto the wire
// forms of the decode and encode packages. Generation is pure and may be
// memoized through the Cached variants.
package auto

import (
	"reflect"
	"sync"

	"github.com/godec-io/godec"
	"github.com/godec-io/godec/decode"
	"github.com/godec-io/godec/encode"
)

type options struct {
	cs        CaseStrategy
	extras    *Extras
	keepNulls bool
}

// Option configures coder generation.
type Option func(*options)

// WithCase selects the field naming strategy for untagged struct fields.
func WithCase(cs CaseStrategy) Option { return func(o *options) { o.cs = cs } }

// WithExtras installs an override table consulted before structural
// generation.
func WithExtras(x *Extras) Option { return func(o *options) { o.extras = x } }

// WithKeepNulls emits nil option fields as explicit nulls instead of
// omitting them.
func WithKeepNulls() Option { return func(o *options) { o.keepNulls = true } }

func buildOptions(opts []Option) options {
	o := options{cs: PascalCase}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// ---- generation cache ----

type cacheKey struct {
	t         reflect.Type
	cs        CaseStrategy
	hash      string
	keepNulls bool
}

// coderCache is process wide and never evicts; generation is deterministic
// for a given key, so a racing double insert is harmless.
var coderCache sync.Map

func cachedCoderFor(o options, t reflect.Type) *coder {
	key := cacheKey{t: t, cs: o.cs, hash: o.extras.Hash(), keepNulls: o.keepNulls}
	if c, ok := coderCache.Load(key); ok {
		return c.(*coder)
	}
	c := newGenCtx(o).coderFor(t, false)
	actual, _ := coderCache.LoadOrStore(key, c)
	return actual.(*coder)
}

func typeFor[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// ---- public surface ----

// Encoder generates an encoder for T. Generation panics on types it cannot
// handle, so derive coders at package init where breakage surfaces early.
func Encoder[T any](opts ...Option) func(T) godec.Value {
	return encoderOf[T](newGenCtx(buildOptions(opts)).coderFor(typeFor[T](), false))
}

// CachedEncoder is Encoder memoized on (type, options).
func CachedEncoder[T any](opts ...Option) func(T) godec.Value {
	return encoderOf[T](cachedCoderFor(buildOptions(opts), typeFor[T]()))
}

// Decoder generates a decoder for T.
func Decoder[T any](opts ...Option) decode.Decoder[T] {
	return decoderOf[T](newGenCtx(buildOptions(opts)).coderFor(typeFor[T](), false))
}

// CachedDecoder is Decoder memoized on (type, options).
func CachedDecoder[T any](opts ...Option) decode.Decoder[T] {
	return decoderOf[T](cachedCoderFor(buildOptions(opts), typeFor[T]()))
}

func encoderOf[T any](c *coder) func(T) godec.Value {
	return func(x T) godec.Value {
		// Going through a pointer keeps interface-typed values addressable
		// and preserves their static type.
		return c.enc(reflect.ValueOf(&x).Elem())
	}
}

func decoderOf[T any](c *coder) decode.Decoder[T] {
	t := typeFor[T]()
	return func(path string, v godec.Value) (T, *godec.Failure) {
		var zero T
		rv, f := c.dec(path, v)
		if f != nil {
			return zero, f
		}
		out := reflect.New(t).Elem()
		if rv.IsValid() {
			out.Set(rv)
		}
		return out.Interface().(T), nil
	}
}

// ToString encodes x and renders it; space == 0 is compact.
func ToString[T any](space int, x T, opts ...Option) string {
	return encode.ToString(space, CachedEncoder[T](opts...)(x))
}

// FromString parses s and decodes a T from the root.
func FromString[T any](s string, opts ...Option) (T, error) {
	return decode.FromString(CachedDecoder[T](opts...), s)
}

// MustFromString is FromString that panics on error.
func MustFromString[T any](s string, opts ...Option) T {
	return decode.MustFromString(CachedDecoder[T](opts...), s)
}
