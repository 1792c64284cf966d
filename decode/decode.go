// Package decode implements composable JSON decoders. A Decoder is a plain
// function from a path and a Value to a typed result; combinators build large
// decoders out of small ones, and failures carry the JSON path at which they
// occurred.
package decode

import (
	"errors"

	"github.com/godec-io/godec"
	yamlsrc "github.com/godec-io/godec/source/yaml"
)

// Decoder turns the JSON value at path into a T or a Failure.
type Decoder[T any] func(path string, v godec.Value) (T, *godec.Failure)

// ---- algebraic combinators ----

// Succeed ignores its input and yields x.
func Succeed[T any](x T) Decoder[T] {
	return func(string, godec.Value) (T, *godec.Failure) { return x, nil }
}

// Fail ignores its input and fails with msg.
func Fail[T any](msg string) Decoder[T] {
	return func(path string, _ godec.Value) (T, *godec.Failure) {
		var zero T
		return zero, godec.FailWith(path, msg)
	}
}

// JSONValue yields the raw value untouched.
func JSONValue(_ string, v godec.Value) (godec.Value, *godec.Failure) {
	return v, nil
}

// Nil accepts only null (or a missing value) and yields x.
func Nil[T any](x T) Decoder[T] {
	return func(path string, v godec.Value) (T, *godec.Failure) {
		if v.IsNullish() {
			return x, nil
		}
		var zero T
		return zero, godec.BadPrimitive(path, "null", v)
	}
}

// AndThen feeds the result of dec into f to select the next decoder.
func AndThen[A, B any](f func(A) Decoder[B], dec Decoder[A]) Decoder[B] {
	return func(path string, v godec.Value) (B, *godec.Failure) {
		a, fa := dec(path, v)
		if fa != nil {
			var zero B
			return zero, fa
		}
		return f(a)(path, v)
	}
}

// AndMap applies the function produced by df to the value produced by dec.
// Chains of AndMap calls build large records incrementally from Succeed.
func AndMap[A, B any](dec Decoder[A], df Decoder[func(A) B]) Decoder[B] {
	return func(path string, v godec.Value) (B, *godec.Failure) {
		a, fa := dec(path, v)
		if fa != nil {
			var zero B
			return zero, fa
		}
		f, ff := df(path, v)
		if ff != nil {
			var zero B
			return zero, ff
		}
		return f(a), nil
	}
}

// All runs every decoder against the same value and collects the results.
// The first failure aborts.
func All[T any](decs ...Decoder[T]) Decoder[[]T] {
	return func(path string, v godec.Value) ([]T, *godec.Failure) {
		out := make([]T, 0, len(decs))
		for _, dec := range decs {
			x, f := dec(path, v)
			if f != nil {
				return nil, f
			}
			out = append(out, x)
		}
		return out, nil
	}
}

// OneOf tries each decoder in order and keeps the first success. When every
// alternative fails, the failure aggregates their rendered errors in order.
func OneOf[T any](decs ...Decoder[T]) Decoder[T] {
	return func(path string, v godec.Value) (T, *godec.Failure) {
		rendered := make([]string, 0, len(decs))
		for _, dec := range decs {
			x, f := dec(path, v)
			if f == nil {
				return x, nil
			}
			rendered = append(rendered, f.Error())
		}
		var zero T
		return zero, godec.OneOf(path, rendered)
	}
}

// ---- runners ----

// FromValue runs a decoder against an in-memory value, rendering any failure
// as an error.
func FromValue[T any](path string, dec Decoder[T], v godec.Value) (T, error) {
	x, f := dec(path, v)
	if f != nil {
		var zero T
		return zero, f
	}
	return x, nil
}

// FromString parses s as JSON and runs the decoder from the root path.
func FromString[T any](dec Decoder[T], s string, opts ...godec.ParseOpt) (T, error) {
	v, err := godec.ParseString(s, opts...)
	if err != nil {
		var zero T
		return zero, errors.New("Given an invalid JSON: " + err.Error())
	}
	return FromValue(godec.RootPath, dec, v)
}

// MustFromString is FromString that panics on error.
func MustFromString[T any](dec Decoder[T], s string, opts ...godec.ParseOpt) T {
	x, err := FromString(dec, s, opts...)
	if err != nil {
		panic(err)
	}
	return x
}

// FromYAML parses s as a YAML document and runs the decoder from the root
// path, so the same decoders read YAML configuration.
func FromYAML[T any](dec Decoder[T], s string) (T, error) {
	v, err := yamlsrc.ParseString(s)
	if err != nil {
		var zero T
		return zero, errors.New("Given an invalid YAML: " + err.Error())
	}
	return FromValue(godec.RootPath, dec, v)
}
