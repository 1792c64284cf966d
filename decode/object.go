package decode

import "github.com/godec-io/godec"

// The object builder runs a user callback once against a single JSON object,
// handing it a Getters that records every failing lookup instead of aborting.
// A build that trips several getters reports them all in one error.
//
// Getter functions are package level because Go methods cannot carry their
// own type parameters; ReqField/ReqAt/ReqRaw record failures and return the
// zero value so the build can continue, OptField/OptAt/OptRaw yield nil for
// absent input.

// Getters collects lookup failures for one Object invocation.
type Getters struct {
	path string
	v    godec.Value
	errs []*godec.Failure
}

// Value exposes the object being built from, for ad-hoc inspection inside a
// build callback.
func (g *Getters) Value() godec.Value { return g.v }

func (g *Getters) record(f *godec.Failure) { g.errs = append(g.errs, f) }

// Object decodes a JSON object through a build callback. No failing getter
// aborts the build; with zero recorded failures the built value is returned,
// a single failure surfaces as-is, and two or more aggregate into a one_of
// failure at the object's path, in getter-call order.
func Object[T any](build func(g *Getters) T) Decoder[T] {
	return func(path string, v godec.Value) (T, *godec.Failure) {
		g := &Getters{path: path, v: v}
		out := build(g)
		switch len(g.errs) {
		case 0:
			return out, nil
		case 1:
			var zero T
			return zero, g.errs[0]
		default:
			rendered := make([]string, len(g.errs))
			for i, e := range g.errs {
				rendered[i] = e.Error()
			}
			var zero T
			return zero, godec.OneOf(path, rendered)
		}
	}
}

// ReqField decodes a required field, recording a failure and returning the
// zero value when the field is missing or malformed.
func ReqField[T any](g *Getters, name string, dec Decoder[T]) T {
	x, f := Field(name, dec)(g.path, g.v)
	if f != nil {
		g.record(f)
		var zero T
		return zero
	}
	return x
}

// ReqAt decodes a required nested path.
func ReqAt[T any](g *Getters, names []string, dec Decoder[T]) T {
	x, f := At(names, dec)(g.path, g.v)
	if f != nil {
		g.record(f)
		var zero T
		return zero
	}
	return x
}

// ReqRaw runs a decoder against the whole object.
func ReqRaw[T any](g *Getters, dec Decoder[T]) T {
	x, f := dec(g.path, g.v)
	if f != nil {
		g.record(f)
		var zero T
		return zero
	}
	return x
}

// OptField decodes an optional field: missing or null yields nil without an
// error, a present malformed value records the failure.
func OptField[T any](g *Getters, name string, dec Decoder[T]) *T {
	x, f := Optional(name, dec)(g.path, g.v)
	if f != nil {
		g.record(f)
		return nil
	}
	return x
}

// OptAt decodes an optional nested path.
func OptAt[T any](g *Getters, names []string, dec Decoder[T]) *T {
	x, f := OptionalAt(names, dec)(g.path, g.v)
	if f != nil {
		g.record(f)
		return nil
	}
	return x
}

// OptRaw runs a decoder against the whole object, downgrading absence to
// nil: missing-field and failed-path errors, and wrong-shape errors over a
// null value, yield nil silently. Everything else records.
func OptRaw[T any](g *Getters, dec Decoder[T]) *T {
	x, f := dec(g.path, g.v)
	if f == nil {
		return &x
	}
	switch f.Code {
	case godec.CodeBadField, godec.CodeBadPath:
		return nil
	case godec.CodeBadPrimitive, godec.CodeBadPrimitiveExtra, godec.CodeBadType:
		if f.Value.IsNullish() {
			return nil
		}
	}
	g.record(f)
	return nil
}
