package godec

import (
	"strconv"
	"strings"
)

// Failure codes. Decoders report problems as values, never as panics; the
// code tells combinators how a failure may be recovered (for example the
// object builder downgrades missing-field failures on optional getters).
const (
	CodeBadPrimitive      = "bad_primitive"
	CodeBadType           = "bad_type"
	CodeBadPrimitiveExtra = "bad_primitive_extra"
	CodeBadField          = "bad_field"
	CodeBadPath           = "bad_path"
	CodeTooSmallArray     = "too_small_array"
	CodeFail              = "fail"
	CodeOneOf             = "one_of"
)

// Failure is a single decoding failure carrying the JSON path at which it
// occurred. It implements error; Error() renders the human-readable form.
type Failure struct {
	Path     string
	Code     string
	Expected string
	Value    Value
	// Detail holds the extra reason of a bad_primitive_extra failure, the
	// unknown node name of a bad_path failure, or the message of a fail.
	Detail string
	// Alternatives holds the rendered sub-errors of a one_of failure.
	Alternatives []string
}

// RootPath is the path every decode starts from.
const RootPath = "$"

// JoinField appends an object descent to a path.
func JoinField(path, name string) string { return path + "." + name }

// JoinIndex appends an array descent to a path.
func JoinIndex(path string, i int) string { return path + "[" + strconv.Itoa(i) + "]" }

// ---- constructors ----

// BadPrimitive reports a scalar of the wrong shape.
func BadPrimitive(path, expected string, v Value) *Failure {
	return &Failure{Path: path, Code: CodeBadPrimitive, Expected: expected, Value: v}
}

// BadType reports a structurally wrong value (rendered multi-line).
func BadType(path, expected string, v Value) *Failure {
	return &Failure{Path: path, Code: CodeBadType, Expected: expected, Value: v}
}

// BadPrimitiveExtra reports a scalar of the right shape but an unacceptable
// value, with a detail line explaining why.
func BadPrimitiveExtra(path, expected string, v Value, detail string) *Failure {
	return &Failure{Path: path, Code: CodeBadPrimitiveExtra, Expected: expected, Value: v, Detail: detail}
}

// BadField reports a missing object field.
func BadField(path, expected string, v Value) *Failure {
	return &Failure{Path: path, Code: CodeBadField, Expected: expected, Value: v}
}

// BadPath reports a failed multi-step object descent; node names the unknown
// field.
func BadPath(path, expected string, v Value, node string) *Failure {
	return &Failure{Path: path, Code: CodeBadPath, Expected: expected, Value: v, Detail: node}
}

// TooSmallArray reports an array shorter than a required index.
func TooSmallArray(path string, need int, v Value) *Failure {
	return &Failure{
		Path:     path,
		Code:     CodeTooSmallArray,
		Expected: "a longer array. Need index `" + strconv.Itoa(need) + "`",
		Value:    v,
	}
}

// FailWith reports an explicit decoder failure message.
func FailWith(path, msg string) *Failure {
	return &Failure{Path: path, Code: CodeFail, Detail: msg}
}

// OneOf aggregates the rendered errors of alternatives that all failed.
func OneOf(path string, rendered []string) *Failure {
	return &Failure{Path: path, Code: CodeOneOf, Alternatives: rendered}
}

// ---- rendering ----

// genericMsg renders "Expecting X but instead got: <json>"; the multi-line
// form indents the offending value by four spaces.
func genericMsg(expected string, v Value, multiline bool) string {
	if multiline {
		return "Expecting " + expected + " but instead got:\n" + v.Render(4)
	}
	return "Expecting " + expected + " but instead got: " + v.String()
}

func (f *Failure) reason() string {
	switch f.Code {
	case CodeBadPrimitive:
		return genericMsg(f.Expected, f.Value, false)
	case CodeBadPrimitiveExtra:
		return genericMsg(f.Expected, f.Value, false) + "\nReason: " + f.Detail
	case CodeBadType, CodeBadField, CodeTooSmallArray:
		return genericMsg(f.Expected, f.Value, true)
	case CodeBadPath:
		return genericMsg(f.Expected, f.Value, true) + "\nNode `" + f.Detail + "` is unknown."
	case CodeFail:
		return "The following `failure` occurred with the decoder: " + f.Detail
	default:
		return genericMsg(f.Expected, f.Value, false)
	}
}

// Error renders the failure. A one_of failure prints its sub-errors verbatim
// (each already carries a path) and no path of its own; every other failure
// is prefixed with its path.
func (f *Failure) Error() string {
	if f.Code == CodeOneOf {
		return "The following errors were found:\n\n" + strings.Join(f.Alternatives, "\n\n")
	}
	return "Error at: `" + f.Path + "`\n" + f.reason()
}
