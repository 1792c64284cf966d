package decode

import (
	"errors"
	"math/big"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/godec-io/godec"
)

// ---- scalar primitives ----

// String accepts a JSON string.
func String(path string, v godec.Value) (string, *godec.Failure) {
	if s, ok := v.AsString(); ok {
		return s, nil
	}
	return "", godec.BadPrimitive(path, "a string", v)
}

// Char accepts a JSON string holding exactly one character.
func Char(path string, v godec.Value) (rune, *godec.Failure) {
	if s, ok := v.AsString(); ok && utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, godec.BadPrimitive(path, "a single character string", v)
}

// Bool accepts a JSON boolean.
func Bool(path string, v godec.Value) (bool, *godec.Failure) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}
	return false, godec.BadPrimitive(path, "a boolean", v)
}

// UUID accepts a JSON string parseable as a UUID.
func UUID(path string, v godec.Value) (uuid.UUID, *godec.Failure) {
	if s, ok := v.AsString(); ok {
		if id, err := uuid.Parse(s); err == nil {
			return id, nil
		}
	}
	return uuid.UUID{}, godec.BadPrimitive(path, "a guid", v)
}

// Unit accepts null (or a missing value) and yields the empty struct.
func Unit(path string, v godec.Value) (struct{}, *godec.Failure) {
	if v.IsNullish() {
		return struct{}{}, nil
	}
	return struct{}{}, godec.BadPrimitive(path, "null", v)
}

// Float64 accepts a JSON number.
func Float64(path string, v godec.Value) (float64, *godec.Failure) {
	if f, ok := v.AsFloat(); ok {
		return f, nil
	}
	return 0, godec.BadPrimitive(path, "a float", v)
}

// Float32 accepts a JSON number representable as float32.
func Float32(path string, v godec.Value) (float32, *godec.Failure) {
	if t, ok := v.NumberText(); ok {
		if f, err := strconv.ParseFloat(t, 32); err == nil {
			return float32(f), nil
		}
	}
	return 0, godec.BadPrimitive(path, "a float32", v)
}

// Decimal accepts a JSON number or a numeric string, preserving precision.
func Decimal(path string, v godec.Value) (decimal.Decimal, *godec.Failure) {
	text, ok := v.NumberText()
	if !ok {
		text, ok = v.AsString()
	}
	if ok {
		if d, err := decimal.NewFromString(text); err == nil {
			return d, nil
		}
	}
	return decimal.Decimal{}, godec.BadPrimitive(path, "a decimal", v)
}

// BigInt accepts a JSON integer or a numeric string of any magnitude.
func BigInt(path string, v godec.Value) (*big.Int, *godec.Failure) {
	text, ok := v.IntegerText()
	if !ok {
		text, ok = v.AsString()
	}
	if ok {
		if n, accepted := new(big.Int).SetString(text, 10); accepted {
			return n, nil
		}
	}
	return nil, godec.BadPrimitive(path, "a bigint", v)
}

// ---- sized integers ----
//
// Every width accepts a JSON integer in range or a numeric string that
// parses. A number with a fractional or exponent form, or one outside the
// width's range, is reported through bad_primitive_extra so the message can
// say why the otherwise numeric value was rejected.

func Int8(path string, v godec.Value) (int8, *godec.Failure) {
	n, f := signedIn(path, "an int8", v, 8)
	return int8(n), f
}

func Uint8(path string, v godec.Value) (uint8, *godec.Failure) {
	n, f := unsignedIn(path, "a uint8", v, 8)
	return uint8(n), f
}

func Int16(path string, v godec.Value) (int16, *godec.Failure) {
	n, f := signedIn(path, "an int16", v, 16)
	return int16(n), f
}

func Uint16(path string, v godec.Value) (uint16, *godec.Failure) {
	n, f := unsignedIn(path, "a uint16", v, 16)
	return uint16(n), f
}

func Int(path string, v godec.Value) (int, *godec.Failure) {
	n, f := signedIn(path, "an int", v, strconv.IntSize)
	return int(n), f
}

func Int32(path string, v godec.Value) (int32, *godec.Failure) {
	n, f := signedIn(path, "an int32", v, 32)
	return int32(n), f
}

func Uint32(path string, v godec.Value) (uint32, *godec.Failure) {
	n, f := unsignedIn(path, "a uint32", v, 32)
	return uint32(n), f
}

func Int64(path string, v godec.Value) (int64, *godec.Failure) {
	return signedIn(path, "an int64", v, 64)
}

func Uint64(path string, v godec.Value) (uint64, *godec.Failure) {
	return unsignedIn(path, "a uint64", v, 64)
}

func signedIn(path, expected string, v godec.Value, bits int) (int64, *godec.Failure) {
	text, f := integerLiteral(path, expected, v)
	if f != nil {
		return 0, f
	}
	n, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		return 0, integerParseFailure(path, expected, v, err)
	}
	return n, nil
}

func unsignedIn(path, expected string, v godec.Value, bits int) (uint64, *godec.Failure) {
	text, f := integerLiteral(path, expected, v)
	if f != nil {
		return 0, f
	}
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, integerParseFailure(path, expected, v, err)
	}
	return n, nil
}

// integerLiteral extracts the candidate integer text from a number or a
// string value.
func integerLiteral(path, expected string, v godec.Value) (string, *godec.Failure) {
	if text, ok := v.IntegerText(); ok {
		return text, nil
	}
	if _, ok := v.NumberText(); ok {
		return "", godec.BadPrimitiveExtra(path, expected, v, "Value is not an integral value")
	}
	if s, ok := v.AsString(); ok {
		return s, nil
	}
	return "", godec.BadPrimitive(path, expected, v)
}

func integerParseFailure(path, expected string, v godec.Value, err error) *godec.Failure {
	if errors.Is(err, strconv.ErrRange) {
		return godec.BadPrimitiveExtra(path, expected, v, "Value was either too large or too small for "+expected)
	}
	return godec.BadPrimitive(path, expected, v)
}

// ---- time ----

// Time accepts an RFC 3339 timestamp, preserving its offset.
func Time(path string, v godec.Value) (time.Time, *godec.Failure) {
	if s, ok := v.AsString(); ok {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, godec.BadPrimitive(path, "a datetime", v)
}

// TimeUTC accepts an RFC 3339 timestamp and converts it to UTC.
func TimeUTC(path string, v godec.Value) (time.Time, *godec.Failure) {
	t, f := Time(path, v)
	if f != nil {
		return time.Time{}, f
	}
	return t.UTC(), nil
}

// Duration accepts a Go duration string such as "1h30m".
func Duration(path string, v godec.Value) (time.Duration, *godec.Failure) {
	if s, ok := v.AsString(); ok {
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
	}
	return 0, godec.BadPrimitive(path, "a duration", v)
}
