package godec

import (
	"errors"
	"io"

	eng "github.com/godec-io/godec/internal/engine"
)

// DupPolicy selects how duplicate object keys are treated during parsing.
type DupPolicy int

const (
	DupIgnore DupPolicy = iota // last write wins
	DupWarn                    // report through ParseOpt.OnViolation, keep going
	DupError                   // fail the parse
)

// ParseOpt bounds a parse. The zero value applies no limits.
type ParseOpt struct {
	// MaxDepth caps container nesting; 0 means unlimited.
	MaxDepth int
	// MaxBytes caps consumed input bytes; 0 means unlimited.
	MaxBytes int64
	// OnDuplicateKey selects the duplicate key policy.
	OnDuplicateKey DupPolicy
	// OnViolation receives non-fatal violations (duplicate keys under
	// DupWarn). Optional.
	OnViolation func(code, path, msg string)
}

func (o ParseOpt) engineOptions() eng.EnforceOptions {
	out := eng.EnforceOptions{
		MaxDepth: o.MaxDepth,
		MaxBytes: o.MaxBytes,
	}
	switch o.OnDuplicateKey {
	case DupWarn:
		out.OnDuplicate = eng.DupWarn
	case DupError:
		out.OnDuplicate = eng.DupError
	}
	if o.OnViolation != nil {
		sink := o.OnViolation
		out.Sink = func(v eng.Violation) { sink(v.Code, v.Path, v.Message) }
	}
	return out
}

// ParseString parses a JSON document into a Value using the current driver.
func ParseString(s string, opts ...ParseOpt) (Value, error) {
	return ParseBytes([]byte(s), opts...)
}

// ParseBytes parses a JSON document into a Value using the current driver.
func ParseBytes(b []byte, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return Value{}, eng.Violation{Code: eng.ViolationMaxBytes, Path: RootPath, Message: "max bytes exceeded"}
	}
	src := eng.WrapWithEnforcement(getJSONDriver().NewBytes(b), opt.engineOptions())
	return valueFromSource(src)
}

// ParseReader parses a JSON document from a reader. When MaxBytes is set the
// cap is enforced up front at the reader level, because not every driver can
// report byte offsets.
func ParseReader(r io.Reader, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return Value{}, err
		}
		return ParseBytes(data, opts...)
	}
	src := eng.WrapWithEnforcement(getJSONDriver().NewReader(r), opt.engineOptions())
	return valueFromSource(src)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

// ---- token stream -> Value ----

func valueFromSource(src eng.TokenSource) (Value, error) {
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return Value{}, errors.New("unexpected end of input")
		}
		return Value{}, err
	}
	v, err := buildValue(src, tok)
	if err != nil {
		return Value{}, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return Value{}, err
		}
		return Value{}, errors.New("unexpected content after top-level value")
	}
	return v, nil
}

func buildValue(src eng.TokenSource, tok eng.Token) (Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return buildObject(src)
	case eng.KindBeginArray:
		return buildArray(src)
	case eng.KindString:
		return Str(tok.String), nil
	case eng.KindNumber:
		return Number(tok.Number), nil
	case eng.KindBool:
		return Bool(tok.Bool), nil
	case eng.KindNull:
		return Null(), nil
	default:
		return Value{}, io.ErrUnexpectedEOF
	}
}

// buildObject keeps members in input order; a duplicate key overwrites the
// earlier member in place so last-write-wins does not disturb ordering.
func buildObject(src eng.TokenSource) (Value, error) {
	var members []Member
	var at map[string]int
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Value{}, unexpectedEnd(err)
		}
		if tok.Kind == eng.KindEndObject {
			return ObjOf(members), nil
		}
		if tok.Kind != eng.KindKey {
			return Value{}, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return Value{}, unexpectedEnd(err)
		}
		v, err := buildValue(src, vt)
		if err != nil {
			return Value{}, err
		}
		if at == nil {
			at = make(map[string]int)
		}
		if i, dup := at[tok.String]; dup {
			members[i].Value = v
			continue
		}
		at[tok.String] = len(members)
		members = append(members, Member{Key: tok.String, Value: v})
	}
}

func buildArray(src eng.TokenSource) (Value, error) {
	var items []Value
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Value{}, unexpectedEnd(err)
		}
		if tok.Kind == eng.KindEndArray {
			return ArrOf(items), nil
		}
		v, err := buildValue(src, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
}

func unexpectedEnd(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// IsLimitError reports whether err was produced by a ParseOpt limit, and
// which limit code ("duplicate_key", "max_depth", "max_bytes") tripped.
func IsLimitError(err error) (string, bool) {
	var v eng.Violation
	if errors.As(err, &v) {
		return v.Code, true
	}
	return "", false
}
