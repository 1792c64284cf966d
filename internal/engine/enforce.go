package engine

import "strconv"

// DuplicatePolicy selects how repeated object keys are treated while
// tokenizing.
type DuplicatePolicy int

const (
	DupIgnore DuplicatePolicy = iota // last write wins, no report
	DupWarn                          // report via sink, keep going
	DupError                         // stop with a Violation
)

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicatePolicy
	MaxDepth    int
	MaxBytes    int64
	// Sink receives non-fatal violations (duplicate keys under DupWarn).
	Sink func(Violation)
}

// Violation is the error produced when an enforcement limit is hit.
type Violation struct {
	Code    string // "duplicate_key" | "max_depth" | "max_bytes"
	Path    string
	Message string
}

func (v Violation) Error() string { return v.Message }

const (
	ViolationDuplicateKey = "duplicate_key"
	ViolationMaxDepth     = "max_depth"
	ViolationMaxBytes     = "max_bytes"
)

// WrapWithEnforcement returns a TokenSource that enforces duplicate key
// policy, maximum nesting depth, and maximum consumed bytes. With all limits
// disabled the inner source is returned untouched.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	if opt.OnDuplicate == DupIgnore && opt.MaxDepth == 0 && opt.MaxBytes == 0 {
		return inner
	}
	return &enforcer{inner: inner, opt: opt}
}

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type frame struct {
	kind         frameKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

type enforcer struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	path := e.pathForToken(tok)

	switch tok.Kind {
	case KindBeginObject:
		e.stack = append(e.stack, frame{kind: frameObject, expectingKey: true, path: path})
		if e.opt.OnDuplicate != DupIgnore {
			e.stack[len(e.stack)-1].keys = make(map[string]struct{})
		}
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, Violation{Code: ViolationMaxDepth, Path: path, Message: "max depth exceeded"}
		}
	case KindBeginArray:
		e.stack = append(e.stack, frame{kind: frameArray, path: path})
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, Violation{Code: ViolationMaxDepth, Path: path, Message: "max depth exceeded"}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		e.valueDone()
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == frameObject && top.expectingKey {
				if top.keys != nil {
					if _, dup := top.keys[tok.String]; dup {
						v := Violation{Code: ViolationDuplicateKey, Path: path, Message: "key '" + tok.String + "' duplicated"}
						if e.opt.OnDuplicate == DupError {
							return Token{}, v
						}
						if e.opt.Sink != nil {
							e.opt.Sink(v)
						}
					}
					top.keys[tok.String] = struct{}{}
				}
				top.expectingKey = false
				top.pendingKey = tok.String
			}
		}
	case KindString, KindNumber, KindBool, KindNull:
		e.valueDone()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, Violation{Code: ViolationMaxBytes, Path: path, Message: "max bytes exceeded"}
		}
	}

	return tok, nil
}

// valueDone flips the enclosing object frame back to key position after a
// member value completed.
func (e *enforcer) valueDone() {
	if n := len(e.stack); n > 0 {
		top := &e.stack[n-1]
		if top.kind == frameObject && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}
}

// pathForToken computes the dollar-style path of the incoming token for
// violation reports.
func (e *enforcer) pathForToken(tok Token) string {
	if len(e.stack) == 0 {
		return "$"
	}
	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		return top.path + "." + tok.String
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		if top.kind == frameArray {
			p := top.path + "[" + strconv.Itoa(top.nextIndex) + "]"
			top.nextIndex++
			return p
		}
		if !top.expectingKey {
			return top.path + "." + top.pendingKey
		}
		return top.path
	default:
		return top.path
	}
}

func (e *enforcer) Location() int64 { return e.inner.Location() }
