package godec

import (
	"io"
	"sync"

	eng "github.com/godec-io/godec/internal/engine"
	gojsonsrc "github.com/godec-io/godec/source/gojson"
	jsonsrc "github.com/godec-io/godec/source/json"
)

// JSONDriver converts JSON input into a token source via a pluggable SPI.
// The default implementation is backed by goccy/go-json and may be swapped
// with SetJSONDriver (for example to the encoding/json fallback in
// source/json, or a custom tokenizer).
type JSONDriver interface {
	NewReader(r io.Reader) eng.TokenSource
	NewBytes(b []byte) eng.TokenSource
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// UseStdlibJSONDriver switches to the encoding/json-backed driver.
func UseStdlibJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = stdJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) eng.TokenSource { return gojsonsrc.NewReader(r) }
func (goJSONDriver) NewBytes(b []byte) eng.TokenSource     { return gojsonsrc.NewBytes(b) }
func (goJSONDriver) Name() string                          { return "go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) NewReader(r io.Reader) eng.TokenSource { return jsonsrc.NewReader(r) }
func (stdJSONDriver) NewBytes(b []byte) eng.TokenSource     { return jsonsrc.NewBytes(b) }
func (stdJSONDriver) Name() string                          { return "encoding/json" }
