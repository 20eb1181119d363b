package bsmap

import (
	"strings"
	"sync"

	gojson "github.com/goccy/go-json"
)

// JSONDriver encodes and decodes documents via a pluggable SPI. The default
// implementation is backed by goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	Unmarshal(data []byte, v any) error
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
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

// UseDefaultJSONDriver restores the go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type defaultJSONDriver struct{}

func (defaultJSONDriver) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (defaultJSONDriver) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (defaultJSONDriver) Name() string                       { return "goccy/go-json" }

func (defaultJSONDriver) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// encode writes compact JSON for format 0 and indents by format spaces
// otherwise.
func encode(v any, format int) ([]byte, error) {
	drv := getJSONDriver()
	if format > 0 {
		return drv.MarshalIndent(v, "", strings.Repeat(" ", format))
	}
	return drv.Marshal(v)
}
