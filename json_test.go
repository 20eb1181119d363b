package bsmap_test

import "encoding/json"

// stdDriver is an encoding/json driver used to exercise the driver SPI.
type stdDriver struct{}

func (stdDriver) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (stdDriver) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (stdDriver) Name() string                       { return "encoding/json" }

func (stdDriver) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}
