package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DataKind tells which representation the response body was decoded into.
type DataKind int

const (
	// DataNull means the body was empty.
	DataNull DataKind = iota
	// DataJSON means the body parsed as JSON; Data holds the decoded value.
	DataJSON
	// DataText means the body is mostly text (SVG, XML, CSV); Data is a string.
	DataText
	// DataBinary means the body is opaque bytes (PNG, JPEG); Data is a []byte.
	DataBinary
)

func (k DataKind) String() string {
	switch k {
	case DataNull:
		return "null"
	case DataJSON:
		return "json"
	case DataText:
		return "text"
	case DataBinary:
		return "binary"
	default:
		return fmt.Sprintf("DataKind(%d)", int(k))
	}
}

// RateLimit holds the x-ratelimit-* headers. A nil field means the header
// was missing or not an integer.
type RateLimit struct {
	Total     *int `json:"total,omitempty" yaml:"total,omitempty"`
	Remaining *int `json:"remaining,omitempty" yaml:"remaining,omitempty"`
	Reset     *int `json:"reset,omitempty" yaml:"reset,omitempty"`
}

// Meta is the response metadata extracted from headers.
type Meta struct {
	APIVersion    *string   `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	ContentType   *string   `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	ContentLength *int      `json:"contentLength,omitempty" yaml:"contentLength,omitempty"`
	RateLimit     RateLimit `json:"rateLimit" yaml:"rateLimit"`
}

// Envelope is the normalized outcome of a successful call.
//
// Data is one of:
//   - nil (DataNull, or DataJSON for a literal null)
//   - a value produced by encoding/json into any (DataJSON)
//   - string (DataText)
//   - []byte (DataBinary), byte-for-byte the response body
type Envelope struct {
	Meta Meta     `json:"meta" yaml:"meta"`
	Data any      `json:"data" yaml:"data"`
	Kind DataKind `json:"-" yaml:"-"`

	// Raw is the undecoded response body.
	Raw []byte `json:"-" yaml:"-"`
}

// ErrNotJSON is returned by Decode when the body was not JSON.
var ErrNotJSON = errors.New("response body is not JSON")

// Decode unmarshals a JSON body into v.
func (e *Envelope) Decode(v any) error {
	if e.Kind != DataJSON {
		return fmt.Errorf("%w: got %s", ErrNotJSON, e.Kind)
	}
	if err := json.Unmarshal(e.Raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Text returns the body as a string for DataText responses.
func (e *Envelope) Text() (string, bool) {
	s, ok := e.Data.(string)
	return s, ok && e.Kind == DataText
}

// Bytes returns the body for DataBinary responses.
func (e *Envelope) Bytes() ([]byte, bool) {
	b, ok := e.Data.([]byte)
	return b, ok && e.Kind == DataBinary
}

// IsEmpty reports whether the response carried no body.
func (e *Envelope) IsEmpty() bool {
	return e.Kind == DataNull
}
