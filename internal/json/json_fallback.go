//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"encoding/json"
	"io"
)

// Marshal encodes a Go value as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalIndent encodes a Go value as indented JSON.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// NewDecoder creates a streaming decoder.
func NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// NewEncoder creates a streaming encoder.
func NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

// Encoder is a JSON encoder.
type Encoder = *json.Encoder

// Decoder is a JSON decoder.
type Decoder = *json.Decoder
