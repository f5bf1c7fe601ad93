package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name; requests use Content-Type application/json.
const CodecName = "json"

// JSONCodec is a connect.Codec for the plain Go messages in this package.
// It replaces Connect's protojson codec, which only accepts proto.Message values.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
