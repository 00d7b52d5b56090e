package apiv1connect

import (
	"github.com/goccy/go-json"
)

const codecNameJSON = "json"

// JSONCodec encodes catalog.v1 messages as plain JSON. It replaces connect's protobuf JSON codec,
// since the messages are Go structs rather than protobuf messages.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return codecNameJSON
}

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, message)
}
