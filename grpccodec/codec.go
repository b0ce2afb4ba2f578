// Package grpccodec plugs message types into gRPC as a wire codec. Importing
// the package registers it under the content subtype "protocodec".
package grpccodec

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/wire"
)

// Name is the content subtype the codec is registered under.
const Name = "protocodec"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec encodes message.Message values and decodes into message.Builder
// values.
type Codec struct {
	// Options apply to Unmarshal. The zero value means wire.DefaultOptions.
	Options wire.Options
}

func (Codec) Name() string {
	return Name
}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(message.Message)
	if !ok {
		return nil, fmt.Errorf("grpccodec: cannot marshal %T: not a message.Message", v)
	}
	return message.Marshal(m)
}

func (c Codec) Unmarshal(data []byte, v any) error {
	b, ok := v.(message.Builder)
	if !ok {
		return fmt.Errorf("grpccodec: cannot unmarshal into %T: not a message.Builder", v)
	}
	return message.UnmarshalWithOptions(data, b, c.Options)
}

// CallOption selects the codec for one client call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}

var _ encoding.Codec = Codec{}
