// Package protocodec encodes and decodes protobuf wire format messages
// declared as Go types against the runtime in package message.
package protocodec

import (
	"io"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/wire"
)

// Protocodec applies one set of decode options to every call.
type Protocodec struct {
	opts wire.Options
}

// New creates a Protocodec from cfg and installs cfg's logger for the
// message runtime. That logger is shared by the whole process, so with
// several Protocodecs the LogLevel of the last one created applies.
func New(cfg Config) (*Protocodec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := cfg.BuildLogger()
	if err != nil {
		return nil, err
	}
	message.SetLogger(logger)
	return &Protocodec{opts: cfg.Decode}, nil
}

// Options returns the decode options in effect.
func (p *Protocodec) Options() wire.Options { return p.opts }

// Marshal encodes m.
func (p *Protocodec) Marshal(m message.Message) ([]byte, error) {
	return message.Marshal(m)
}

// Unmarshal decodes data into b.
func (p *Protocodec) Unmarshal(data []byte, b message.Builder) error {
	return message.UnmarshalWithOptions(data, b, p.opts)
}

// Write encodes m onto w.
func (p *Protocodec) Write(w io.Writer, m message.Message) error {
	return message.Write(w, m)
}

// Read decodes everything r yields into b.
func (p *Protocodec) Read(r io.Reader, b message.Builder) error {
	return message.ReadWithOptions(r, b, p.opts)
}

// NewStream returns a decoder for a sequence of length-prefixed messages
// written with WriteDelimited; read them with ReadDelimited.
func (p *Protocodec) NewStream(r io.Reader) *wire.Decoder {
	return wire.NewDecoderWithOptions(r, p.opts)
}

// ===== DEFAULT-OPTION SHORTHANDS =====

func Marshal(m message.Message) ([]byte, error) { return message.Marshal(m) }
func Unmarshal(data []byte, b message.Builder) error { return message.Unmarshal(data, b) }
func Write(w io.Writer, m message.Message) error { return message.Write(w, m) }
func Read(r io.Reader, b message.Builder) error { return message.Read(r, b) }
func WriteDelimited(w io.Writer, m message.Message) error { return message.WriteDelimited(w, m) }
func ReadDelimited(d *wire.Decoder, b message.Builder) error {
	return message.ReadDelimited(d, b)
}
