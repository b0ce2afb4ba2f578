// Package message is the runtime shared by hand-written and generated
// message types: field tables, the parse loop, unknown-field retention and
// whole-message encode and decode entry points.
package message

import (
	"bytes"
	"fmt"
	"io"

	"github.com/anirudhraja/protocodec/wire"
)

// Message is an immutable, fully built message value.
type Message interface {
	wire.Encodable
	Descriptor() *Descriptor
	// Unknown returns the fields kept verbatim from the stream the message
	// was parsed from.
	Unknown() UnknownFields
}

// Builder is the mutable accumulator a message is parsed into.
type Builder interface {
	wire.Decodable
	Descriptor() *Descriptor
	// ParseField decodes one occurrence of a declared field. The decoder is
	// positioned just past the field's tag and wt is known to be accepted by
	// fd.
	ParseField(d *wire.Decoder, fd *FieldDescriptor, wt wire.WireType) error
	// AddUnknown appends a field the builder's type does not declare.
	AddUnknown(raw []byte)
	// Reset clears every field and the unknown set.
	Reset()
}

// Marshal encodes m into a new buffer sized by m.Size().
func Marshal(m Message) ([]byte, error) {
	size := m.Size()
	buf := bytes.NewBuffer(make([]byte, 0, size))
	e := wire.NewEncoder(buf)
	if err := m.EncodeTo(e); err != nil {
		return nil, err
	}
	if int(e.Written()) != size {
		return nil, fmt.Errorf("%s: encoded %d bytes but Size reported %d", m.Descriptor().Name(), e.Written(), size)
	}
	return buf.Bytes(), nil
}

// Merge folds src into b the way a parser would if src's encoding were
// appended to b's input: singular fields src sets overwrite, repeated fields
// concatenate, nested messages merge recursively. src may be of a different
// but wire-compatible type.
func Merge(b Builder, src Message) error {
	data, err := Marshal(src)
	if err != nil {
		return err
	}
	return Unmarshal(data, b)
}

// Write encodes m onto w.
func Write(w io.Writer, m Message) error {
	return m.EncodeTo(wire.NewEncoder(w))
}

// WriteDelimited writes m prefixed with its varint length so several
// messages can share one stream.
func WriteDelimited(w io.Writer, m Message) error {
	e := wire.NewEncoder(w)
	if err := e.EncodeVarint64(uint64(m.Size())); err != nil {
		return err
	}
	return m.EncodeTo(e)
}

// Unmarshal parses data into b with the default, tolerant options.
func Unmarshal(data []byte, b Builder) error {
	return UnmarshalWithOptions(data, b, wire.DefaultOptions())
}

// UnmarshalWithOptions parses data into b.
func UnmarshalWithOptions(data []byte, b Builder, opts wire.Options) error {
	return b.DecodeFrom(wire.NewDecoderWithOptions(bytes.NewReader(data), opts))
}

// Read parses all of r into b with the default options.
func Read(r io.Reader, b Builder) error {
	return ReadWithOptions(r, b, wire.DefaultOptions())
}

// ReadWithOptions parses all of r into b.
func ReadWithOptions(r io.Reader, b Builder, opts wire.Options) error {
	return b.DecodeFrom(wire.NewDecoderWithOptions(r, opts))
}

// ReadDelimited parses the next length-prefixed message from d into b. It
// returns io.EOF once the stream is exhausted.
func ReadDelimited(d *wire.Decoder, b Builder) error {
	return d.ReadDelimited(b)
}
