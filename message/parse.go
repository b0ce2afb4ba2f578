package message

import (
	"io"

	"go.uber.org/zap"

	"github.com/anirudhraja/protocodec/wire"
)

// Parse runs the field loop for b until the enclosing message ends.
// Builders call it from DecodeFrom.
//
// Field numbers b's descriptor does not declare are kept verbatim. A
// declared field arriving with a wire type it cannot take is also kept as
// unknown, unless the decoder is strict, in which case parsing fails with
// wire.ErrFieldTypeMismatch.
func Parse(d *wire.Decoder, b Builder) error {
	desc := b.Descriptor()
	for {
		num, wt, err := d.ReadTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fd := desc.Field(num)
		if fd != nil && !fd.Accepts(wt) {
			if d.Options().StrictWireType {
				return wire.WrapWithField(d.Mismatch(fd.WireType()), fd.Name)
			}
			Logger().Debug("wire type mismatch, keeping field as unknown",
				zap.String("message", desc.Name()),
				zap.String("field", fd.Name),
				zap.Stringer("declared", fd.WireType()),
				zap.Stringer("got", wt),
			)
			fd = nil
		}

		if fd == nil {
			raw, err := d.CaptureField(wt)
			if err != nil {
				return err
			}
			Logger().Debug("unknown field",
				zap.String("message", desc.Name()),
				zap.Int32("number", int32(num)),
				zap.Stringer("wire_type", wt),
				zap.Int("bytes", len(raw)),
			)
			b.AddUnknown(raw)
			continue
		}

		if err := b.ParseField(d, fd, wt); err != nil {
			return wire.WrapWithField(err, fd.Name)
		}
	}
}

// ReadRepeated reads one occurrence of a repeated field: a single element,
// or for scalar kinds a packed run of them. read consumes one element.
func ReadRepeated(d *wire.Decoder, fd *FieldDescriptor, wt wire.WireType, read func() error) error {
	if wt == wire.WireBytes && fd.Kind.Packable() {
		return d.ReadPacked(read)
	}
	return read()
}
