package message

import (
	"io"

	"github.com/anirudhraja/protocodec/wire"
)

// UnknownFields holds fields a parser did not recognize, as the exact bytes
// that arrived (tag included), concatenated in arrival order. They are
// written back after all known fields.
type UnknownFields []byte

// Size returns the number of bytes the unknown fields occupy on the wire.
func (u UnknownFields) Size() int {
	return len(u)
}

// EncodeTo re-emits the unknown fields verbatim.
func (u UnknownFields) EncodeTo(e *wire.Encoder) error {
	return e.EncodeRawBytes(u)
}

// Clone returns a copy that shares no memory with u.
func (u UnknownFields) Clone() UnknownFields {
	if len(u) == 0 {
		return nil
	}
	out := make(UnknownFields, len(u))
	copy(out, u)
	return out
}

// Fields splits the stored bytes back into individual fields.
func (u UnknownFields) Fields() ([]wire.RawValue, error) {
	if len(u) == 0 {
		return nil, nil
	}
	var out []wire.RawValue
	d := wire.NewBytesDecoder(u)
	for {
		num, wt, err := d.ReadTag()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		raw, err := d.CaptureField(wt)
		if err != nil {
			return nil, err
		}
		out = append(out, wire.RawValue{FieldNumber: num, WireType: wt, RawData: raw})
	}
}
