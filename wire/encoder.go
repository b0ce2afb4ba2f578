package wire

import (
	"io"
)

// Encodable is implemented by anything that can be nested as a
// length-delimited message: it knows its own encoded size and writes itself.
type Encodable interface {
	Size() int
	EncodeTo(e *Encoder) error
}

// Encoder handles low-level protobuf wire format encoding onto a byte sink.
// Writes are append-only and unbuffered across fields; the first sink error
// is returned from every later call.
type Encoder struct {
	w       io.Writer
	scratch [MaxVarintLen]byte
	written int64
	err     error
}

// NewEncoder creates a new wire format encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Written returns the number of bytes handed to the sink so far.
func (e *Encoder) Written() int64 {
	return e.written
}

// Err returns the first sink error, if any.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) write(p []byte) error {
	if e.err != nil {
		return e.err
	}
	n, err := e.w.Write(p)
	e.written += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		e.err = err
	}
	return err
}

// EncodeTag writes the tag for a field.
func (e *Encoder) EncodeTag(num FieldNumber, wt WireType) error {
	return e.EncodeVarint64(uint64(MakeTag(num, wt)))
}

// EncodeRawBytes writes p as-is, without any framing. Used for re-emitting
// unknown fields.
func (e *Encoder) EncodeRawBytes(p []byte) error {
	if len(p) == 0 {
		return e.err
	}
	return e.write(p)
}

// FIELD METHODS

func (e *Encoder) WriteInt32(num FieldNumber, v int32) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	return e.EncodeVarint64(uint64(v))
}

func (e *Encoder) WriteUint32(num FieldNumber, v uint32) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	return e.EncodeVarint32(v)
}

func (e *Encoder) WriteInt64(num FieldNumber, v int64) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	return e.EncodeVarint64(uint64(v))
}

func (e *Encoder) WriteUint64(num FieldNumber, v uint64) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	return e.EncodeVarint64(v)
}

func (e *Encoder) WriteBool(num FieldNumber, v bool) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	if v {
		return e.EncodeVarint64(1)
	}
	return e.EncodeVarint64(0)
}

func (e *Encoder) WriteEnum(num FieldNumber, v int32) error {
	return e.WriteInt32(num, v)
}

func (e *Encoder) WriteSint32(num FieldNumber, v int32) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	return e.EncodeZigZag32(v)
}

func (e *Encoder) WriteSint64(num FieldNumber, v int64) error {
	if err := e.EncodeTag(num, WireVarint); err != nil {
		return err
	}
	return e.EncodeZigZag64(v)
}

func (e *Encoder) WriteFixed32(num FieldNumber, v uint32) error {
	if err := e.EncodeTag(num, WireFixed32); err != nil {
		return err
	}
	return e.EncodeFixed32(v)
}

func (e *Encoder) WriteFixed64(num FieldNumber, v uint64) error {
	if err := e.EncodeTag(num, WireFixed64); err != nil {
		return err
	}
	return e.EncodeFixed64(v)
}

func (e *Encoder) WriteSfixed32(num FieldNumber, v int32) error {
	return e.WriteFixed32(num, uint32(v))
}

func (e *Encoder) WriteSfixed64(num FieldNumber, v int64) error {
	return e.WriteFixed64(num, uint64(v))
}

func (e *Encoder) WriteFloat(num FieldNumber, v float32) error {
	if err := e.EncodeTag(num, WireFixed32); err != nil {
		return err
	}
	return e.EncodeFloat(v)
}

func (e *Encoder) WriteDouble(num FieldNumber, v float64) error {
	if err := e.EncodeTag(num, WireFixed64); err != nil {
		return err
	}
	return e.EncodeDouble(v)
}

// WriteString writes a length-delimited string field. Empty strings are
// not written at all.
func (e *Encoder) WriteString(num FieldNumber, v string) error {
	if len(v) == 0 {
		return e.err
	}
	if err := e.EncodeTag(num, WireBytes); err != nil {
		return err
	}
	return e.EncodeString(v)
}

// WriteBytes writes a length-delimited bytes field. Empty slices are not
// written at all.
func (e *Encoder) WriteBytes(num FieldNumber, v []byte) error {
	if len(v) == 0 {
		return e.err
	}
	if err := e.EncodeTag(num, WireBytes); err != nil {
		return err
	}
	return e.EncodeBytes(v)
}

// WriteMessage writes m as a length-delimited nested message: tag, size,
// then m writes its own fields.
func (e *Encoder) WriteMessage(num FieldNumber, m Encodable) error {
	if err := e.EncodeTag(num, WireBytes); err != nil {
		return err
	}
	if err := e.EncodeVarint64(uint64(m.Size())); err != nil {
		return err
	}
	return m.EncodeTo(e)
}
