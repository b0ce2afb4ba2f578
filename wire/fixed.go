package wire

import (
	"encoding/binary"
	"math"
)

// ENCODER METHODS

// EncodeFixed32 encodes a 32-bit fixed-width value
func (e *Encoder) EncodeFixed32(v uint32) error {
	return e.write(binary.LittleEndian.AppendUint32(e.scratch[:0], v))
}

// EncodeFixed64 encodes a 64-bit fixed-width value
func (e *Encoder) EncodeFixed64(v uint64) error {
	return e.write(binary.LittleEndian.AppendUint64(e.scratch[:0], v))
}

// EncodeFloat encodes a 32-bit float as fixed32
func (e *Encoder) EncodeFloat(v float32) error {
	return e.EncodeFixed32(math.Float32bits(v))
}

// EncodeDouble encodes a 64-bit float as fixed64
func (e *Encoder) EncodeDouble(v float64) error {
	return e.EncodeFixed64(math.Float64bits(v))
}

// DECODER METHODS

// ReadFixed32 decodes a 32-bit fixed-width value
func (d *Decoder) ReadFixed32() (uint32, error) {
	buf := d.raw[:SizeFixed32]
	if err := d.readFull(buf); err != nil {
		return 0, err
	}
	d.rawLen = SizeFixed32
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadFixed64 decodes a 64-bit fixed-width value
func (d *Decoder) ReadFixed64() (uint64, error) {
	buf := d.raw[:SizeFixed64]
	if err := d.readFull(buf); err != nil {
		return 0, err
	}
	d.rawLen = SizeFixed64
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadSfixed32 decodes a signed 32-bit fixed-width value
func (d *Decoder) ReadSfixed32() (int32, error) {
	v, err := d.ReadFixed32()
	return int32(v), err
}

// ReadSfixed64 decodes a signed 64-bit fixed-width value
func (d *Decoder) ReadSfixed64() (int64, error) {
	v, err := d.ReadFixed64()
	return int64(v), err
}

// ReadFloat decodes a 32-bit float from fixed32 data
func (d *Decoder) ReadFloat() (float32, error) {
	v, err := d.ReadFixed32()
	return math.Float32frombits(v), err
}

// ReadDouble decodes a 64-bit float from fixed64 data
func (d *Decoder) ReadDouble() (float64, error) {
	v, err := d.ReadFixed64()
	return math.Float64frombits(v), err
}
