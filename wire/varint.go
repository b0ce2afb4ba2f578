package wire

// appendVarint is the single varint writer; VarintSize walks values the
// same way.
func appendVarint(dst []byte, v uint64) []byte {
	for v >= varintContinuation {
		dst = append(dst, byte(v)|varintContinuation)
		v >>= varintInfoBits
	}
	return append(dst, byte(v))
}

// ENCODER METHODS

// EncodeVarint64 encodes a uint64 as varint
func (e *Encoder) EncodeVarint64(v uint64) error {
	return e.write(appendVarint(e.scratch[:0], v))
}

// EncodeVarint32 encodes a uint32 as varint
func (e *Encoder) EncodeVarint32(v uint32) error {
	return e.EncodeVarint64(uint64(v))
}

// EncodeZigZag32 encodes a signed int32 with zigzag encoding
func (e *Encoder) EncodeZigZag32(v int32) error {
	return e.EncodeVarint64(EncodeZigZag32(v))
}

// EncodeZigZag64 encodes a signed int64 with zigzag encoding
func (e *Encoder) EncodeZigZag64(v int64) error {
	return e.EncodeVarint64(EncodeZigZag64(v))
}

// DECODER METHODS

// readVarint decodes a varint from the current position. The raw bytes are
// kept in d.raw so unknown fields can be stored exactly as they arrived.
func (d *Decoder) readVarint() (uint64, error) {
	var v uint64
	d.rawLen = 0
	for i := 0; i < MaxVarintLen; i++ {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		d.raw[i] = b
		d.rawLen = i + 1

		// The tenth byte may only carry the final bit of a 64-bit value.
		if i == MaxVarintLen-1 && b > 1 {
			return 0, d.fail(ErrMalformedVarint, nil)
		}

		v |= uint64(b&varintInfoMask) << (varintInfoBits * uint(i))
		if b < varintContinuation {
			return v, nil
		}
	}
	return 0, d.fail(ErrMalformedVarint, nil)
}

// ReadVarint64 decodes a varint as uint64
func (d *Decoder) ReadVarint64() (uint64, error) {
	return d.readVarint()
}

// ReadVarint32 decodes a varint and keeps the low 32 bits. Negative int32
// values arrive sign-extended to ten bytes, so the full 64-bit width is
// accepted.
func (d *Decoder) ReadVarint32() (uint32, error) {
	v, err := d.readVarint()
	return uint32(v), err
}

// ReadInt32 decodes a varint as int32
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.readVarint()
	return int32(v), err
}

// ReadInt64 decodes a varint as int64
func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.readVarint()
	return int64(v), err
}

// ReadBool decodes a varint as bool
func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.readVarint()
	return v != 0, err
}

// ReadEnum decodes a varint as enum value
func (d *Decoder) ReadEnum() (int32, error) {
	return d.ReadInt32()
}

// ReadZigZag32 decodes a zigzag-encoded signed varint as int32
func (d *Decoder) ReadZigZag32() (int32, error) {
	v, err := d.readVarint()
	return DecodeZigZag32(v), err
}

// ReadZigZag64 decodes a zigzag-encoded signed varint as int64
func (d *Decoder) ReadZigZag64() (int64, error) {
	v, err := d.readVarint()
	return DecodeZigZag64(v), err
}

// UTILITY FUNCTIONS

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeZigZag32 encodes a signed 32-bit integer using zigzag encoding
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// EncodeZigZag64 encodes a signed 64-bit integer using zigzag encoding
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}
