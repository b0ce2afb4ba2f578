package wire

const (
	varintInfoBits     = 7
	varintInfoMask     = 0x7F // low 7 bits carry data
	varintContinuation = 0x80 // high bit flags another byte

	// SizeFixed32 and SizeFixed64 are the payload widths of the fixed wire types.
	SizeFixed32 = 4
	SizeFixed64 = 8

	// MaxVarintLen is the longest legal varint; negative int32 values are
	// sign-extended and also take the full width.
	MaxVarintLen = 10
)

// VarintSize returns the number of bytes needed to encode the given varint.
// It walks the value exactly like appendVarint does.
func VarintSize(v uint64) int {
	n := 1
	for v >= varintContinuation {
		v >>= varintInfoBits
		n++
	}
	return n
}

// Varint32Size returns the varint size of a 32-bit unsigned value.
func Varint32Size(v uint32) int {
	return VarintSize(uint64(v))
}

// ZigZag32Size returns the varint size of v after zigzag mapping.
func ZigZag32Size(v int32) int {
	return VarintSize(EncodeZigZag32(v))
}

// ZigZag64Size returns the varint size of v after zigzag mapping.
func ZigZag64Size(v int64) int {
	return VarintSize(EncodeZigZag64(v))
}

// TagSize returns the encoded size of the tag for a field.
func TagSize(num FieldNumber, wt WireType) int {
	return VarintSize(uint64(MakeTag(num, wt)))
}

// Field sizes: tag plus payload.

func Int32Size(num FieldNumber, v int32) int {
	return TagSize(num, WireVarint) + VarintSize(uint64(v))
}

func Uint32Size(num FieldNumber, v uint32) int {
	return TagSize(num, WireVarint) + Varint32Size(v)
}

func Int64Size(num FieldNumber, v int64) int {
	return TagSize(num, WireVarint) + VarintSize(uint64(v))
}

func Uint64Size(num FieldNumber, v uint64) int {
	return TagSize(num, WireVarint) + VarintSize(v)
}

func BoolSize(num FieldNumber, v bool) int {
	return TagSize(num, WireVarint) + 1
}

func EnumSize(num FieldNumber, v int32) int {
	return Int32Size(num, v)
}

func Sint32Size(num FieldNumber, v int32) int {
	return TagSize(num, WireVarint) + ZigZag32Size(v)
}

func Sint64Size(num FieldNumber, v int64) int {
	return TagSize(num, WireVarint) + ZigZag64Size(v)
}

func Fixed32Size(num FieldNumber, v uint32) int {
	return TagSize(num, WireFixed32) + SizeFixed32
}

func Fixed64Size(num FieldNumber, v uint64) int {
	return TagSize(num, WireFixed64) + SizeFixed64
}

func Sfixed32Size(num FieldNumber, v int32) int {
	return TagSize(num, WireFixed32) + SizeFixed32
}

func Sfixed64Size(num FieldNumber, v int64) int {
	return TagSize(num, WireFixed64) + SizeFixed64
}

func FloatSize(num FieldNumber, v float32) int {
	return TagSize(num, WireFixed32) + SizeFixed32
}

func DoubleSize(num FieldNumber, v float64) int {
	return TagSize(num, WireFixed64) + SizeFixed64
}

// StringSize returns 0 for the empty string: empty length-delimited fields
// are omitted from the stream entirely.
func StringSize(num FieldNumber, v string) int {
	if len(v) == 0 {
		return 0
	}
	return TagSize(num, WireBytes) + VarintSize(uint64(len(v))) + len(v)
}

// BytesSize returns 0 for an empty slice, mirroring StringSize.
func BytesSize(num FieldNumber, v []byte) int {
	if len(v) == 0 {
		return 0
	}
	return TagSize(num, WireBytes) + VarintSize(uint64(len(v))) + len(v)
}

// MessageSize returns the framed size of a nested message whose own encoding
// is payload bytes long. Nested messages are framed even when empty so that
// presence survives a round trip.
func MessageSize(num FieldNumber, payload int) int {
	return TagSize(num, WireBytes) + VarintSize(uint64(payload)) + payload
}
