package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int8

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated, never produced
	WireEndGroup   WireType = 4 // deprecated, never produced
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// Valid reports whether the wire type is one the codec can frame.
// Group wire types are declared but not supported.
func (wt WireType) Valid() bool {
	switch wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	}
	return false
}

func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", int8(wt))
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

const (
	MinValidNumber FieldNumber = 1
	MaxValidNumber FieldNumber = 1<<29 - 1
)

// Valid reports whether n is usable as a field number.
func (n FieldNumber) Valid() bool {
	return n >= MinValidNumber && n <= MaxValidNumber
}

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

const (
	tagTypeBits = 3
	tagTypeMask = 1<<tagTypeBits - 1
)

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<tagTypeBits | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return TagFieldNumber(tag), WireType(tag & tagTypeMask)
}

// TagFieldNumber returns the field number stored in the upper bits of tag.
func TagFieldNumber(tag Tag) FieldNumber {
	return FieldNumber(tag >> tagTypeBits)
}

// TagWireType returns the wire type stored in the low 3 bits of tag. It fails
// with ErrUnknownWireType if those bits do not name a supported wire type.
func TagWireType(tag Tag) (WireType, error) {
	wt := WireType(tag & tagTypeMask)
	if !wt.Valid() {
		return wt, ErrUnknownWireType
	}
	return wt, nil
}

// RawValue represents a raw (undecoded) protobuf value
type RawValue struct {
	FieldNumber FieldNumber
	WireType    WireType
	RawData     []byte // tag and payload exactly as read
}
