package wire

import (
	"bytes"
	"math"
	"testing"
	"testing/quick"

	"google.golang.org/protobuf/encoding/protowire"
)

func encodeVarint(t *testing.T, v uint64) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := NewEncoder(&buf).EncodeVarint64(v); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 127, 128, 16383, 16384,
		math.MaxInt32, math.MaxUint32, 1 << 56, math.MaxInt64, math.MaxUint64,
	}
	for _, v := range values {
		data := encodeVarint(t, v)
		if len(data) != VarintSize(v) {
			t.Errorf("VarintSize(%d) = %d, encoded %d bytes", v, VarintSize(v), len(data))
		}
		if len(data) != protowire.SizeVarint(v) {
			t.Errorf("size of %d differs from protowire: %d vs %d", v, len(data), protowire.SizeVarint(v))
		}
		got, err := NewBytesDecoder(data).ReadVarint64()
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, math.MaxInt32, math.MinInt32} {
		if got := DecodeZigZag32(EncodeZigZag32(v)); got != v {
			t.Errorf("zigzag32 %d -> %d", v, got)
		}
		if EncodeZigZag32(v) != protowire.EncodeZigZag(int64(v)) {
			t.Errorf("zigzag32(%d) differs from protowire", v)
		}
	}
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		if got := DecodeZigZag64(EncodeZigZag64(v)); got != v {
			t.Errorf("zigzag64 %d -> %d", v, got)
		}
		if EncodeZigZag64(v) != protowire.EncodeZigZag(v) {
			t.Errorf("zigzag64(%d) differs from protowire", v)
		}
	}
	// Small magnitudes stay small.
	if ZigZag32Size(-1) != 1 || ZigZag64Size(-64) != 1 || ZigZag64Size(-65) != 2 {
		t.Errorf("unexpected zigzag sizes")
	}
}

func TestVarintQuick(t *testing.T) {
	unsigned := func(v uint64) bool {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		if e.EncodeVarint64(v) != nil || int(e.Written()) != VarintSize(v) {
			return false
		}
		got, err := NewBytesDecoder(buf.Bytes()).ReadVarint64()
		return err == nil && got == v
	}
	if err := quick.Check(unsigned, nil); err != nil {
		t.Error(err)
	}

	signed32 := func(v int32) bool {
		var buf bytes.Buffer
		if NewEncoder(&buf).EncodeZigZag32(v) != nil || buf.Len() != ZigZag32Size(v) {
			return false
		}
		got, err := NewBytesDecoder(buf.Bytes()).ReadZigZag32()
		return err == nil && got == v
	}
	if err := quick.Check(signed32, nil); err != nil {
		t.Error(err)
	}

	signed64 := func(v int64) bool {
		var buf bytes.Buffer
		if NewEncoder(&buf).EncodeZigZag64(v) != nil || buf.Len() != ZigZag64Size(v) {
			return false
		}
		got, err := NewBytesDecoder(buf.Bytes()).ReadZigZag64()
		return err == nil && got == v
	}
	if err := quick.Check(signed64, nil); err != nil {
		t.Error(err)
	}
}

func TestTagCompose(t *testing.T) {
	tests := []struct {
		num FieldNumber
		wt  WireType
	}{
		{1, WireVarint},
		{2, WireBytes},
		{15, WireFixed32},
		{16, WireFixed64},
		{MaxValidNumber, WireBytes},
	}
	for _, tt := range tests {
		tag := MakeTag(tt.num, tt.wt)
		if TagFieldNumber(tag) != tt.num {
			t.Errorf("field number of %d: got %d, want %d", tag, TagFieldNumber(tag), tt.num)
		}
		wt, err := TagWireType(tag)
		if err != nil || wt != tt.wt {
			t.Errorf("wire type of %d: got %s, %v", tag, wt, err)
		}
		if TagSize(tt.num, tt.wt) != protowire.SizeTag(protowire.Number(tt.num)) {
			t.Errorf("TagSize(%d) differs from protowire", tt.num)
		}
	}

	if _, err := TagWireType(MakeTag(1, 6)); err != ErrUnknownWireType {
		t.Errorf("expected ErrUnknownWireType, got %v", err)
	}
	if _, err := TagWireType(MakeTag(1, WireStartGroup)); err != ErrUnknownWireType {
		t.Errorf("groups are not supported, got %v", err)
	}
}
