package message

import (
	"testing"

	"github.com/anirudhraja/protocodec/wire"
)

var baseDesc = NewDescriptor("Base",
	FieldDescriptor{Number: 2, Name: "name", Kind: KindString},
	FieldDescriptor{Number: 1, Name: "id", Kind: KindInt32},
	FieldDescriptor{Number: 3, Name: "scores", Kind: KindSint64, Cardinality: Repeated},
)

func TestDescriptorOrderAndLookup(t *testing.T) {
	fields := baseDesc.Fields()
	for i, want := range []wire.FieldNumber{1, 2, 3} {
		if fields[i].Number != want {
			t.Errorf("field %d has number %d, want %d", i, fields[i].Number, want)
		}
	}
	if fd := baseDesc.Field(2); fd == nil || fd.Name != "name" {
		t.Errorf("Field(2) = %+v", fd)
	}
	if fd := baseDesc.Field(9); fd != nil {
		t.Errorf("Field(9) = %+v, want nil", fd)
	}
	if fd := baseDesc.FieldByName("scores"); fd == nil || !fd.IsRepeated() {
		t.Errorf("FieldByName(scores) = %+v", fd)
	}
}

func TestExtendLeavesBaseUntouched(t *testing.T) {
	ext := baseDesc.Extend("Extended",
		FieldDescriptor{Number: 4, Name: "blob", Kind: KindBytes},
	)

	if baseDesc.Field(4) != nil {
		t.Fatal("base gained the extension field")
	}
	if len(baseDesc.Extensions()) != 0 {
		t.Errorf("base reports extensions: %v", baseDesc.Extensions())
	}
	if ext.Base() != baseDesc {
		t.Errorf("Base() = %v", ext.Base())
	}
	if fd := ext.Field(4); fd == nil || !fd.Extension {
		t.Errorf("extension field = %+v", fd)
	}
	if fd := ext.Field(1); fd == nil || fd.Extension {
		t.Errorf("inherited field = %+v", fd)
	}
	if got := len(ext.Fields()); got != 4 {
		t.Errorf("extended has %d fields, want 4", got)
	}
}

func TestDescriptorPanics(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldDescriptor
	}{
		{"duplicate number", []FieldDescriptor{
			{Number: 1, Name: "a", Kind: KindInt32},
			{Number: 1, Name: "b", Kind: KindInt32},
		}},
		{"zero number", []FieldDescriptor{{Number: 0, Name: "a", Kind: KindInt32}}},
		{"number too large", []FieldDescriptor{{Number: wire.MaxValidNumber + 1, Name: "a", Kind: KindInt32}}},
		{"missing kind", []FieldDescriptor{{Number: 1, Name: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			NewDescriptor("Bad", tt.fields...)
		})
	}

	t.Run("extension reuses base number", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		baseDesc.Extend("Bad", FieldDescriptor{Number: 1, Name: "clash", Kind: KindBool})
	})
}

func TestKindWireType(t *testing.T) {
	tests := []struct {
		kind Kind
		want wire.WireType
	}{
		{KindInt32, wire.WireVarint},
		{KindSint64, wire.WireVarint},
		{KindBool, wire.WireVarint},
		{KindEnum, wire.WireVarint},
		{KindFixed32, wire.WireFixed32},
		{KindSfixed32, wire.WireFixed32},
		{KindFloat, wire.WireFixed32},
		{KindFixed64, wire.WireFixed64},
		{KindSfixed64, wire.WireFixed64},
		{KindDouble, wire.WireFixed64},
		{KindString, wire.WireBytes},
		{KindBytes, wire.WireBytes},
		{KindMessage, wire.WireBytes},
	}
	for _, tt := range tests {
		if got := tt.kind.WireType(); got != tt.want {
			t.Errorf("%s.WireType() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestAccepts(t *testing.T) {
	id := baseDesc.Field(1)
	scores := baseDesc.Field(3)
	name := baseDesc.Field(2)

	if !id.Accepts(wire.WireVarint) || id.Accepts(wire.WireBytes) {
		t.Errorf("singular int32 should accept only varint")
	}
	if !scores.Accepts(wire.WireVarint) || !scores.Accepts(wire.WireBytes) {
		t.Errorf("repeated sint64 should accept varint and packed")
	}
	if scores.Accepts(wire.WireFixed64) {
		t.Errorf("repeated sint64 accepted fixed64")
	}
	if !name.Accepts(wire.WireBytes) || name.Accepts(wire.WireVarint) {
		t.Errorf("string should accept only bytes")
	}
}
