package sample

import (
	"bytes"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/wire"
)

var someMessageDescriptor = message.NewDescriptor("SomeMessage",
	message.FieldDescriptor{Number: 1, Name: "int32_field", Kind: message.KindInt32},
	message.FieldDescriptor{Number: 2, Name: "string_field", Kind: message.KindString},
)

// extendedMessageDescriptor shares SomeMessage's field numbers and adds two
// of its own. A SomeMessage parser keeps those two as unknown fields.
var extendedMessageDescriptor = someMessageDescriptor.Extend("ExtendedMessage",
	message.FieldDescriptor{Number: 3, Name: "bytes_field", Kind: message.KindBytes},
	message.FieldDescriptor{Number: 4, Name: "double_field", Kind: message.KindDouble},
)

// ===== SomeMessage =====

type SomeMessage struct {
	int32Field     int32
	hasInt32Field  bool
	stringField    string
	hasStringField bool
	unknown        message.UnknownFields
}

func (m *SomeMessage) Descriptor() *message.Descriptor { return someMessageDescriptor }
func (m *SomeMessage) Unknown() message.UnknownFields { return m.unknown }

func (m *SomeMessage) Int32Field() int32 { return m.int32Field }
func (m *SomeMessage) HasInt32Field() bool { return m.hasInt32Field }
func (m *SomeMessage) StringField() string { return m.stringField }
func (m *SomeMessage) HasStringField() bool { return m.hasStringField }

func (m *SomeMessage) Size() int {
	n := 0
	if m.hasInt32Field {
		n += wire.Int32Size(1, m.int32Field)
	}
	if m.hasStringField {
		n += wire.StringSize(2, m.stringField)
	}
	return n + m.unknown.Size()
}

func (m *SomeMessage) EncodeTo(e *wire.Encoder) error {
	if m.hasInt32Field {
		e.WriteInt32(1, m.int32Field)
	}
	if m.hasStringField {
		e.WriteString(2, m.stringField)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *SomeMessage) Equal(o *SomeMessage) bool {
	return m.Int32Field() == o.Int32Field() && m.StringField() == o.StringField()
}

type SomeMessageBuilder struct {
	msg SomeMessage
}

func NewSomeMessageBuilder() *SomeMessageBuilder {
	return &SomeMessageBuilder{}
}

func (b *SomeMessageBuilder) SetInt32Field(v int32) *SomeMessageBuilder {
	b.msg.int32Field, b.msg.hasInt32Field = v, true
	return b
}

func (b *SomeMessageBuilder) SetStringField(v string) *SomeMessageBuilder {
	b.msg.stringField, b.msg.hasStringField = v, true
	return b
}

func (b *SomeMessageBuilder) MergeFrom(m *SomeMessage) *SomeMessageBuilder {
	if m.hasInt32Field {
		b.SetInt32Field(m.int32Field)
	}
	if m.hasStringField {
		b.SetStringField(m.stringField)
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *SomeMessageBuilder) Build() *SomeMessage {
	c := b.msg
	c.unknown = b.msg.unknown.Clone()
	return &c
}

func (b *SomeMessageBuilder) Reset() { b.msg = SomeMessage{} }
func (b *SomeMessageBuilder) Descriptor() *message.Descriptor { return someMessageDescriptor }
func (b *SomeMessageBuilder) AddUnknown(raw []byte) { b.msg.unknown = append(b.msg.unknown, raw...) }
func (b *SomeMessageBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *SomeMessageBuilder) ParseFrom(d *wire.Decoder) (*SomeMessageBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *SomeMessageBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	switch fd.Number {
	case 1:
		v, err := d.ReadInt32()
		if err != nil {
			return err
		}
		b.SetInt32Field(v)
	case 2:
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		b.SetStringField(v)
	}
	return nil
}

// ===== ExtendedMessage =====

// ExtendedMessage is SomeMessage plus bytes_field and double_field.
type ExtendedMessage struct {
	SomeMessage
	bytesField     []byte
	hasBytesField  bool
	doubleField    float64
	hasDoubleField bool
}

func (m *ExtendedMessage) Descriptor() *message.Descriptor { return extendedMessageDescriptor }

// BytesField returns a copy of the bytes value.
func (m *ExtendedMessage) BytesField() []byte {
	return bytes.Clone(m.bytesField)
}

func (m *ExtendedMessage) HasBytesField() bool { return m.hasBytesField }
func (m *ExtendedMessage) DoubleField() float64 { return m.doubleField }
func (m *ExtendedMessage) HasDoubleField() bool { return m.hasDoubleField }

func (m *ExtendedMessage) Size() int {
	n := 0
	if m.hasInt32Field {
		n += wire.Int32Size(1, m.int32Field)
	}
	if m.hasStringField {
		n += wire.StringSize(2, m.stringField)
	}
	if m.hasBytesField {
		n += wire.BytesSize(3, m.bytesField)
	}
	if m.hasDoubleField {
		n += wire.DoubleSize(4, m.doubleField)
	}
	return n + m.unknown.Size()
}

func (m *ExtendedMessage) EncodeTo(e *wire.Encoder) error {
	if m.hasInt32Field {
		e.WriteInt32(1, m.int32Field)
	}
	if m.hasStringField {
		e.WriteString(2, m.stringField)
	}
	if m.hasBytesField {
		e.WriteBytes(3, m.bytesField)
	}
	if m.hasDoubleField {
		e.WriteDouble(4, m.doubleField)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *ExtendedMessage) Equal(o *ExtendedMessage) bool {
	return m.SomeMessage.Equal(&o.SomeMessage) &&
		bytes.Equal(m.bytesField, o.bytesField) &&
		m.doubleField == o.doubleField
}

type ExtendedMessageBuilder struct {
	msg ExtendedMessage
}

func NewExtendedMessageBuilder() *ExtendedMessageBuilder {
	return &ExtendedMessageBuilder{}
}

func (b *ExtendedMessageBuilder) SetInt32Field(v int32) *ExtendedMessageBuilder {
	b.msg.int32Field, b.msg.hasInt32Field = v, true
	return b
}

func (b *ExtendedMessageBuilder) SetStringField(v string) *ExtendedMessageBuilder {
	b.msg.stringField, b.msg.hasStringField = v, true
	return b
}

// SetBytesField stores a copy of v.
func (b *ExtendedMessageBuilder) SetBytesField(v []byte) *ExtendedMessageBuilder {
	b.msg.bytesField, b.msg.hasBytesField = bytes.Clone(v), true
	return b
}

func (b *ExtendedMessageBuilder) SetDoubleField(v float64) *ExtendedMessageBuilder {
	b.msg.doubleField, b.msg.hasDoubleField = v, true
	return b
}

func (b *ExtendedMessageBuilder) MergeFrom(m *ExtendedMessage) *ExtendedMessageBuilder {
	if m.hasInt32Field {
		b.SetInt32Field(m.int32Field)
	}
	if m.hasStringField {
		b.SetStringField(m.stringField)
	}
	if m.hasBytesField {
		b.SetBytesField(m.bytesField)
	}
	if m.hasDoubleField {
		b.SetDoubleField(m.doubleField)
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *ExtendedMessageBuilder) Build() *ExtendedMessage {
	c := b.msg
	c.bytesField = bytes.Clone(b.msg.bytesField)
	c.unknown = b.msg.unknown.Clone()
	return &c
}

func (b *ExtendedMessageBuilder) Reset() { b.msg = ExtendedMessage{} }
func (b *ExtendedMessageBuilder) Descriptor() *message.Descriptor { return extendedMessageDescriptor }
func (b *ExtendedMessageBuilder) AddUnknown(raw []byte) { b.msg.unknown = append(b.msg.unknown, raw...) }
func (b *ExtendedMessageBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *ExtendedMessageBuilder) ParseFrom(d *wire.Decoder) (*ExtendedMessageBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *ExtendedMessageBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	switch fd.Number {
	case 1:
		v, err := d.ReadInt32()
		if err != nil {
			return err
		}
		b.SetInt32Field(v)
	case 2:
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		b.SetStringField(v)
	case 3:
		v, err := d.ReadBytes()
		if err != nil {
			return err
		}
		b.msg.bytesField, b.msg.hasBytesField = v, true
	case 4:
		v, err := d.ReadDouble()
		if err != nil {
			return err
		}
		b.SetDoubleField(v)
	}
	return nil
}

var (
	_ message.Message = (*SomeMessage)(nil)
	_ message.Message = (*ExtendedMessage)(nil)

	_ message.Builder = (*SomeMessageBuilder)(nil)
	_ message.Builder = (*ExtendedMessageBuilder)(nil)
)
