package sample

import (
	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/wire"
)

// The Grandfather tree: SonLeftLeft holds a SonRightLeft from the opposite
// branch and a FatherLeft from its own branch. Both are owned values; the
// types recurse through FatherLeft but any encoded instance is finite.

var (
	sonRightLeftDescriptor = message.NewDescriptor("Grandfather.FatherRight.SonRightLeft",
		message.FieldDescriptor{Number: 1, Name: "bar", Kind: message.KindString},
	)
	fatherRightDescriptor = message.NewDescriptor("Grandfather.FatherRight",
		message.FieldDescriptor{Number: 1, Name: "son", Kind: message.KindMessage, TypeName: "Grandfather.FatherRight.SonRightLeft"},
	)
	sonLeftLeftDescriptor = message.NewDescriptor("Grandfather.FatherLeft.SonLeftLeft",
		message.FieldDescriptor{Number: 1, Name: "brother", Kind: message.KindMessage, TypeName: "Grandfather.FatherRight.SonRightLeft"},
		message.FieldDescriptor{Number: 2, Name: "father", Kind: message.KindMessage, TypeName: "Grandfather.FatherLeft"},
	)
	fatherLeftDescriptor = message.NewDescriptor("Grandfather.FatherLeft",
		message.FieldDescriptor{Number: 1, Name: "son", Kind: message.KindMessage, TypeName: "Grandfather.FatherLeft.SonLeftLeft"},
	)
	grandfatherDescriptor = message.NewDescriptor("Grandfather",
		message.FieldDescriptor{Number: 1, Name: "left", Kind: message.KindMessage, TypeName: "Grandfather.FatherLeft"},
		message.FieldDescriptor{Number: 2, Name: "right", Kind: message.KindMessage, TypeName: "Grandfather.FatherRight"},
	)
)

// ===== Grandfather.FatherRight.SonRightLeft =====

type Grandfather_FatherRight_SonRightLeft struct {
	bar     string
	hasBar  bool
	unknown message.UnknownFields
}

var emptySonRightLeft = &Grandfather_FatherRight_SonRightLeft{}

func (m *Grandfather_FatherRight_SonRightLeft) Descriptor() *message.Descriptor {
	return sonRightLeftDescriptor
}
func (m *Grandfather_FatherRight_SonRightLeft) Unknown() message.UnknownFields { return m.unknown }
func (m *Grandfather_FatherRight_SonRightLeft) Bar() string { return m.bar }
func (m *Grandfather_FatherRight_SonRightLeft) HasBar() bool { return m.hasBar }

func (m *Grandfather_FatherRight_SonRightLeft) Size() int {
	n := 0
	if m.hasBar {
		n += wire.StringSize(1, m.bar)
	}
	return n + m.unknown.Size()
}

func (m *Grandfather_FatherRight_SonRightLeft) EncodeTo(e *wire.Encoder) error {
	if m.hasBar {
		e.WriteString(1, m.bar)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *Grandfather_FatherRight_SonRightLeft) Equal(o *Grandfather_FatherRight_SonRightLeft) bool {
	return m.Bar() == o.Bar()
}

func (m *Grandfather_FatherRight_SonRightLeft) clone() *Grandfather_FatherRight_SonRightLeft {
	if m == nil {
		return nil
	}
	c := *m
	c.unknown = m.unknown.Clone()
	return &c
}

type Grandfather_FatherRight_SonRightLeftBuilder struct {
	msg Grandfather_FatherRight_SonRightLeft
}

func NewGrandfather_FatherRight_SonRightLeftBuilder() *Grandfather_FatherRight_SonRightLeftBuilder {
	return &Grandfather_FatherRight_SonRightLeftBuilder{}
}

func (b *Grandfather_FatherRight_SonRightLeftBuilder) SetBar(v string) *Grandfather_FatherRight_SonRightLeftBuilder {
	b.msg.bar, b.msg.hasBar = v, true
	return b
}

func (b *Grandfather_FatherRight_SonRightLeftBuilder) MergeFrom(m *Grandfather_FatherRight_SonRightLeft) *Grandfather_FatherRight_SonRightLeftBuilder {
	if m.hasBar {
		b.SetBar(m.bar)
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *Grandfather_FatherRight_SonRightLeftBuilder) Build() *Grandfather_FatherRight_SonRightLeft {
	return b.msg.clone()
}

func (b *Grandfather_FatherRight_SonRightLeftBuilder) Reset() {
	b.msg = Grandfather_FatherRight_SonRightLeft{}
}
func (b *Grandfather_FatherRight_SonRightLeftBuilder) Descriptor() *message.Descriptor {
	return sonRightLeftDescriptor
}
func (b *Grandfather_FatherRight_SonRightLeftBuilder) AddUnknown(raw []byte) {
	b.msg.unknown = append(b.msg.unknown, raw...)
}
func (b *Grandfather_FatherRight_SonRightLeftBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *Grandfather_FatherRight_SonRightLeftBuilder) ParseFrom(d *wire.Decoder) (*Grandfather_FatherRight_SonRightLeftBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *Grandfather_FatherRight_SonRightLeftBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	if fd.Number == 1 {
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		b.SetBar(v)
	}
	return nil
}

// ===== Grandfather.FatherRight =====

type Grandfather_FatherRight struct {
	son     *Grandfather_FatherRight_SonRightLeft
	unknown message.UnknownFields
}

var emptyFatherRight = &Grandfather_FatherRight{}

func (m *Grandfather_FatherRight) Descriptor() *message.Descriptor { return fatherRightDescriptor }
func (m *Grandfather_FatherRight) Unknown() message.UnknownFields { return m.unknown }
func (m *Grandfather_FatherRight) HasSon() bool { return m.son != nil }

// Son returns the son, or an empty one when unset.
func (m *Grandfather_FatherRight) Son() *Grandfather_FatherRight_SonRightLeft {
	if m.son == nil {
		return emptySonRightLeft
	}
	return m.son
}

func (m *Grandfather_FatherRight) Size() int {
	n := 0
	if m.son != nil {
		n += wire.MessageSize(1, m.son.Size())
	}
	return n + m.unknown.Size()
}

func (m *Grandfather_FatherRight) EncodeTo(e *wire.Encoder) error {
	if m.son != nil {
		e.WriteMessage(1, m.son)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *Grandfather_FatherRight) Equal(o *Grandfather_FatherRight) bool {
	return m.HasSon() == o.HasSon() && m.Son().Equal(o.Son())
}

func (m *Grandfather_FatherRight) clone() *Grandfather_FatherRight {
	if m == nil {
		return nil
	}
	return &Grandfather_FatherRight{son: m.son.clone(), unknown: m.unknown.Clone()}
}

type Grandfather_FatherRightBuilder struct {
	msg Grandfather_FatherRight
}

func NewGrandfather_FatherRightBuilder() *Grandfather_FatherRightBuilder {
	return &Grandfather_FatherRightBuilder{}
}

// SetSon stores v; nil clears the field.
func (b *Grandfather_FatherRightBuilder) SetSon(v *Grandfather_FatherRight_SonRightLeft) *Grandfather_FatherRightBuilder {
	b.msg.son = v
	return b
}

func (b *Grandfather_FatherRightBuilder) MergeFrom(m *Grandfather_FatherRight) *Grandfather_FatherRightBuilder {
	if m.son != nil {
		b.msg.son = NewGrandfather_FatherRight_SonRightLeftBuilder().
			MergeFrom(b.msg.Son()).MergeFrom(m.son).Build()
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *Grandfather_FatherRightBuilder) Build() *Grandfather_FatherRight { return b.msg.clone() }

func (b *Grandfather_FatherRightBuilder) Reset() { b.msg = Grandfather_FatherRight{} }
func (b *Grandfather_FatherRightBuilder) Descriptor() *message.Descriptor {
	return fatherRightDescriptor
}
func (b *Grandfather_FatherRightBuilder) AddUnknown(raw []byte) {
	b.msg.unknown = append(b.msg.unknown, raw...)
}
func (b *Grandfather_FatherRightBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *Grandfather_FatherRightBuilder) ParseFrom(d *wire.Decoder) (*Grandfather_FatherRightBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *Grandfather_FatherRightBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	if fd.Number != 1 {
		return nil
	}
	// A repeated occurrence of a singular message merges into the first.
	sb := NewGrandfather_FatherRight_SonRightLeftBuilder().MergeFrom(b.msg.Son())
	if err := d.ReadMessage(sb); err != nil {
		return err
	}
	b.msg.son = &sb.msg
	return nil
}

// ===== Grandfather.FatherLeft.SonLeftLeft =====

type Grandfather_FatherLeft_SonLeftLeft struct {
	brother *Grandfather_FatherRight_SonRightLeft
	father  *Grandfather_FatherLeft
	unknown message.UnknownFields
}

var emptySonLeftLeft = &Grandfather_FatherLeft_SonLeftLeft{}

func (m *Grandfather_FatherLeft_SonLeftLeft) Descriptor() *message.Descriptor {
	return sonLeftLeftDescriptor
}
func (m *Grandfather_FatherLeft_SonLeftLeft) Unknown() message.UnknownFields { return m.unknown }
func (m *Grandfather_FatherLeft_SonLeftLeft) HasBrother() bool { return m.brother != nil }
func (m *Grandfather_FatherLeft_SonLeftLeft) HasFather() bool { return m.father != nil }

// Brother is a sibling from the FatherRight branch.
func (m *Grandfather_FatherLeft_SonLeftLeft) Brother() *Grandfather_FatherRight_SonRightLeft {
	if m.brother == nil {
		return emptySonRightLeft
	}
	return m.brother
}

func (m *Grandfather_FatherLeft_SonLeftLeft) Father() *Grandfather_FatherLeft {
	if m.father == nil {
		return emptyFatherLeft
	}
	return m.father
}

func (m *Grandfather_FatherLeft_SonLeftLeft) Size() int {
	n := 0
	if m.brother != nil {
		n += wire.MessageSize(1, m.brother.Size())
	}
	if m.father != nil {
		n += wire.MessageSize(2, m.father.Size())
	}
	return n + m.unknown.Size()
}

func (m *Grandfather_FatherLeft_SonLeftLeft) EncodeTo(e *wire.Encoder) error {
	if m.brother != nil {
		e.WriteMessage(1, m.brother)
	}
	if m.father != nil {
		e.WriteMessage(2, m.father)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *Grandfather_FatherLeft_SonLeftLeft) Equal(o *Grandfather_FatherLeft_SonLeftLeft) bool {
	return m.HasBrother() == o.HasBrother() && m.Brother().Equal(o.Brother()) &&
		m.HasFather() == o.HasFather() && m.Father().Equal(o.Father())
}

func (m *Grandfather_FatherLeft_SonLeftLeft) clone() *Grandfather_FatherLeft_SonLeftLeft {
	if m == nil {
		return nil
	}
	return &Grandfather_FatherLeft_SonLeftLeft{
		brother: m.brother.clone(),
		father:  m.father.clone(),
		unknown: m.unknown.Clone(),
	}
}

type Grandfather_FatherLeft_SonLeftLeftBuilder struct {
	msg Grandfather_FatherLeft_SonLeftLeft
}

func NewGrandfather_FatherLeft_SonLeftLeftBuilder() *Grandfather_FatherLeft_SonLeftLeftBuilder {
	return &Grandfather_FatherLeft_SonLeftLeftBuilder{}
}

// SetBrother stores v; nil clears the field.
func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) SetBrother(v *Grandfather_FatherRight_SonRightLeft) *Grandfather_FatherLeft_SonLeftLeftBuilder {
	b.msg.brother = v
	return b
}

// SetFather stores v; nil clears the field.
func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) SetFather(v *Grandfather_FatherLeft) *Grandfather_FatherLeft_SonLeftLeftBuilder {
	b.msg.father = v
	return b
}

func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) MergeFrom(m *Grandfather_FatherLeft_SonLeftLeft) *Grandfather_FatherLeft_SonLeftLeftBuilder {
	if m.brother != nil {
		b.msg.brother = NewGrandfather_FatherRight_SonRightLeftBuilder().
			MergeFrom(b.msg.Brother()).MergeFrom(m.brother).Build()
	}
	if m.father != nil {
		b.msg.father = NewGrandfather_FatherLeftBuilder().
			MergeFrom(b.msg.Father()).MergeFrom(m.father).Build()
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) Build() *Grandfather_FatherLeft_SonLeftLeft {
	return b.msg.clone()
}

func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) Reset() {
	b.msg = Grandfather_FatherLeft_SonLeftLeft{}
}
func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) Descriptor() *message.Descriptor {
	return sonLeftLeftDescriptor
}
func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) AddUnknown(raw []byte) {
	b.msg.unknown = append(b.msg.unknown, raw...)
}
func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) ParseFrom(d *wire.Decoder) (*Grandfather_FatherLeft_SonLeftLeftBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *Grandfather_FatherLeft_SonLeftLeftBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	switch fd.Number {
	case 1:
		sb := NewGrandfather_FatherRight_SonRightLeftBuilder().MergeFrom(b.msg.Brother())
		if err := d.ReadMessage(sb); err != nil {
			return err
		}
		b.msg.brother = &sb.msg
	case 2:
		fb := NewGrandfather_FatherLeftBuilder().MergeFrom(b.msg.Father())
		if err := d.ReadMessage(fb); err != nil {
			return err
		}
		b.msg.father = &fb.msg
	}
	return nil
}

// ===== Grandfather.FatherLeft =====

type Grandfather_FatherLeft struct {
	son     *Grandfather_FatherLeft_SonLeftLeft
	unknown message.UnknownFields
}

var emptyFatherLeft = &Grandfather_FatherLeft{}

func (m *Grandfather_FatherLeft) Descriptor() *message.Descriptor { return fatherLeftDescriptor }
func (m *Grandfather_FatherLeft) Unknown() message.UnknownFields { return m.unknown }
func (m *Grandfather_FatherLeft) HasSon() bool { return m.son != nil }

func (m *Grandfather_FatherLeft) Son() *Grandfather_FatherLeft_SonLeftLeft {
	if m.son == nil {
		return emptySonLeftLeft
	}
	return m.son
}

func (m *Grandfather_FatherLeft) Size() int {
	n := 0
	if m.son != nil {
		n += wire.MessageSize(1, m.son.Size())
	}
	return n + m.unknown.Size()
}

func (m *Grandfather_FatherLeft) EncodeTo(e *wire.Encoder) error {
	if m.son != nil {
		e.WriteMessage(1, m.son)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *Grandfather_FatherLeft) Equal(o *Grandfather_FatherLeft) bool {
	return m.HasSon() == o.HasSon() && m.Son().Equal(o.Son())
}

func (m *Grandfather_FatherLeft) clone() *Grandfather_FatherLeft {
	if m == nil {
		return nil
	}
	return &Grandfather_FatherLeft{son: m.son.clone(), unknown: m.unknown.Clone()}
}

type Grandfather_FatherLeftBuilder struct {
	msg Grandfather_FatherLeft
}

func NewGrandfather_FatherLeftBuilder() *Grandfather_FatherLeftBuilder {
	return &Grandfather_FatherLeftBuilder{}
}

// SetSon stores v; nil clears the field.
func (b *Grandfather_FatherLeftBuilder) SetSon(v *Grandfather_FatherLeft_SonLeftLeft) *Grandfather_FatherLeftBuilder {
	b.msg.son = v
	return b
}

func (b *Grandfather_FatherLeftBuilder) MergeFrom(m *Grandfather_FatherLeft) *Grandfather_FatherLeftBuilder {
	if m.son != nil {
		b.msg.son = NewGrandfather_FatherLeft_SonLeftLeftBuilder().
			MergeFrom(b.msg.Son()).MergeFrom(m.son).Build()
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *Grandfather_FatherLeftBuilder) Build() *Grandfather_FatherLeft { return b.msg.clone() }

func (b *Grandfather_FatherLeftBuilder) Reset() { b.msg = Grandfather_FatherLeft{} }
func (b *Grandfather_FatherLeftBuilder) Descriptor() *message.Descriptor {
	return fatherLeftDescriptor
}
func (b *Grandfather_FatherLeftBuilder) AddUnknown(raw []byte) {
	b.msg.unknown = append(b.msg.unknown, raw...)
}
func (b *Grandfather_FatherLeftBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *Grandfather_FatherLeftBuilder) ParseFrom(d *wire.Decoder) (*Grandfather_FatherLeftBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *Grandfather_FatherLeftBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	if fd.Number != 1 {
		return nil
	}
	sb := NewGrandfather_FatherLeft_SonLeftLeftBuilder().MergeFrom(b.msg.Son())
	if err := d.ReadMessage(sb); err != nil {
		return err
	}
	b.msg.son = &sb.msg
	return nil
}

// ===== Grandfather =====

type Grandfather struct {
	left    *Grandfather_FatherLeft
	right   *Grandfather_FatherRight
	unknown message.UnknownFields
}

func (m *Grandfather) Descriptor() *message.Descriptor { return grandfatherDescriptor }
func (m *Grandfather) Unknown() message.UnknownFields { return m.unknown }
func (m *Grandfather) HasLeft() bool { return m.left != nil }
func (m *Grandfather) HasRight() bool { return m.right != nil }

func (m *Grandfather) Left() *Grandfather_FatherLeft {
	if m.left == nil {
		return emptyFatherLeft
	}
	return m.left
}

func (m *Grandfather) Right() *Grandfather_FatherRight {
	if m.right == nil {
		return emptyFatherRight
	}
	return m.right
}

func (m *Grandfather) Size() int {
	n := 0
	if m.left != nil {
		n += wire.MessageSize(1, m.left.Size())
	}
	if m.right != nil {
		n += wire.MessageSize(2, m.right.Size())
	}
	return n + m.unknown.Size()
}

func (m *Grandfather) EncodeTo(e *wire.Encoder) error {
	if m.left != nil {
		e.WriteMessage(1, m.left)
	}
	if m.right != nil {
		e.WriteMessage(2, m.right)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *Grandfather) Equal(o *Grandfather) bool {
	return m.HasLeft() == o.HasLeft() && m.Left().Equal(o.Left()) &&
		m.HasRight() == o.HasRight() && m.Right().Equal(o.Right())
}

type GrandfatherBuilder struct {
	msg Grandfather
}

func NewGrandfatherBuilder() *GrandfatherBuilder {
	return &GrandfatherBuilder{}
}

// SetLeft stores v; nil clears the field.
func (b *GrandfatherBuilder) SetLeft(v *Grandfather_FatherLeft) *GrandfatherBuilder {
	b.msg.left = v
	return b
}

// SetRight stores v; nil clears the field.
func (b *GrandfatherBuilder) SetRight(v *Grandfather_FatherRight) *GrandfatherBuilder {
	b.msg.right = v
	return b
}

func (b *GrandfatherBuilder) MergeFrom(m *Grandfather) *GrandfatherBuilder {
	if m.left != nil {
		b.msg.left = NewGrandfather_FatherLeftBuilder().MergeFrom(b.msg.Left()).MergeFrom(m.left).Build()
	}
	if m.right != nil {
		b.msg.right = NewGrandfather_FatherRightBuilder().MergeFrom(b.msg.Right()).MergeFrom(m.right).Build()
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *GrandfatherBuilder) Build() *Grandfather {
	return &Grandfather{
		left:    b.msg.left.clone(),
		right:   b.msg.right.clone(),
		unknown: b.msg.unknown.Clone(),
	}
}

func (b *GrandfatherBuilder) Reset() { b.msg = Grandfather{} }
func (b *GrandfatherBuilder) Descriptor() *message.Descriptor { return grandfatherDescriptor }
func (b *GrandfatherBuilder) AddUnknown(raw []byte) { b.msg.unknown = append(b.msg.unknown, raw...) }
func (b *GrandfatherBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *GrandfatherBuilder) ParseFrom(d *wire.Decoder) (*GrandfatherBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *GrandfatherBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	switch fd.Number {
	case 1:
		lb := NewGrandfather_FatherLeftBuilder().MergeFrom(b.msg.Left())
		if err := d.ReadMessage(lb); err != nil {
			return err
		}
		b.msg.left = &lb.msg
	case 2:
		rb := NewGrandfather_FatherRightBuilder().MergeFrom(b.msg.Right())
		if err := d.ReadMessage(rb); err != nil {
			return err
		}
		b.msg.right = &rb.msg
	}
	return nil
}

var (
	_ message.Message = (*Grandfather)(nil)
	_ message.Message = (*Grandfather_FatherLeft)(nil)
	_ message.Message = (*Grandfather_FatherLeft_SonLeftLeft)(nil)
	_ message.Message = (*Grandfather_FatherRight)(nil)
	_ message.Message = (*Grandfather_FatherRight_SonRightLeft)(nil)

	_ message.Builder = (*GrandfatherBuilder)(nil)
	_ message.Builder = (*Grandfather_FatherLeftBuilder)(nil)
	_ message.Builder = (*Grandfather_FatherLeft_SonLeftLeftBuilder)(nil)
	_ message.Builder = (*Grandfather_FatherRightBuilder)(nil)
	_ message.Builder = (*Grandfather_FatherRight_SonRightLeftBuilder)(nil)
)
