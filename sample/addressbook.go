package sample

import (
	"fmt"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/wire"
)

// Person_PhoneType is the kind of a phone number.
type Person_PhoneType int32

const (
	Person_MOBILE Person_PhoneType = 0
	Person_HOME   Person_PhoneType = 1
	Person_WORK   Person_PhoneType = 2
)

var personPhoneTypeNames = map[Person_PhoneType]string{
	Person_MOBILE: "MOBILE",
	Person_HOME:   "HOME",
	Person_WORK:   "WORK",
}

func (t Person_PhoneType) String() string {
	if name, ok := personPhoneTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Person_PhoneType(%d)", int32(t))
}

// ===== Person.PhoneNumber =====

var personPhoneNumberDescriptor = message.NewDescriptor("tutorial.Person.PhoneNumber",
	message.FieldDescriptor{Number: 1, Name: "number", Kind: message.KindString},
	message.FieldDescriptor{Number: 2, Name: "type", Kind: message.KindEnum, TypeName: "tutorial.Person.PhoneType", Default: Person_HOME},
)

// Person_PhoneNumber is one phone entry of a Person.
type Person_PhoneNumber struct {
	number    string
	hasNumber bool
	typ       Person_PhoneType
	hasType   bool
	unknown   message.UnknownFields
}

func (m *Person_PhoneNumber) Descriptor() *message.Descriptor { return personPhoneNumberDescriptor }
func (m *Person_PhoneNumber) Unknown() message.UnknownFields { return m.unknown }

func (m *Person_PhoneNumber) Number() string { return m.number }
func (m *Person_PhoneNumber) HasNumber() bool { return m.hasNumber }
func (m *Person_PhoneNumber) HasType() bool { return m.hasType }

// Type returns the phone type, HOME when unset.
func (m *Person_PhoneNumber) Type() Person_PhoneType {
	if !m.hasType {
		return Person_HOME
	}
	return m.typ
}

func (m *Person_PhoneNumber) Size() int {
	n := 0
	if m.hasNumber {
		n += wire.StringSize(1, m.number)
	}
	if m.hasType {
		n += wire.EnumSize(2, int32(m.typ))
	}
	return n + m.unknown.Size()
}

func (m *Person_PhoneNumber) EncodeTo(e *wire.Encoder) error {
	if m.hasNumber {
		e.WriteString(1, m.number)
	}
	if m.hasType {
		e.WriteEnum(2, int32(m.typ))
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

// Equal compares field values as the getters report them.
func (m *Person_PhoneNumber) Equal(o *Person_PhoneNumber) bool {
	return m.Number() == o.Number() && m.Type() == o.Type()
}

func (m *Person_PhoneNumber) clone() *Person_PhoneNumber {
	c := *m
	c.unknown = m.unknown.Clone()
	return &c
}

// Person_PhoneNumberBuilder stages a Person_PhoneNumber.
type Person_PhoneNumberBuilder struct {
	msg Person_PhoneNumber
}

func NewPerson_PhoneNumberBuilder() *Person_PhoneNumberBuilder {
	return &Person_PhoneNumberBuilder{}
}

func (b *Person_PhoneNumberBuilder) SetNumber(v string) *Person_PhoneNumberBuilder {
	b.msg.number, b.msg.hasNumber = v, true
	return b
}

func (b *Person_PhoneNumberBuilder) SetType(v Person_PhoneType) *Person_PhoneNumberBuilder {
	b.msg.typ, b.msg.hasType = v, true
	return b
}

// MergeFrom copies every field set in m over the builder's values.
func (b *Person_PhoneNumberBuilder) MergeFrom(m *Person_PhoneNumber) *Person_PhoneNumberBuilder {
	if m.hasNumber {
		b.SetNumber(m.number)
	}
	if m.hasType {
		b.SetType(m.typ)
	}
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *Person_PhoneNumberBuilder) Build() *Person_PhoneNumber { return b.msg.clone() }

func (b *Person_PhoneNumberBuilder) Reset() { b.msg = Person_PhoneNumber{} }
func (b *Person_PhoneNumberBuilder) Descriptor() *message.Descriptor { return personPhoneNumberDescriptor }
func (b *Person_PhoneNumberBuilder) AddUnknown(raw []byte) { b.msg.unknown = append(b.msg.unknown, raw...) }
func (b *Person_PhoneNumberBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

// ParseFrom reads fields from d until the enclosing message ends.
func (b *Person_PhoneNumberBuilder) ParseFrom(d *wire.Decoder) (*Person_PhoneNumberBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *Person_PhoneNumberBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	switch fd.Number {
	case 1:
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		b.SetNumber(v)
	case 2:
		v, err := d.ReadEnum()
		if err != nil {
			return err
		}
		b.SetType(Person_PhoneType(v))
	}
	return nil
}

// ===== Person =====

var personDescriptor = message.NewDescriptor("tutorial.Person",
	message.FieldDescriptor{Number: 1, Name: "name", Kind: message.KindString},
	message.FieldDescriptor{Number: 2, Name: "id", Kind: message.KindInt32},
	message.FieldDescriptor{Number: 3, Name: "email", Kind: message.KindString},
	message.FieldDescriptor{Number: 4, Name: "phones", Kind: message.KindMessage, Cardinality: message.Repeated, TypeName: "tutorial.Person.PhoneNumber"},
)

// Person is one entry of an AddressBook.
type Person struct {
	name     string
	hasName  bool
	id       int32
	hasID    bool
	email    string
	hasEmail bool
	phones   []*Person_PhoneNumber
	unknown  message.UnknownFields
}

func (m *Person) Descriptor() *message.Descriptor { return personDescriptor }
func (m *Person) Unknown() message.UnknownFields { return m.unknown }

func (m *Person) Name() string { return m.name }
func (m *Person) HasName() bool { return m.hasName }
func (m *Person) ID() int32 { return m.id }
func (m *Person) HasID() bool { return m.hasID }
func (m *Person) Email() string { return m.email }
func (m *Person) HasEmail() bool { return m.hasEmail }

// Phones returns the phone list. The slice is a copy; the entries are
// immutable and shared.
func (m *Person) Phones() []*Person_PhoneNumber {
	return append([]*Person_PhoneNumber(nil), m.phones...)
}

func (m *Person) Size() int {
	n := 0
	if m.hasName {
		n += wire.StringSize(1, m.name)
	}
	if m.hasID {
		n += wire.Int32Size(2, m.id)
	}
	if m.hasEmail {
		n += wire.StringSize(3, m.email)
	}
	for _, p := range m.phones {
		n += wire.MessageSize(4, p.Size())
	}
	return n + m.unknown.Size()
}

func (m *Person) EncodeTo(e *wire.Encoder) error {
	if m.hasName {
		e.WriteString(1, m.name)
	}
	if m.hasID {
		e.WriteInt32(2, m.id)
	}
	if m.hasEmail {
		e.WriteString(3, m.email)
	}
	for _, p := range m.phones {
		e.WriteMessage(4, p)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *Person) Equal(o *Person) bool {
	if m.Name() != o.Name() || m.ID() != o.ID() || m.Email() != o.Email() {
		return false
	}
	if len(m.phones) != len(o.phones) {
		return false
	}
	for i := range m.phones {
		if !m.phones[i].Equal(o.phones[i]) {
			return false
		}
	}
	return true
}

func (m *Person) clone() *Person {
	c := *m
	c.phones = nil
	for _, p := range m.phones {
		c.phones = append(c.phones, p.clone())
	}
	c.unknown = m.unknown.Clone()
	return &c
}

// PersonBuilder stages a Person.
type PersonBuilder struct {
	msg Person
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{}
}

func (b *PersonBuilder) SetName(v string) *PersonBuilder {
	b.msg.name, b.msg.hasName = v, true
	return b
}

func (b *PersonBuilder) SetID(v int32) *PersonBuilder {
	b.msg.id, b.msg.hasID = v, true
	return b
}

func (b *PersonBuilder) SetEmail(v string) *PersonBuilder {
	b.msg.email, b.msg.hasEmail = v, true
	return b
}

// AddPhone appends v. A nil v is ignored.
func (b *PersonBuilder) AddPhone(v *Person_PhoneNumber) *PersonBuilder {
	if v == nil {
		return b
	}
	b.msg.phones = append(b.msg.phones, v)
	return b
}

func (b *PersonBuilder) MergeFrom(m *Person) *PersonBuilder {
	if m.hasName {
		b.SetName(m.name)
	}
	if m.hasID {
		b.SetID(m.id)
	}
	if m.hasEmail {
		b.SetEmail(m.email)
	}
	b.msg.phones = append(b.msg.phones, m.phones...)
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *PersonBuilder) Build() *Person { return b.msg.clone() }

func (b *PersonBuilder) Reset() { b.msg = Person{} }
func (b *PersonBuilder) Descriptor() *message.Descriptor { return personDescriptor }
func (b *PersonBuilder) AddUnknown(raw []byte) { b.msg.unknown = append(b.msg.unknown, raw...) }
func (b *PersonBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *PersonBuilder) ParseFrom(d *wire.Decoder) (*PersonBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *PersonBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	switch fd.Number {
	case 1:
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		b.SetName(v)
	case 2:
		v, err := d.ReadInt32()
		if err != nil {
			return err
		}
		b.SetID(v)
	case 3:
		v, err := d.ReadString()
		if err != nil {
			return err
		}
		b.SetEmail(v)
	case 4:
		pb := NewPerson_PhoneNumberBuilder()
		if err := d.ReadMessage(pb); err != nil {
			return err
		}
		b.msg.phones = append(b.msg.phones, &pb.msg)
	}
	return nil
}

// ===== AddressBook =====

var addressBookDescriptor = message.NewDescriptor("tutorial.AddressBook",
	message.FieldDescriptor{Number: 1, Name: "people", Kind: message.KindMessage, Cardinality: message.Repeated, TypeName: "tutorial.Person"},
)

// AddressBook is a list of people.
type AddressBook struct {
	people  []*Person
	unknown message.UnknownFields
}

func (m *AddressBook) Descriptor() *message.Descriptor { return addressBookDescriptor }
func (m *AddressBook) Unknown() message.UnknownFields { return m.unknown }

func (m *AddressBook) People() []*Person {
	return append([]*Person(nil), m.people...)
}

func (m *AddressBook) Size() int {
	n := 0
	for _, p := range m.people {
		n += wire.MessageSize(1, p.Size())
	}
	return n + m.unknown.Size()
}

func (m *AddressBook) EncodeTo(e *wire.Encoder) error {
	for _, p := range m.people {
		e.WriteMessage(1, p)
	}
	m.unknown.EncodeTo(e)
	return e.Err()
}

func (m *AddressBook) Equal(o *AddressBook) bool {
	if len(m.people) != len(o.people) {
		return false
	}
	for i := range m.people {
		if !m.people[i].Equal(o.people[i]) {
			return false
		}
	}
	return true
}

func (m *AddressBook) clone() *AddressBook {
	c := &AddressBook{unknown: m.unknown.Clone()}
	for _, p := range m.people {
		c.people = append(c.people, p.clone())
	}
	return c
}

// AddressBookBuilder stages an AddressBook.
type AddressBookBuilder struct {
	msg AddressBook
}

func NewAddressBookBuilder() *AddressBookBuilder {
	return &AddressBookBuilder{}
}

// AddPerson appends v. A nil v is ignored.
func (b *AddressBookBuilder) AddPerson(v *Person) *AddressBookBuilder {
	if v == nil {
		return b
	}
	b.msg.people = append(b.msg.people, v)
	return b
}

func (b *AddressBookBuilder) MergeFrom(m *AddressBook) *AddressBookBuilder {
	b.msg.people = append(b.msg.people, m.people...)
	b.msg.unknown = append(b.msg.unknown, m.unknown...)
	return b
}

func (b *AddressBookBuilder) Build() *AddressBook { return b.msg.clone() }

func (b *AddressBookBuilder) Reset() { b.msg = AddressBook{} }
func (b *AddressBookBuilder) Descriptor() *message.Descriptor { return addressBookDescriptor }
func (b *AddressBookBuilder) AddUnknown(raw []byte) { b.msg.unknown = append(b.msg.unknown, raw...) }
func (b *AddressBookBuilder) DecodeFrom(d *wire.Decoder) error {
	return message.Parse(d, b)
}

func (b *AddressBookBuilder) ParseFrom(d *wire.Decoder) (*AddressBookBuilder, error) {
	return b, b.DecodeFrom(d)
}

func (b *AddressBookBuilder) ParseField(d *wire.Decoder, fd *message.FieldDescriptor, wt wire.WireType) error {
	if fd.Number != 1 {
		return nil
	}
	pb := NewPersonBuilder()
	if err := d.ReadMessage(pb); err != nil {
		return err
	}
	b.msg.people = append(b.msg.people, &pb.msg)
	return nil
}

// Compile-time interface checks.
var (
	_ message.Message = (*Person_PhoneNumber)(nil)
	_ message.Message = (*Person)(nil)
	_ message.Message = (*AddressBook)(nil)

	_ message.Builder = (*Person_PhoneNumberBuilder)(nil)
	_ message.Builder = (*PersonBuilder)(nil)
	_ message.Builder = (*AddressBookBuilder)(nil)
)
