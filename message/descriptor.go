package message

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/protocodec/wire"
)

// Kind is the semantic type of a field. It is a closed set; the wire type
// used on the stream follows from it.
type Kind uint8

const (
	KindInt32 Kind = iota + 1
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindBool
	KindEnum
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindMessage
)

var kindNames = map[Kind]string{
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
	KindBool:     "bool",
	KindEnum:     "enum",
	KindFixed32:  "fixed32",
	KindFixed64:  "fixed64",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindString:   "string",
	KindBytes:    "bytes",
	KindMessage:  "message",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// WireType returns the framing used for values of this kind.
func (k Kind) WireType() wire.WireType {
	switch k {
	case KindFixed32, KindSfixed32, KindFloat:
		return wire.WireFixed32
	case KindFixed64, KindSfixed64, KindDouble:
		return wire.WireFixed64
	case KindString, KindBytes, KindMessage:
		return wire.WireBytes
	default:
		return wire.WireVarint
	}
}

// Packable reports whether repeated values of this kind may arrive packed.
func (k Kind) Packable() bool {
	return k.WireType() != wire.WireBytes
}

// Cardinality distinguishes singular from repeated fields.
type Cardinality uint8

const (
	Singular Cardinality = iota
	Repeated
)

func (c Cardinality) String() string {
	if c == Repeated {
		return "repeated"
	}
	return "singular"
}

// FieldDescriptor declares one numbered field of a message type.
type FieldDescriptor struct {
	Number      wire.FieldNumber
	Name        string
	Kind        Kind
	Cardinality Cardinality
	TypeName    string // message or enum type, for KindMessage and KindEnum
	Default     any    // value of an unset singular field; nil means the zero value
	Extension   bool   // declared by an extended type, unknown to its base
}

// WireType returns the wire type the field is written with.
func (fd *FieldDescriptor) WireType() wire.WireType {
	return fd.Kind.WireType()
}

// IsRepeated reports whether the field holds a list.
func (fd *FieldDescriptor) IsRepeated() bool {
	return fd.Cardinality == Repeated
}

// Accepts reports whether a value framed with wt can be decoded into the
// field. Repeated scalars also accept the packed form.
func (fd *FieldDescriptor) Accepts(wt wire.WireType) bool {
	if wt == fd.WireType() {
		return true
	}
	return fd.IsRepeated() && fd.Kind.Packable() && wt == wire.WireBytes
}

// Descriptor is the immutable field table of one message type.
type Descriptor struct {
	name     string
	fields   []*FieldDescriptor // ascending by number
	byNumber map[wire.FieldNumber]*FieldDescriptor
	base     *Descriptor
}

// NewDescriptor builds the field table for a message type. Field tables are
// declared in code, so an invalid table is a programming error and panics.
func NewDescriptor(name string, fields ...FieldDescriptor) *Descriptor {
	d := &Descriptor{
		name:     name,
		byNumber: make(map[wire.FieldNumber]*FieldDescriptor, len(fields)),
	}
	d.add(fields)
	return d
}

// Extend returns a new descriptor holding every field of d plus ext. The
// extra fields are flagged as extensions; d itself is left untouched.
func (d *Descriptor) Extend(name string, ext ...FieldDescriptor) *Descriptor {
	out := &Descriptor{
		name:     name,
		byNumber: make(map[wire.FieldNumber]*FieldDescriptor, len(d.fields)+len(ext)),
		base:     d,
	}
	inherited := make([]FieldDescriptor, 0, len(d.fields))
	for _, fd := range d.fields {
		inherited = append(inherited, *fd)
	}
	out.add(inherited)
	flagged := make([]FieldDescriptor, len(ext))
	for i, fd := range ext {
		fd.Extension = true
		flagged[i] = fd
	}
	out.add(flagged)
	return out
}

func (d *Descriptor) add(fields []FieldDescriptor) {
	for i := range fields {
		fd := fields[i]
		if !fd.Number.Valid() {
			panic(fmt.Sprintf("message %s: field %q has invalid number %d", d.name, fd.Name, fd.Number))
		}
		if prev, ok := d.byNumber[fd.Number]; ok {
			panic(fmt.Sprintf("message %s: fields %q and %q share number %d", d.name, prev.Name, fd.Name, fd.Number))
		}
		if fd.Kind == 0 {
			panic(fmt.Sprintf("message %s: field %q has no kind", d.name, fd.Name))
		}
		d.byNumber[fd.Number] = &fd
		d.fields = append(d.fields, &fd)
	}
	sort.Slice(d.fields, func(i, j int) bool {
		return d.fields[i].Number < d.fields[j].Number
	})
}

// Name returns the message type name.
func (d *Descriptor) Name() string { return d.name }

// Base returns the descriptor d was extended from, or nil.
func (d *Descriptor) Base() *Descriptor { return d.base }

// Field looks up a field by number; nil means the number is unknown to this
// type.
func (d *Descriptor) Field(num wire.FieldNumber) *FieldDescriptor {
	return d.byNumber[num]
}

// FieldByName looks up a field by its declared name.
func (d *Descriptor) FieldByName(name string) *FieldDescriptor {
	for _, fd := range d.fields {
		if fd.Name == name {
			return fd
		}
	}
	return nil
}

// Fields returns the field table in ascending number order.
func (d *Descriptor) Fields() []*FieldDescriptor {
	out := make([]*FieldDescriptor, len(d.fields))
	copy(out, d.fields)
	return out
}

// Extensions returns only the fields added by Extend.
func (d *Descriptor) Extensions() []*FieldDescriptor {
	var out []*FieldDescriptor
	for _, fd := range d.fields {
		if fd.Extension {
			out = append(out, fd)
		}
	}
	return out
}
