package schema

import (
	"strings"

	"github.com/anirudhraja/protocodec/message"
)

// File is the parsed content of one .proto source.
type File struct {
	Name     string     `json:"name"`     // file.proto
	Package  string     `json:"package"`  // package name
	Syntax   string     `json:"syntax"`   // proto2 or proto3
	Messages []*Message `json:"messages"` // top-level message definitions
	Enums    []*Enum    `json:"enums"`    // top-level enum definitions

	messages map[string]*Message // fully qualified name -> message
	enums    map[string]*Enum    // fully qualified name -> enum
}

// Message represents a protobuf message definition
type Message struct {
	Name        string     `json:"name"`         // "PhoneNumber"
	FullName    string     `json:"full_name"`    // "tutorial.Person.PhoneNumber"
	Fields      []*Field   `json:"fields"`       // message fields, oneof members included
	NestedTypes []*Message `json:"nested_types"` // nested messages
	NestedEnums []*Enum    `json:"nested_enums"` // nested enums
}

// Field represents a message field
type Field struct {
	Name         string     `json:"name"`          // "user_name"
	Number       int32      `json:"number"`        // 1
	Label        FieldLabel `json:"label"`         // optional, required, repeated
	Type         string     `json:"type"`          // as written: "int32", "PhoneType"
	TypeName     string     `json:"type_name"`     // resolved full name for message and enum types
	DefaultValue string     `json:"default_value"` // default value (proto2)
}

// FieldLabel represents field labels
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRequired FieldLabel = "required"
	LabelRepeated FieldLabel = "repeated"
)

// PrimitiveType represents protobuf primitive types
type PrimitiveType string

const (
	TypeDouble   PrimitiveType = "double"
	TypeFloat    PrimitiveType = "float"
	TypeInt64    PrimitiveType = "int64"
	TypeUint64   PrimitiveType = "uint64"
	TypeInt32    PrimitiveType = "int32"
	TypeFixed64  PrimitiveType = "fixed64"
	TypeFixed32  PrimitiveType = "fixed32"
	TypeBool     PrimitiveType = "bool"
	TypeString   PrimitiveType = "string"
	TypeBytes    PrimitiveType = "bytes"
	TypeUint32   PrimitiveType = "uint32"
	TypeSfixed32 PrimitiveType = "sfixed32"
	TypeSfixed64 PrimitiveType = "sfixed64"
	TypeSint32   PrimitiveType = "sint32"
	TypeSint64   PrimitiveType = "sint64"
)

var primitiveKinds = map[PrimitiveType]message.Kind{
	TypeDouble:   message.KindDouble,
	TypeFloat:    message.KindFloat,
	TypeInt64:    message.KindInt64,
	TypeUint64:   message.KindUint64,
	TypeInt32:    message.KindInt32,
	TypeFixed64:  message.KindFixed64,
	TypeFixed32:  message.KindFixed32,
	TypeBool:     message.KindBool,
	TypeString:   message.KindString,
	TypeBytes:    message.KindBytes,
	TypeUint32:   message.KindUint32,
	TypeSfixed32: message.KindSfixed32,
	TypeSfixed64: message.KindSfixed64,
	TypeSint32:   message.KindSint32,
	TypeSint64:   message.KindSint64,
}

// IsPackedType checks and returns if the Primitive type is packed for repeated label
func IsPackedType(t PrimitiveType) bool {
	k, ok := primitiveKinds[t]
	return ok && k.Packable()
}

// Enum represents an enum definition
type Enum struct {
	Name     string       `json:"name"`      // "PhoneType"
	FullName string       `json:"full_name"` // "tutorial.Person.PhoneType"
	Values   []*EnumValue `json:"values"`    // enum values
}

// EnumValue represents an enum value
type EnumValue struct {
	Name   string `json:"name"`   // "HOME"
	Number int32  `json:"number"` // 1
}

// Message looks up a message by fully qualified name, or by a name
// qualified from any enclosing scope (with or without the package).
func (f *File) Message(name string) *Message {
	if msg, ok := f.messages[name]; ok {
		return msg
	}
	if msg, ok := f.messages[f.qualify(name)]; ok {
		return msg
	}
	for fullName, msg := range f.messages {
		if strings.HasSuffix(fullName, "."+name) {
			return msg
		}
	}
	return nil
}

// Enum looks up an enum the same way Message does.
func (f *File) Enum(name string) *Enum {
	if enum, ok := f.enums[name]; ok {
		return enum
	}
	if enum, ok := f.enums[f.qualify(name)]; ok {
		return enum
	}
	for fullName, enum := range f.enums {
		if strings.HasSuffix(fullName, "."+name) {
			return enum
		}
	}
	return nil
}

// Field returns the field with the given name, or nil.
func (m *Message) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Kind maps the field's type onto the runtime's closed kind set.
func (f *File) Kind(field *Field) (message.Kind, bool) {
	if k, ok := primitiveKinds[PrimitiveType(field.Type)]; ok {
		return k, true
	}
	if _, ok := f.messages[field.TypeName]; ok {
		return message.KindMessage, true
	}
	if _, ok := f.enums[field.TypeName]; ok {
		return message.KindEnum, true
	}
	return 0, false
}

func (f *File) qualify(name string) string {
	if f.Package == "" {
		return name
	}
	return f.Package + "." + name
}
