package schema

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"
)

// Load reads a single .proto file, or every .proto file under a directory.
// Imports are not followed; each file must be self-contained.
func Load(protoPath string) ([]*File, error) {
	info, err := os.Stat(protoPath)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %w", err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(protoPath, ".proto") {
			return nil, fmt.Errorf("file %s is not a .proto file", protoPath)
		}
		f, err := ParseFile(protoPath)
		if err != nil {
			return nil, err
		}
		return []*File{f}, nil
	}

	var files []*File
	err = filepath.WalkDir(protoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Skip directories and non-proto files
		if d.IsDir() || !strings.HasSuffix(path, ".proto") {
			return nil
		}
		f, err := ParseFile(path)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, nil
}

// ParseFile parses the .proto file at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := parse(fh, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load proto file %s: %w", path, err)
	}
	return f, nil
}

// Parse reads a .proto source into a File with every message and enum
// indexed by fully qualified name and every field type resolved.
func Parse(r io.Reader) (*File, error) {
	return parse(r, "")
}

func parse(r io.Reader, name string) (*File, error) {
	parsedBody, err := protoparser.Parse(r, protoparser.WithFilename(name))
	if err != nil {
		return nil, err
	}

	f := &File{
		Name:     name,
		Syntax:   "proto2", // absent syntax statement means proto2
		messages: make(map[string]*Message),
		enums:    make(map[string]*Enum),
	}
	if parsedBody.Syntax != nil {
		f.Syntax = strings.Trim(parsedBody.Syntax.ProtobufVersion, `"'`)
	}
	// The package statement may follow definitions, so find it first.
	for _, body := range parsedBody.ProtoBody {
		if pkg, ok := body.(*protoparserparser.Package); ok {
			f.Package = pkg.Name
		}
	}

	for _, body := range parsedBody.ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Message:
			msg, err := f.addMessage(f.Package, b)
			if err != nil {
				return nil, err
			}
			f.Messages = append(f.Messages, msg)
		case *protoparserparser.Enum:
			enum, err := f.addEnum(f.Package, b)
			if err != nil {
				return nil, err
			}
			f.Enums = append(f.Enums, enum)
		}
	}

	if err := f.resolveTypes(); err != nil {
		return nil, err
	}
	return f, nil
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func (f *File) addMessage(scope string, pm *protoparserparser.Message) (*Message, error) {
	msg := &Message{
		Name:     pm.MessageName,
		FullName: joinName(scope, pm.MessageName),
	}
	f.messages[msg.FullName] = msg

	for _, body := range pm.MessageBody {
		switch b := body.(type) {
		case *protoparserparser.Field:
			field, err := newField(b.FieldName, b.FieldNumber, b.Type, b.FieldOptions)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", msg.FullName, err)
			}
			switch {
			case b.IsRepeated:
				field.Label = LabelRepeated
			case b.IsRequired:
				field.Label = LabelRequired
			}
			msg.Fields = append(msg.Fields, field)
		case *protoparserparser.Oneof:
			for _, of := range b.OneofFields {
				field, err := newField(of.FieldName, of.FieldNumber, of.Type, of.FieldOptions)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", msg.FullName, err)
				}
				msg.Fields = append(msg.Fields, field)
			}
		case *protoparserparser.Message:
			nested, err := f.addMessage(msg.FullName, b)
			if err != nil {
				return nil, err
			}
			msg.NestedTypes = append(msg.NestedTypes, nested)
		case *protoparserparser.Enum:
			nested, err := f.addEnum(msg.FullName, b)
			if err != nil {
				return nil, err
			}
			msg.NestedEnums = append(msg.NestedEnums, nested)
		}
	}
	return msg, nil
}

func newField(name, number, typ string, opts []*protoparserparser.FieldOption) (*Field, error) {
	n, err := strconv.ParseInt(number, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("field %s: bad number %q: %w", name, number, err)
	}
	field := &Field{
		Name:   name,
		Number: int32(n),
		Label:  LabelOptional,
		Type:   typ,
	}
	for _, opt := range opts {
		if opt.OptionName == "default" {
			field.DefaultValue = strings.Trim(opt.Constant, `"'`)
		}
	}
	return field, nil
}

func (f *File) addEnum(scope string, pe *protoparserparser.Enum) (*Enum, error) {
	enum := &Enum{
		Name:     pe.EnumName,
		FullName: joinName(scope, pe.EnumName),
	}
	f.enums[enum.FullName] = enum

	for _, body := range pe.EnumBody {
		ef, ok := body.(*protoparserparser.EnumField)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(ef.Number, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: bad number %q: %w", enum.FullName, ef.Ident, ef.Number, err)
		}
		enum.Values = append(enum.Values, &EnumValue{Name: ef.Ident, Number: int32(n)})
	}
	return enum, nil
}

// resolveTypes fills TypeName for every field whose type is a message or
// enum.
func (f *File) resolveTypes() error {
	known := make(map[string]struct{}, len(f.messages)+len(f.enums))
	for name := range f.messages {
		known[name] = struct{}{}
	}
	for name := range f.enums {
		known[name] = struct{}{}
	}

	for fullName, msg := range f.messages {
		for _, field := range msg.Fields {
			if _, ok := primitiveKinds[PrimitiveType(field.Type)]; ok {
				continue
			}
			resolved, err := resolveTypeName(field.Type, fullName, known)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", fullName, field.Name, err)
			}
			field.TypeName = resolved
		}
	}
	return nil
}
