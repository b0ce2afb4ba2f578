package schema_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/sample"
	"github.com/anirudhraja/protocodec/schema"
	"github.com/anirudhraja/protocodec/wire"
)

func loadFile(t *testing.T, name string) *schema.File {
	t.Helper()
	f, err := schema.ParseFile(filepath.Join("../sample/testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestVerifySampleDescriptors(t *testing.T) {
	tests := []struct {
		file, message string
		desc          *message.Descriptor
	}{
		{"addressbook.proto", "tutorial.Person.PhoneNumber", (&sample.Person_PhoneNumber{}).Descriptor()},
		{"addressbook.proto", "tutorial.Person", (&sample.Person{}).Descriptor()},
		{"addressbook.proto", "tutorial.AddressBook", (&sample.AddressBook{}).Descriptor()},
		{"extended.proto", "SomeMessage", (&sample.SomeMessage{}).Descriptor()},
		{"extended.proto", "ExtendedMessage", (&sample.ExtendedMessage{}).Descriptor()},
		{"family.proto", "Grandfather", (&sample.Grandfather{}).Descriptor()},
		{"family.proto", "Grandfather.FatherLeft", (&sample.Grandfather_FatherLeft{}).Descriptor()},
		{"family.proto", "Grandfather.FatherLeft.SonLeftLeft", (&sample.Grandfather_FatherLeft_SonLeftLeft{}).Descriptor()},
		{"family.proto", "Grandfather.FatherRight", (&sample.Grandfather_FatherRight{}).Descriptor()},
		{"family.proto", "Grandfather.FatherRight.SonRightLeft", (&sample.Grandfather_FatherRight_SonRightLeft{}).Descriptor()},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if err := loadFile(t, tt.file).Verify(tt.message, tt.desc); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestVerifyReportsMismatches(t *testing.T) {
	desc := message.NewDescriptor("tutorial.Person",
		message.FieldDescriptor{Number: 1, Name: "name", Kind: message.KindBytes},
		message.FieldDescriptor{Number: 5, Name: "id", Kind: message.KindInt32},
		message.FieldDescriptor{Number: 4, Name: "phones", Kind: message.KindMessage, TypeName: "tutorial.Person.PhoneNumber"},
		message.FieldDescriptor{Number: 6, Name: "nickname", Kind: message.KindString},
	)
	err := loadFile(t, "addressbook.proto").Verify("tutorial.Person", desc)
	if !errors.Is(err, schema.ErrMismatch) {
		t.Fatalf("Verify() = %v, want ErrMismatch", err)
	}

	fields := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var fe *wire.FieldError
		if !errors.As(e, &fe) {
			t.Errorf("%v is not a FieldError", e)
			continue
		}
		fields[strings.Join(fe.FieldPath, ".")] = true
	}
	for _, want := range []string{"name", "id", "email", "phones", "nickname"} {
		if !fields[want] {
			t.Errorf("no mismatch reported for %s", want)
		}
	}
}

func TestVerifyUnknownMessage(t *testing.T) {
	err := loadFile(t, "extended.proto").Verify("Nope", (&sample.SomeMessage{}).Descriptor())
	if err == nil || errors.Is(err, schema.ErrMismatch) {
		t.Errorf("Verify() = %v", err)
	}
}
