package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anirudhraja/protocodec/message"
)

const testdataDir = "../sample/testdata"

func TestLoad_NonExistentPath(t *testing.T) {
	_, err := Load("/nonexistent/path")
	if err == nil || !strings.Contains(err.Error(), "path does not exist") {
		t.Errorf("Expected 'path does not exist' error, got: %v", err)
	}
}

func TestLoad_NonProtoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "is not a .proto file") {
		t.Errorf("Expected 'is not a .proto file' error, got: %v", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	files, err := Load(testdataDir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"addressbook.proto", "extended.proto", "family.proto"}, names); diff != "" {
		t.Errorf("loaded files (-want +got):\n%s", diff)
	}
}

func TestParse_AddressBook(t *testing.T) {
	f, err := ParseFile(filepath.Join(testdataDir, "addressbook.proto"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Package != "tutorial" || f.Syntax != "proto2" {
		t.Errorf("package %q syntax %q", f.Package, f.Syntax)
	}

	person := f.Message("Person")
	if person == nil {
		t.Fatal("Person not found")
	}
	if person.FullName != "tutorial.Person" {
		t.Errorf("FullName = %q", person.FullName)
	}
	if f.Message("tutorial.Person") != person {
		t.Errorf("lookup by full name disagrees")
	}

	tests := []struct {
		field    string
		number   int32
		label    FieldLabel
		typeName string
	}{
		{"name", 1, LabelRequired, ""},
		{"id", 2, LabelRequired, ""},
		{"email", 3, LabelOptional, ""},
		{"phones", 4, LabelRepeated, "tutorial.Person.PhoneNumber"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			field := person.Field(tt.field)
			if field == nil {
				t.Fatalf("field %s not found", tt.field)
			}
			if field.Number != tt.number || field.Label != tt.label || field.TypeName != tt.typeName {
				t.Errorf("got %d %s %q", field.Number, field.Label, field.TypeName)
			}
		})
	}

	phone := f.Message("Person.PhoneNumber")
	if phone == nil || len(person.NestedTypes) != 1 || person.NestedTypes[0] != phone {
		t.Fatalf("PhoneNumber not nested under Person")
	}
	typ := phone.Field("type")
	if typ.TypeName != "tutorial.Person.PhoneType" || typ.DefaultValue != "HOME" {
		t.Errorf("type field resolved to %q default %q", typ.TypeName, typ.DefaultValue)
	}
	if k, ok := f.Kind(typ); !ok || k != message.KindEnum {
		t.Errorf("Kind(type) = %v, %t", k, ok)
	}

	enum := f.Enum("Person.PhoneType")
	if enum == nil {
		t.Fatal("PhoneType not found")
	}
	var values []string
	for _, v := range enum.Values {
		values = append(values, v.Name)
	}
	if diff := cmp.Diff([]string{"MOBILE", "HOME", "WORK"}, values); diff != "" {
		t.Errorf("enum values (-want +got):\n%s", diff)
	}
}

func TestParse_CrossBranchResolution(t *testing.T) {
	f, err := ParseFile(filepath.Join(testdataDir, "family.proto"))
	if err != nil {
		t.Fatal(err)
	}
	son := f.Message("Grandfather.FatherLeft.SonLeftLeft")
	if son == nil {
		t.Fatal("SonLeftLeft not found")
	}
	if got := son.Field("brother").TypeName; got != "Grandfather.FatherRight.SonRightLeft" {
		t.Errorf("brother resolved to %q", got)
	}
	if got := son.Field("father").TypeName; got != "Grandfather.FatherLeft" {
		t.Errorf("father resolved to %q", got)
	}
}

func TestParse_Proto3AndOneof(t *testing.T) {
	src := `syntax = "proto3";
package test.pkg;

message Outer {
  message Inner { string v = 1; }
  oneof choice {
    Inner inner = 1;
    string text = 2;
  }
  repeated sint64 values = 3;
}
`
	f, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if f.Syntax != "proto3" {
		t.Errorf("Syntax = %q", f.Syntax)
	}
	outer := f.Message("Outer")
	if outer == nil || len(outer.Fields) != 3 {
		t.Fatalf("Outer = %+v", outer)
	}
	if got := outer.Field("inner").TypeName; got != "test.pkg.Outer.Inner" {
		t.Errorf("inner resolved to %q", got)
	}
	values := outer.Field("values")
	if values.Label != LabelRepeated || !IsPackedType(PrimitiveType(values.Type)) {
		t.Errorf("values = %+v", values)
	}
}

func TestParse_UnresolvedType(t *testing.T) {
	src := `syntax = "proto3";
message M { Missing m = 1; }
`
	_, err := Parse(strings.NewReader(src))
	if err == nil || !strings.Contains(err.Error(), "unable to resolve type name: Missing") {
		t.Errorf("Expected resolution error, got: %v", err)
	}
}

func TestResolveTypeName(t *testing.T) {
	known := map[string]struct{}{
		"a.Outer":           {},
		"a.Outer.Inner":     {},
		"a.Other":           {},
		"a.Other.Inner":     {},
		"a.Outer.Mid.Inner": {},
	}
	tests := []struct {
		typeName, scope, want string
	}{
		{"Inner", "a.Outer", "a.Outer.Inner"},
		{"Inner", "a.Outer.Mid", "a.Outer.Mid.Inner"},
		{"Other.Inner", "a.Outer.Mid", "a.Other.Inner"},
		{".a.Other", "a.Outer", "a.Other"},
		{"a.Other", "", "a.Other"},
	}
	for _, tt := range tests {
		got, err := resolveTypeName(tt.typeName, tt.scope, known)
		if err != nil {
			t.Errorf("%s in %s: %v", tt.typeName, tt.scope, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s in %s = %q, want %q", tt.typeName, tt.scope, got, tt.want)
		}
	}

	for _, typeName := range []string{".Inner", "Nope", ".a.Outer.Nope"} {
		if got, err := resolveTypeName(typeName, "a.Outer", known); err == nil {
			t.Errorf("%s resolved to %q, want error", typeName, got)
		}
	}
}
