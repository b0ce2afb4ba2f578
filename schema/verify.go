package schema

import (
	"errors"
	"fmt"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/wire"
)

// ErrMismatch marks every disagreement Verify reports.
var ErrMismatch = errors.New("descriptor does not match schema")

// Verify checks a Go-declared descriptor against the .proto message it is
// meant to implement. All disagreements are reported together, each as a
// wire.FieldError naming the field and wrapping ErrMismatch.
func (f *File) Verify(messageName string, desc *message.Descriptor) error {
	msg := f.Message(messageName)
	if msg == nil {
		return fmt.Errorf("message not found: %s", messageName)
	}

	var errs []error
	mismatch := func(field, format string, args ...any) {
		errs = append(errs, wire.WrapWithField(
			fmt.Errorf("%w: %s", ErrMismatch, fmt.Sprintf(format, args...)), field))
	}

	if desc.Name() != msg.FullName {
		mismatch(desc.Name(), "descriptor named %q, schema message is %q", desc.Name(), msg.FullName)
	}

	for _, field := range msg.Fields {
		fd := desc.FieldByName(field.Name)
		if fd == nil {
			mismatch(field.Name, "declared in schema but missing from descriptor")
			continue
		}
		if int32(fd.Number) != field.Number {
			mismatch(field.Name, "number %d, schema says %d", fd.Number, field.Number)
		}
		kind, ok := f.Kind(field)
		if !ok {
			mismatch(field.Name, "unsupported schema type %q", field.Type)
		} else if fd.Kind != kind {
			mismatch(field.Name, "kind %s, schema says %s", fd.Kind, kind)
		}
		if fd.IsRepeated() != (field.Label == LabelRepeated) {
			mismatch(field.Name, "%s, schema says %s", fd.Cardinality, field.Label)
		}
		if field.TypeName != "" && fd.TypeName != field.TypeName {
			mismatch(field.Name, "type %q, schema says %q", fd.TypeName, field.TypeName)
		}
		if field.DefaultValue != "" {
			if fd.Default == nil {
				mismatch(field.Name, "no default, schema says %s", field.DefaultValue)
			} else if got := fmt.Sprint(fd.Default); got != field.DefaultValue {
				mismatch(field.Name, "default %s, schema says %s", got, field.DefaultValue)
			}
		}
	}

	for _, fd := range desc.Fields() {
		if msg.Field(fd.Name) == nil {
			mismatch(fd.Name, "field %d is not declared in schema", fd.Number)
		}
	}

	return errors.Join(errs...)
}
