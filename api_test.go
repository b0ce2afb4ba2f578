package protocodec

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/anirudhraja/protocodec/message"
	"github.com/anirudhraja/protocodec/sample"
	"github.com/anirudhraja/protocodec/wire"
)

func testPerson(id int32, name string) *sample.Person {
	return sample.NewPersonBuilder().
		SetID(id).
		SetName(name).
		AddPhone(sample.NewPerson_PhoneNumberBuilder().
			SetType(sample.Person_WORK).
			SetNumber("555").
			Build()).
		Build()
}

func TestProtocodec_MarshalUnmarshal(t *testing.T) {
	pc, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer message.SetLogger(nil)

	want := testPerson(42, "John Doe")
	data, err := pc.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != want.Size() {
		t.Errorf("len(data) = %d, Size() = %d", len(data), want.Size())
	}

	b := sample.NewPersonBuilder()
	if err := pc.Unmarshal(data, b); err != nil {
		t.Fatal(err)
	}
	if !b.Build().Equal(want) {
		t.Errorf("round trip mismatch")
	}
}

func TestProtocodec_StrictWireType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decode.StrictWireType = true
	pc, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer message.SetLogger(nil)

	// name (field 1) sent as a varint.
	data := []byte{0x08, 0x01}
	err = pc.Unmarshal(data, sample.NewPersonBuilder())
	if !errors.Is(err, wire.ErrFieldTypeMismatch) {
		t.Fatalf("Unmarshal() = %v, want ErrFieldTypeMismatch", err)
	}

	b := sample.NewPersonBuilder()
	if err := Unmarshal(data, b); err != nil {
		t.Fatalf("default Unmarshal: %v", err)
	}
	if got := len(b.Build().Unknown()); got != 2 {
		t.Errorf("kept %d unknown bytes, want 2", got)
	}
}

func TestProtocodec_MaxDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decode.MaxDepth = 2
	pc, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer message.SetLogger(nil)

	tree := sample.NewGrandfatherBuilder().
		SetLeft(sample.NewGrandfather_FatherLeftBuilder().
			SetSon(sample.NewGrandfather_FatherLeft_SonLeftLeftBuilder().
				SetBrother(sample.NewGrandfather_FatherRight_SonRightLeftBuilder().SetBar("x").Build()).
				Build()).
			Build()).
		Build()
	data, err := Marshal(tree)
	if err != nil {
		t.Fatal(err)
	}
	err = pc.Unmarshal(data, sample.NewGrandfatherBuilder())
	if !errors.Is(err, wire.ErrDepthExceeded) {
		t.Errorf("Unmarshal() = %v, want ErrDepthExceeded", err)
	}
	if err := Unmarshal(data, sample.NewGrandfatherBuilder()); err != nil {
		t.Errorf("default Unmarshal: %v", err)
	}
}

func TestProtocodec_Stream(t *testing.T) {
	pc, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer message.SetLogger(nil)

	var buf bytes.Buffer
	for i, name := range []string{"a", "b", "c"} {
		if err := WriteDelimited(&buf, testPerson(int32(i), name)); err != nil {
			t.Fatal(err)
		}
	}

	stream := pc.NewStream(&buf)
	var names []string
	for {
		b := sample.NewPersonBuilder()
		err := ReadDelimited(stream, b)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, b.Build().Name())
	}
	if len(names) != 3 || names[0] != "a" || names[2] != "c" {
		t.Errorf("names = %v", names)
	}
}

func TestProtocodec_WriteRead(t *testing.T) {
	pc, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer message.SetLogger(nil)

	var buf bytes.Buffer
	if err := pc.Write(&buf, testPerson(7, "x")); err != nil {
		t.Fatal(err)
	}
	b := sample.NewPersonBuilder()
	if err := pc.Read(&buf, b); err != nil {
		t.Fatal(err)
	}
	if got := b.Build(); got.ID() != 7 || got.Phones()[0].Type() != sample.Person_WORK {
		t.Errorf("got id %d phone %s", got.ID(), got.Phones()[0].Type())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if _, err := New(cfg); err == nil {
		t.Errorf("New() accepted log level %q", cfg.LogLevel)
	}
}

func TestNew_InstallsLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	if _, err := New(cfg); err != nil {
		t.Fatal(err)
	}
	defer message.SetLogger(nil)

	if !message.Logger().Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("installed logger drops warnings")
	}
	if message.Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("installed logger keeps debug output")
	}
}
