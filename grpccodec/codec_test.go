package grpccodec

import (
	"context"
	"errors"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"

	"github.com/anirudhraja/protocodec/sample"
	"github.com/anirudhraja/protocodec/wire"
)

func testBook() *sample.AddressBook {
	return sample.NewAddressBookBuilder().
		AddPerson(sample.NewPersonBuilder().
			SetName("John Doe").
			SetID(42).
			AddPhone(sample.NewPerson_PhoneNumberBuilder().SetNumber("8-800-555-35-35").Build()).
			Build()).
		Build()
}

// directory is a one-method service whose handler returns the first person
// of the address book it receives.
var directoryDesc = grpc.ServiceDesc{
	ServiceName: "tutorial.Directory",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "First",
		Handler: func(_ any, _ context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
			in := sample.NewAddressBookBuilder()
			if err := dec(in); err != nil {
				return nil, err
			}
			people := in.Build().People()
			if len(people) == 0 {
				return nil, status.Error(codes.NotFound, "empty address book")
			}
			return people[0], nil
		},
	}},
}

func TestRegistered(t *testing.T) {
	if c := encoding.GetCodec(Name); c == nil || c.Name() != Name {
		t.Fatalf("codec %q not registered", Name)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	var c Codec
	data, err := c.Marshal(testBook())
	if err != nil {
		t.Fatal(err)
	}
	b := sample.NewAddressBookBuilder()
	if err := c.Unmarshal(data, b); err != nil {
		t.Fatal(err)
	}
	if !b.Build().Equal(testBook()) {
		t.Errorf("round trip mismatch")
	}
}

func TestCodecRejectsOtherTypes(t *testing.T) {
	var c Codec
	if _, err := c.Marshal("not a message"); err == nil {
		t.Errorf("Marshal(string) succeeded")
	}
	if err := c.Unmarshal(nil, testBook()); err == nil {
		t.Errorf("Unmarshal into a built message succeeded")
	}
}

func TestCodecStrictOptions(t *testing.T) {
	// id (field 2) sent as a length-delimited value.
	data := []byte{0x12, 0x01, 'x'}

	if err := (Codec{}).Unmarshal(data, sample.NewPersonBuilder()); err != nil {
		t.Fatalf("tolerant codec: %v", err)
	}
	strict := Codec{Options: wire.Options{StrictWireType: true}}
	err := strict.Unmarshal(data, sample.NewPersonBuilder())
	if !errors.Is(err, wire.ErrFieldTypeMismatch) {
		t.Fatalf("strict codec: %v", err)
	}
}

func TestUnaryCall(t *testing.T) {
	ctx := context.Background()

	srv := grpc.NewServer()
	srv.RegisterService(&directoryDesc, struct{}{})
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = srv.Serve(l) }()
	defer srv.Stop()

	conn, err := grpc.NewClient(
		l.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(CallOption()),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	reply := sample.NewPersonBuilder()
	if err := conn.Invoke(ctx, "/tutorial.Directory/First", testBook(), reply); err != nil {
		t.Fatal(err)
	}
	if got := reply.Build(); !got.Equal(testBook().People()[0]) {
		t.Errorf("reply = %q %d", got.Name(), got.ID())
	}

	err = conn.Invoke(ctx, "/tutorial.Directory/First", sample.NewAddressBookBuilder().Build(), sample.NewPersonBuilder())
	if status.Code(err) != codes.NotFound {
		t.Errorf("empty book: %v", err)
	}
}
