package wire

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decodable is implemented by message builders: given a decoder positioned
// at the first field, consume fields until ReadTag reports io.EOF.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

type byteSource interface {
	io.Reader
	io.ByteScanner
}

// Decoder handles low-level protobuf wire format decoding from a byte
// source. It tracks the read position, the enclosing length limit of the
// message being parsed, and the nesting depth.
type Decoder struct {
	r     byteSource
	pos   int64
	limit int64 // absolute position; -1 when unbounded
	depth int
	opts  Options

	// last varint or fixed payload read, as raw bytes
	raw    [MaxVarintLen]byte
	rawLen int

	// last tag read, as raw bytes
	tag    [MaxVarintLen]byte
	tagLen int
	field  FieldNumber
	wt     WireType
}

// NewDecoder creates a decoder over r with DefaultOptions. If r does not
// support byte-level reads it is wrapped in a bufio.Reader, which may read
// ahead of the last field consumed.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderWithOptions(r, DefaultOptions())
}

// NewDecoderWithOptions creates a decoder over r with the given options.
func NewDecoderWithOptions(r io.Reader, opts Options) *Decoder {
	src, ok := r.(byteSource)
	if !ok {
		src = bufio.NewReader(r)
	}
	return &Decoder{
		r:     src,
		limit: -1,
		opts:  opts.normalize(),
	}
}

// NewBytesDecoder creates a decoder over an in-memory buffer.
func NewBytesDecoder(data []byte) *Decoder {
	return NewDecoder(bytes.NewReader(data))
}

// Options returns the options the decoder was created with.
func (d *Decoder) Options() Options {
	return d.opts
}

// Position returns the number of bytes consumed so far.
func (d *Decoder) Position() int64 {
	return d.pos
}

// Depth returns the current nested message depth.
func (d *Decoder) Depth() int {
	return d.depth
}

// PushLimit bounds further reads to the next length bytes and returns the
// previous limit for PopLimit. A limit may never extend past the one
// enclosing it.
func (d *Decoder) PushLimit(length int) (int64, error) {
	if length < 0 {
		return d.limit, d.fail(ErrTruncated, fmt.Errorf("negative length %d", length))
	}
	newLimit := d.pos + int64(length)
	if d.limit >= 0 && newLimit > d.limit {
		return d.limit, d.fail(ErrTruncated, fmt.Errorf("length %d crosses enclosing limit", length))
	}
	old := d.limit
	d.limit = newLimit
	return old, nil
}

// PopLimit restores a limit returned by PushLimit.
func (d *Decoder) PopLimit(old int64) {
	d.limit = old
}

// AtLimit reports whether the active limit has been reached.
func (d *Decoder) AtLimit() bool {
	return d.limit >= 0 && d.pos >= d.limit
}

// ReadTag reads the next field tag. It returns io.EOF when the current
// message ends cleanly: either the active limit is reached or the source is
// exhausted at a field boundary with no limit pending.
func (d *Decoder) ReadTag() (FieldNumber, WireType, error) {
	d.tagLen = 0
	d.field, d.wt = 0, 0
	end, err := d.atEnd()
	if err != nil {
		return 0, 0, err
	}
	if end {
		return 0, 0, io.EOF
	}

	v, err := d.readVarint()
	if err != nil {
		return 0, 0, err
	}
	copy(d.tag[:], d.raw[:d.rawLen])
	d.tagLen = d.rawLen

	num, wt := ParseTag(Tag(v))
	d.field, d.wt = num, wt
	if v>>tagTypeBits > uint64(MaxValidNumber) || !num.Valid() {
		return 0, 0, d.fail(ErrInvalidTag, fmt.Errorf("tag %d", v))
	}
	if !wt.Valid() {
		return 0, 0, d.fail(ErrUnknownWireType, nil)
	}
	return num, wt, nil
}

// atEnd reports whether the current message has ended at a field boundary.
// The source running dry inside a pending limit is a truncation.
func (d *Decoder) atEnd() (bool, error) {
	if d.AtLimit() {
		return true, nil
	}
	if _, err := d.r.ReadByte(); err != nil {
		if errors.Is(err, io.EOF) {
			if d.limit >= 0 {
				return false, d.fail(ErrTruncated, io.ErrUnexpectedEOF)
			}
			return true, nil
		}
		return false, err
	}
	return false, d.r.UnreadByte()
}

// SkipField consumes the payload of the field just tagged without
// interpreting it. How much to skip depends only on the wire type.
func (d *Decoder) SkipField(wt WireType) error {
	switch wt {
	case WireVarint:
		_, err := d.readVarint()
		return err
	case WireFixed64:
		return d.discard(SizeFixed64)
	case WireBytes:
		return d.skipBytes()
	case WireFixed32:
		return d.discard(SizeFixed32)
	default:
		return d.fail(ErrUnknownWireType, nil)
	}
}

// CaptureField consumes the payload of the field just tagged and returns the
// tag and payload bytes exactly as they appeared in the stream.
func (d *Decoder) CaptureField(wt WireType) ([]byte, error) {
	out := make([]byte, 0, d.tagLen+SizeFixed64)
	out = append(out, d.tag[:d.tagLen]...)

	switch wt {
	case WireVarint:
		if _, err := d.readVarint(); err != nil {
			return nil, err
		}
		return append(out, d.raw[:d.rawLen]...), nil
	case WireFixed64:
		if _, err := d.ReadFixed64(); err != nil {
			return nil, err
		}
		return append(out, d.raw[:SizeFixed64]...), nil
	case WireFixed32:
		if _, err := d.ReadFixed32(); err != nil {
			return nil, err
		}
		return append(out, d.raw[:SizeFixed32]...), nil
	case WireBytes:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		out = append(out, d.raw[:d.rawLen]...)
		start := len(out)
		out = append(out, make([]byte, n)...)
		if err := d.readFull(out[start:]); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, d.fail(ErrUnknownWireType, nil)
	}
}

// Mismatch reports that the field just tagged arrived with a wire type its
// declaration cannot accept.
func (d *Decoder) Mismatch(want WireType) error {
	return d.fail(ErrFieldTypeMismatch, fmt.Errorf("declared %s", want))
}

// readByte reads one byte, refusing to cross the active limit.
func (d *Decoder) readByte() (byte, error) {
	if d.AtLimit() {
		return 0, d.fail(ErrTruncated, errors.New("read past enclosing limit"))
	}
	b, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, d.fail(ErrTruncated, io.ErrUnexpectedEOF)
		}
		return 0, err
	}
	d.pos++
	return b, nil
}

// readFull fills p, refusing to cross the active limit.
func (d *Decoder) readFull(p []byte) error {
	if d.limit >= 0 && d.pos+int64(len(p)) > d.limit {
		return d.fail(ErrTruncated, errors.New("read past enclosing limit"))
	}
	n, err := io.ReadFull(d.r, p)
	d.pos += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return d.fail(ErrTruncated, io.ErrUnexpectedEOF)
		}
		return err
	}
	return nil
}

// discard skips n bytes, refusing to cross the active limit.
func (d *Decoder) discard(n int64) error {
	if d.limit >= 0 && d.pos+n > d.limit {
		return d.fail(ErrTruncated, errors.New("read past enclosing limit"))
	}
	copied, err := io.CopyN(io.Discard, d.r, n)
	d.pos += copied
	if err != nil {
		if errors.Is(err, io.EOF) {
			return d.fail(ErrTruncated, io.ErrUnexpectedEOF)
		}
		return err
	}
	return nil
}

// fail builds a DecodeError at the current position.
func (d *Decoder) fail(kind, cause error) error {
	return &DecodeError{
		Kind:     kind,
		Offset:   d.pos,
		Field:    d.field,
		WireType: d.wt,
		Err:      cause,
	}
}
