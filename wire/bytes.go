package wire

import (
	"fmt"
	"io"
)

// ENCODER METHODS

// EncodeBytes encodes a byte array as length-delimited, without a tag
func (e *Encoder) EncodeBytes(data []byte) error {
	if err := e.EncodeVarint64(uint64(len(data))); err != nil {
		return err
	}
	return e.EncodeRawBytes(data)
}

// EncodeString encodes a string as length-delimited bytes, without a tag
func (e *Encoder) EncodeString(s string) error {
	if err := e.EncodeVarint64(uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return e.err
	}
	return e.write([]byte(s))
}

// DECODER METHODS

// readLength reads the varint length prefix of a length-delimited payload
// and checks it against the configured maximum and the active limit.
func (d *Decoder) readLength() (int, error) {
	v, err := d.readVarint()
	if err != nil {
		return 0, err
	}
	if v > uint64(d.opts.MaxLength) {
		return 0, d.fail(ErrTruncated, fmt.Errorf("length %d exceeds maximum %d", v, d.opts.MaxLength))
	}
	if d.limit >= 0 && d.pos+int64(v) > d.limit {
		return 0, d.fail(ErrTruncated, fmt.Errorf("length %d crosses enclosing limit", v))
	}
	return int(v), nil
}

// ReadBytes decodes a length-delimited byte array. The result never aliases
// decoder state.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	data := make([]byte, n)
	if err := d.readFull(data); err != nil {
		return nil, err
	}
	return data, nil
}

// ReadString decodes a length-delimited string
func (d *Decoder) ReadString() (string, error) {
	data, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadMessage decodes a nested message into m, bounded by its length prefix.
func (d *Decoder) ReadMessage(m Decodable) error {
	n, err := d.readLength()
	if err != nil {
		return err
	}
	if d.depth >= d.opts.MaxDepth {
		return d.fail(ErrDepthExceeded, fmt.Errorf("limit %d", d.opts.MaxDepth))
	}
	old, err := d.PushLimit(n)
	if err != nil {
		return err
	}
	d.depth++
	err = m.DecodeFrom(d)
	d.depth--
	if err != nil {
		return err
	}
	if !d.AtLimit() {
		return d.fail(ErrTruncated, fmt.Errorf("nested message stopped %d bytes early", d.limit-d.pos))
	}
	d.PopLimit(old)
	return nil
}

// skipBytes discards a length-delimited payload.
func (d *Decoder) skipBytes() error {
	n, err := d.readLength()
	if err != nil {
		return err
	}
	return d.discard(int64(n))
}

// ReadPacked reads a packed run of scalar elements, calling read once per
// element until the run's length is consumed.
func (d *Decoder) ReadPacked(read func() error) error {
	n, err := d.readLength()
	if err != nil {
		return err
	}
	old, err := d.PushLimit(n)
	if err != nil {
		return err
	}
	for !d.AtLimit() {
		if err := read(); err != nil {
			return err
		}
	}
	d.PopLimit(old)
	return nil
}

// ReadDelimited reads one length-prefixed message from a stream of them. It
// returns io.EOF when the source ends cleanly before the next prefix.
func (d *Decoder) ReadDelimited(m Decodable) error {
	end, err := d.atEnd()
	if err != nil {
		return err
	}
	if end {
		return io.EOF
	}
	return d.ReadMessage(m)
}
