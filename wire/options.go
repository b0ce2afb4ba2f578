package wire

// Options controls decoder behavior. The zero value is not useful on its
// own; start from DefaultOptions.
type Options struct {
	// StrictWireType: when true, a declared field arriving with a different
	// wire type fails the parse with ErrFieldTypeMismatch. When false
	// (default), the field is kept in the unknown set and parsing continues.
	StrictWireType bool `toml:"strict_wire_type"`

	// MaxDepth bounds nested message recursion.
	MaxDepth int `toml:"max_depth"`

	// MaxLength bounds a single length-delimited payload, checked before any
	// allocation happens.
	MaxLength int `toml:"max_length"`
}

const (
	DefaultMaxDepth  = 100
	DefaultMaxLength = 64 << 20
)

// DefaultOptions returns the tolerant decoding configuration.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  DefaultMaxDepth,
		MaxLength: DefaultMaxLength,
	}
}

// normalize fills unset limits with defaults.
func (o Options) normalize() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	return o
}
