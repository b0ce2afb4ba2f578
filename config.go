package protocodec

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/anirudhraja/protocodec/wire"
)

const (
	EnvStrictWire = "PROTOCODEC_STRICT_WIRE"
	EnvMaxDepth   = "PROTOCODEC_MAX_DEPTH"
	EnvMaxLength  = "PROTOCODEC_MAX_LENGTH"
	EnvLogLevel   = "PROTOCODEC_LOG_LEVEL"
)

// Config is the file form of the codec settings.
//
//	log_level = "debug"
//
//	[decode]
//	strict_wire_type = true
//	max_depth = 64
//	max_length = 1048576
type Config struct {
	Decode   wire.Options `toml:"decode"`
	LogLevel string       `toml:"log_level"` // empty disables logging
}

// DefaultConfig returns tolerant decoding with logging off.
func DefaultConfig() Config {
	return Config{Decode: wire.DefaultOptions()}
}

// LoadConfig reads a TOML file over the defaults, then applies environment
// overrides. Unset keys keep their default values. An empty path skips the
// file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config parse failed (%s): unknown key %s", path, undecoded[0])
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no decoder could run with.
func (c Config) Validate() error {
	if c.Decode.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative, got %d", c.Decode.MaxDepth)
	}
	if c.Decode.MaxLength < 0 {
		return fmt.Errorf("config: max_length must not be negative, got %d", c.Decode.MaxLength)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// BuildLogger returns a production zap logger at the configured level, or a
// no-op logger when no level is set.
func (c Config) BuildLogger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	if c.LogLevel == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func (c Config) level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v, ok := parseBool(os.Getenv(EnvStrictWire)); ok {
		cfg.Decode.StrictWireType = v
	}
	if raw := strings.TrimSpace(os.Getenv(EnvMaxDepth)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		cfg.Decode.MaxDepth = n
	}
	if raw := strings.TrimSpace(os.Getenv(EnvMaxLength)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLength, err)
		}
		cfg.Decode.MaxLength = n
	}
	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		cfg.LogLevel = raw
	}
	return nil
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
