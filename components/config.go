package components

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid config")

func DefaultConfig() *Config {
	return &Config{Impl: ImplBST}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no such file: %s", path)
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.DataPath == "" {
		return fmt.Errorf("%w: data path is required", ErrInvalidConfig)
	}

	switch cfg.Impl {
	case ImplBST, ImplRBTree:
	default:
		return fmt.Errorf("%w: unknown impl %q", ErrInvalidConfig, cfg.Impl)
	}

	if cfg.Progress < 0 {
		return fmt.Errorf("%w: negative progress interval", ErrInvalidConfig)
	}
	return nil
}
