// Package tresorconfig loads the Store defaults (which cipher, which KDF,
// and that KDF's cost parameters) from a TOML file using
// github.com/BurntSushi/toml plus struct-tag environment overrides. A
// caller embedding Tresor is never required to ship a config file —
// DefaultConfig already matches the interactive-authentication defaults.
package tresorconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped around every validation failure.
	ErrInvalidConfig = errors.New("invalid tresor configuration")
	// ErrMissingValue marks a required field left empty.
	ErrMissingValue = errors.New("missing required configuration value")
)

// Argon2Config mirrors tresor.KdfParams for the subset Argon2id uses.
type Argon2Config struct {
	IterationsTime uint32 `toml:"iterations" env:"TRESOR_ARGON2_ITERATIONS"`
	MemoryKiB      uint32 `toml:"memory_kib" env:"TRESOR_ARGON2_MEMORY_KIB"`
	Parallelism    uint32 `toml:"parallelism" env:"TRESOR_ARGON2_PARALLELISM"`
}

// Config holds the Store-construction defaults a caller can override from
// a TOML file.
type Config struct {
	// Cipher names the default CipherID by its short text form: currently
	// only "chacha20poly1305".
	Cipher string `toml:"cipher" env:"TRESOR_CIPHER"`

	// KDF names the default KdfID by its short text form: "argon2id" or
	// "pbkdf2-hmac-sha512".
	KDF string `toml:"kdf" env:"TRESOR_KDF"`

	Argon2 Argon2Config `toml:"argon2"`
}

// DefaultConfig returns the built-in defaults: ChaCha20Poly1305 +
// Argon2id, with the interactive-authentication cost parameters spec
// §4.3 names.
func DefaultConfig() *Config {
	return &Config{
		Cipher: "chacha20poly1305",
		KDF:    "argon2id",
		Argon2: Argon2Config{
			IterationsTime: 3,
			MemoryKiB:      64 * 1024,
			Parallelism:    4,
		},
	}
}

// Validate checks that every field holds a recognized or sane value.
func (c *Config) Validate() error {
	switch c.Cipher {
	case "chacha20poly1305":
	default:
		return fmt.Errorf("%w: cipher must be one of: chacha20poly1305", ErrInvalidConfig)
	}

	switch c.KDF {
	case "argon2id", "pbkdf2-hmac-sha512":
	default:
		return fmt.Errorf("%w: kdf must be one of: argon2id, pbkdf2-hmac-sha512", ErrInvalidConfig)
	}

	if c.KDF == "argon2id" {
		if c.Argon2.IterationsTime < 1 {
			return fmt.Errorf("%w: argon2.iterations must be at least 1", ErrInvalidConfig)
		}
		if c.Argon2.MemoryKiB == 0 {
			return fmt.Errorf("%w: argon2.memory_kib must be positive", ErrInvalidConfig)
		}
		if c.Argon2.Parallelism < 1 {
			return fmt.Errorf("%w: argon2.parallelism must be at least 1", ErrInvalidConfig)
		}
	}

	return nil
}
