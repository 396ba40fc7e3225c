package tresorconfig

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Paths returns the default configuration file locations to check, in
// search order.
func Paths() []string {
	homeDir, _ := os.UserHomeDir()
	return []string{
		filepath.Join(homeDir, ".tresor", "config.toml"),
		filepath.Join("/etc", "tresor", "config.toml"),
		"./tresor.toml",
	}
}

// Load reads a TOML config from path, applies environment overrides, and
// validates the result. An empty path searches Paths(); if none exist,
// Load starts from DefaultConfig() and still applies environment
// overrides and validation.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		for _, p := range Paths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		log.Printf("tresorconfig: no configuration file found, using defaults")
		if err := applyEnvOverrides(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOrDie loads configuration or exits the process on error.
func LoadOrDie(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TRESOR_CIPHER"); v != "" {
		cfg.Cipher = v
	}
	if v := os.Getenv("TRESOR_KDF"); v != "" {
		cfg.KDF = v
	}
	if v := os.Getenv("TRESOR_ARGON2_ITERATIONS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("TRESOR_ARGON2_ITERATIONS: %w", err)
		}
		cfg.Argon2.IterationsTime = uint32(n)
	}
	if v := os.Getenv("TRESOR_ARGON2_MEMORY_KIB"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("TRESOR_ARGON2_MEMORY_KIB: %w", err)
		}
		cfg.Argon2.MemoryKiB = uint32(n)
	}
	if v := os.Getenv("TRESOR_ARGON2_PARALLELISM"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("TRESOR_ARGON2_PARALLELISM: %w", err)
		}
		cfg.Argon2.Parallelism = uint32(n)
	}
	return nil
}
