package tresorconfig

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Cipher != "chacha20poly1305" {
		t.Errorf("Cipher should default to chacha20poly1305, got %s", cfg.Cipher)
	}
	if cfg.KDF != "argon2id" {
		t.Errorf("KDF should default to argon2id, got %s", cfg.KDF)
	}
	if cfg.Argon2.IterationsTime != 3 {
		t.Errorf("Argon2.IterationsTime should default to 3, got %d", cfg.Argon2.IterationsTime)
	}
	if cfg.Argon2.MemoryKiB != 64*1024 {
		t.Errorf("Argon2.MemoryKiB should default to 65536, got %d", cfg.Argon2.MemoryKiB)
	}
	if cfg.Argon2.Parallelism != 4 {
		t.Errorf("Argon2.Parallelism should default to 4, got %d", cfg.Argon2.Parallelism)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidateRejectsUnknownCipher(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cipher = "aes-256-gcm"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown cipher")
	}
}

func TestValidateRejectsUnknownKDF(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KDF = "scrypt"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown kdf")
	}
}

func TestValidateRejectsZeroArgon2Cost(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Argon2.MemoryKiB = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero memory_kib")
	}
}

func TestValidateAllowsPBKDF2WithoutArgon2Params(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KDF = "pbkdf2-hmac-sha512"
	cfg.Argon2 = Argon2Config{}

	if err := cfg.Validate(); err != nil {
		t.Errorf("pbkdf2-hmac-sha512 config should validate regardless of argon2 params, got: %v", err)
	}
}
