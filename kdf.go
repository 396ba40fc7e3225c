package tresor

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLen is the minimum salt length required (>= 16 bytes).
	saltLen = 16
	// derivedKeyLen is the fixed key length every registered KDF produces;
	// it must match Cipher.KeyLen() for the ciphers this implementation
	// ships (32 bytes for ChaCha20Poly1305).
	derivedKeyLen = 32
)

// defaultArgon2Params are the interactive-authentication defaults: memory
// in the tens of MiB, iterations >= 1, parallelism >= 1. Recorded in the
// header on every seal so Open re-derives with the same values regardless
// of what the library's current defaults are.
func defaultArgon2Params() KdfParams {
	return KdfParams{
		Iterations:  3,
		MemoryKiB:   64 * 1024,
		Parallelism: 4,
	}
}

// KDF is the key-derivation abstraction a Store derives its seal key
// through.
type KDF interface {
	ID() KdfID
	// Seed fills params.Salt with fresh random bytes of this KDF's salt
	// length. Called exactly once per seal.
	Seed(r io.Reader, params *KdfParams) error
	// Derive runs the KDF with the stored parameters and password,
	// producing a derivedKeyLen-byte key. The caller zeros the returned
	// key on every exit path.
	Derive(password string, params KdfParams) ([]byte, error)
}

var kdfsByID = map[KdfID]KDF{
	KdfArgon2id:          argon2idKDF{},
	KdfPBKDF2HMACSHA512:  pbkdf2HMACSHA512KDF{},
}

func kdfFor(id KdfID) (KDF, error) {
	k, ok := kdfsByID[id]
	if !ok {
		return nil, newErr("kdf_for", KindUnsupportedAlgorithm, nil)
	}
	return k, nil
}

func nameToCipherID(name string) (CipherID, error) {
	switch name {
	case "chacha20poly1305", "":
		return CipherChaCha20Poly1305, nil
	default:
		return 0, newErr("name_to_cipher_id", KindUnsupportedAlgorithm, nil)
	}
}

func nameToKdfID(name string) (KdfID, error) {
	switch name {
	case "argon2id", "":
		return KdfArgon2id, nil
	case "pbkdf2-hmac-sha512":
		return KdfPBKDF2HMACSHA512, nil
	default:
		return 0, newErr("name_to_kdf_id", KindUnsupportedAlgorithm, nil)
	}
}

func seedSalt(r io.Reader, params *KdfParams) error {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(r, salt); err != nil {
		return newErr("seed_salt", KindIO, err)
	}
	params.Salt = salt
	return nil
}

// argon2idKDF wraps golang.org/x/crypto/argon2's Argon2id construction,
// the default KDF a fresh Store picks.
type argon2idKDF struct{}

func (argon2idKDF) ID() KdfID { return KdfArgon2id }

func (argon2idKDF) Seed(r io.Reader, params *KdfParams) error {
	return seedSalt(r, params)
}

func (argon2idKDF) Derive(password string, params KdfParams) ([]byte, error) {
	key := argon2.IDKey([]byte(password), params.Salt, params.Iterations, params.MemoryKiB, uint8(params.Parallelism), derivedKeyLen)
	return key, nil
}

// pbkdf2HMACSHA512KDF wraps golang.org/x/crypto/pbkdf2 with a SHA-512
// HMAC (PBKDF2-HMAC-SHA512). Registered as KdfPBKDF2HMACSHA512 so legacy
// blobs derived this way remain openable; a fresh Store never picks it as
// a default.
type pbkdf2HMACSHA512KDF struct{}

func (pbkdf2HMACSHA512KDF) ID() KdfID { return KdfPBKDF2HMACSHA512 }

func (pbkdf2HMACSHA512KDF) Seed(r io.Reader, params *KdfParams) error {
	return seedSalt(r, params)
}

func (pbkdf2HMACSHA512KDF) Derive(password string, params KdfParams) ([]byte, error) {
	key := pbkdf2.Key([]byte(password), params.Salt, int(params.Iterations), derivedKeyLen, sha512.New)
	return key, nil
}
