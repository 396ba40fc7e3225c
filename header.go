package tresor

// CipherID identifies which AEAD cipher sealed a blob. New ciphers extend
// this enum; existing blobs stay openable because Open dispatches on the
// id it reads from the header.
type CipherID uint8

const (
	// CipherChaCha20Poly1305 is the only cipher currently registered. IV is
	// 12 bytes, key is 32 bytes, tag is 16 bytes placed before the
	// ciphertext.
	CipherChaCha20Poly1305 CipherID = 1
)

// CompressionID identifies the payload compression applied before
// encryption. Reserved for a future implementation — none ships yet.
type CompressionID uint8

const (
	// CompressionNone is the only implemented value.
	CompressionNone CompressionID = 0
)

// KdfID identifies which key-derivation function produced the seal key.
type KdfID uint8

const (
	// KdfArgon2id is the default KDF a fresh Store picks.
	KdfArgon2id KdfID = 1
	// KdfPBKDF2HMACSHA512 is a second registered KDF. Stores never pick it
	// by default; it exists so a caller migrating legacy blobs derived
	// with PBKDF2-HMAC-SHA512 can still open them.
	KdfPBKDF2HMACSHA512 KdfID = 2
)

// KdfParams carries the parameters a KDF needs to re-derive the same key
// on Open. Not every field is meaningful for every KdfID — PBKDF2 ignores
// MemoryKiB and Parallelism — but the shape is shared so the header's
// wire format does not grow a variant per KDF.
type KdfParams struct {
	Salt        []byte `cbor:"salt"`
	Iterations  uint32 `cbor:"iterations"`
	MemoryKiB   uint32 `cbor:"memory_kib"`
	Parallelism uint32 `cbor:"parallelism"`
}

// CipherSpec names the cipher and carries its IV. IV is nil until the
// first Seal; a sealed blob always has an IV whose length matches the
// cipher.
type CipherSpec struct {
	Type CipherID `cbor:"type"`
	IV   []byte   `cbor:"iv,omitempty"`
}

// KdfSpec names the KDF and carries its parameters.
type KdfSpec struct {
	Type   KdfID     `cbor:"type"`
	Params KdfParams `cbor:"params"`
}

// OuterHeader is the authenticated, unencrypted metadata block describing
// how to decrypt the payload. It is serialized as the AEAD's associated
// data — see Seal/Open in envelope.go for why the parsed byte range, not a
// re-encoded header, must be what Open authenticates.
type OuterHeader struct {
	VersionMajor  uint16        `cbor:"version_major"`
	VersionMinor  uint16        `cbor:"version_minor"`
	Cipher        CipherSpec    `cbor:"cipher"`
	Compression   CompressionID `cbor:"compression"`
	KDF           KdfSpec       `cbor:"kdf"`
}

// knownMajor is the highest VersionMajor this implementation understands.
// Open refuses any header whose VersionMajor exceeds it.
const knownMajor uint16 = 1

const (
	formatVersionMajor uint16 = 1
	formatVersionMinor uint16 = 0
)
