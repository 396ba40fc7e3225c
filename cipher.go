package tresor

import (
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher is the AEAD abstraction every registered algorithm implements.
// Any new cipher added later declares its own iv length, tag length, tag
// placement, and AAD by implementing this interface and registering
// itself in ciphersByID.
type Cipher interface {
	ID() CipherID
	IVLen() int
	KeyLen() int
	TagLen() int
	// GenerateIV fills and returns a fresh IV of IVLen() bytes read from r.
	GenerateIV(r io.Reader) ([]byte, error)
	// Seal encrypts plaintext under key/iv, authenticating aad, and
	// returns ciphertext and the detached tag (TagLen() bytes, placed
	// before the ciphertext in the envelope).
	Seal(key, iv, plaintext, aad []byte) (ciphertext, tag []byte, err error)
	// Open authenticates aad and decrypts ciphertext+tag under key/iv.
	// Returns ErrAuthFail (wrapped as *Error) on tag mismatch.
	Open(key, iv, ciphertext, tag, aad []byte) (plaintext []byte, err error)
}

var ciphersByID = map[CipherID]Cipher{
	CipherChaCha20Poly1305: chaCha20Poly1305Cipher{},
}

func cipherFor(id CipherID) (Cipher, error) {
	c, ok := ciphersByID[id]
	if !ok {
		return nil, newErr("cipher_for", KindUnsupportedAlgorithm, nil)
	}
	return c, nil
}

// chaCha20Poly1305Cipher implements Cipher over
// golang.org/x/crypto/chacha20poly1305's standard, 12-byte-nonce
// construction (not the extended XChaCha20 variant — a 12-byte IV is
// generated fresh on every Seal rather than derived from a larger nonce
// space).
type chaCha20Poly1305Cipher struct{}

func (chaCha20Poly1305Cipher) ID() CipherID { return CipherChaCha20Poly1305 }
func (chaCha20Poly1305Cipher) IVLen() int   { return chacha20poly1305.NonceSize }
func (chaCha20Poly1305Cipher) KeyLen() int  { return chacha20poly1305.KeySize }
func (chaCha20Poly1305Cipher) TagLen() int  { return chacha20poly1305.Overhead }

func (chaCha20Poly1305Cipher) GenerateIV(r io.Reader) ([]byte, error) {
	iv := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, newErr("generate_iv", KindIO, err)
	}
	return iv, nil
}

func (c chaCha20Poly1305Cipher) Seal(key, iv, plaintext, aad []byte) ([]byte, []byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, newErr("seal", KindBadHeader, err)
	}
	sealed := aead.Seal(nil, iv, plaintext, aad)
	tagOffset := len(sealed) - c.TagLen()
	ciphertext := sealed[:tagOffset]
	tag := sealed[tagOffset:]
	return ciphertext, tag, nil
}

func (c chaCha20Poly1305Cipher) Open(key, iv, ciphertext, tag, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, newErr("open", KindBadHeader, err)
	}
	combined := make([]byte, 0, len(ciphertext)+len(tag))
	combined = append(combined, ciphertext...)
	combined = append(combined, tag...)
	plaintext, err := aead.Open(nil, iv, combined, aad)
	if err != nil {
		return nil, newErr("open", KindAuthFail, err)
	}
	return plaintext, nil
}
