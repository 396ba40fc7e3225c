package tresor

import (
	"encoding/binary"
	"io"
)

// magic is the blob's leading 6 bytes: the ASCII string "SECRET"
// (0x53 0x45 0x43 0x52 0x45 0x54).
var magic = [6]byte{0x53, 0x45, 0x43, 0x52, 0x45, 0x54}

const headerLenFieldSize = 4 // little-endian u32
const headerStart = len(magic) + headerLenFieldSize

// preliminaryTagLen bounds the Truncated check in Open before a cipher has
// been selected from the parsed header. Every cipher this implementation
// registers uses a 16-byte tag; if a future cipher changes that, Open's
// second, cipher-aware bounds check (after the header parses) still
// catches a genuinely truncated blob.
const preliminaryTagLen = 16

// Seal derives a fresh key and IV, serializes the Store's Data, encrypts
// it under the Store's OuterHeader as associated data, and writes the
// envelope to w: magic, header length, header, tag, ciphertext. Every exit
// path zeroes the derived key and the serialized plaintext, including on
// error — seal is all-or-nothing, and the caller must treat any bytes
// already written to w as garbage on failure.
func (s *Store) Seal(w io.Writer, password string) error {
	if err := s.seedSaltAndIV(); err != nil {
		return err
	}

	key, err := s.kdf.Derive(password, s.header.KDF.Params)
	if err != nil {
		return newErr("seal", KindBadHeader, err)
	}
	defer zero(key)

	h, err := encodeHeader(&s.header)
	if err != nil {
		return err
	}

	plaintext, err := encodeData(&s.data)
	if err != nil {
		return err
	}
	defer zero(plaintext)

	ciphertext, tag, err := s.cipher.Seal(key, s.header.Cipher.IV, plaintext, h)
	if err != nil {
		return err
	}

	if err := s.writeEnvelope(w, h, tag, ciphertext); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("sealed store", "entries", len(s.data.Entries), "bytes", headerStart+len(h)+len(tag)+len(ciphertext))
	}
	if s.metrics != nil {
		s.metrics.ObserveSeal(len(s.data.Entries))
	}
	return nil
}

func (s *Store) seedSaltAndIV() error {
	if err := s.kdf.Seed(s.rand, &s.header.KDF.Params); err != nil {
		return err
	}
	iv, err := s.cipher.GenerateIV(s.rand)
	if err != nil {
		return err
	}
	if s.header.Cipher.IV != nil {
		zero(s.header.Cipher.IV)
	}
	s.header.Cipher.IV = iv
	return nil
}

func (s *Store) writeEnvelope(w io.Writer, h, tag, ciphertext []byte) error {
	var lenBuf [headerLenFieldSize]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(h)))

	for _, chunk := range [][]byte{magic[:], lenBuf[:], h, tag, ciphertext} {
		if _, err := w.Write(chunk); err != nil {
			return newErr("seal", KindIO, err)
		}
	}
	return nil
}

// Open parses a blob produced by Seal and returns the Store it describes.
// AAD passed to decryption is exactly R[10:10+hlen] — the parsed header's
// original bytes, never a re-serialized header; re-encoding the header
// before authenticating it would let a semantically-equal-but-differently-
// encoded header slip past the tag check. Open allocates nothing
// persistent before authentication succeeds.
func Open(blob []byte, password string, rand io.Reader, clock Clock) (*Store, error) {
	if len(blob) < headerStart || !magicMatches(blob) {
		return nil, newErr("open", KindBadMagic, nil)
	}

	hlen := int(binary.LittleEndian.Uint32(blob[len(magic) : len(magic)+headerLenFieldSize]))
	if hlen < 0 || headerStart+hlen+preliminaryTagLen > len(blob) {
		return nil, newErr("open", KindTruncated, nil)
	}

	headerBytes := blob[headerStart : headerStart+hlen]
	header, err := decodeHeader(headerBytes)
	if err != nil {
		return nil, err
	}
	if header.VersionMajor > knownMajor {
		return nil, newErr("open", KindUnsupportedAlgorithm, nil)
	}

	cipher, err := cipherFor(header.Cipher.Type)
	if err != nil {
		return nil, err
	}
	if header.Compression != CompressionNone {
		return nil, newErr("open", KindUnsupportedAlgorithm, nil)
	}
	kdf, err := kdfFor(header.KDF.Type)
	if err != nil {
		return nil, err
	}
	if len(header.Cipher.IV) != cipher.IVLen() {
		return nil, newErr("open", KindBadHeader, nil)
	}

	tagLen := cipher.TagLen()
	if headerStart+hlen+tagLen > len(blob) {
		return nil, newErr("open", KindTruncated, nil)
	}
	tag := blob[headerStart+hlen : headerStart+hlen+tagLen]
	ciphertext := blob[headerStart+hlen+tagLen:]

	key, err := kdf.Derive(password, header.KDF.Params)
	if err != nil {
		return nil, newErr("open", KindBadHeader, err)
	}
	defer zero(key)

	plaintext, err := cipher.Open(key, header.Cipher.IV, ciphertext, tag, headerBytes)
	if err != nil {
		return nil, err
	}
	defer zero(plaintext)

	data, err := decodeData(plaintext)
	if err != nil {
		return nil, err
	}

	return &Store{
		header: *header,
		data:   *data,
		rand:   rand,
		clock:  clock,
		cipher: cipher,
		kdf:    kdf,
	}, nil
}

func magicMatches(blob []byte) bool {
	for i := range magic {
		if blob[i] != magic[i] {
			return false
		}
	}
	return true
}
