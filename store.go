// Package tresor is an embeddable encrypted secret-store library. It
// maintains a collection of Entries, each a set of typed key/value Fields
// addressed by a stable id, and persists that collection as a single
// self-describing, authenticated-encrypted blob protected by a
// password-derived key.
package tresor

import (
	"io"

	"github.com/armorclaw/tresor/tresorconfig"
)

// Generator identifies this library in a Data's Generator field.
const Generator = "tresor-go"

// Store (Tresor) is the top-level container of Entries together with its
// cryptographic metadata. It composes an OuterHeader and a Data, and holds
// the RNG and clock dependencies needed to make Seal deterministic under
// test. A Store is not safe for concurrent mutation.
type Store struct {
	header OuterHeader
	data   Data

	rand  io.Reader
	clock Clock

	cipher Cipher
	kdf    KDF

	logger  storeLogger
	metrics storeMetrics
}

// storeLogger is the minimal surface Store needs from tresorlog.Logger,
// kept as an interface here so this package does not import tresorlog;
// *tresorlog.Logger satisfies it through its embedded *slog.Logger.
type storeLogger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// storeMetrics is the minimal surface Store needs from
// tresormetrics.Metrics.
type storeMetrics interface {
	ObserveSeal(entryCount int)
	ObserveOpen(entryCount int)
	ObserveAuthFail()
}

// New constructs a fresh Store. generator identifies the producing
// library (pass tresor.Generator unless embedding under another name),
// name is the store's human-readable name, cipherID/kdfID pick the
// algorithms Seal will use, rand is the random-bytes source (crypto/rand.Reader
// for production, a seeded fake for deterministic tests), and clock
// supplies NowMillis.
func New(generator, name string, cipherID CipherID, kdfID KdfID, rand io.Reader, clock Clock) (*Store, error) {
	cipher, err := cipherFor(cipherID)
	if err != nil {
		return nil, err
	}
	kdf, err := kdfFor(kdfID)
	if err != nil {
		return nil, err
	}

	params := defaultArgon2Params()
	if kdfID != KdfArgon2id {
		params = KdfParams{Iterations: 256000}
	}

	now := clock.NowMillis()
	return &Store{
		header: OuterHeader{
			VersionMajor: formatVersionMajor,
			VersionMinor: formatVersionMinor,
			Cipher:       CipherSpec{Type: cipherID},
			Compression:  CompressionNone,
			KDF:          KdfSpec{Type: kdfID, Params: params},
		},
		data: Data{
			Generator:  generator,
			Name:       name,
			CreatedAt:  now,
			ModifiedAt: now,
		},
		rand:   rand,
		clock:  clock,
		cipher: cipher,
		kdf:    kdf,
	}, nil
}

// NewFromConfig constructs a Store the way New does, taking its cipher,
// KDF, and Argon2id cost parameters from cfg (see tresorconfig) instead of
// from explicit CipherID/KdfID arguments. Pass tresorconfig.DefaultConfig()
// for New's built-in behavior.
func NewFromConfig(cfg *tresorconfig.Config, generator, name string, rand io.Reader, clock Clock) (*Store, error) {
	cipherID, err := nameToCipherID(cfg.Cipher)
	if err != nil {
		return nil, err
	}
	kdfID, err := nameToKdfID(cfg.KDF)
	if err != nil {
		return nil, err
	}

	s, err := New(generator, name, cipherID, kdfID, rand, clock)
	if err != nil {
		return nil, err
	}

	if kdfID == KdfArgon2id {
		s.header.KDF.Params.Iterations = cfg.Argon2.IterationsTime
		s.header.KDF.Params.MemoryKiB = cfg.Argon2.MemoryKiB
		s.header.KDF.Params.Parallelism = cfg.Argon2.Parallelism
	}

	return s, nil
}

// WithLogger attaches a structured logger. A Store with no logger
// configured logs nothing; log lines never carry field values, keys, or
// passwords.
func (s *Store) WithLogger(l storeLogger) *Store {
	s.logger = l
	return s
}

// WithMetrics attaches a metrics sink. A Store with no metrics sink
// configured records nothing.
func (s *Store) WithMetrics(m storeMetrics) *Store {
	s.metrics = m
	return s
}

// Name returns the store's current name.
func (s *Store) Name() string { return s.data.Name }

// Rename updates the store's name and bumps Data.ModifiedAt.
func (s *Store) Rename(name string, now int64) {
	s.data.Name = name
	s.data.ModifiedAt = now
}

// EntryCount returns the number of Entries currently held.
func (s *Store) EntryCount() int { return len(s.data.Entries) }

// CreateEntry constructs a detached Entry owned by the caller, with
// CreatedAt = ModifiedAt = AccessedAt = now. It is not inserted into the
// Store — call AddEntry to do that.
func (s *Store) CreateEntry(id []byte) *Entry {
	return newEntry(id, s.clock.NowMillis())
}

// AddEntry inserts entry into the Data. Fails with ErrDuplicate when an
// Entry with an identical id already exists; the caller retains ownership
// in that case. On success, ownership transfers to the Store and
// Data.ModifiedAt is bumped.
func (s *Store) AddEntry(entry *Entry) error {
	if s.data.indexOf(entry.ID) >= 0 {
		return newErr("add_entry", KindDuplicate, nil)
	}
	s.data.Entries = append(s.data.Entries, entry)
	s.data.ModifiedAt = s.clock.NowMillis()
	return nil
}

// GetEntry returns a mutable handle to the Entry with matching id, or
// ErrNotFound. Does not update any timestamp.
func (s *Store) GetEntry(id []byte) (*Entry, error) {
	i := s.data.indexOf(id)
	if i < 0 {
		return nil, newErr("get_entry", KindNotFound, nil)
	}
	return s.data.Entries[i], nil
}

// TouchEntry bumps the named Entry's AccessedAt without reading any field.
func (s *Store) TouchEntry(id []byte, now int64) error {
	e, err := s.GetEntry(id)
	if err != nil {
		return err
	}
	e.Touch(now)
	return nil
}

// RemoveEntry removes and destroys the Entry with matching id, zeroing
// all of its field values. Fails with ErrNotFound if absent.
// Data.ModifiedAt is bumped on success.
func (s *Store) RemoveEntry(id []byte) error {
	i := s.data.indexOf(id)
	if i < 0 {
		return newErr("remove_entry", KindNotFound, nil)
	}
	s.data.Entries[i].destroy()
	s.data.Entries = append(s.data.Entries[:i], s.data.Entries[i+1:]...)
	s.data.ModifiedAt = s.clock.NowMillis()
	return nil
}

// Filter is a (key, value) pair. An Entry satisfies a Filter iff it
// contains a Field with that exact key and exact value (byte-exact, no
// case folding).
type Filter struct {
	Key   string
	Value []byte
}

// GetEntries returns the Entries satisfying every filter, in insertion
// order. An empty filter list returns all Entries.
func (s *Store) GetEntries(filters []Filter) []*Entry {
	if len(filters) == 0 {
		out := make([]*Entry, len(s.data.Entries))
		copy(out, s.data.Entries)
		return out
	}

	var out []*Entry
	for _, e := range s.data.Entries {
		if entrySatisfies(e, filters) {
			out = append(out, e)
		}
	}
	return out
}

func entrySatisfies(e *Entry, filters []Filter) bool {
	for _, f := range filters {
		i := e.indexOf(f.Key)
		if i < 0 || !bytesEqual(e.Fields[i].Value, f.Value) {
			return false
		}
	}
	return true
}

// Destroy zeroes every sensitive byte this Store owns: every Entry's field
// values and the header's IV. Callers should call Destroy once a Store is
// no longer needed, rather than relying on the garbage collector.
func (s *Store) Destroy() {
	s.data.destroy()
	if s.header.Cipher.IV != nil {
		zero(s.header.Cipher.IV)
	}
}
