package tresor

import "github.com/google/uuid"

// NewEntryID returns a fresh random identifier suitable for CreateEntry,
// for callers who do not want to hand-roll one. Backed by
// github.com/google/uuid; the returned bytes are the UUID's raw 16 bytes,
// not its textual form.
func NewEntryID() []byte {
	id := uuid.New()
	return id[:]
}
