package tresor

import "time"

// Clock is the wall-clock abstraction: a single-method interface so
// sealing can be made deterministic under test by injecting a fake,
// instead of reaching for a global.
type Clock interface {
	NowMillis() int64
}

// SystemClock is the default Clock, backed by time.Now().
type SystemClock struct{}

// NowMillis returns the current time as signed Unix milliseconds.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FixedClock is a deterministic Clock for tests: every call returns the
// same instant, which paired with a seeded RNG makes Seal's output
// reproducible.
type FixedClock int64

// NowMillis returns the fixed instant.
func (f FixedClock) NowMillis() int64 { return int64(f) }
