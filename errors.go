package tresor

import "fmt"

// Kind categorizes a Tresor error the way callers are expected to branch on
// it: by kind, never by message text.
type Kind string

const (
	// KindOOM marks an allocation failure. Never recoverable inside the
	// library.
	KindOOM Kind = "oom"
	// KindDuplicate marks insertion of an id or key that already exists.
	KindDuplicate Kind = "duplicate"
	// KindNotFound marks lookup, update, or removal of an absent id or key.
	KindNotFound Kind = "not_found"
	// KindBadMagic marks a blob whose leading bytes are not the Tresor magic.
	KindBadMagic Kind = "bad_magic"
	// KindTruncated marks a blob too short to hold its declared header or tag.
	KindTruncated Kind = "truncated"
	// KindBadHeader marks a header that failed to parse.
	KindBadHeader Kind = "bad_header"
	// KindUnsupportedAlgorithm marks a recognized-but-unimplemented or
	// unrecognized cipher/compression/KDF id in a parsed header.
	KindUnsupportedAlgorithm Kind = "unsupported_algorithm"
	// KindAuthFail marks an AEAD tag mismatch. A wrong password and a
	// tampered header or ciphertext both produce it, so Open's caller
	// cannot tell those apart. It is a separate Kind from KindBadPayload:
	// errors.Is(err, ErrBadPayload) is false for an AuthFail error.
	KindAuthFail Kind = "auth_fail"
	// KindBadPayload marks a plaintext that failed to parse as Data.
	KindBadPayload Kind = "bad_payload"
	// KindIO marks a reader/writer failure, propagated verbatim.
	KindIO Kind = "io"
)

// Error is a structured Tresor error: a Kind the caller can branch on, plus
// an optional wrapped cause. It satisfies errors.Is/errors.As against both
// the sentinel Err* values below and the wrapped cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tresor: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("tresor: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind, so callers can
// write `errors.Is(err, tresor.ErrNotFound)` without importing Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}
	return sentinel.Kind == e.Kind && sentinel.Err == nil
}

func newErr(op string, kind Kind, cause error) *Error {
	return &Error{Op: op, Kind: kind, Err: cause}
}

// Sentinel errors, one per Kind, for errors.Is comparisons:
//
//	if errors.Is(err, tresor.ErrNotFound) { ... }
var (
	ErrOOM                  = &Error{Kind: KindOOM}
	ErrDuplicate            = &Error{Kind: KindDuplicate}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrBadMagic             = &Error{Kind: KindBadMagic}
	ErrTruncated            = &Error{Kind: KindTruncated}
	ErrBadHeader            = &Error{Kind: KindBadHeader}
	ErrUnsupportedAlgorithm = &Error{Kind: KindUnsupportedAlgorithm}
	ErrAuthFail             = &Error{Kind: KindAuthFail}
	ErrBadPayload           = &Error{Kind: KindBadPayload}
	ErrIO                   = &Error{Kind: KindIO}
)
