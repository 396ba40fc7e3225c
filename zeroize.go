package tresor

// zero overwrites b with zero bytes in place. Called on every exit path —
// success or error — for any buffer that at some point held a derived key,
// a plaintext serialization of Data, or a Field value being replaced or
// removed. IVs, tags, and the header are not sensitive; Store still runs
// a replaced or destroyed IV through zero, which does no harm.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
