package tresor

// The wire format leans on github.com/fxamacker/cbor/v2 for a tagged,
// self-describing binary encoding: structs serialize as maps keyed by
// field name, byte strings and text strings stay distinguishable, and
// struct field declaration order is encoded deterministically — which is
// what makes the header's serialized bytes reproducible across two seals
// of an equal Store under identical randomness.

import (
	"github.com/fxamacker/cbor/v2"
)

func encodeHeader(h *OuterHeader) ([]byte, error) {
	b, err := cbor.Marshal(h)
	if err != nil {
		return nil, newErr("encode_header", KindBadHeader, err)
	}
	return b, nil
}

func decodeHeader(b []byte) (*OuterHeader, error) {
	var h OuterHeader
	if err := cbor.Unmarshal(b, &h); err != nil {
		return nil, newErr("decode_header", KindBadHeader, err)
	}
	return &h, nil
}

func encodeData(d *Data) ([]byte, error) {
	b, err := cbor.Marshal(d)
	if err != nil {
		return nil, newErr("encode_data", KindBadPayload, err)
	}
	return b, nil
}

func decodeData(b []byte) (*Data, error) {
	var d Data
	if err := cbor.Unmarshal(b, &d); err != nil {
		return nil, newErr("decode_data", KindBadPayload, err)
	}
	return &d, nil
}
