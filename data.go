package tresor

// Data is the secret payload: everything the AEAD encrypts. A Store
// exclusively owns its Data.
type Data struct {
	Generator  string   `cbor:"generator"`
	Name       string   `cbor:"name"`
	CreatedAt  int64    `cbor:"created_at"`
	ModifiedAt int64    `cbor:"modified_at"`
	Entries    []*Entry `cbor:"entries"`
}

func (d *Data) indexOf(id []byte) int {
	for i, e := range d.Entries {
		if bytesEqual(e.ID, id) {
			return i
		}
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// destroy zeroes every Entry's field values. Called when the Store that
// owns this Data is destroyed.
func (d *Data) destroy() {
	for _, e := range d.Entries {
		e.destroy()
	}
}
