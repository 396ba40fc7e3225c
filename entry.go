package tresor

// Entry is a named collection of key/value Fields within a Store,
// addressed by a unique id. An Entry exclusively owns every byte of its
// id, keys, and values: all mutation goes through the methods below, never
// through direct field access from outside the package, so AccessedAt and
// ModifiedAt stay consistent.
type Entry struct {
	ID         []byte  `cbor:"id"`
	CreatedAt  int64   `cbor:"created_at"`
	ModifiedAt int64   `cbor:"modified_at"`
	AccessedAt int64   `cbor:"accessed_at"`
	Fields     []Field `cbor:"fields"`
}

func newEntry(id []byte, now int64) *Entry {
	return &Entry{
		ID:         cloneValue(id),
		CreatedAt:  now,
		ModifiedAt: now,
		AccessedAt: now,
	}
}

func (e *Entry) indexOf(key string) int {
	for i := range e.Fields {
		if e.Fields[i].Key == key {
			return i
		}
	}
	return -1
}

// AddField appends a new Field. Fails with ErrDuplicate if key is already
// present. On success sets ModifiedAt = now. The value is copied into
// Entry-owned storage.
func (e *Entry) AddField(key string, value []byte, now int64) error {
	if e.indexOf(key) >= 0 {
		return newErr("entry_add_field", KindDuplicate, nil)
	}
	e.Fields = append(e.Fields, Field{Key: key, Value: cloneValue(value)})
	e.ModifiedAt = now
	return nil
}

// GetField returns a copy of the value stored under key and bumps
// AccessedAt to max(AccessedAt, now). Returns ErrNotFound when absent.
//
// Funneling field reads through this method keeps AccessedAt accurate;
// TouchEntry exists for callers who read a field's value through some
// other path and still want the access recorded.
func (e *Entry) GetField(key string, now int64) ([]byte, error) {
	i := e.indexOf(key)
	if i < 0 {
		return nil, newErr("entry_get_field", KindNotFound, nil)
	}
	if now > e.AccessedAt {
		e.AccessedAt = now
	}
	return cloneValue(e.Fields[i].Value), nil
}

// UpdateField replaces the existing Field's value. Fails with ErrNotFound
// when absent. On success sets ModifiedAt = now. The prior value is
// zeroed before being released.
func (e *Entry) UpdateField(key string, value []byte, now int64) error {
	i := e.indexOf(key)
	if i < 0 {
		return newErr("entry_update_field", KindNotFound, nil)
	}
	zero(e.Fields[i].Value)
	e.Fields[i].Value = cloneValue(value)
	e.ModifiedAt = now
	return nil
}

// RemoveField removes the Field under key, zeroing its value before
// release. Fails with ErrNotFound if absent.
func (e *Entry) RemoveField(key string, now int64) error {
	i := e.indexOf(key)
	if i < 0 {
		return newErr("entry_remove_field", KindNotFound, nil)
	}
	zero(e.Fields[i].Value)
	e.Fields = append(e.Fields[:i], e.Fields[i+1:]...)
	e.ModifiedAt = now
	return nil
}

// Touch bumps AccessedAt to max(AccessedAt, now) without touching any
// field value, for callers who read a field through some other path and
// still want the access recorded.
func (e *Entry) Touch(now int64) {
	if now > e.AccessedAt {
		e.AccessedAt = now
	}
}

// destroy zeroes every field value the Entry owns. Called when the Entry
// is removed from its Store or the Store is destroyed.
func (e *Entry) destroy() {
	for i := range e.Fields {
		zero(e.Fields[i].Value)
	}
	zero(e.ID)
}
