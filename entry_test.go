package tresor

import (
	"bytes"
	"errors"
	"testing"
)

func TestEntryAddFieldRejectsDuplicateKey(t *testing.T) {
	e := newEntry([]byte{1}, 100)
	if err := e.AddField("user", []byte("a"), 100); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	if err := e.AddField("user", []byte("b"), 200); !errors.Is(err, ErrDuplicate) {
		t.Errorf("got %v, want ErrDuplicate", err)
	}
}

func TestEntryUpdateFieldZeroesOldValue(t *testing.T) {
	e := newEntry([]byte{1}, 100)
	e.AddField("user", []byte("alice"), 100)

	old := e.Fields[0].Value
	if err := e.UpdateField("user", []byte("bob"), 200); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	for _, b := range old {
		if b != 0 {
			t.Fatalf("old value not zeroed: %v", old)
		}
	}
	v, _ := e.GetField("user", 200)
	if string(v) != "bob" {
		t.Errorf("GetField after update = %q, want bob", v)
	}
	if e.ModifiedAt != 200 {
		t.Errorf("ModifiedAt = %d, want 200", e.ModifiedAt)
	}
}

func TestEntryUpdateMissingFieldNotFound(t *testing.T) {
	e := newEntry([]byte{1}, 100)
	if err := e.UpdateField("absent", []byte("x"), 200); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestEntryRemoveFieldZeroesValue(t *testing.T) {
	e := newEntry([]byte{1}, 100)
	e.AddField("user", []byte("alice"), 100)
	v := e.Fields[0].Value

	if err := e.RemoveField("user", 200); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if len(e.Fields) != 0 {
		t.Errorf("Fields after remove = %v, want empty", e.Fields)
	}
	for _, b := range v {
		if b != 0 {
			t.Fatalf("removed value not zeroed: %v", v)
		}
	}
}

func TestEntryTouchOnlyAdvances(t *testing.T) {
	e := newEntry([]byte{1}, 100)
	e.Touch(50) // earlier than CreatedAt/AccessedAt
	if e.AccessedAt != 100 {
		t.Errorf("Touch with earlier time changed AccessedAt to %d, want 100", e.AccessedAt)
	}
	e.Touch(500)
	if e.AccessedAt != 500 {
		t.Errorf("AccessedAt = %d, want 500", e.AccessedAt)
	}
}

func TestEntryFieldValueIsCopiedNotAliased(t *testing.T) {
	e := newEntry([]byte{1}, 100)
	src := []byte("alice")
	e.AddField("user", src, 100)
	src[0] = 'X'

	v, _ := e.GetField("user", 100)
	if bytes.Equal(v, src) {
		t.Error("Entry field value aliases caller's slice")
	}
	if string(v) != "alice" {
		t.Errorf("stored value = %q, want alice (unaffected by caller mutation)", v)
	}
}
