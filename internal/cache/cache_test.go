package cache

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestGetMiss(t *testing.T) {
	s := New(6 * time.Hour)
	if _, ok := s.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestPutThenGet(t *testing.T) {
	s := New(6 * time.Hour)
	payload := json.RawMessage(`{"title":"plan"}`)
	s.Put("k", payload)

	got, ok := s.Get("k")
	if !ok {
		t.Fatal("expected hit for fresh entry")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %s, want %s", got, payload)
	}
}

func TestExpiryOnRead(t *testing.T) {
	s := New(6 * time.Hour)
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.Put("k", json.RawMessage(`{}`))

	// Still fresh just inside the window.
	s.now = func() time.Time { return base.Add(6*time.Hour - time.Second) }
	if _, ok := s.Get("k"); !ok {
		t.Error("expected hit just inside TTL")
	}

	// Stale at the window boundary: removed and reported as a miss.
	s.now = func() time.Time { return base.Add(6 * time.Hour) }
	if _, ok := s.Get("k"); ok {
		t.Error("expected miss at TTL boundary")
	}
	if s.Len() != 0 {
		t.Errorf("stale entry should be deleted on read, Len = %d", s.Len())
	}
}

func TestPutOverwrites(t *testing.T) {
	s := New(6 * time.Hour)
	s.Put("k", json.RawMessage(`{"v":1}`))
	s.Put("k", json.RawMessage(`{"v":2}`))

	got, ok := s.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != `{"v":2}` {
		t.Errorf("got %s, want second write", got)
	}
	if s.Len() != 1 {
		t.Errorf("overwrite should not grow the store, Len = %d", s.Len())
	}
}

func TestOverwriteRefreshesTimestamp(t *testing.T) {
	s := New(time.Hour)
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	s.Put("k", json.RawMessage(`{"v":1}`))

	s.now = func() time.Time { return base.Add(50 * time.Minute) }
	s.Put("k", json.RawMessage(`{"v":2}`))

	s.now = func() time.Time { return base.Add(100 * time.Minute) }
	if _, ok := s.Get("k"); !ok {
		t.Error("expected hit: second write restarted the TTL window")
	}
}
