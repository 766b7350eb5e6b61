package storage

import (
	"errors"
	"testing"
)

type faultyBackend struct {
	err    error
	values map[string]string
}

func (backend *faultyBackend) GetValue(key string) (string, bool, error) {
	if backend.err != nil {
		return "", false, backend.err
	}
	value, found := backend.values[key]
	return value, found, nil
}

func (backend *faultyBackend) SetValue(key string, value string) error {
	if backend.err != nil {
		return backend.err
	}
	backend.values[key] = value
	return nil
}

func (backend *faultyBackend) RemoveValue(key string) error {
	if backend.err != nil {
		return backend.err
	}
	delete(backend.values, key)
	return nil
}

func TestDatabaseAdapterRoundTrip(t *testing.T) {
	adapter := NewDatabaseAdapter(&faultyBackend{values: make(map[string]string)})

	if _, found := adapter.Get("missing"); found {
		t.Fatalf("expected miss for unknown key")
	}

	adapter.Set("greeting", "hello")
	value, found := adapter.Get("greeting")
	if !found || value != "hello" {
		t.Fatalf("expected stored value, got %q found=%v", value, found)
	}

	adapter.Remove("greeting")
	if _, found := adapter.Get("greeting"); found {
		t.Fatalf("expected removed key to read as absent")
	}
}

func TestDatabaseAdapterAbsorbsBackendFaults(t *testing.T) {
	backend := &faultyBackend{err: errors.New("disk on fire"), values: make(map[string]string)}
	adapter := NewDatabaseAdapter(backend)

	value, found := adapter.Get("anything")
	if found || value != "" {
		t.Fatalf("expected failing read to look absent, got %q found=%v", value, found)
	}

	// Writes and removes must not panic or surface the error.
	adapter.Set("anything", "value")
	adapter.Remove("anything")

	backend.err = nil
	if _, found := adapter.Get("anything"); found {
		t.Fatalf("expected dropped write to have stored nothing")
	}
}

func TestMemoryAdapter(t *testing.T) {
	adapter := NewMemoryAdapter()

	adapter.Set("key", "one")
	adapter.Set("key", "two")
	value, found := adapter.Get("key")
	if !found || value != "two" {
		t.Fatalf("expected overwrite to win, got %q found=%v", value, found)
	}

	adapter.Remove("key")
	if _, found := adapter.Get("key"); found {
		t.Fatalf("expected removed key to be absent")
	}
}
