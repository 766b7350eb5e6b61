package storage

import "log"

// Adapter is the single seam between the core and whatever holds the bytes.
// All three operations are total: a failing backend surfaces as an absent
// read or a dropped write, never as an error to the caller. The rest of the
// core is written against this guarantee.
type Adapter interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Remove(key string)
}

// KVBackend is the fallible store a DatabaseAdapter shields callers from.
// internal/db satisfies it with a sqlite-backed table.
type KVBackend interface {
	GetValue(key string) (string, bool, error)
	SetValue(key string, value string) error
	RemoveValue(key string) error
}

// DatabaseAdapter adapts a KVBackend to the total Adapter contract.
// Backend faults are logged for diagnostics and otherwise absorbed: the
// store is a local convenience cache, not a system of record.
type DatabaseAdapter struct {
	backend KVBackend
}

func NewDatabaseAdapter(backend KVBackend) *DatabaseAdapter {
	return &DatabaseAdapter{backend: backend}
}

func (adapter *DatabaseAdapter) Get(key string) (string, bool) {
	value, found, err := adapter.backend.GetValue(key)
	if err != nil {
		log.Printf("storage: read %q failed: %v", key, err)
		return "", false
	}
	return value, found
}

func (adapter *DatabaseAdapter) Set(key string, value string) {
	if err := adapter.backend.SetValue(key, value); err != nil {
		log.Printf("storage: write %q failed: %v", key, err)
	}
}

func (adapter *DatabaseAdapter) Remove(key string) {
	if err := adapter.backend.RemoveValue(key); err != nil {
		log.Printf("storage: remove %q failed: %v", key, err)
	}
}

// MemoryAdapter keeps values in a plain map. It backs tests and the
// anonymous in-process fallback when no database is configured.
type MemoryAdapter struct {
	values map[string]string
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string]string)}
}

func (adapter *MemoryAdapter) Get(key string) (string, bool) {
	value, found := adapter.values[key]
	return value, found
}

func (adapter *MemoryAdapter) Set(key string, value string) {
	adapter.values[key] = value
}

func (adapter *MemoryAdapter) Remove(key string) {
	delete(adapter.values, key)
}
