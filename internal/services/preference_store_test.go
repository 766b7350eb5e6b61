package services

import (
	"errors"
	"testing"
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

func newTestPreferenceStore(adapter storage.Adapter) *PreferenceStore {
	store := NewPreferenceStore(adapter)
	store.now = func() time.Time {
		return time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	}
	return store
}

func TestPinnedRoundTrip(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestPreferenceStore(adapter)
	session := testSession()

	if pinned := store.LoadPinned(session); len(pinned) != 0 {
		t.Fatalf("expected no pins by default, got %#v", pinned)
	}

	store.SavePinned(session, []string{"first-dream", "map-maker"})
	pinned := store.LoadPinned(session)
	if len(pinned) != 2 || pinned[0] != "first-dream" || pinned[1] != "map-maker" {
		t.Fatalf("expected pins round-tripped in order, got %#v", pinned)
	}
}

func TestProgressDefaultsToEmptyMap(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestPreferenceStore(adapter)
	session := testSession()

	progress := store.LoadProgress(session)
	if progress == nil || len(progress) != 0 {
		t.Fatalf("expected an empty map, got %#v", progress)
	}

	adapter.Set(storage.NamespacedKey(session.StorageKey, storage.PromptsSuffix), "{broken")
	if progress := store.LoadProgress(session); len(progress) != 0 {
		t.Fatalf("expected malformed record to default, got %#v", progress)
	}
}

func TestPromiseLifecycle(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestPreferenceStore(adapter)
	session := testSession()

	if _, found := store.LoadPromise(session); found {
		t.Fatalf("expected no promise initially")
	}

	saved, err := store.SavePromise(session, models.SharedPromise{Mantra: "  每年解锁一个新地方  ", Ritual: ""})
	if err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}
	if saved.Mantra != "每年解锁一个新地方" {
		t.Fatalf("expected trimmed mantra, got %q", saved.Mantra)
	}
	if saved.SavedAt != "2026-08-28T09:00:00Z" {
		t.Fatalf("expected save stamp, got %q", saved.SavedAt)
	}

	loaded, found := store.LoadPromise(session)
	if !found || loaded != saved {
		t.Fatalf("expected promise round-tripped, got %#v found=%v", loaded, found)
	}

	store.RemovePromise(session)
	if _, found := store.LoadPromise(session); found {
		t.Fatalf("expected promise removed")
	}
	if _, found := adapter.Get(storage.NamespacedKey(session.StorageKey, storage.PromiseSuffix)); found {
		t.Fatalf("expected the key removed, not blanked")
	}
}

func TestSavePromiseRejectsEmpty(t *testing.T) {
	store := newTestPreferenceStore(storage.NewMemoryAdapter())

	_, err := store.SavePromise(testSession(), models.SharedPromise{Mantra: "   ", Ritual: "  "})
	if !errors.Is(err, ErrPromiseEmpty) {
		t.Fatalf("expected ErrPromiseEmpty, got %v", err)
	}
}

func TestPreferencesWithoutSessionAreNoOps(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestPreferenceStore(adapter)

	store.SavePinned(nil, []string{"first-dream"})
	store.SaveProgress(nil, map[string]bool{"promise-sync": true})
	store.RemovePromise(nil)

	if pinned := store.LoadPinned(nil); len(pinned) != 0 {
		t.Fatalf("expected nothing loaded without a session, got %#v", pinned)
	}
	if _, found := store.LoadPromise(nil); found {
		t.Fatalf("expected no promise without a session")
	}
}
