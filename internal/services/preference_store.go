package services

import (
	"errors"
	"strings"
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

var ErrPromiseEmpty = errors.New("promise empty")

// PreferenceStore persists the small per-session preference records: the
// pinned-achievement list, the connection-prompt progress map and the
// shared promise. Without a session nothing is persisted; the in-memory
// copies simply live and die with the process.
type PreferenceStore struct {
	adapter storage.Adapter
	now     func() time.Time
}

func NewPreferenceStore(adapter storage.Adapter) *PreferenceStore {
	return &PreferenceStore{adapter: adapter, now: time.Now}
}

func (store *PreferenceStore) read(session *models.Session, suffix string) (string, bool) {
	if session == nil {
		return "", false
	}
	return store.adapter.Get(storage.NamespacedKey(session.StorageKey, suffix))
}

func (store *PreferenceStore) write(session *models.Session, suffix string, value any) {
	if session == nil {
		return
	}
	encoded, ok := storage.EncodeJSON(value)
	if !ok {
		return
	}
	store.adapter.Set(storage.NamespacedKey(session.StorageKey, suffix), encoded)
}

// LoadPinned reads the pinned achievement ids; absent or malformed state
// defaults to no pins.
func (store *PreferenceStore) LoadPinned(session *models.Session) []string {
	raw, found := store.read(session, storage.PinsSuffix)
	if !found {
		return nil
	}
	pinned, ok := storage.DecodeJSON[[]string](raw)
	if !ok {
		return nil
	}
	return pinned
}

func (store *PreferenceStore) SavePinned(session *models.Session, pinned []string) {
	store.write(session, storage.PinsSuffix, pinned)
}

// LoadProgress reads the prompt completion map; the default is an empty
// map, meaning nothing completed.
func (store *PreferenceStore) LoadProgress(session *models.Session) map[string]bool {
	raw, found := store.read(session, storage.PromptsSuffix)
	if !found {
		return map[string]bool{}
	}
	progress, ok := storage.DecodeJSON[map[string]bool](raw)
	if !ok || progress == nil {
		return map[string]bool{}
	}
	return progress
}

func (store *PreferenceStore) SaveProgress(session *models.Session, progress map[string]bool) {
	store.write(session, storage.PromptsSuffix, progress)
}

// LoadPromise reads the shared promise; an absent or malformed record means
// the pair has none.
func (store *PreferenceStore) LoadPromise(session *models.Session) (models.SharedPromise, bool) {
	raw, found := store.read(session, storage.PromiseSuffix)
	if !found {
		return models.SharedPromise{}, false
	}
	promise, ok := storage.DecodeJSON[models.SharedPromise](raw)
	if !ok || promise.IsEmpty() {
		return models.SharedPromise{}, false
	}
	return promise, true
}

// SavePromise stamps and persists the promise. An all-empty promise is
// rejected; clearing goes through RemovePromise instead.
func (store *PreferenceStore) SavePromise(session *models.Session, promise models.SharedPromise) (models.SharedPromise, error) {
	promise.Mantra = strings.TrimSpace(promise.Mantra)
	promise.Ritual = strings.TrimSpace(promise.Ritual)
	if promise.IsEmpty() {
		return models.SharedPromise{}, ErrPromiseEmpty
	}
	promise.SavedAt = store.now().Format(time.RFC3339)
	store.write(session, storage.PromiseSuffix, promise)
	return promise, nil
}

// RemovePromise deletes the persisted promise key entirely.
func (store *PreferenceStore) RemovePromise(session *models.Session) {
	if session == nil {
		return
	}
	store.adapter.Remove(storage.NamespacedKey(session.StorageKey, storage.PromiseSuffix))
}
