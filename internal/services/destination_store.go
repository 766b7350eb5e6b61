package services

import (
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

// DestinationStore owns the live destination list for the active session.
// Every mutation rewrites the full list through the adapter before
// returning, so the persisted form always reflects exactly one completed
// operation.
type DestinationStore struct {
	adapter      storage.Adapter
	now          func() time.Time
	session      *models.Session
	destinations []models.Destination
}

func NewDestinationStore(adapter storage.Adapter) *DestinationStore {
	return &DestinationStore{adapter: adapter, now: time.Now}
}

// Load initializes the working copy for a session. Resolution order:
// already-migrated namespaced state, then the legacy un-namespaced list
// merged into the base catalog (a one-time migration that is only written
// back on the first save), then a fresh clone of the base catalog. Loading
// never writes, so repeated loads leave the persisted bytes untouched.
func (store *DestinationStore) Load(session *models.Session) []models.Destination {
	store.session = session

	if session == nil {
		store.destinations = BaseDestinations()
		return store.Snapshot()
	}

	namespacedKey := storage.NamespacedKey(session.StorageKey, storage.DestinationsSuffix)
	if raw, found := store.adapter.Get(namespacedKey); found {
		if destinations, ok := storage.DecodeJSON[[]models.Destination](raw); ok && len(destinations) > 0 {
			store.destinations = destinations
			return store.Snapshot()
		}
	}

	if raw, found := store.adapter.Get(storage.LegacyDestinationsKey); found {
		if legacy, ok := storage.DecodeJSON[[]models.Destination](raw); ok && len(legacy) > 0 {
			store.destinations = mergeLegacyDestinations(legacy)
			return store.Snapshot()
		}
	}

	store.destinations = BaseDestinations()
	return store.Snapshot()
}

// mergeLegacyDestinations unions the pre-pairing custom list into the base
// catalog by id. A legacy entry whose id collides with a base entry is
// dropped rather than allowed to overwrite seed data.
func mergeLegacyDestinations(legacy []models.Destination) []models.Destination {
	merged := BaseDestinations()
	existingIDs := make(map[int]bool, len(merged))
	for _, destination := range merged {
		existingIDs[destination.ID] = true
	}
	for _, destination := range legacy {
		if existingIDs[destination.ID] {
			continue
		}
		existingIDs[destination.ID] = true
		merged = append(merged, destination.Clone())
	}
	return merged
}

// Snapshot returns a deep clone of the working copy; callers never see the
// store's own slice.
func (store *DestinationStore) Snapshot() []models.Destination {
	return models.CloneDestinations(store.destinations)
}

// NextID allocates the next destination id. Ids grow monotonically and are
// never reused; there is no delete operation to free them.
func (store *DestinationStore) NextID() int {
	maxID := 0
	for _, destination := range store.destinations {
		if destination.ID > maxID {
			maxID = destination.ID
		}
	}
	return maxID + 1
}

// Add stamps and prepends a new destination, so the newest entry lists
// first, then persists the full list.
func (store *DestinationStore) Add(payload models.Destination) models.Destination {
	destination := payload.Clone()
	destination.ID = store.NextID()
	destination.CreatedAt = store.now().Format(time.RFC3339)
	if store.session != nil {
		destination.CreatedBy = store.session.MyUsername
		destination.SharedWith = store.session.PartnerUsername
	}

	store.destinations = append([]models.Destination{destination}, store.destinations...)
	store.persist()
	return destination.Clone()
}

// Update replaces the entry with a matching id and persists the full list.
// Plans are cloned so the stored copy never aliases editor state.
func (store *DestinationStore) Update(updated models.Destination) {
	for index, destination := range store.destinations {
		if destination.ID == updated.ID {
			store.destinations[index] = updated.Clone()
			store.persist()
			return
		}
	}
}

// persist writes the whole list: to the session namespace when logged in,
// or to the legacy global key so pre-pairing usage keeps working.
func (store *DestinationStore) persist() {
	encoded, ok := storage.EncodeJSON(store.destinations)
	if !ok {
		return
	}
	key := storage.LegacyDestinationsKey
	if store.session != nil {
		key = storage.NamespacedKey(store.session.StorageKey, storage.DestinationsSuffix)
	}
	store.adapter.Set(key, encoded)
}
