package services

import (
	"testing"
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

func newTestDestinationStore(adapter storage.Adapter) *DestinationStore {
	store := NewDestinationStore(adapter)
	store.now = func() time.Time {
		return time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	}
	return store
}

func testSession() *models.Session {
	return &models.Session{
		AccountID:       "account-1",
		MyUsername:      "Momo",
		PartnerUsername: "Taro",
		StorageKey:      "momo__taro",
	}
}

func TestLoadAnonymousReturnsBaseCatalog(t *testing.T) {
	store := newTestDestinationStore(storage.NewMemoryAdapter())

	destinations := store.Load(nil)
	if len(destinations) != len(BaseDestinations()) {
		t.Fatalf("expected the base catalog, got %d entries", len(destinations))
	}

	// The snapshot is a deep clone of store state, not an alias.
	destinations[0].Name = "mutated"
	if store.Snapshot()[0].Name == "mutated" {
		t.Fatalf("expected snapshot isolation from caller mutation")
	}
}

func TestLoadPrefersNamespacedState(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	saved := []models.Destination{{ID: 42, Name: "已保存的地方"}}
	encoded, _ := storage.EncodeJSON(saved)
	adapter.Set(storage.NamespacedKey("momo__taro", storage.DestinationsSuffix), encoded)

	store := newTestDestinationStore(adapter)
	destinations := store.Load(testSession())
	if len(destinations) != 1 || destinations[0].ID != 42 {
		t.Fatalf("expected the namespaced state verbatim, got %#v", destinations)
	}
}

func TestLoadMergesLegacyList(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	legacy := []models.Destination{
		{ID: 1, Name: "冒充巴黎"}, // collides with a base id, must be dropped
		{ID: 100, Name: "老家的海边"},
	}
	encoded, _ := storage.EncodeJSON(legacy)
	adapter.Set(storage.LegacyDestinationsKey, encoded)

	store := newTestDestinationStore(adapter)
	destinations := store.Load(testSession())

	baseCount := len(BaseDestinations())
	if len(destinations) != baseCount+1 {
		t.Fatalf("expected base plus one legacy entry, got %d", len(destinations))
	}
	if destinations[0].Name == "冒充巴黎" {
		t.Fatalf("expected the base entry to win the id collision")
	}
	if destinations[baseCount].ID != 100 || destinations[baseCount].Name != "老家的海边" {
		t.Fatalf("expected legacy entry appended, got %#v", destinations[baseCount])
	}
}

func TestLoadNeverWrites(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	legacy := []models.Destination{{ID: 100, Name: "老家的海边"}}
	encoded, _ := storage.EncodeJSON(legacy)
	adapter.Set(storage.LegacyDestinationsKey, encoded)

	store := newTestDestinationStore(adapter)
	namespacedKey := storage.NamespacedKey("momo__taro", storage.DestinationsSuffix)

	first := store.Load(testSession())
	if _, found := adapter.Get(namespacedKey); found {
		t.Fatalf("expected load to leave the namespace unwritten")
	}

	second := store.Load(testSession())
	if len(first) != len(second) {
		t.Fatalf("expected repeated loads to agree, got %d then %d", len(first), len(second))
	}
	raw, found := adapter.Get(storage.LegacyDestinationsKey)
	if !found || raw != encoded {
		t.Fatalf("expected the legacy record untouched by loading")
	}
}

func TestAddAssignsIDs(t *testing.T) {
	t.Run("empty list starts at one", func(t *testing.T) {
		store := newTestDestinationStore(storage.NewMemoryAdapter())
		added := store.Add(models.Destination{Name: "第一站"})
		if added.ID != 1 {
			t.Fatalf("expected id 1 on an empty list, got %d", added.ID)
		}
	})

	t.Run("next id is max plus one", func(t *testing.T) {
		store := newTestDestinationStore(storage.NewMemoryAdapter())
		store.destinations = []models.Destination{{ID: 3}, {ID: 7}}
		added := store.Add(models.Destination{Name: "新地方"})
		if added.ID != 8 {
			t.Fatalf("expected id 8 after {3, 7}, got %d", added.ID)
		}
	})
}

func TestAddStampsAndPrepends(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestDestinationStore(adapter)
	store.Load(testSession())

	added := store.Add(models.Destination{Name: "冰岛蓝湖"})
	if added.CreatedAt != "2026-08-28T09:00:00Z" {
		t.Fatalf("expected RFC3339 creation stamp, got %q", added.CreatedAt)
	}
	if added.CreatedBy != "Momo" || added.SharedWith != "Taro" {
		t.Fatalf("expected author stamps from session, got %#v", added)
	}

	snapshot := store.Snapshot()
	if snapshot[0].ID != added.ID {
		t.Fatalf("expected new entry first, got %#v", snapshot[0])
	}

	// The mutation writes the migrated list into the pair namespace.
	raw, found := adapter.Get(storage.NamespacedKey("momo__taro", storage.DestinationsSuffix))
	if !found {
		t.Fatalf("expected persisted namespaced state after add")
	}
	persisted, ok := storage.DecodeJSON[[]models.Destination](raw)
	if !ok || len(persisted) != len(snapshot) {
		t.Fatalf("expected persisted list to match working copy")
	}
}

func TestAddAnonymousPersistsToLegacyKey(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestDestinationStore(adapter)
	store.Load(nil)

	added := store.Add(models.Destination{Name: "无名小镇"})
	if added.CreatedBy != "" {
		t.Fatalf("expected no author stamp without a session, got %q", added.CreatedBy)
	}
	if _, found := adapter.Get(storage.LegacyDestinationsKey); !found {
		t.Fatalf("expected anonymous write on the legacy key")
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := newTestDestinationStore(adapter)
	store.Load(testSession())

	snapshot := store.Snapshot()
	target := snapshot[0]
	target.Visited = true
	target.Notes = "终于去过了"
	store.Update(target)

	updated := store.Snapshot()[0]
	if !updated.Visited || updated.Notes != "终于去过了" {
		t.Fatalf("expected update applied, got %#v", updated)
	}

	// An unknown id is a no-op.
	before := len(store.Snapshot())
	store.Update(models.Destination{ID: 9999, Name: "幽灵"})
	if len(store.Snapshot()) != before {
		t.Fatalf("expected unknown id update to change nothing")
	}
}
