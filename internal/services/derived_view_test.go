package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
)

func TestBuildDerivedViewIsPure(t *testing.T) {
	destinations := []models.Destination{
		{ID: 1, Name: "京都", BestTime: "3-4月, 11月", Wishlist: true},
		{ID: 2, Name: "巴黎", Visited: true, Notes: "铁塔下的晚餐", Coordinates: [2]float64{48.86, 2.35}},
		{ID: 3, Name: "东京", Plans: []models.Plan{{ID: 1, Title: "樱花季", Date: "2026-04-01"}}},
	}
	pinned := []string{"first-dream"}
	progress := map[string]bool{"promise-sync": true}
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	first := BuildDerivedView(destinations, pinned, progress, now)
	second := BuildDerivedView(destinations, pinned, progress, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected equal inputs to produce equal views")
	}
	if first.Stats.Total != 3 || first.Stats.VisitedCount != 1 || first.Stats.Progress != 33 {
		t.Fatalf("expected stats over the snapshot, got %#v", first.Stats)
	}
	if first.HeroHighlight == nil || first.HeroHighlight.Name != "京都" {
		t.Fatalf("expected the seasonal pick as hero, got %#v", first.HeroHighlight)
	}
	if len(first.UpcomingPlans) != 1 || first.UpcomingPlans[0].DestinationName != "东京" {
		t.Fatalf("expected the flattened plan, got %#v", first.UpcomingPlans)
	}
}

func TestBuildDerivedViewDoesNotMutateInputs(t *testing.T) {
	destinations := []models.Destination{{ID: 1, Name: "巴黎", Visited: true}}
	pinned := []string{"first-dream"}
	progress := map[string]bool{"promise-sync": true}

	BuildDerivedView(destinations, pinned, progress, time.Now())

	if destinations[0].Name != "巴黎" || len(pinned) != 1 || len(progress) != 1 {
		t.Fatalf("expected inputs untouched")
	}
}
