package services

import (
	"strings"
	"testing"

	"github.com/wanderpair/wanderpair/internal/models"
)

func promptIDs(prompts []ConnectionPrompt) []string {
	ids := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		ids = append(ids, prompt.ID)
	}
	return ids
}

func TestBuildConnectionPromptsFiltersPreconditions(t *testing.T) {
	prompts := BuildConnectionPrompts(PromptInput{}, nil)
	if len(prompts) != 1 || prompts[0].ID != "promise-sync" {
		t.Fatalf("expected only the always-available prompt on an empty dataset, got %#v", promptIDs(prompts))
	}
}

func TestBuildConnectionPromptsPersonalizesText(t *testing.T) {
	input := PromptInput{
		Stats:              TravelStats{VisitedCount: 3},
		SeasonalHighlights: []models.Destination{{Name: "京都"}},
		WishlistSpotlights: []models.Destination{{Name: "马尔代夫"}},
		MemoryLane:         []models.Destination{{Name: "巴黎"}},
		UpcomingPlans:      []UpcomingPlan{{Plan: models.Plan{Title: "樱花季", Date: "2026-04-01"}, DestinationName: "东京"}},
	}

	prompts := BuildConnectionPrompts(input, map[string]bool{"season-walk": true})
	if len(prompts) != len(promptCatalog) {
		t.Fatalf("expected the full catalog available, got %#v", promptIDs(prompts))
	}

	byID := make(map[string]ConnectionPrompt, len(prompts))
	for _, prompt := range prompts {
		byID[prompt.ID] = prompt
	}

	if !strings.Contains(byID["season-walk"].Text, "京都") {
		t.Fatalf("expected seasonal prompt to name the destination, got %q", byID["season-walk"].Text)
	}
	if !byID["season-walk"].Completed {
		t.Fatalf("expected completion mark from progress map")
	}
	if !strings.Contains(byID["wish-countdown"].Text, "马尔代夫") {
		t.Fatalf("expected wishlist prompt personalized, got %q", byID["wish-countdown"].Text)
	}
	if !strings.Contains(byID["next-trip-check"].Text, "2026-04-01") {
		t.Fatalf("expected dated plan prompt to cite the date, got %q", byID["next-trip-check"].Text)
	}
	if !strings.Contains(byID["celebrate-progress"].Text, "3") {
		t.Fatalf("expected visited count in text, got %q", byID["celebrate-progress"].Text)
	}
}

func TestNextTripPromptWithoutDate(t *testing.T) {
	input := PromptInput{
		UpcomingPlans: []UpcomingPlan{{Plan: models.Plan{Title: "说走就走"}, DestinationName: "冰岛"}},
	}

	prompts := BuildConnectionPrompts(input, nil)
	for _, prompt := range prompts {
		if prompt.ID != "next-trip-check" {
			continue
		}
		if !strings.Contains(prompt.Text, "确认") || !strings.Contains(prompt.Text, "冰岛") {
			t.Fatalf("expected the undated fallback text, got %q", prompt.Text)
		}
		return
	}
	t.Fatalf("expected next-trip-check present, got %#v", promptIDs(prompts))
}

func TestToggleConnectionPrompt(t *testing.T) {
	original := map[string]bool{"promise-sync": true}

	once := ToggleConnectionPrompt(original, "season-walk")
	if !once["season-walk"] || !once["promise-sync"] {
		t.Fatalf("expected toggle to add completion, got %#v", once)
	}

	twice := ToggleConnectionPrompt(once, "season-walk")
	if _, present := twice["season-walk"]; present {
		t.Fatalf("expected double toggle to remove the key, got %#v", twice)
	}
	if len(twice) != len(original) || !twice["promise-sync"] {
		t.Fatalf("expected double toggle to restore original contents, got %#v", twice)
	}

	// The input map is never mutated.
	if len(original) != 1 {
		t.Fatalf("expected original map untouched, got %#v", original)
	}
}

func TestPrunePromptProgress(t *testing.T) {
	progress := map[string]bool{
		"promise-sync": true,
		"season-walk":  true,
		"ghost-prompt": true,
	}
	live := []ConnectionPrompt{{ID: "promise-sync"}}

	pruned := PrunePromptProgress(progress, live)
	if len(pruned) != 1 || !pruned["promise-sync"] {
		t.Fatalf("expected marks for absent prompts dropped, got %#v", pruned)
	}
}
