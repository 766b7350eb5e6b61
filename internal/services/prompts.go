package services

import (
	"fmt"

	"github.com/wanderpair/wanderpair/internal/models"
)

// ConnectionPrompt is one bonding nudge built from the live dataset. A
// prompt whose precondition fails is absent from the result entirely, not
// merely disabled.
type ConnectionPrompt struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// PromptInput carries the derived views the prompt catalog personalizes
// from.
type PromptInput struct {
	Stats              TravelStats
	SeasonalHighlights []models.Destination
	WishlistSpotlights []models.Destination
	MemoryLane         []models.Destination
	UpcomingPlans      []UpcomingPlan
}

type promptDefinition struct {
	ID        string
	Title     string
	Available func(input PromptInput) bool
	Text      func(input PromptInput) string
}

var promptCatalog = []promptDefinition{
	{
		ID:        "promise-sync",
		Title:     "重温约定",
		Available: func(PromptInput) bool { return true },
		Text: func(PromptInput) string {
			return "一起读一遍你们的旅程约定，看看有没有想补充的新句子。"
		},
	},
	{
		ID:    "season-walk",
		Title: "当季出发",
		Available: func(input PromptInput) bool {
			return len(input.SeasonalHighlights) > 0
		},
		Text: func(input PromptInput) string {
			return fmt.Sprintf("现在正是去%s的好季节，约TA聊聊这趟旅程会是什么样子。", input.SeasonalHighlights[0].Name)
		},
	},
	{
		ID:    "wish-countdown",
		Title: "梦想倒数",
		Available: func(input PromptInput) bool {
			return len(input.WishlistSpotlights) > 0
		},
		Text: func(input PromptInput) string {
			return fmt.Sprintf("为愿望清单里的%s定一个大概的出发年份，让梦想有个日期。", input.WishlistSpotlights[0].Name)
		},
	},
	{
		ID:    "memory-toast",
		Title: "回忆干杯",
		Available: func(input PromptInput) bool {
			return len(input.MemoryLane) > 0
		},
		Text: func(input PromptInput) string {
			return fmt.Sprintf("翻出在%s拍的照片，今晚挑一张设成两个人的壁纸。", input.MemoryLane[0].Name)
		},
	},
	{
		ID:    "next-trip-check",
		Title: "行前确认",
		Available: func(input PromptInput) bool {
			return len(input.UpcomingPlans) > 0
		},
		Text: func(input PromptInput) string {
			next := input.UpcomingPlans[0]
			if next.Date != "" {
				return fmt.Sprintf("%s的%s快到了（%s），花十分钟一起过一遍行李清单。", next.DestinationName, next.Title, next.Date)
			}
			return fmt.Sprintf("和TA确认一下%s之行的日期，把它变成真正的倒计时。", next.DestinationName)
		},
	},
	{
		ID:    "celebrate-progress",
		Title: "庆祝足迹",
		Available: func(input PromptInput) bool {
			return input.Stats.VisitedCount > 0
		},
		Text: func(input PromptInput) string {
			return fmt.Sprintf("你们已经一起去过 %d 个地方了，今天找个小方式庆祝一下吧。", input.Stats.VisitedCount)
		},
	},
}

// BuildConnectionPrompts evaluates the catalog against one snapshot's
// derived views, dropping unavailable prompts and marking completion.
func BuildConnectionPrompts(input PromptInput, progress map[string]bool) []ConnectionPrompt {
	prompts := make([]ConnectionPrompt, 0, len(promptCatalog))
	for _, definition := range promptCatalog {
		if !definition.Available(input) {
			continue
		}
		prompts = append(prompts, ConnectionPrompt{
			ID:        definition.ID,
			Title:     definition.Title,
			Text:      definition.Text(input),
			Completed: progress[definition.ID],
		})
	}
	return prompts
}

// ToggleConnectionPrompt flips completion for one prompt id. Toggling twice
// restores the original map contents.
func ToggleConnectionPrompt(progress map[string]bool, id string) map[string]bool {
	updated := make(map[string]bool, len(progress)+1)
	for key, value := range progress {
		updated[key] = value
	}
	if updated[id] {
		delete(updated, id)
	} else {
		updated[id] = true
	}
	return updated
}

// PrunePromptProgress drops completion marks for prompts that are no longer
// in the (precondition-filtered) catalog for this dataset.
func PrunePromptProgress(progress map[string]bool, prompts []ConnectionPrompt) map[string]bool {
	available := make(map[string]bool, len(prompts))
	for _, prompt := range prompts {
		available[prompt.ID] = true
	}

	pruned := make(map[string]bool, len(progress))
	for id, completed := range progress {
		if completed && available[id] {
			pruned[id] = true
		}
	}
	return pruned
}
