package services

import (
	"strings"

	"github.com/wanderpair/wanderpair/internal/models"
)

// DestinationFilter narrows the list the sidebar shows. The zero value
// matches everything.
type DestinationFilter struct {
	Category     string
	SearchTerm   string
	WishlistOnly bool
	VisitedOnly  bool
}

// FilterDestinations applies the filter without reordering: category match,
// case-insensitive name/country substring search, then the wishlist and
// visited flags.
func FilterDestinations(destinations []models.Destination, filter DestinationFilter) []models.Destination {
	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))

	filtered := make([]models.Destination, 0, len(destinations))
	for _, destination := range destinations {
		if filter.Category != "" && filter.Category != CategoryAll && destination.Category != filter.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(destination.Name), term) &&
			!strings.Contains(strings.ToLower(destination.Country), term) {
			continue
		}
		if filter.WishlistOnly && !destination.Wishlist {
			continue
		}
		if filter.VisitedOnly && !destination.Visited {
			continue
		}
		filtered = append(filtered, destination)
	}
	return filtered
}

var categoryEmojis = map[string]string{
	"现代都市": "🏙️",
	"浪漫城市": "💝",
	"艺术建筑": "🎨",
	"自然风光": "🌿",
	"徒步路线": "🥾",
}

// CategoryEmoji returns the marker emoji for a category, with a generic
// pin for unknown ones.
func CategoryEmoji(category string) string {
	if emoji, known := categoryEmojis[category]; known {
		return emoji
	}
	return "📍"
}

// CategorySummary is one populated category with its destination count.
type CategorySummary struct {
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
	Count    int    `json:"count"`
}

// SummarizeCategories counts destinations per known category, skipping
// empty ones, in catalog category order.
func SummarizeCategories(destinations []models.Destination) []CategorySummary {
	counts := make(map[string]int)
	for _, destination := range destinations {
		counts[destination.Category]++
	}

	summaries := make([]CategorySummary, 0, len(Categories))
	for _, category := range Categories {
		if category == CategoryAll {
			continue
		}
		if counts[category] == 0 {
			continue
		}
		summaries = append(summaries, CategorySummary{
			Category: category,
			Emoji:    CategoryEmoji(category),
			Count:    counts[category],
		})
	}
	return summaries
}
