package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
)

// TravelStats summarizes one destination snapshot.
type TravelStats struct {
	VisitedCount  int `json:"visitedCount"`
	WishlistCount int `json:"wishlistCount"`
	PlannedCount  int `json:"plannedCount"`
	NoteRichCount int `json:"noteRichCount"`
	Total         int `json:"total"`
	Progress      int `json:"progress"`
}

// BuildTravelStats counts visited, wishlisted, planned and note-carrying
// destinations. Progress is the rounded visited percentage, zero when the
// list is empty.
func BuildTravelStats(destinations []models.Destination) TravelStats {
	stats := TravelStats{Total: len(destinations)}
	for _, destination := range destinations {
		if destination.Visited {
			stats.VisitedCount++
		}
		if destination.Wishlist {
			stats.WishlistCount++
		}
		if len(destination.Plans) > 0 {
			stats.PlannedCount++
		}
		if strings.TrimSpace(destination.Notes) != "" {
			stats.NoteRichCount++
		}
	}
	if stats.Total > 0 {
		stats.Progress = int(math.Round(float64(stats.VisitedCount) / float64(stats.Total) * 100))
	}
	return stats
}

// SeasonalHighlights picks up to three destinations whose best-time ranges
// contain the given month, preferring wishlisted and planned places and
// demoting already-visited ones. Equal scores keep snapshot order.
func SeasonalHighlights(destinations []models.Destination, month int) []models.Destination {
	type scored struct {
		destination models.Destination
		score       int
	}
	matches := make([]scored, 0)
	for _, destination := range destinations {
		if !IsGoodSeasonNow(destination.BestTime, month) {
			continue
		}
		score := 0
		if destination.Wishlist {
			score += 2
		}
		if len(destination.Plans) > 0 {
			score++
		}
		if destination.Visited {
			score--
		}
		matches = append(matches, scored{destination: destination, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	highlights := make([]models.Destination, 0, 3)
	for _, match := range matches {
		if len(highlights) == 3 {
			break
		}
		highlights = append(highlights, match.destination)
	}
	return highlights
}

// WishlistSpotlights picks up to three not-yet-visited wishlist entries,
// the ones with the most plans first.
func WishlistSpotlights(destinations []models.Destination) []models.Destination {
	spotlights := make([]models.Destination, 0)
	for _, destination := range destinations {
		if destination.Wishlist && !destination.Visited {
			spotlights = append(spotlights, destination)
		}
	}

	sort.SliceStable(spotlights, func(i, j int) bool {
		return len(spotlights[i].Plans) > len(spotlights[j].Plans)
	})

	if len(spotlights) > 3 {
		spotlights = spotlights[:3]
	}
	return spotlights
}

// MemoryLane returns the first three visited destinations that carry notes,
// in snapshot order.
func MemoryLane(destinations []models.Destination) []models.Destination {
	memories := make([]models.Destination, 0, 3)
	for _, destination := range destinations {
		if !destination.Visited || strings.TrimSpace(destination.Notes) == "" {
			continue
		}
		memories = append(memories, destination)
		if len(memories) == 3 {
			break
		}
	}
	return memories
}

// UpcomingPlan is a plan flattened out of its destination for display.
type UpcomingPlan struct {
	models.Plan
	DestinationID   int    `json:"destinationId"`
	DestinationName string `json:"destinationName"`
}

// planDateLayouts covers the calendar date formats plan editors have
// historically written.
var planDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	time.RFC3339,
}

func parsePlanDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range planDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// UpcomingPlansList flattens every (destination, plan) pair, sorts the
// entries with parsable dates ascending, appends the unparsable ones in
// encounter order, and keeps the first four.
func UpcomingPlansList(destinations []models.Destination) []UpcomingPlan {
	type datedPlan struct {
		plan      UpcomingPlan
		timestamp time.Time
	}
	dated := make([]datedPlan, 0)
	undated := make([]UpcomingPlan, 0)

	for _, destination := range destinations {
		for _, plan := range destination.Plans {
			entry := UpcomingPlan{
				Plan:            plan,
				DestinationID:   destination.ID,
				DestinationName: destination.Name,
			}
			if timestamp, ok := parsePlanDate(plan.Date); ok {
				dated = append(dated, datedPlan{plan: entry, timestamp: timestamp})
			} else {
				undated = append(undated, entry)
			}
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].timestamp.Before(dated[j].timestamp)
	})

	combined := make([]UpcomingPlan, 0, len(dated)+len(undated))
	for _, entry := range dated {
		combined = append(combined, entry.plan)
	}
	combined = append(combined, undated...)

	if len(combined) > 4 {
		combined = combined[:4]
	}
	return combined
}

// VisitedPath lists the coordinates of visited destinations in snapshot
// order, the feed for the map's footprint polyline.
func VisitedPath(destinations []models.Destination) [][2]float64 {
	path := make([][2]float64, 0)
	for _, destination := range destinations {
		if destination.Visited {
			path = append(path, destination.Coordinates)
		}
	}
	return path
}

// HeroHighlight picks the single headline destination: the best seasonal
// highlight, else the best wishlist spotlight.
func HeroHighlight(seasonal []models.Destination, spotlights []models.Destination) (models.Destination, bool) {
	if len(seasonal) > 0 {
		return seasonal[0], true
	}
	if len(spotlights) > 0 {
		return spotlights[0], true
	}
	return models.Destination{}, false
}
