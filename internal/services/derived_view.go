package services

import (
	"time"

	"github.com/wanderpair/wanderpair/internal/models"
)

// DerivedView is everything the presentation layer renders that is computed
// rather than stored. It is rebuilt in full from one immutable snapshot
// after every mutation; nothing in it is a source of truth.
type DerivedView struct {
	Stats              TravelStats          `json:"stats"`
	DailyMood          DailyMood            `json:"dailyMood"`
	SeasonalHighlights []models.Destination `json:"seasonalHighlights"`
	WishlistSpotlights []models.Destination `json:"wishlistSpotlights"`
	MemoryLane         []models.Destination `json:"memoryLane"`
	UpcomingPlans      []UpcomingPlan       `json:"upcomingPlans"`
	Achievements       []Achievement        `json:"achievements"`
	ConnectionPrompts  []ConnectionPrompt   `json:"connectionPrompts"`
	VisitedPath        [][2]float64         `json:"visitedPath"`
	HeroHighlight      *models.Destination  `json:"heroHighlight,omitempty"`
}

// BuildDerivedView recomputes every derived value from a snapshot. Pure:
// equal inputs (including the clock value) produce equal views.
func BuildDerivedView(destinations []models.Destination, pinned []string, progress map[string]bool, now time.Time) DerivedView {
	stats := BuildTravelStats(destinations)
	month := int(now.Month())

	seasonal := SeasonalHighlights(destinations, month)
	spotlights := WishlistSpotlights(destinations)
	memories := MemoryLane(destinations)
	upcoming := UpcomingPlansList(destinations)

	view := DerivedView{
		Stats:              stats,
		DailyMood:          MoodOfDay(now),
		SeasonalHighlights: seasonal,
		WishlistSpotlights: spotlights,
		MemoryLane:         memories,
		UpcomingPlans:      upcoming,
		VisitedPath:        VisitedPath(destinations),
		Achievements: BuildAchievements(AchievementInput{
			Stats:        stats,
			Destinations: destinations,
		}, pinned),
		ConnectionPrompts: BuildConnectionPrompts(PromptInput{
			Stats:              stats,
			SeasonalHighlights: seasonal,
			WishlistSpotlights: spotlights,
			MemoryLane:         memories,
			UpcomingPlans:      upcoming,
		}, progress),
	}

	if hero, ok := HeroHighlight(seasonal, spotlights); ok {
		view.HeroHighlight = &hero
	}
	return view
}
