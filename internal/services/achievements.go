package services

import "github.com/wanderpair/wanderpair/internal/models"

const (
	AchievementCompleted  = "completed"
	AchievementInProgress = "in-progress"
	AchievementLocked     = "locked"
)

// MaxPinnedAchievements caps the pin shelf; the oldest pin falls off first.
const MaxPinnedAchievements = 6

// Achievement is one evaluated milestone from the fixed catalog.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Current     int     `json:"current"`
	Target      int     `json:"target"`
	Progress    float64 `json:"progress"`
	Status      string  `json:"status"`
	Pinned      bool    `json:"pinned"`
}

// AchievementInput is everything the extractors may read. Keeping it a
// plain value keeps the catalog side-effect free.
type AchievementInput struct {
	Stats        TravelStats
	Destinations []models.Destination
}

type achievementDefinition struct {
	ID          string
	Title       string
	Description string
	Target      int
	Current     func(input AchievementInput) int
}

var achievementCatalog = []achievementDefinition{
	{
		ID:          "first-dream",
		Title:       "旅行起步",
		Description: "收藏第一个心动目的地。",
		Target:      1,
		Current:     func(input AchievementInput) int { return input.Stats.Total },
	},
	{
		ID:          "wishlist-collector",
		Title:       "梦想收藏家",
		Description: "愿望清单里拥有 10 个目的地。",
		Target:      10,
		Current:     func(input AchievementInput) int { return input.Stats.WishlistCount },
	},
	{
		ID:          "footprint-explorer",
		Title:       "足迹拓荒者",
		Description: "标记 3 个已访问的地方，留下爱的足迹。",
		Target:      3,
		Current:     func(input AchievementInput) int { return input.Stats.VisitedCount },
	},
	{
		ID:          "plan-master",
		Title:       "规划大师",
		Description: "为至少 2 个目的地创建详细旅行计划。",
		Target:      2,
		Current:     func(input AchievementInput) int { return input.Stats.PlannedCount },
	},
	{
		ID:          "story-keeper",
		Title:       "回忆保管员",
		Description: "在目的地备注里写下旅行心情。",
		Target:      1,
		Current:     func(input AchievementInput) int { return input.Stats.NoteRichCount },
	},
	{
		ID:          "plan-architect",
		Title:       "行程设计师",
		Description: "累计制定 5 条旅行计划。",
		Target:      5,
		Current:     func(input AchievementInput) int { return totalPlanCount(input.Destinations) },
	},
	{
		ID:          "category-explorer",
		Title:       "风格漫游者",
		Description: "在 4 种不同风格的目的地之间留下痕迹。",
		Target:      4,
		Current:     func(input AchievementInput) int { return engagedCategoryCount(input.Destinations) },
	},
	{
		ID:          "map-maker",
		Title:       "地图开拓者",
		Description: "亲手添加 3 个属于你们的私藏目的地。",
		Target:      3,
		Current:     func(input AchievementInput) int { return customDestinationCount(input.Destinations) },
	},
}

func totalPlanCount(destinations []models.Destination) int {
	count := 0
	for _, destination := range destinations {
		count += len(destination.Plans)
	}
	return count
}

// engagedCategoryCount counts distinct categories among destinations the
// pair has actually touched: visited, wishlisted or planned.
func engagedCategoryCount(destinations []models.Destination) int {
	categories := make(map[string]bool)
	for _, destination := range destinations {
		if !destination.Visited && !destination.Wishlist && len(destination.Plans) == 0 {
			continue
		}
		if destination.Category != "" {
			categories[destination.Category] = true
		}
	}
	return len(categories)
}

// customDestinationCount counts destinations beyond the seed catalog.
func customDestinationCount(destinations []models.Destination) int {
	baseIDs := BaseDestinationIDs()
	count := 0
	for _, destination := range destinations {
		if !baseIDs[destination.ID] {
			count++
		}
	}
	return count
}

// BuildAchievements evaluates the whole catalog against one snapshot.
func BuildAchievements(input AchievementInput, pinned []string) []Achievement {
	pinnedSet := make(map[string]bool, len(pinned))
	for _, id := range pinned {
		pinnedSet[id] = true
	}

	achievements := make([]Achievement, 0, len(achievementCatalog))
	for _, definition := range achievementCatalog {
		current := definition.Current(input)
		achievement := Achievement{
			ID:          definition.ID,
			Title:       definition.Title,
			Description: definition.Description,
			Current:     current,
			Target:      definition.Target,
			Pinned:      pinnedSet[definition.ID],
		}

		switch {
		case definition.Target > 0:
			achievement.Progress = float64(current) / float64(definition.Target)
			if achievement.Progress > 1 {
				achievement.Progress = 1
			}
			if achievement.Progress < 0 {
				achievement.Progress = 0
			}
		case current > 0:
			achievement.Progress = 1
		}

		switch {
		case achievement.Progress >= 1:
			achievement.Status = AchievementCompleted
		case current > 0:
			achievement.Status = AchievementInProgress
		default:
			achievement.Status = AchievementLocked
		}

		achievements = append(achievements, achievement)
	}
	return achievements
}

// AchievementCatalogIDs lists the catalog ids, the reference set for pin
// garbage collection.
func AchievementCatalogIDs() []string {
	ids := make([]string, 0, len(achievementCatalog))
	for _, definition := range achievementCatalog {
		ids = append(ids, definition.ID)
	}
	return ids
}

// TogglePinnedAchievement flips a pin. Adding beyond capacity evicts the
// oldest pins first.
func TogglePinnedAchievement(pinned []string, id string) []string {
	for index, existing := range pinned {
		if existing == id {
			return append(append([]string{}, pinned[:index]...), pinned[index+1:]...)
		}
	}

	updated := append(append([]string{}, pinned...), id)
	if len(updated) > MaxPinnedAchievements {
		updated = updated[len(updated)-MaxPinnedAchievements:]
	}
	return updated
}

// PrunePinnedAchievements drops pins whose ids left the catalog, keeping
// pin order, and trims to capacity.
func PrunePinnedAchievements(pinned []string, catalogIDs []string) []string {
	known := make(map[string]bool, len(catalogIDs))
	for _, id := range catalogIDs {
		known[id] = true
	}

	pruned := make([]string, 0, len(pinned))
	for _, id := range pinned {
		if known[id] {
			pruned = append(pruned, id)
		}
	}
	if len(pruned) > MaxPinnedAchievements {
		pruned = pruned[len(pruned)-MaxPinnedAchievements:]
	}
	return pruned
}
