package analytics

import (
	"fmt"
	"strings"

	"github.com/aroma-labs/aroma_api/model"
)

// Achievement ids referenced by the evaluation rules.
const (
	AchievementStreak3      = "streak_3"
	AchievementStreak7      = "streak_7"
	AchievementStreak14     = "streak_14"
	AchievementStreak30     = "streak_30"
	AchievementFirstGain    = "first_weekly_gain"
	AchievementMonthlyGain  = "monthly_gain"
	AchievementPersonalBest = "personal_best"
	AchievementStrongStart  = "strong_start"
)

// strongStartSessions is the completed-session count required for the
// strong-start achievement inside the first 30 days.
const strongStartSessions = 20

// Catalog is the static achievement table. It is defined once at process
// start and never mutated; unlock state lives in the persisted ledger.
var Catalog = []model.Achievement{
	{
		ID:            AchievementStreak3,
		Title:         "Warming Up",
		Description:   "Train on 3 consecutive days",
		Category:      model.CategoryStreak,
		Threshold:     3,
		ShareTemplate: "🔥 {threshold} days of smell training in a row with Aroma!",
	},
	{
		ID:            AchievementStreak7,
		Title:         "One Full Week",
		Description:   "Train on 7 consecutive days",
		Category:      model.CategoryStreak,
		Threshold:     7,
		ShareTemplate: "🔥 One full week of smell training - {threshold} days in a row with Aroma!",
	},
	{
		ID:            AchievementStreak14,
		Title:         "Two Week Habit",
		Description:   "Train on 14 consecutive days",
		Category:      model.CategoryStreak,
		Threshold:     14,
		ShareTemplate: "🔥 {threshold} days straight! Smell training is officially a habit with Aroma!",
	},
	{
		ID:            AchievementStreak30,
		Title:         "A Month of Training",
		Description:   "Train on 30 consecutive days",
		Category:      model.CategoryStreak,
		Threshold:     30,
		ShareTemplate: "🏆 A whole month of smell training - {threshold} days in a row with Aroma!",
	},
	{
		ID:            AchievementFirstGain,
		Title:         "Trending Up",
		Description:   "Your weekly average intensity improved for the first time",
		Category:      model.CategoryImprovement,
		ShareTemplate: "📈 My weekly scent intensity average just improved for the first time with Aroma!",
	},
	{
		ID:            AchievementMonthlyGain,
		Title:         "Monthly Progress",
		Description:   "Your average intensity rose month over month",
		Category:      model.CategoryImprovement,
		ShareTemplate: "📈 My average scent intensity is up {value}% month over month with Aroma!",
	},
	{
		ID:            AchievementPersonalBest,
		Title:         "Personal Best",
		Description:   "Your best 7-session average yet",
		Category:      model.CategoryImprovement,
		ShareTemplate: "⭐ New personal best! My 7-session average just hit {value} with Aroma!",
	},
	{
		ID:            AchievementStrongStart,
		Title:         "Strong Start",
		Description:   "20 sessions completed within your first month",
		Category:      model.CategoryImprovement,
		Threshold:     strongStartSessions,
		ShareTemplate: "💪 {threshold} smell training sessions in my first month with Aroma!",
	},
}

// RenderShareText fills an achievement's share template. The value, when
// recorded at unlock time, replaces {value}; the catalog threshold replaces
// {threshold}.
func RenderShareText(achievement model.Achievement, value *float64) string {
	text := achievement.ShareTemplate
	if value != nil {
		text = strings.ReplaceAll(text, "{value}", fmt.Sprintf("%.0f", *value))
	}

	return strings.ReplaceAll(text, "{threshold}", fmt.Sprintf("%d", achievement.Threshold))
}

// CatalogByID looks up a catalog achievement.
func CatalogByID(id string) (model.Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}

	return model.Achievement{}, false
}
