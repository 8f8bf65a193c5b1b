package analytics

import (
	"math"
	"time"

	"github.com/aroma-labs/aroma_api/model"
)

// Unlock is an achievement newly crossed by one evaluation pass.
type Unlock struct {
	Achievement model.Achievement
	Value       *float64
	UnlockedAt  time.Time
}

// Evaluate recomputes the stats snapshot and returns the achievements newly
// unlocked by this call. Ids already present in the unlocked set are never
// re-emitted, so repeated evaluation over an unchanged session list yields
// no duplicates. Stats are always returned regardless of unlocks.
func Evaluate(sessions []Session, unlocked map[string]bool, now time.Time) (Stats, []Unlock) {
	stats := ComputeStats(sessions, now)

	var unlocks []Unlock

	unlock := func(id string, value *float64) {
		if unlocked[id] {
			return
		}

		achievement, ok := CatalogByID(id)
		if !ok {
			return
		}

		unlocks = append(unlocks, Unlock{
			Achievement: achievement,
			Value:       value,
			UnlockedAt:  now,
		})
	}

	// Streak tiers are evaluated independently, so one long streak can
	// cross several thresholds in a single pass.
	for _, a := range Catalog {
		if a.Category == model.CategoryStreak && a.Threshold > 0 &&
			stats.CurrentStreak >= a.Threshold {
			unlock(a.ID, floatPtr(float64(stats.CurrentStreak)))
		}
	}

	if stats.IsImprovingWeekly {
		unlock(AchievementFirstGain, nil)
	}

	if stats.MonthlyChange != nil && *stats.MonthlyChange > 0 {
		unlock(AchievementMonthlyGain, floatPtr(math.Round(*stats.MonthlyChange)))
	}

	if stats.IsNewPersonalBest {
		unlock(AchievementPersonalBest, floatPtr(stats.Current7SessionAvg))
	}

	// Strong start fires only while the user is still inside their first
	// 30 days (no prior-30-day baseline exists yet).
	if stats.Previous30DaysAvg == 0 &&
		stats.SessionsLast30Days >= strongStartSessions {
		unlock(AchievementStrongStart, floatPtr(float64(stats.SessionsLast30Days)))
	}

	return stats, unlocks
}

func floatPtr(v float64) *float64 {
	return &v
}
