package analytics

import (
	"time"
)

// windowSize is the number of sessions in a rolling personal-best window.
const windowSize = 7

// Stats is the derived, recomputed-on-demand snapshot of a user's
// progress. It is never persisted.
type Stats struct {
	CurrentStreak      int       `json:"current_streak"`
	Last30DaysAvg      float64   `json:"last_30_days_avg"`
	Previous30DaysAvg  float64   `json:"previous_30_days_avg"`
	MonthlyChange      *float64  `json:"monthly_change,omitempty"` // nil when no prior baseline exists
	Last7DaysAvg       float64   `json:"last_7_days_avg"`
	Previous7DaysAvg   float64   `json:"previous_7_days_avg"`
	Current7SessionAvg float64   `json:"current_7_session_avg"`
	Best7SessionAvg    float64   `json:"best_7_session_avg"`
	PreviousBest7Avg   float64   `json:"previous_best_7_avg"`
	HasPriorData       bool      `json:"has_prior_data"`
	IsImprovingWeekly  bool      `json:"is_improving_weekly"`
	IsNewPersonalBest  bool      `json:"is_new_personal_best"`
	CompletedSessions  int       `json:"completed_sessions"`
	SessionsLast30Days int       `json:"sessions_last_30_days"`
	Sparkline          []float64 `json:"sparkline"`
	FirstSessionAt     time.Time `json:"first_session_at"`
}

// ComputeStats derives the full stats snapshot from a session list at the
// given reference time. The list may arrive in any order and may contain
// incomplete sessions; both are handled here.
func ComputeStats(sessions []Session, now time.Time) Stats {
	completed := completedSorted(sessions)

	stats := Stats{
		CurrentStreak:     currentStreak(completed, now),
		CompletedSessions: len(completed),
	}

	if len(completed) > 0 {
		stats.FirstSessionAt = completed[0].CreatedAt
	}

	last30 := trailingWindow(completed, now, 30)
	prev30 := inWindow(completed, now.AddDate(0, 0, -60), now.AddDate(0, 0, -30))
	last7 := trailingWindow(completed, now, 7)
	prev7 := inWindow(completed, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))

	stats.Last30DaysAvg = averageIntensity(last30)
	stats.Previous30DaysAvg = averageIntensity(prev30)
	stats.Last7DaysAvg = averageIntensity(last7)
	stats.Previous7DaysAvg = averageIntensity(prev7)
	stats.SessionsLast30Days = len(last30)

	// The absence of a monthly change is meaningful: it marks "no prior
	// baseline yet" and must not collapse to zero.
	if stats.Previous30DaysAvg > 0 {
		change := (stats.Last30DaysAvg - stats.Previous30DaysAvg) / stats.Previous30DaysAvg * 100
		stats.MonthlyChange = &change
	}

	stats.IsImprovingWeekly = stats.Previous7DaysAvg > 0 &&
		stats.Last7DaysAvg > stats.Previous7DaysAvg

	computeRollingBest(&stats, completed)

	stats.Sparkline = sparkline(last30)

	return stats
}

// currentStreak counts consecutive calendar days with at least one
// completed session, walking backward from today. If today has no session
// yet but yesterday does, the walk begins at yesterday so an in-progress
// day does not zero out a continuing streak.
func currentStreak(completed []Session, now time.Time) int {
	if len(completed) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(completed))
	for _, s := range completed {
		days[dayOf(s.CreatedAt.In(now.Location()))] = true
	}

	day := dayOf(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
		if !days[day] {
			return 0
		}
	}

	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// computeRollingBest fills the 7-session rolling window fields. Windows are
// session-count windows over the chronological completed list, not calendar
// windows. A new personal best requires at least one full window strictly
// before the trailing one, so a brand-new user's first week never registers
// as a best.
func computeRollingBest(stats *Stats, completed []Session) {
	n := len(completed)
	if n == 0 {
		return
	}

	start := n - windowSize
	if start < 0 {
		start = 0
	}

	stats.Current7SessionAvg = averageIntensity(completed[start:])

	if n < windowSize {
		return
	}

	lastWindow := n - windowSize

	for i := 0; i+windowSize <= n; i++ {
		avg := averageIntensity(completed[i : i+windowSize])

		if avg > stats.Best7SessionAvg {
			stats.Best7SessionAvg = avg
		}

		if i < lastWindow && avg > stats.PreviousBest7Avg {
			stats.PreviousBest7Avg = avg
		}
	}

	stats.HasPriorData = lastWindow > 0
	stats.IsNewPersonalBest = stats.HasPriorData &&
		stats.Current7SessionAvg > stats.PreviousBest7Avg
}

// trailingWindow returns completed sessions with CreatedAt in
// [now-days, now], end inclusive.
func trailingWindow(completed []Session, now time.Time, days int) []Session {
	from := now.AddDate(0, 0, -days)
	out := make([]Session, 0, len(completed))

	for _, s := range completed {
		if !s.CreatedAt.Before(from) && !s.CreatedAt.After(now) {
			out = append(out, s)
		}
	}

	return out
}

// sparkline is the chronological series of per-session average intensities
// over the trailing 30 days.
func sparkline(last30 []Session) []float64 {
	out := make([]float64, 0, len(last30))

	for _, s := range last30 {
		out = append(out, sessionAverage(s))
	}

	return out
}
