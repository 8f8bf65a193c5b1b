package analytics

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)

// sessionAt builds a completed session offset by days from testNow with the
// given ratings.
func sessionAt(dayOffset int, ratings map[string]int) Session {
	return Session{
		ID:        time.Duration(dayOffset).String(),
		CreatedAt: testNow.AddDate(0, 0, dayOffset),
		Completed: true,
		Ratings:   ratings,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStreakEmptyHistory(t *testing.T) {
	stats := ComputeStats(nil, testNow)

	if stats.CurrentStreak != 0 {
		t.Errorf("expected streak 0, got %d", stats.CurrentStreak)
	}
}

func TestStreakTodayAndYesterday(t *testing.T) {
	sessions := []Session{
		sessionAt(0, map[string]int{"rose": 5}),
		sessionAt(-1, map[string]int{"rose": 5}),
	}

	stats := ComputeStats(sessions, testNow)

	if stats.CurrentStreak < 2 {
		t.Errorf("expected streak >= 2, got %d", stats.CurrentStreak)
	}
}

func TestStreakYesterdayAllowance(t *testing.T) {
	// Sessions on days -1, -2, -3: today has none, so the walk begins at
	// yesterday and counts 3.
	sessions := []Session{
		sessionAt(-1, map[string]int{"rose": 5}),
		sessionAt(-2, map[string]int{"rose": 5}),
		sessionAt(-3, map[string]int{"rose": 5}),
	}

	stats := ComputeStats(sessions, testNow)
	if stats.CurrentStreak != 3 {
		t.Fatalf("expected streak 3, got %d", stats.CurrentStreak)
	}

	// Adding a session for today extends the same run to 4.
	sessions = append(sessions, sessionAt(0, map[string]int{"rose": 5}))

	stats = ComputeStats(sessions, testNow)
	if stats.CurrentStreak != 4 {
		t.Errorf("expected streak 4, got %d", stats.CurrentStreak)
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	sessions := []Session{
		sessionAt(0, map[string]int{"rose": 5}),
		sessionAt(-1, map[string]int{"rose": 5}),
		// day -2 missing
		sessionAt(-3, map[string]int{"rose": 5}),
		sessionAt(-4, map[string]int{"rose": 5}),
	}

	stats := ComputeStats(sessions, testNow)

	if stats.CurrentStreak != 2 {
		t.Errorf("expected the gap to stop the count at 2, got %d", stats.CurrentStreak)
	}
}

func TestStreakZeroWhenNoRecentSession(t *testing.T) {
	sessions := []Session{
		sessionAt(-2, map[string]int{"rose": 5}),
		sessionAt(-3, map[string]int{"rose": 5}),
	}

	stats := ComputeStats(sessions, testNow)

	if stats.CurrentStreak != 0 {
		t.Errorf("expected streak 0 with neither today nor yesterday, got %d", stats.CurrentStreak)
	}
}

func TestIncompleteSessionsIgnored(t *testing.T) {
	sessions := []Session{
		{CreatedAt: testNow, Completed: false, Ratings: map[string]int{"rose": 9}},
		sessionAt(-1, map[string]int{"rose": 3}),
	}

	stats := ComputeStats(sessions, testNow)

	if stats.CompletedSessions != 1 {
		t.Errorf("expected 1 completed session, got %d", stats.CompletedSessions)
	}

	if !almostEqual(stats.Last30DaysAvg, 3) {
		t.Errorf("incomplete session leaked into average: %v", stats.Last30DaysAvg)
	}
}

func TestMonthlyChangeAbsentWithoutBaseline(t *testing.T) {
	sessions := []Session{
		sessionAt(-1, map[string]int{"rose": 6}),
	}

	stats := ComputeStats(sessions, testNow)

	if stats.MonthlyChange != nil {
		t.Errorf("expected absent monthly change, got %v", *stats.MonthlyChange)
	}
}

func TestMonthlyChangeFormula(t *testing.T) {
	// last30Avg=6, previous30Avg=4 -> change=50.
	sessions := []Session{
		sessionAt(-5, map[string]int{"rose": 6}),
		sessionAt(-45, map[string]int{"rose": 4}),
	}

	stats := ComputeStats(sessions, testNow)

	if !almostEqual(stats.Last30DaysAvg, 6) || !almostEqual(stats.Previous30DaysAvg, 4) {
		t.Fatalf("window averages wrong: last=%v prev=%v", stats.Last30DaysAvg, stats.Previous30DaysAvg)
	}

	if stats.MonthlyChange == nil {
		t.Fatal("expected monthly change to be present")
	}

	if !almostEqual(*stats.MonthlyChange, 50) {
		t.Errorf("expected monthly change 50, got %v", *stats.MonthlyChange)
	}
}

func TestAverageIsPerRatingNotPerSession(t *testing.T) {
	// One session with ratings {2, 4}, another with {9}: the window average
	// is (2+4+9)/3 = 5, not the mean of per-session means.
	sessions := []Session{
		sessionAt(-1, map[string]int{"rose": 2, "lemon": 4}),
		sessionAt(-2, map[string]int{"rose": 9}),
	}

	stats := ComputeStats(sessions, testNow)

	if !almostEqual(stats.Last30DaysAvg, 5) {
		t.Errorf("expected average 5, got %v", stats.Last30DaysAvg)
	}
}

func TestRollingBestWindows(t *testing.T) {
	// Per-session averages [2,3,4,5,6,7,8,9] chronological: windows are
	// sessions 1-7 (avg 5) and 2-8 (avg 6), so the best is 6.
	var sessions []Session
	for i, v := range []int{2, 3, 4, 5, 6, 7, 8, 9} {
		sessions = append(sessions, sessionAt(-8+i, map[string]int{"rose": v}))
	}

	stats := ComputeStats(sessions, testNow)

	if !almostEqual(stats.Best7SessionAvg, 6) {
		t.Errorf("expected best 7-session average 6, got %v", stats.Best7SessionAvg)
	}

	if !almostEqual(stats.PreviousBest7Avg, 5) {
		t.Errorf("expected previous best 5, got %v", stats.PreviousBest7Avg)
	}

	if !stats.HasPriorData {
		t.Error("expected prior data with 8 sessions")
	}

	// Current window average 6 strictly exceeds the prior best of 5.
	if !stats.IsNewPersonalBest {
		t.Error("expected a new personal best")
	}
}

func TestNoPersonalBestWithoutPriorWindow(t *testing.T) {
	// Fewer than 8 sessions means no window exists before the trailing
	// one, so even a high week is not a personal best.
	var sessions []Session
	for i := 0; i < 7; i++ {
		sessions = append(sessions, sessionAt(-7+i, map[string]int{"rose": 10}))
	}

	stats := ComputeStats(sessions, testNow)

	if stats.HasPriorData {
		t.Error("expected no prior data with exactly 7 sessions")
	}

	if stats.IsNewPersonalBest {
		t.Error("a first week must never register as a personal best")
	}
}

func TestNoPersonalBestUnderSevenSessions(t *testing.T) {
	var sessions []Session
	for i := 0; i < 5; i++ {
		sessions = append(sessions, sessionAt(-5+i, map[string]int{"rose": 10}))
	}

	stats := ComputeStats(sessions, testNow)

	if stats.IsNewPersonalBest {
		t.Error("expected no personal best with fewer than 7 sessions")
	}

	if stats.Best7SessionAvg != 0 {
		t.Errorf("expected no full window, got best %v", stats.Best7SessionAvg)
	}
}

func TestComputeStatsIgnoresInputOrder(t *testing.T) {
	ordered := []Session{
		sessionAt(-3, map[string]int{"rose": 2}),
		sessionAt(-2, map[string]int{"rose": 5}),
		sessionAt(-1, map[string]int{"rose": 8}),
	}
	shuffled := []Session{ordered[2], ordered[0], ordered[1]}

	a := ComputeStats(ordered, testNow)
	b := ComputeStats(shuffled, testNow)

	if a.CurrentStreak != b.CurrentStreak || !almostEqual(a.Last30DaysAvg, b.Last30DaysAvg) {
		t.Error("stats must not depend on input order")
	}

	if len(a.Sparkline) != len(b.Sparkline) {
		t.Fatal("sparkline lengths differ")
	}

	for i := range a.Sparkline {
		if !almostEqual(a.Sparkline[i], b.Sparkline[i]) {
			t.Errorf("sparkline[%d]: %v vs %v", i, a.Sparkline[i], b.Sparkline[i])
		}
	}
}

func TestSparklineChronological(t *testing.T) {
	sessions := []Session{
		sessionAt(-1, map[string]int{"rose": 8}),
		sessionAt(-10, map[string]int{"rose": 2}),
		sessionAt(-5, map[string]int{"rose": 5}),
	}

	stats := ComputeStats(sessions, testNow)

	want := []float64{2, 5, 8}
	if len(stats.Sparkline) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(stats.Sparkline))
	}

	for i, v := range want {
		if !almostEqual(stats.Sparkline[i], v) {
			t.Errorf("sparkline[%d]: expected %v, got %v", i, v, stats.Sparkline[i])
		}
	}
}

func TestZeroRatingSessionsGuarded(t *testing.T) {
	sessions := []Session{
		{CreatedAt: testNow.AddDate(0, 0, -1), Completed: true, Ratings: map[string]int{}},
	}

	stats := ComputeStats(sessions, testNow)

	if stats.Last30DaysAvg != 0 {
		t.Errorf("expected guarded zero average, got %v", stats.Last30DaysAvg)
	}
}
