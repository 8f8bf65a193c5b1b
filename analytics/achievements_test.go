package analytics

import (
	"strings"
	"testing"

	"github.com/aroma-labs/aroma_api/model"
)

func unlockIDs(unlocks []Unlock) map[string]bool {
	ids := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		ids[u.Achievement.ID] = true
	}

	return ids
}

func TestStreakTiersUnlockTogether(t *testing.T) {
	var sessions []Session
	for i := 0; i < 7; i++ {
		sessions = append(sessions, sessionAt(-i, map[string]int{"rose": 5}))
	}

	_, unlocks := Evaluate(sessions, map[string]bool{}, testNow)
	ids := unlockIDs(unlocks)

	if !ids[AchievementStreak3] || !ids[AchievementStreak7] {
		t.Errorf("expected both 3 and 7 day tiers in one pass, got %v", ids)
	}

	if ids[AchievementStreak14] {
		t.Error("14 day tier must not unlock at streak 7")
	}
}

func TestEvaluationIsIdempotent(t *testing.T) {
	var sessions []Session
	for i := 0; i < 3; i++ {
		sessions = append(sessions, sessionAt(-i, map[string]int{"rose": 5}))
	}

	unlocked := map[string]bool{}

	_, first := Evaluate(sessions, unlocked, testNow)
	if len(first) == 0 {
		t.Fatal("expected unlocks on the first pass")
	}

	for _, u := range first {
		unlocked[u.Achievement.ID] = true
	}

	_, second := Evaluate(sessions, unlocked, testNow)
	if len(second) != 0 {
		t.Errorf("re-evaluation on unchanged input returned duplicates: %v", unlockIDs(second))
	}
}

func TestMonthlyGainCarriesRoundedValue(t *testing.T) {
	sessions := []Session{
		sessionAt(-5, map[string]int{"rose": 6}),
		sessionAt(-45, map[string]int{"rose": 4}),
	}

	_, unlocks := Evaluate(sessions, map[string]bool{}, testNow)

	var found bool
	for _, u := range unlocks {
		if u.Achievement.ID == AchievementMonthlyGain {
			found = true

			if u.Value == nil || *u.Value != 50 {
				t.Errorf("expected rounded value 50, got %v", u.Value)
			}
		}
	}

	if !found {
		t.Error("expected the monthly gain achievement")
	}
}

func TestPersonalBestCarriesCurrentAverage(t *testing.T) {
	var sessions []Session
	for i, v := range []int{2, 3, 4, 5, 6, 7, 8, 9, 10} {
		sessions = append(sessions, sessionAt(-9+i, map[string]int{"rose": v}))
	}

	stats, unlocks := Evaluate(sessions, map[string]bool{}, testNow)

	if !stats.IsNewPersonalBest {
		t.Fatal("expected a new personal best")
	}

	var found bool
	for _, u := range unlocks {
		if u.Achievement.ID == AchievementPersonalBest {
			found = true

			if u.Value == nil || !almostEqual(*u.Value, stats.Current7SessionAvg) {
				t.Errorf("expected value %v, got %v", stats.Current7SessionAvg, u.Value)
			}
		}
	}

	if !found {
		t.Error("expected the personal best achievement")
	}
}

func TestStrongStartRequiresNoBaseline(t *testing.T) {
	var sessions []Session
	for i := 0; i < strongStartSessions; i++ {
		sessions = append(sessions, sessionAt(-(i%20), map[string]int{"rose": 5}))
	}

	_, unlocks := Evaluate(sessions, map[string]bool{}, testNow)
	if !unlockIDs(unlocks)[AchievementStrongStart] {
		t.Error("expected strong start with 20 sessions and no baseline")
	}

	// A prior-30-day baseline means the first month is over; the
	// achievement must not fire late.
	withBaseline := append(sessions, sessionAt(-40, map[string]int{"rose": 4}))

	_, unlocks = Evaluate(withBaseline, map[string]bool{}, testNow)
	if unlockIDs(unlocks)[AchievementStrongStart] {
		t.Error("strong start must not fire once a baseline exists")
	}
}

func TestStatsReturnedWithoutUnlocks(t *testing.T) {
	sessions := []Session{
		sessionAt(-1, map[string]int{"rose": 5}),
	}

	unlocked := map[string]bool{}
	for _, a := range Catalog {
		unlocked[a.ID] = true
	}

	stats, unlocks := Evaluate(sessions, unlocked, testNow)

	if len(unlocks) != 0 {
		t.Errorf("expected no unlocks, got %d", len(unlocks))
	}

	if stats.CurrentStreak != 1 {
		t.Errorf("stats must be recomputed regardless of unlocks, streak=%d", stats.CurrentStreak)
	}
}

func TestCatalogCategoriesWellFormed(t *testing.T) {
	for _, a := range Catalog {
		switch a.Category {
		case model.CategoryStreak:
			if a.Threshold <= 0 {
				t.Errorf("%s: streak achievements need a threshold", a.ID)
			}
		case model.CategoryImprovement:
		default:
			t.Errorf("%s: unknown category %s", a.ID, a.Category)
		}

		if a.ShareTemplate == "" {
			t.Errorf("%s: missing share template", a.ID)
		}
	}
}

func TestRenderShareTextFillsPlaceholders(t *testing.T) {
	streak7, ok := CatalogByID(AchievementStreak7)
	if !ok {
		t.Fatal("streak_7 missing from catalog")
	}

	got := RenderShareText(streak7, nil)
	if !strings.Contains(got, "7 days in a row") {
		t.Errorf("expected rendered streak sentence, got %q", got)
	}

	best, _ := CatalogByID(AchievementPersonalBest)
	value := 8.4
	got = RenderShareText(best, &value)
	if !strings.Contains(got, "hit 8") {
		t.Errorf("expected rendered value, got %q", got)
	}
}

func TestCatalogShareTemplatesRenderToSentences(t *testing.T) {
	value := 12.0

	for _, a := range Catalog {
		got := RenderShareText(a, &value)
		if strings.ContainsAny(got, "{}") {
			t.Errorf("%s: unfilled placeholder in %q", a.ID, got)
		}

		if !strings.Contains(got, " ") {
			t.Errorf("%s: share text is not a sentence: %q", a.ID, got)
		}
	}
}
