package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/aroma-labs/aroma_api/model"
)

func testScents(ids ...string) []model.Scent {
	scents := make([]model.Scent, len(ids))
	for i, id := range ids {
		scents[i] = model.Scent{ID: id, Name: id}
	}

	return scents
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// tick advances the countdown n seconds.
func tick(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestNewRejectsEmptyScentList(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoScents) {
		t.Fatalf("expected ErrNoScents, got %v", err)
	}
}

func TestFullRunProducesOneRatingPerScent(t *testing.T) {
	scents := testScents("rose", "lemon", "clove", "eucalyptus")

	s, err := New(scents, WithClock(fixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Begin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result *Result

	for i, scent := range scents {
		if i == 0 {
			tick(s, BreatheSeconds)
		} else {
			tick(s, RestSeconds)
		}

		if got := s.Snapshot().Phase; got != PhaseSmell {
			t.Fatalf("scent %d: expected smell phase, got %s", i, got)
		}

		tick(s, SmellSeconds)

		if got := s.Snapshot().Phase; got != PhaseRate {
			t.Fatalf("scent %d: expected rate phase, got %s", i, got)
		}

		if got := s.Snapshot().CurrentScent.ID; got != scent.ID {
			t.Fatalf("scent %d: expected %s, got %s", i, scent.ID, got)
		}

		result, err = s.SubmitRating(i + 2)
		if err != nil {
			t.Fatalf("scent %d: unexpected error: %v", i, err)
		}
	}

	if result == nil {
		t.Fatal("expected a finished result after the last rating")
	}

	if s.Snapshot().Phase != PhaseOutro {
		t.Errorf("expected outro phase, got %s", s.Snapshot().Phase)
	}

	if len(result.Ratings) != len(scents) {
		t.Fatalf("expected %d ratings, got %d", len(scents), len(result.Ratings))
	}

	for i, scent := range scents {
		if got := result.Ratings[scent.ID]; got != i+2 {
			t.Errorf("scent %s: expected rating %d, got %d", scent.ID, i+2, got)
		}
	}

	if err := s.Finish(); err != nil {
		t.Errorf("unexpected error finishing: %v", err)
	}
}

func TestIntermediateRatingMovesToRest(t *testing.T) {
	s, _ := New(testScents("rose", "lemon"))
	_ = s.Begin()
	tick(s, BreatheSeconds+SmellSeconds)

	result, err := s.SubmitRating(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != nil {
		t.Fatal("expected no result before the final scent")
	}

	state := s.Snapshot()
	if state.Phase != PhaseRest {
		t.Errorf("expected rest phase, got %s", state.Phase)
	}

	if state.ScentIndex != 1 {
		t.Errorf("expected scent index 1, got %d", state.ScentIndex)
	}

	if state.RemainingSeconds != RestSeconds {
		t.Errorf("expected %d remaining, got %d", RestSeconds, state.RemainingSeconds)
	}
}

func TestPauseHaltsCountdown(t *testing.T) {
	s, _ := New(testScents("rose"))
	_ = s.Begin()
	tick(s, 2)

	if err := s.Pause(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tick(s, 30)

	state := s.Snapshot()
	if state.RemainingSeconds != BreatheSeconds-2 {
		t.Errorf("expected %d remaining after pause, got %d", BreatheSeconds-2, state.RemainingSeconds)
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tick(s, BreatheSeconds-2)

	if got := s.Snapshot().Phase; got != PhaseSmell {
		t.Errorf("expected smell phase after resume, got %s", got)
	}
}

func TestRestartResetsCurrentPhase(t *testing.T) {
	s, _ := New(testScents("rose"))
	_ = s.Begin()
	tick(s, BreatheSeconds) // into smell
	tick(s, 7)

	if err := s.Restart(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := s.Snapshot()
	if state.Phase != PhaseSmell {
		t.Errorf("restart must not transition, got %s", state.Phase)
	}

	if state.RemainingSeconds != SmellSeconds {
		t.Errorf("expected full %d seconds, got %d", SmellSeconds, state.RemainingSeconds)
	}
}

func TestSkipTriggersSameTransitionAsExpiry(t *testing.T) {
	s, _ := New(testScents("rose"))
	_ = s.Begin()

	if err := s.Skip(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.Snapshot().Phase; got != PhaseSmell {
		t.Errorf("expected smell after skipping breathe, got %s", got)
	}

	_ = s.Skip()

	if got := s.Snapshot().Phase; got != PhaseRate {
		t.Errorf("expected rate after skipping smell, got %s", got)
	}
}

func TestTimerControlsRejectedOutsideTimedPhases(t *testing.T) {
	s, _ := New(testScents("rose"))

	controls := map[string]func() error{
		"pause":   s.Pause,
		"resume":  s.Resume,
		"restart": s.Restart,
		"skip":    s.Skip,
	}

	for name, control := range controls {
		if err := control(); !errors.Is(err, ErrNotTimedPhase) {
			t.Errorf("%s in intro: expected ErrNotTimedPhase, got %v", name, err)
		}
	}
}

func TestSubmitRatingValidation(t *testing.T) {
	s, _ := New(testScents("rose"))
	_ = s.Begin()

	if _, err := s.SubmitRating(5); !errors.Is(err, ErrNotRating) {
		t.Errorf("rating during breathe: expected ErrNotRating, got %v", err)
	}

	tick(s, BreatheSeconds+SmellSeconds)

	cases := []struct {
		value int
		err   error
	}{
		{-1, ErrRatingOutOfRange},
		{11, ErrRatingOutOfRange},
		{0, nil},
	}

	for _, tc := range cases {
		_, err := s.SubmitRating(tc.value)
		if !errors.Is(err, tc.err) {
			t.Errorf("rating %d: expected %v, got %v", tc.value, tc.err, err)
		}
	}
}

func TestScentSnapshotIsFixedAtStart(t *testing.T) {
	scents := testScents("rose", "lemon")

	s, _ := New(scents)
	_ = s.Begin()

	// Mutating the caller's slice must not change the running session.
	scents[1] = model.Scent{ID: "vanilla", Name: "vanilla"}

	tick(s, BreatheSeconds+SmellSeconds)
	_, _ = s.SubmitRating(4)
	tick(s, RestSeconds+SmellSeconds)

	result, err := s.SubmitRating(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := result.Ratings["lemon"]; !ok {
		t.Error("expected the original snapshot scent to be rated")
	}

	if _, ok := result.Ratings["vanilla"]; ok {
		t.Error("mid-session collection change leaked into the snapshot")
	}
}

func TestBeginTwiceRejected(t *testing.T) {
	s, _ := New(testScents("rose"))
	_ = s.Begin()

	if err := s.Begin(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTicksIgnoredWhileAwaitingRating(t *testing.T) {
	s, _ := New(testScents("rose"))
	_ = s.Begin()
	tick(s, BreatheSeconds+SmellSeconds)

	// Scheduler keeps ticking; the rate phase is untimed.
	tick(s, 120)

	if got := s.Snapshot().Phase; got != PhaseRate {
		t.Errorf("expected rate phase to persist, got %s", got)
	}
}

func TestRatingsExposesPartialProgress(t *testing.T) {
	s, _ := New(testScents("rose", "lemon", "clove"))
	_ = s.Begin()

	if got := s.Ratings(); len(got) != 0 {
		t.Fatalf("expected no ratings before any submission, got %v", got)
	}

	tick(s, BreatheSeconds+SmellSeconds)
	if _, err := s.SubmitRating(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ratings := s.Ratings()
	if len(ratings) != 1 || ratings["rose"] != 4 {
		t.Fatalf("expected partial ratings {rose:4}, got %v", ratings)
	}

	// The returned map is a copy; mutating it must not touch the session.
	ratings["rose"] = 9
	if got := s.Ratings()["rose"]; got != 4 {
		t.Errorf("expected rating 4 after caller mutation, got %d", got)
	}
}
