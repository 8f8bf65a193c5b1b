package analytics

import (
	"testing"
)

func TestMomentNoticingAgain(t *testing.T) {
	sessions := []Session{
		sessionAt(-30, map[string]int{"rose": 0}),
		sessionAt(-25, map[string]int{"rose": 0}),
		sessionAt(-2, map[string]int{"rose": 3}),
	}

	moments := ComputeMoments(sessions, map[string]string{"rose": "Rose"}, testNow)

	if len(moments) != 1 {
		t.Fatalf("expected 1 moment, got %d", len(moments))
	}

	m := moments[0]
	if m.Kind != MomentNoticingAgain {
		t.Errorf("expected %s, got %s", MomentNoticingAgain, m.Kind)
	}

	if m.Text != "First time noticing Rose again" {
		t.Errorf("unexpected text: %q", m.Text)
	}
}

func TestMomentGettingStronger(t *testing.T) {
	sessions := []Session{
		sessionAt(-30, map[string]int{"lemon": 3}),
		sessionAt(-25, map[string]int{"lemon": 3}),
		sessionAt(-2, map[string]int{"lemon": 6}),
	}

	moments := ComputeMoments(sessions, nil, testNow)

	if len(moments) != 1 {
		t.Fatalf("expected 1 moment, got %d", len(moments))
	}

	if moments[0].Kind != MomentGettingStronger {
		t.Errorf("expected %s, got %s", MomentGettingStronger, moments[0].Kind)
	}

	// No display name provided: the id is used.
	if moments[0].Text != "lemon is coming through stronger than before" {
		t.Errorf("unexpected text: %q", moments[0].Text)
	}
}

func TestNoMomentWithoutBothSides(t *testing.T) {
	cases := map[string][]Session{
		"recent only": {
			sessionAt(-2, map[string]int{"rose": 5}),
		},
		"prior only": {
			sessionAt(-30, map[string]int{"rose": 5}),
		},
		"small gain": {
			sessionAt(-30, map[string]int{"rose": 4}),
			sessionAt(-2, map[string]int{"rose": 5}),
		},
	}

	for name, sessions := range cases {
		if moments := ComputeMoments(sessions, nil, testNow); len(moments) != 0 {
			t.Errorf("%s: expected no moments, got %d", name, len(moments))
		}
	}
}
