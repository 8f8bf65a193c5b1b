package model

import (
	"testing"
)

func TestSetRatingsRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name    string
		ratings map[string]int
		wantErr bool
	}{
		{"all in range", map[string]int{"scent_rose": 0, "scent_lemon": 10}, false},
		{"below minimum", map[string]int{"scent_rose": -1}, true},
		{"above maximum", map[string]int{"scent_rose": 11}, true},
		{"empty map", map[string]int{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s TrainingSession
			err := s.SetRatings(tc.ratings)
			if tc.wantErr && err == nil {
				t.Fatalf("SetRatings(%v) accepted out-of-range value", tc.ratings)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("SetRatings(%v) returned %v", tc.ratings, err)
			}
		})
	}
}

func TestRatingsRoundTrip(t *testing.T) {
	var s TrainingSession
	want := map[string]int{"scent_rose": 7, "scent_clove": 3}

	if err := s.SetRatings(want); err != nil {
		t.Fatalf("SetRatings: %v", err)
	}

	got, err := s.Ratings()
	if err != nil {
		t.Fatalf("Ratings: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d ratings, want %d", len(got), len(want))
	}
	for id, value := range want {
		if got[id] != value {
			t.Errorf("rating %s = %d, want %d", id, got[id], value)
		}
	}
}

func TestRatingsEmptyPayload(t *testing.T) {
	var s TrainingSession

	got, err := s.Ratings()
	if err != nil {
		t.Fatalf("Ratings on empty payload: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestRatingsCorruptPayload(t *testing.T) {
	s := TrainingSession{ScentRatings: []byte("not json")}

	if _, err := s.Ratings(); err == nil {
		t.Fatal("expected error for corrupt payload")
	}
}
