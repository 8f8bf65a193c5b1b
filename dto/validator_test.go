package dto

import (
	"testing"
	"time"
)

func TestSubmitRatingRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		intensity int
		wantErr   bool
	}{
		{"zero", 0, false},
		{"mid", 6, false},
		{"max", 10, false},
		{"negative", -1, true},
		{"above max", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SubmitRatingRequest{Intensity: tt.intensity}.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAppendSessionRequestValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		req     AppendSessionRequest
		wantErr bool
	}{
		{"valid", AppendSessionRequest{ScentRatings: map[string]int{"scent_rose": 5}, DurationSec: 120}, false},
		{"valid with created_at", AppendSessionRequest{ScentRatings: map[string]int{"scent_rose": 5}, CreatedAt: &now}, false},
		{"missing ratings", AppendSessionRequest{DurationSec: 120}, true},
		{"empty ratings", AppendSessionRequest{ScentRatings: map[string]int{}}, true},
		{"negative duration", AppendSessionRequest{ScentRatings: map[string]int{"scent_rose": 5}, DurationSec: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShareRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ShareRequest
		wantErr bool
	}{
		{"achievement", ShareRequest{Type: "achievement", AchievementID: "streak_7"}, false},
		{"streak", ShareRequest{Type: "streak"}, false},
		{"moment", ShareRequest{Type: "moment"}, false},
		{"missing type", ShareRequest{}, true},
		{"unknown type", ShareRequest{Type: "leaderboard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	err := SubmitRatingRequest{Intensity: 42}.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 1 {
		t.Fatalf("expected 1 error, got %d", len(formatted))
	}

	if formatted[0].Field != "Intensity" {
		t.Errorf("Field = %q, want Intensity", formatted[0].Field)
	}

	if formatted[0].Message != "Intensity must be at most 10" {
		t.Errorf("Message = %q", formatted[0].Message)
	}
}
