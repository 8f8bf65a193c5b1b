// Package analytics derives streaks, rolling averages, achievements, and
// progress moments from a user's training session history. Every function
// is pure: given the same session list and reference time it returns the
// same output, and nothing here performs I/O.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/aroma-labs/aroma_api/model"
)

// Session is the analytics view of a training session record. Ratings keys
// are scent ids from the catalog; values are intensities in
// [model.MinIntensity, model.MaxIntensity].
type Session struct {
	ID        string
	CreatedAt time.Time
	Completed bool
	Ratings   map[string]int
}

// FromRecord converts a stored record into the analytics view, enforcing
// the rating invariant at the boundary.
func FromRecord(rec *model.TrainingSession) (Session, error) {
	ratings, err := rec.Ratings()
	if err != nil {
		return Session{}, err
	}

	for scentID, value := range ratings {
		if value < model.MinIntensity || value > model.MaxIntensity {
			return Session{}, fmt.Errorf("session %s: rating %d for scent %s is out of range",
				rec.ID, value, scentID)
		}
	}

	return Session{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Completed: rec.Completed,
		Ratings:   ratings,
	}, nil
}

// completedSorted returns the completed sessions in chronological order.
// The input list is never assumed to be ordered.
func completedSorted(sessions []Session) []Session {
	out := make([]Session, 0, len(sessions))

	for _, s := range sessions {
		if s.Completed {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

// averageIntensity is the mean of every individual scent rating across the
// given sessions, 0 for an empty set.
func averageIntensity(sessions []Session) float64 {
	var sum, count int

	for _, s := range sessions {
		for _, v := range s.Ratings {
			sum += v
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return float64(sum) / float64(count)
}

// sessionAverage is the mean rating within a single session, 0 when the
// session holds no ratings.
func sessionAverage(s Session) float64 {
	if len(s.Ratings) == 0 {
		return 0
	}

	var sum int
	for _, v := range s.Ratings {
		sum += v
	}

	return float64(sum) / float64(len(s.Ratings))
}

// inWindow filters sessions whose CreatedAt falls within [from, to).
func inWindow(sessions []Session, from, to time.Time) []Session {
	out := make([]Session, 0, len(sessions))

	for _, s := range sessions {
		if !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, s)
		}
	}

	return out
}

// dayOf truncates a timestamp to local midnight.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
