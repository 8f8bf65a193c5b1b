package analytics

import (
	"fmt"
	"time"
)

// Moment kinds.
const (
	MomentNoticingAgain   = "noticing_again"
	MomentGettingStronger = "getting_stronger"
)

// momentWindowDays bounds the "recent" side of a moment comparison.
const momentWindowDays = 14

// momentGain is the per-scent average increase that counts as "getting
// stronger".
const momentGain = 2.0

// Moment is a derived, human-readable observation comparing a scent's
// recent ratings against its prior history.
type Moment struct {
	ScentID string  `json:"scent_id"`
	Kind    string  `json:"kind"`
	Text    string  `json:"text"`
	Recent  float64 `json:"recent_avg"`
	Prior   float64 `json:"prior_avg"`
}

// ComputeMoments compares each scent's trailing-14-day average against its
// earlier history. scentNames maps scent ids to display names; scents
// without a name fall back to the id.
func ComputeMoments(sessions []Session, scentNames map[string]string, now time.Time) []Moment {
	completed := completedSorted(sessions)
	cutoff := now.AddDate(0, 0, -momentWindowDays)

	type scentHistory struct {
		recentSum, recentN int
		priorSum, priorN   int
	}

	histories := map[string]*scentHistory{}
	order := []string{}

	for _, s := range completed {
		for scentID, value := range s.Ratings {
			h, ok := histories[scentID]
			if !ok {
				h = &scentHistory{}
				histories[scentID] = h
				order = append(order, scentID)
			}

			if s.CreatedAt.Before(cutoff) {
				h.priorSum += value
				h.priorN++
			} else {
				h.recentSum += value
				h.recentN++
			}
		}
	}

	var moments []Moment

	for _, scentID := range order {
		h := histories[scentID]
		if h.priorN == 0 || h.recentN == 0 {
			continue // a moment needs history on both sides
		}

		recent := float64(h.recentSum) / float64(h.recentN)
		prior := float64(h.priorSum) / float64(h.priorN)

		name := scentNames[scentID]
		if name == "" {
			name = scentID
		}

		switch {
		case prior == 0 && recent > 0:
			moments = append(moments, Moment{
				ScentID: scentID,
				Kind:    MomentNoticingAgain,
				Text:    fmt.Sprintf("First time noticing %s again", name),
				Recent:  recent,
				Prior:   prior,
			})
		case prior > 0 && recent >= prior+momentGain:
			moments = append(moments, Moment{
				ScentID: scentID,
				Kind:    MomentGettingStronger,
				Text:    fmt.Sprintf("%s is coming through stronger than before", name),
				Recent:  recent,
				Prior:   prior,
			})
		}
	}

	return moments
}
