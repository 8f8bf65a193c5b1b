// Package engine drives a guided olfactory training session through its
// breathing, smelling, resting, and rating phases. The engine holds no
// timers of its own: an external scheduler calls Tick once per second while
// a timed phase is running, so tests can advance time deterministically.
package engine

import (
	"time"

	"github.com/aroma-labs/aroma_api/model"
)

// Phase identifies the current step of a training session.
type Phase string

const (
	PhaseIntro   Phase = "intro"
	PhaseBreathe Phase = "breathe"
	PhaseSmell   Phase = "smell"
	PhaseRate    Phase = "rate"
	PhaseRest    Phase = "rest"
	PhaseOutro   Phase = "outro"
)

// Fixed phase durations in seconds.
const (
	BreatheSeconds = 5
	SmellSeconds   = 20
	RestSeconds    = 10
)

// Result is the finished session produced when the last scent is rated.
type Result struct {
	Ratings     map[string]int
	StartedAt   time.Time
	CompletedAt time.Time
}

// State is a read-only snapshot of a running session for the presentation
// layer.
type State struct {
	Phase            Phase       `json:"phase"`
	ScentIndex       int         `json:"scent_index"`
	ScentCount       int         `json:"scent_count"`
	CurrentScent     model.Scent `json:"current_scent"`
	RemainingSeconds int         `json:"remaining_seconds"`
	Running          bool        `json:"running"`
	RatedCount       int         `json:"rated_count"`
}

// Session is the in-memory state machine for one training run. It is not
// safe for concurrent use; callers serialize access.
type Session struct {
	scents    []model.Scent // snapshot taken at construction
	phase     Phase
	index     int
	remaining int
	running   bool
	ratings   map[string]int
	startedAt time.Time
	now       func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a session over a snapshot of the given scent list. The list
// is copied; later changes to the user's collection do not affect a running
// session. An empty list is rejected.
func New(scents []model.Scent, opts ...Option) (*Session, error) {
	if len(scents) == 0 {
		return nil, ErrNoScents
	}

	snapshot := make([]model.Scent, len(scents))
	copy(snapshot, scents)

	s := &Session{
		scents:  snapshot,
		phase:   PhaseIntro,
		ratings: make(map[string]int, len(snapshot)),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Begin leaves the intro and starts the breathing countdown.
func (s *Session) Begin() error {
	if s.phase != PhaseIntro {
		return ErrInvalidTransition
	}

	s.startedAt = s.now()
	s.enterTimed(PhaseBreathe, BreatheSeconds)

	return nil
}

// Tick advances the countdown of the current timed phase by one second.
// Ticks outside a running timed phase are ignored so a scheduler may keep
// ticking while the session is paused or awaiting a rating.
func (s *Session) Tick() {
	if !s.timedPhase() || !s.running {
		return
	}

	s.remaining--
	if s.remaining <= 0 {
		s.expire()
	}
}

// Pause halts the countdown without losing the remaining time.
func (s *Session) Pause() error {
	if !s.timedPhase() {
		return ErrNotTimedPhase
	}

	s.running = false
	return nil
}

// Resume continues a paused countdown.
func (s *Session) Resume() error {
	if !s.timedPhase() {
		return ErrNotTimedPhase
	}

	s.running = true
	return nil
}

// Restart resets the current phase to its full duration without
// transitioning.
func (s *Session) Restart() error {
	if !s.timedPhase() {
		return ErrNotTimedPhase
	}

	s.remaining = phaseDuration(s.phase)
	return nil
}

// Skip forces immediate expiry of the current timed phase, triggering the
// same transition as a natural countdown expiry.
func (s *Session) Skip() error {
	if !s.timedPhase() {
		return ErrNotTimedPhase
	}

	s.remaining = 0
	s.expire()

	return nil
}

// SubmitRating records the intensity for the current scent. When scents
// remain it advances to the rest phase; after the final scent it moves to
// the outro and returns the finished Result. Out-of-range values are
// rejected, not clamped.
func (s *Session) SubmitRating(value int) (*Result, error) {
	if s.phase != PhaseRate {
		return nil, ErrNotRating
	}

	if value < model.MinIntensity || value > model.MaxIntensity {
		return nil, ErrRatingOutOfRange
	}

	s.ratings[s.scents[s.index].ID] = value

	if s.index+1 < len(s.scents) {
		s.index++
		s.enterTimed(PhaseRest, RestSeconds)

		return nil, nil
	}

	s.phase = PhaseOutro
	s.running = false
	s.remaining = 0

	ratings := make(map[string]int, len(s.ratings))
	for k, v := range s.ratings {
		ratings[k] = v
	}

	return &Result{
		Ratings:     ratings,
		StartedAt:   s.startedAt,
		CompletedAt: s.now(),
	}, nil
}

// Finish acknowledges the outro and ends the session.
func (s *Session) Finish() error {
	if s.phase != PhaseOutro {
		return ErrInvalidTransition
	}

	return nil
}

// Ratings returns a copy of the intensities submitted so far. Callers use
// it to persist partial progress when a session ends before the outro.
func (s *Session) Ratings() map[string]int {
	ratings := make(map[string]int, len(s.ratings))
	for k, v := range s.ratings {
		ratings[k] = v
	}

	return ratings
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() State {
	return State{
		Phase:            s.phase,
		ScentIndex:       s.index,
		ScentCount:       len(s.scents),
		CurrentScent:     s.scents[s.index],
		RemainingSeconds: s.remaining,
		Running:          s.running,
		RatedCount:       len(s.ratings),
	}
}

// Done reports whether the session has reached its terminal phase.
func (s *Session) Done() bool {
	return s.phase == PhaseOutro
}

func (s *Session) timedPhase() bool {
	switch s.phase {
	case PhaseBreathe, PhaseSmell, PhaseRest:
		return true
	}

	return false
}

func (s *Session) enterTimed(phase Phase, seconds int) {
	s.phase = phase
	s.remaining = seconds
	s.running = true
}

// expire performs the transition a timed phase takes when its countdown
// reaches zero.
func (s *Session) expire() {
	switch s.phase {
	case PhaseBreathe, PhaseRest:
		s.enterTimed(PhaseSmell, SmellSeconds)
	case PhaseSmell:
		s.phase = PhaseRate
		s.running = false
		s.remaining = 0
	}
}

func phaseDuration(phase Phase) int {
	switch phase {
	case PhaseBreathe:
		return BreatheSeconds
	case PhaseSmell:
		return SmellSeconds
	case PhaseRest:
		return RestSeconds
	}

	return 0
}
