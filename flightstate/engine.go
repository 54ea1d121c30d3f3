// Package flightstate classifies flights into display states and urgency
// levels and derives the refresh cadence for the glanceable display.
// Classification is a pure function of the current time; nothing is stored.
package flightstate

import (
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

// Classification thresholds
const (
	// prepareWindow is how far before departure the display leaves "upcoming"
	prepareWindow = 24 * time.Hour

	urgentThreshold = 30 * time.Minute
	soonThreshold   = 90 * time.Minute

	// DefaultLookahead bounds how far ahead the timeline projects
	DefaultLookahead = 4 * time.Hour
)

// Refresh cadence per display state
const (
	goModeInterval   = 1 * time.Minute
	prepareInterval  = 5 * time.Minute
	upcomingInterval = 15 * time.Minute
)

// Engine derives display state, urgency and refresh cadence
type Engine struct {
	lookahead time.Duration
}

// NewEngine creates an engine with the default timeline lookahead
func NewEngine() *Engine {
	return &Engine{lookahead: DefaultLookahead}
}

// NewEngineWithLookahead creates an engine with a custom timeline lookahead.
// Non-positive values fall back to the default.
func NewEngineWithLookahead(lookahead time.Duration) *Engine {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return &Engine{lookahead: lookahead}
}

// ClassifyState derives the staged display state at the given moment.
// The go-mode threshold check runs before the departure window check, so a
// flight inside the threshold is goMode no matter how far away departure is.
func (e *Engine) ClassifyState(flight models.Flight, calc *models.LeaveTimeCalculation, now time.Time) models.FlightState {
	if calc != nil {
		threshold := calc.TransportDuration + calc.BufferDuration
		if calc.TimeUntilLeave(now) <= threshold {
			return models.StateGoMode
		}
	}
	if flight.TimeUntilDeparture(now) <= prepareWindow {
		return models.StatePrepare
	}
	return models.StateUpcoming
}

// ClassifyUrgency grades the remaining time before the user must leave.
// Without a calculation there is nothing to act on, so the display stays
// relaxed. An overdue leave time is urgent.
func (e *Engine) ClassifyUrgency(calc *models.LeaveTimeCalculation, now time.Time) models.Urgency {
	if calc == nil {
		return models.UrgencyRelaxed
	}
	untilLeave := calc.TimeUntilLeave(now)
	switch {
	case untilLeave < urgentThreshold:
		return models.UrgencyUrgent
	case untilLeave < soonThreshold:
		return models.UrgencySoon
	default:
		return models.UrgencyRelaxed
	}
}

// RefreshInterval returns how often the display should refresh in a state
func (e *Engine) RefreshInterval(state models.FlightState) time.Duration {
	switch state {
	case models.StateGoMode:
		return goModeInterval
	case models.StatePrepare:
		return prepareInterval
	default:
		return upcomingInterval
	}
}

// LookaheadCount returns how many timeline entries fill the lookahead
// horizon at the state's refresh cadence
func (e *Engine) LookaheadCount(state models.FlightState) int {
	return int(e.lookahead / e.RefreshInterval(state))
}

// TimelineEntry is one future point of the display timeline
type TimelineEntry struct {
	At             time.Time          `json:"at"`
	State          models.FlightState `json:"state"`
	Urgency        models.Urgency     `json:"urgency"`
	TimeUntilLeave time.Duration      `json:"time_until_leave,omitempty"`
}

// Timeline projects forward snapshots from the given moment. The cadence is
// fixed by the state at the starting moment; every entry is re-classified at
// its own point in time, so state transitions show up inside the timeline.
func (e *Engine) Timeline(flight models.Flight, calc *models.LeaveTimeCalculation, from time.Time) []TimelineEntry {
	state := e.ClassifyState(flight, calc, from)
	interval := e.RefreshInterval(state)
	count := e.LookaheadCount(state)

	entries := make([]TimelineEntry, 0, count)
	for i := 0; i < count; i++ {
		at := from.Add(time.Duration(i) * interval)
		entry := TimelineEntry{
			At:      at,
			State:   e.ClassifyState(flight, calc, at),
			Urgency: e.ClassifyUrgency(calc, at),
		}
		if calc != nil {
			entry.TimeUntilLeave = calc.TimeUntilLeave(at)
		}
		entries = append(entries, entry)
	}
	return entries
}
