// Package metrics counts puzzle session events with Prometheus.
//
// Metrics are registered on the Registerer handed to New, so tests and
// multiple sessions can each use their own registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/guitarchords/internal/domain"
)

const (
	namespace = "guitarchords"
	subsystem = "session"
)

// SessionMetrics implements ports.Recorder.
type SessionMetrics struct {
	// SubmissionsTotal counts submissions. Labels: result (solved, strike)
	SubmissionsTotal *prometheus.CounterVec

	// StrikesTotal counts strikes by the rule that fired.
	// Labels: reason (multiple_frets, muted_while_fretted, note_not_in_chord, chord_incomplete)
	StrikesTotal *prometheus.CounterVec

	// TogglesTotal counts applied toggles. Labels: kind (fret, mute)
	TogglesTotal *prometheus.CounterVec

	// ForcedSolvesTotal counts forced solves requested.
	ForcedSolvesTotal prometheus.Counter
}

// New creates and registers the session metrics on reg.
// Panics if reg already holds them.
func New(reg prometheus.Registerer) *SessionMetrics {
	f := promauto.With(reg)
	return &SessionMetrics{
		SubmissionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "submissions_total",
				Help:      "Total submissions by result",
			},
			[]string{"result"},
		),
		StrikesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "strikes_total",
				Help:      "Total strikes by reason",
			},
			[]string{"reason"},
		),
		TogglesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "toggles_total",
				Help:      "Total applied toggles by kind",
			},
			[]string{"kind"},
		),
		ForcedSolvesTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "forced_solves_total",
				Help:      "Total forced solves requested",
			},
		),
	}
}

func (m *SessionMetrics) Toggle(kind domain.ActionKind) {
	label := "fret"
	if kind == domain.ActionToggleMute {
		label = "mute"
	}
	m.TogglesTotal.WithLabelValues(label).Inc()
}

func (m *SessionMetrics) Submission(v domain.Verdict) {
	if v.Solved() {
		m.SubmissionsTotal.WithLabelValues("solved").Inc()
		return
	}
	m.SubmissionsTotal.WithLabelValues("strike").Inc()
	m.StrikesTotal.WithLabelValues(v.Strike.Reason.String()).Inc()
}

func (m *SessionMetrics) ForcedSolve() { m.ForcedSolvesTotal.Inc() }
