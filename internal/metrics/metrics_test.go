package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"svw.info/guitarchords/internal/domain"
)

func TestSubmissionCountsStrikesByReason(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Submission(domain.Verdict{Strike: &domain.Strike{Reason: domain.NoteNotInChord}})
	m.Submission(domain.Verdict{Strike: &domain.Strike{Reason: domain.NoteNotInChord}})
	m.Submission(domain.Verdict{Strike: &domain.Strike{Reason: domain.ChordIncomplete}})
	m.Submission(domain.Verdict{Played: 0b10010001})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("strike")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("solved")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StrikesTotal.WithLabelValues("note_not_in_chord")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StrikesTotal.WithLabelValues("chord_incomplete")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StrikesTotal.WithLabelValues("multiple_frets")))
}

func TestToggleAndForcedSolve(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Toggle(domain.ActionToggleFret)
	m.Toggle(domain.ActionToggleMute)
	m.Toggle(domain.ActionToggleMute)
	m.ForcedSolve()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TogglesTotal.WithLabelValues("fret")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TogglesTotal.WithLabelValues("mute")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ForcedSolvesTotal))
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
