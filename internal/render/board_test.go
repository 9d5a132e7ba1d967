package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/guitarchords/internal/domain"
)

func spec() domain.PuzzleSpec {
	q, _ := domain.QualityByName("")
	return domain.PuzzleSpec{Root: 0, RootName: "C", Quality: q, Broken: 0}
}

func TestBoardPlain(t *testing.T) {
	b := domain.NewFretboard(0)
	b.ToggleFret(2, 1)
	b.ToggleMute(5)

	out := New(&bytes.Buffer{}, false).Board(spec(), *b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2+domain.Strings)
	assert.Equal(t, "C", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", 11)+"  1  2  3"))
	assert.Equal(t, "treble E  x "+strings.Repeat(" - ", domain.Frets), lines[2])
	assert.Equal(t, "A         |  -  -  o "+strings.Repeat(" - ", domain.Frets-3), lines[6])
	assert.True(t, strings.HasPrefix(lines[7], "bass E    ~ "))
	assert.NotContains(t, out, "\x1b[")
}

func TestVerdictPlain(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	assert.Equal(t, "Beautiful. You played C, E, G.",
		r.Verdict(spec(), domain.Verdict{Played: domain.PitchSet(0).Add(0).Add(4).Add(7)}))

	msg := r.Verdict(spec(), domain.Verdict{Strike: &domain.Strike{Reason: domain.ChordIncomplete, Note: 4}})
	assert.Equal(t, "Strike. The C chord requires a E, which you didn't play.", msg)
}

func TestDisclosurePlain(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	assert.Equal(t, "Please play me a C chord. The bass E string is broken.", r.Disclosure(spec().Disclosure()))
}
