package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFretboardIgnoresBrokenString(t *testing.T) {
	b := NewFretboard(2)
	assert.False(t, b.ToggleFret(0, 2))
	assert.False(t, b.ToggleMute(2))
	assert.Empty(t, b.FretsOn(2))
	assert.False(t, b.Muted[2])

	assert.True(t, b.ToggleFret(4, 1))
	assert.True(t, b.ToggleFret(7, 1))
	assert.Equal(t, []int{4, 7}, b.FretsOn(1))
	assert.True(t, b.ToggleFret(4, 1))
	assert.Equal(t, []int{7}, b.FretsOn(1))
}

func TestFretboardRejectsOutOfRange(t *testing.T) {
	b := NewFretboard(0)
	assert.False(t, b.ToggleFret(Frets, 1))
	assert.False(t, b.ToggleFret(-1, 1))
	assert.False(t, b.ToggleFret(0, Strings))
	assert.False(t, b.ToggleMute(-1))
}

func TestFretButtonLayout(t *testing.T) {
	f, s := FretButton(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{f, s})
	f, s = FretButton(13)
	assert.Equal(t, [2]int{2, 1}, [2]int{f, s})
	f, s = FretButton(FretButtons - 1)
	assert.Equal(t, [2]int{Frets - 1, Strings - 1}, [2]int{f, s})
}

func TestPuzzleSpecDerived(t *testing.T) {
	q, ok := QualityByName("m7")
	assert.True(t, ok)
	spec := PuzzleSpec{Root: 1, RootName: "Db", Quality: q, Broken: 5}
	assert.Equal(t, "Dbm7", spec.ChordName())
	assert.Equal(t, []PitchClass{1, 4, 8, 11}, spec.Required())
	d := spec.Disclosure()
	assert.Equal(t, "C#, E, G#, B", d.ExpectedNotes)
	assert.Equal(t, "treble E", d.BrokenString)
}

func TestStrikeMessages(t *testing.T) {
	q, _ := QualityByName("")
	spec := PuzzleSpec{Root: 0, RootName: "C", Quality: q}
	assert.Equal(t,
		"On the D string, you selected no fret, which makes it a D, which is not part of a C chord.",
		Strike{Reason: NoteNotInChord, StringIndex: 2, Fret: -1, Note: 2}.Message(spec))
	assert.Equal(t,
		"The C chord requires a E, which you didn't play.",
		Strike{Reason: ChordIncomplete, Note: 4}.Message(spec))
	assert.Contains(t, Strike{Reason: MultipleFretsOnString, StringIndex: 0}.Message(spec), "bass E")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "fret 3 on A", ToggleFret(2, 1).String())
	assert.Equal(t, "mute treble E", ToggleMute(5).String())
}
