package domain

import (
	"fmt"
	"strings"
)

// PitchClass is a note name independent of octave, 0 = C through 11 = B.
type PitchClass uint8

// PitchClasses is the number of distinct pitch classes.
const PitchClasses = 12

// pitchNames lists the canonical spelling first, then enharmonic alternatives.
var pitchNames = [PitchClasses][]string{
	{"C"}, {"C#", "Db"}, {"D"}, {"D#", "Eb"}, {"E"}, {"F"},
	{"F#", "Gb"}, {"G"}, {"G#", "Ab"}, {"A"}, {"A#", "Bb"}, {"B"},
}

// Transpose moves p up by semitones, wrapping modulo 12. Negative values move down.
func (p PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(((int(p)+semitones)%PitchClasses + PitchClasses) % PitchClasses)
}

// Name returns the canonical spelling.
func (p PitchClass) Name() string { return pitchNames[p%PitchClasses][0] }

// Spellings returns every spelling of p, canonical first.
func (p PitchClass) Spellings() []string {
	names := pitchNames[p%PitchClasses]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func (p PitchClass) String() string { return p.Name() }

// PitchSet is a set of pitch classes stored as a 12-bit mask.
type PitchSet uint16

func (s PitchSet) Add(p PitchClass) PitchSet { return s | 1<<(p%PitchClasses) }

func (s PitchSet) Has(p PitchClass) bool { return s&(1<<(p%PitchClasses)) != 0 }

func (s PitchSet) Len() int {
	n := 0
	for m := s; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// Slice returns the members in ascending order.
func (s PitchSet) Slice() []PitchClass {
	out := make([]PitchClass, 0, s.Len())
	for p := PitchClass(0); p < PitchClasses; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Names joins the canonical names of the members, ascending.
func (s PitchSet) Names() string {
	ps := s.Slice()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name()
	}
	return strings.Join(names, ", ")
}

func (s PitchSet) String() string { return "{" + s.Names() + "}" }

// ChordQuality is a chord suffix and its intervals above the root.
type ChordQuality struct {
	Name      string `json:"name"`
	Semitones []int  `json:"semitones"`
}

// Catalog is the fixed set of chord qualities a puzzle can ask for.
// Every entry contains 0 and has at most five intervals.
var Catalog = []ChordQuality{
	{"", []int{0, 4, 7}},
	{"m", []int{0, 3, 7}},
	{"6", []int{0, 4, 7, 9}},
	{"7", []int{0, 4, 7, 10}},
	{"9", []int{0, 2, 4, 10}},
	{"add9", []int{0, 2, 4, 7}},
	{"m6", []int{0, 3, 7, 9}},
	{"m7", []int{0, 3, 7, 10}},
	{"maj7", []int{0, 4, 7, 11}},
	{"dim", []int{0, 3, 6}},
	{"dim7", []int{0, 3, 6, 9}},
	{"+", []int{0, 4, 8}},
	{"sus", []int{0, 5, 7}},
}

// QualityByName looks up a catalog entry by suffix.
func QualityByName(name string) (ChordQuality, bool) {
	for _, q := range Catalog {
		if q.Name == name {
			return q, true
		}
	}
	return ChordQuality{}, false
}

// CatalogTable renders the catalog rooted on C, one chord per line.
func CatalogTable() string {
	var sb strings.Builder
	for _, q := range Catalog {
		notes := make([]string, len(q.Semitones))
		for i, sm := range q.Semitones {
			notes[i] = PitchClass(sm).Name()
		}
		fmt.Fprintf(&sb, "C%-5s %s\n", q.Name, strings.Join(notes, ", "))
	}
	return sb.String()
}

// Strings is the number of strings on the fretboard.
const Strings = 6

// Tuning holds the open pitch of each string, lowest first.
type Tuning [Strings]PitchClass

// StandardTuning is E A D G B E.
var StandardTuning = Tuning{4, 9, 2, 7, 11, 4}

// StringNames names each string of StandardTuning.
var StringNames = [Strings]string{"bass E", "A", "D", "G", "B", "treble E"}

// ResolveNote reports the pitch class sounded by string s. frets holds the
// zero-based fret positions engaged on that string; position f is physical
// fret f+1. A muted string, or one with more than one fret engaged, sounds
// nothing.
func ResolveNote(t Tuning, s int, frets []int, muted bool) (PitchClass, bool) {
	if muted || len(frets) > 1 {
		return 0, false
	}
	if len(frets) == 0 {
		return t[s], true
	}
	return t[s].Transpose(frets[0] + 1), true
}
