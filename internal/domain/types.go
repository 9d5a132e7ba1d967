package domain

import "fmt"

// Frets is the number of fret positions per string.
const Frets = 13

// FretButtons is the number of fret positions on the whole board.
const FretButtons = Frets * Strings

// PuzzleSpec is one generated puzzle. It never changes after generation.
type PuzzleSpec struct {
	Root     PitchClass   `json:"root"`
	RootName string       `json:"rootName"` // display spelling of Root
	Quality  ChordQuality `json:"quality"`
	Broken   int          `json:"broken"`
}

// ChordName is the displayed chord, e.g. "Dbm7".
func (p PuzzleSpec) ChordName() string {
	name := p.RootName
	if name == "" {
		name = p.Root.Name()
	}
	return name + p.Quality.Name
}

// Required returns the chord tones in the quality's declared order.
func (p PuzzleSpec) Required() []PitchClass {
	out := make([]PitchClass, len(p.Quality.Semitones))
	for i, sm := range p.Quality.Semitones {
		out[i] = p.Root.Transpose(sm)
	}
	return out
}

// Expected returns the chord tones as a set.
func (p PuzzleSpec) Expected() PitchSet {
	var s PitchSet
	for _, pc := range p.Required() {
		s = s.Add(pc)
	}
	return s
}

// Disclosure is the read-only description of a puzzle, for logs.
type Disclosure struct {
	ChordName     string `json:"chordName"`
	ExpectedNotes string `json:"expectedNotes"`
	BrokenString  string `json:"brokenString"`
}

func (p PuzzleSpec) Disclosure() Disclosure {
	return Disclosure{
		ChordName:     p.ChordName(),
		ExpectedNotes: p.Expected().Names(),
		BrokenString:  StringNames[p.Broken],
	}
}

// Action is a single toggle on the board.
type Action struct {
	Kind        ActionKind `json:"kind"`
	Fret        int        `json:"fret,omitempty"` // zero-based; ignored for mutes
	StringIndex int        `json:"string"`
}

func ToggleFret(fret, s int) Action {
	return Action{Kind: ActionToggleFret, Fret: fret, StringIndex: s}
}

func ToggleMute(s int) Action { return Action{Kind: ActionToggleMute, StringIndex: s} }

func (a Action) String() string {
	if a.Kind == ActionToggleMute {
		return fmt.Sprintf("mute %s", StringNames[a.StringIndex])
	}
	return fmt.Sprintf("fret %d on %s", a.Fret+1, StringNames[a.StringIndex])
}

// Fretboard holds which frets are held down and which strings are muted.
// Positions on the broken string can never be set. Several frets on one
// string are allowed here; the validator rejects them on submission.
type Fretboard struct {
	Frets  [Frets][Strings]bool `json:"frets"`
	Muted  [Strings]bool        `json:"muted"`
	Broken int                  `json:"broken"`
}

func NewFretboard(broken int) *Fretboard { return &Fretboard{Broken: broken} }

// ToggleFret flips one fret position and reports whether it was applied.
// Out-of-range positions and the broken string are ignored.
func (b *Fretboard) ToggleFret(fret, s int) bool {
	if fret < 0 || fret >= Frets || s < 0 || s >= Strings || s == b.Broken {
		return false
	}
	b.Frets[fret][s] = !b.Frets[fret][s]
	return true
}

// ToggleMute flips the mute on string s and reports whether it was applied.
func (b *Fretboard) ToggleMute(s int) bool {
	if s < 0 || s >= Strings || s == b.Broken {
		return false
	}
	b.Muted[s] = !b.Muted[s]
	return true
}

func (b *Fretboard) Apply(a Action) bool {
	if a.Kind == ActionToggleMute {
		return b.ToggleMute(a.StringIndex)
	}
	return b.ToggleFret(a.Fret, a.StringIndex)
}

// FretsOn lists the engaged fret positions on string s, ascending.
func (b *Fretboard) FretsOn(s int) []int {
	var out []int
	for f := 0; f < Frets; f++ {
		if b.Frets[f][s] {
			out = append(out, f)
		}
	}
	return out
}

// FretButton maps a fret button index (row-major by fret) to its position.
func FretButton(index int) (fret, s int) { return index / Strings, index % Strings }

// Strike describes why a submission was rejected.
type Strike struct {
	Reason      StrikeReason `json:"reason"`
	StringIndex int          `json:"string"`
	Fret        int          `json:"fret"` // zero-based, -1 for an open string
	Note        PitchClass   `json:"note"`
}

// Message renders the strike for a human, in the context of spec.
func (s Strike) Message(spec PuzzleSpec) string {
	switch s.Reason {
	case MultipleFretsOnString:
		return fmt.Sprintf("You selected more than one fret on the %s string.", StringNames[s.StringIndex])
	case MutedWhileFretted:
		return fmt.Sprintf("You selected a fret on the %s string while also muting that string.", StringNames[s.StringIndex])
	case NoteNotInChord:
		sel := "no fret"
		if s.Fret >= 0 {
			sel = fmt.Sprintf("fret %d", s.Fret+1)
		}
		return fmt.Sprintf("On the %s string, you selected %s, which makes it a %s, which is not part of a %s chord.",
			StringNames[s.StringIndex], sel, s.Note, spec.ChordName())
	case ChordIncomplete:
		return fmt.Sprintf("The %s chord requires a %s, which you didn't play.", spec.ChordName(), s.Note)
	default:
		return "Unknown strike."
	}
}

// Verdict is the outcome of one submission: either a Strike or the set
// of notes that sounded.
type Verdict struct {
	Strike *Strike  `json:"strike,omitempty"`
	Played PitchSet `json:"played"`
}

func (v Verdict) Solved() bool { return v.Strike == nil }

// Hint suggests the next action toward a solution.
type Hint struct {
	Message string `json:"message,omitempty"`
	Action  Action `json:"action"`
}
