package domain

// ActionKind distinguishes the two inputs a player can toggle.
type ActionKind uint8

const (
	ActionToggleFret ActionKind = iota
	ActionToggleMute
)

// StrikeReason identifies which rule a submission broke.
type StrikeReason uint8

const (
	MultipleFretsOnString StrikeReason = iota + 1 // more than one fret on a string
	MutedWhileFretted                             // fret engaged on a muted string
	NoteNotInChord                                // string sounds a foreign note
	ChordIncomplete                               // a chord tone was never played
)

// String returns a stable snake_case label, used for metrics.
func (r StrikeReason) String() string {
	switch r {
	case MultipleFretsOnString:
		return "multiple_frets"
	case MutedWhileFretted:
		return "muted_while_fretted"
	case NoteNotInChord:
		return "note_not_in_chord"
	case ChordIncomplete:
		return "chord_incomplete"
	default:
		return "unknown"
	}
}
