package validator

import "svw.info/guitarchords/internal/domain"

// RuleValidator checks a board string by string, lowest first, and reports
// the first rule broken. The order of checks decides which strike is shown
// when a board has several problems, so it must not change.
type RuleValidator struct {
	Tuning domain.Tuning
}

func New() *RuleValidator { return &RuleValidator{Tuning: domain.StandardTuning} }

func (v *RuleValidator) Validate(spec domain.PuzzleSpec, b *domain.Fretboard) domain.Verdict {
	expected := spec.Expected()
	var played domain.PitchSet

	for s := 0; s < domain.Strings; s++ {
		if s == spec.Broken {
			continue
		}
		frets := b.FretsOn(s)
		muted := b.Muted[s]
		if len(frets) > 1 {
			return strike(domain.Strike{Reason: domain.MultipleFretsOnString, StringIndex: s, Fret: -1})
		}
		if len(frets) == 1 && muted {
			return strike(domain.Strike{Reason: domain.MutedWhileFretted, StringIndex: s, Fret: frets[0]})
		}
		if muted {
			continue
		}
		note, _ := domain.ResolveNote(v.Tuning, s, frets, false)
		if !expected.Has(note) {
			fret := -1
			if len(frets) == 1 {
				fret = frets[0]
			}
			return strike(domain.Strike{Reason: domain.NoteNotInChord, StringIndex: s, Fret: fret, Note: note})
		}
		played = played.Add(note)
	}

	// completeness, in the chord's declared order
	for _, want := range spec.Required() {
		if !played.Has(want) {
			return domain.Verdict{
				Strike: &domain.Strike{Reason: domain.ChordIncomplete, StringIndex: -1, Fret: -1, Note: want},
				Played: played,
			}
		}
	}
	return domain.Verdict{Played: played}
}

func strike(s domain.Strike) domain.Verdict { return domain.Verdict{Strike: &s} }
