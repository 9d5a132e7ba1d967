package solver

import "svw.info/guitarchords/internal/domain"

// Planner builds a closed-form fingering: one chord tone per string, lowest
// string first, then mutes on whatever strings are left over.
type Planner struct {
	Tuning domain.Tuning
}

func NewPlanner() *Planner { return &Planner{Tuning: domain.StandardTuning} }

// Plan returns the toggles that solve spec starting from an empty board.
// It assumes the chord has at most as many tones as there are usable
// strings, which holds for every catalog entry.
func (p *Planner) Plan(spec domain.PuzzleSpec) []domain.Action {
	var out []domain.Action
	cur := 0
	for _, sm := range spec.Quality.Semitones {
		if cur == spec.Broken {
			cur++
		}
		if cur >= domain.Strings {
			break
		}
		fret := (sm + int(spec.Root) - int(p.Tuning[cur]) + 2*domain.PitchClasses) % domain.PitchClasses
		if fret != 0 {
			out = append(out, domain.ToggleFret(fret-1, cur))
		}
		cur++
	}
	for ; cur < domain.Strings; cur++ {
		if cur == spec.Broken {
			continue
		}
		out = append(out, domain.ToggleMute(cur))
	}
	return out
}

// Target is the board that Plan produces from an empty one.
func (p *Planner) Target(spec domain.PuzzleSpec) *domain.Fretboard {
	b := domain.NewFretboard(spec.Broken)
	for _, a := range p.Plan(spec) {
		b.Apply(a)
	}
	return b
}
