package hint

import (
	"fmt"

	"svw.info/guitarchords/internal/domain"
	"svw.info/guitarchords/internal/ports"
	"svw.info/guitarchords/internal/solver"
)

// Corrective steers the board toward the planner's fingering one toggle at
// a time. All releases are suggested before any press.
type Corrective struct {
	Planner   *solver.Planner
	Validator ports.Validator
}

func NewCorrective(p *solver.Planner, v ports.Validator) *Corrective {
	return &Corrective{Planner: p, Validator: v}
}

// Hint returns the next toggle, or false when the board already passes.
func (h *Corrective) Hint(spec domain.PuzzleSpec, b *domain.Fretboard) (domain.Hint, bool) {
	if h.Validator != nil && h.Validator.Validate(spec, b).Solved() {
		return domain.Hint{}, false
	}
	target := h.Planner.Target(spec)

	// releases
	for s := 0; s < domain.Strings; s++ {
		if s == spec.Broken {
			continue
		}
		for f := 0; f < domain.Frets; f++ {
			if b.Frets[f][s] && !target.Frets[f][s] {
				return domain.Hint{
					Message: fmt.Sprintf("Release fret %d on the %s string", f+1, domain.StringNames[s]),
					Action:  domain.ToggleFret(f, s),
				}, true
			}
		}
		if b.Muted[s] && !target.Muted[s] {
			return domain.Hint{
				Message: fmt.Sprintf("Unmute the %s string", domain.StringNames[s]),
				Action:  domain.ToggleMute(s),
			}, true
		}
	}

	// presses
	for s := 0; s < domain.Strings; s++ {
		if s == spec.Broken {
			continue
		}
		for f := 0; f < domain.Frets; f++ {
			if target.Frets[f][s] && !b.Frets[f][s] {
				note, _ := domain.ResolveNote(h.Planner.Tuning, s, []int{f}, false)
				return domain.Hint{
					Message: fmt.Sprintf("Hold fret %d on the %s string to play %s", f+1, domain.StringNames[s], note),
					Action:  domain.ToggleFret(f, s),
				}, true
			}
		}
		if target.Muted[s] && !b.Muted[s] {
			return domain.Hint{
				Message: fmt.Sprintf("Mute the %s string", domain.StringNames[s]),
				Action:  domain.ToggleMute(s),
			}, true
		}
	}
	return domain.Hint{}, false
}
