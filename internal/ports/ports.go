package ports

import (
	"math/rand"
	"time"

	"svw.info/guitarchords/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Duration time.Duration
}

// Generator draws a new puzzle from the given random source.
type Generator interface {
	Generate(rng *rand.Rand) (domain.PuzzleSpec, Stats)
}

// Validator checks a board against a puzzle, first failing rule wins.
type Validator interface {
	Validate(spec domain.PuzzleSpec, b *domain.Fretboard) domain.Verdict
}

// Planner computes a sequence of toggles that solves spec from an empty board.
type Planner interface {
	Plan(spec domain.PuzzleSpec) []domain.Action
}

// Hinter returns the next corrective action for the current board.
type Hinter interface {
	Hint(spec domain.PuzzleSpec, b *domain.Fretboard) (domain.Hint, bool)
}

// Recorder receives session events, e.g. for metrics.
type Recorder interface {
	Toggle(kind domain.ActionKind)
	Submission(v domain.Verdict)
	ForcedSolve()
}
