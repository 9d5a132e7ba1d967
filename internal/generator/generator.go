package generator

import "svw.info/guitarchords/internal/domain"

// ChordGenerator draws puzzles from a chord catalog.
type ChordGenerator struct {
	Catalog []domain.ChordQuality
}

// NewChordGenerator wires a generator over domain.Catalog.
func NewChordGenerator() *ChordGenerator {
	return &ChordGenerator{Catalog: domain.Catalog}
}

// Note: The Generate method is implemented in random.go.
