package generator

import (
	"math/rand"
	"time"

	"svw.info/guitarchords/internal/domain"
	"svw.info/guitarchords/internal/ports"
)

// Generate picks a broken string, a root with one of its spellings, and a
// chord quality, each uniformly. The result depends only on rng.
func (g *ChordGenerator) Generate(rng *rand.Rand) (domain.PuzzleSpec, ports.Stats) {
	start := time.Now()
	broken := rng.Intn(domain.Strings)

	root := domain.PitchClass(rng.Intn(domain.PitchClasses))
	names := root.Spellings()
	rootName := names[rng.Intn(len(names))]

	catalog := g.Catalog
	if len(catalog) == 0 {
		catalog = domain.Catalog
	}
	q := catalog[rng.Intn(len(catalog))]

	spec := domain.PuzzleSpec{
		Root:     root,
		RootName: rootName,
		Quality:  q,
		Broken:   broken,
	}
	return spec, ports.Stats{Duration: time.Since(start)}
}
