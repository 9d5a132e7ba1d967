package autoplay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"svw.info/guitarchords/internal/domain"
	"svw.info/guitarchords/internal/solver"
	"svw.info/guitarchords/internal/usecase"
	"svw.info/guitarchords/internal/validator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSession() *usecase.Session {
	q, _ := domain.QualityByName("m7")
	spec := domain.PuzzleSpec{Root: 9, RootName: "A", Quality: q, Broken: 3}
	return usecase.NewSession(spec, validator.New(), solver.NewPlanner(), nil, nil, nil)
}

func TestRunSolvesWithPacing(t *testing.T) {
	s := newSession()
	s.ToggleMute(1)
	s.ToggleFret(4, 2)
	acts, err := s.ForceSolveActions()
	require.NoError(t, err)

	p := New(2 * time.Millisecond)
	var steps []int
	p.OnStep = func(i int, a domain.Action, applied bool) {
		assert.True(t, applied, "step %d %v", i, a)
		steps = append(steps, i)
	}
	start := time.Now()
	v, err := p.Run(context.Background(), s, acts)
	require.NoError(t, err)
	assert.True(t, v.Solved())
	assert.True(t, s.Solved())
	assert.Len(t, steps, len(acts))
	// burst of one: every wait after the first costs a full delay
	assert.GreaterOrEqual(t, time.Since(start), time.Duration(len(acts)-1)*2*time.Millisecond)
}

func TestRunZeroDelay(t *testing.T) {
	s := newSession()
	acts, err := s.ForceSolveActions()
	require.NoError(t, err)
	v, err := New(0).Run(context.Background(), s, acts)
	require.NoError(t, err)
	assert.True(t, v.Solved())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newSession()
	acts, err := s.ForceSolveActions()
	require.NoError(t, err)
	require.Greater(t, len(acts), 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := New(time.Millisecond)
	applied := 0
	p.OnStep = func(i int, _ domain.Action, _ bool) {
		applied++
		if i == 1 {
			cancel()
		}
	}
	_, err = p.Run(ctx, s, acts)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, applied)
	assert.False(t, s.Solved())
	assert.Equal(t, 0, s.Strikes())
}
