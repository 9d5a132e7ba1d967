// Package autoplay replays a list of toggles against a session at a fixed
// pace, so a forced solve can be watched step by step.
package autoplay

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"svw.info/guitarchords/internal/domain"
)

// Target is what the player drives; *usecase.Session satisfies it.
type Target interface {
	Apply(a domain.Action) bool
	Submit() (domain.Verdict, error)
}

// Player applies actions one at a time, waiting Delay between them.
type Player struct {
	Delay time.Duration
	// OnStep, if set, is called after each action with its index and
	// whether the target applied it.
	OnStep func(i int, a domain.Action, applied bool)
}

func New(delay time.Duration) *Player { return &Player{Delay: delay} }

// Run applies actions in order and then submits. It stops early, without
// submitting, when ctx is done.
func (p *Player) Run(ctx context.Context, t Target, actions []domain.Action) (domain.Verdict, error) {
	limit := rate.Inf
	if p.Delay > 0 {
		limit = rate.Every(p.Delay)
	}
	lim := rate.NewLimiter(limit, 1)

	for i, a := range actions {
		if err := lim.Wait(ctx); err != nil {
			return domain.Verdict{}, fmt.Errorf("replay stopped at step %d: %w", i, err)
		}
		applied := t.Apply(a)
		if p.OnStep != nil {
			p.OnStep(i, a, applied)
		}
	}
	if err := lim.Wait(ctx); err != nil {
		return domain.Verdict{}, fmt.Errorf("replay stopped before submit: %w", err)
	}
	return t.Submit()
}
