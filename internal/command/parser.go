// Package command turns typed commands into board toggles.
//
// Two forms are understood, case-insensitively:
//
//	mute | reset           mute every string and release every fret
//	play|submit t0 ... t5  set each string, lowest first, then submit
//
// A play token is "x" for a muted string or a fret number 0-13, where 0
// leaves the string open. Tokens may be separated by spaces, commas or semicolons.
// Anything else is rejected without producing any action.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"svw.info/guitarchords/internal/domain"
)

var (
	ErrUnrecognized = errors.New("unrecognized command")
	ErrTokenCount   = errors.New("expected one token per string")
	ErrBadToken     = errors.New("invalid string token")
)

var (
	resetRe = regexp.MustCompile(`(?i)^\s*(?:mute|reset)\s*$`)
	playRe  = regexp.MustCompile(`(?i)^\s*(?:play|submit)\s*([x,;\d\s]+?)\s*$`)
)

// Command is the parsed form of one line of input.
type Command struct {
	Actions []domain.Action
	Submit  bool
}

// Parse interprets text against the current board. The returned actions,
// applied in order to b, reach the requested state.
func Parse(text string, b *domain.Fretboard) (Command, error) {
	if resetRe.MatchString(text) {
		var acts []domain.Action
		for s := 0; s < domain.Strings; s++ {
			if s != b.Broken && !b.Muted[s] {
				acts = append(acts, domain.ToggleMute(s))
			}
		}
		return Command{Actions: append(acts, releaseFrets(b)...)}, nil
	}

	m := playRe.FindStringSubmatch(text)
	if m == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnrecognized, strings.TrimSpace(text))
	}
	tokens := strings.FieldsFunc(m[1], func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(tokens) != domain.Strings {
		return Command{}, fmt.Errorf("%w: got %d, want %d", ErrTokenCount, len(tokens), domain.Strings)
	}

	var tail []domain.Action
	for s, tok := range tokens {
		if strings.EqualFold(tok, "x") {
			tail = append(tail, domain.ToggleMute(s))
			continue
		}
		fret, err := strconv.Atoi(tok)
		if err != nil || fret < 0 || fret > domain.Frets {
			return Command{}, fmt.Errorf("%w: %q on the %s string", ErrBadToken, tok, domain.StringNames[s])
		}
		if fret != 0 {
			tail = append(tail, domain.ToggleFret(fret-1, s))
		}
	}

	var acts []domain.Action
	for s := 0; s < domain.Strings; s++ {
		if b.Muted[s] {
			acts = append(acts, domain.ToggleMute(s))
		}
	}
	acts = append(acts, releaseFrets(b)...)
	return Command{Actions: append(acts, tail...), Submit: true}, nil
}

// releaseFrets lists a toggle for every engaged fret, in button order.
func releaseFrets(b *domain.Fretboard) []domain.Action {
	var out []domain.Action
	for i := 0; i < domain.FretButtons; i++ {
		f, s := domain.FretButton(i)
		if b.Frets[f][s] {
			out = append(out, domain.ToggleFret(f, s))
		}
	}
	return out
}
