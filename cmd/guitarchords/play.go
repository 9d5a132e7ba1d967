package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/guitarchords/internal/autoplay"
	"svw.info/guitarchords/internal/domain"
	"svw.info/guitarchords/internal/render"
	"svw.info/guitarchords/internal/usecase"
)

const replHelp = `Commands:
  play x 3 2 0 1 0     set all strings, lowest first (x = mute, 0 = open, N = fret N), then strum
  mute | reset         mute every string and release every fret
  press fret N S       toggle fret N (1-13) on string S (1 = bass E ... 6 = treble E)
  press mute S         toggle the mute on string S
  strum                submit the board as it is
  show                 draw the board
  hint                 suggest one toggle
  solve                let the computer play it
  help | quit
`

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a puzzle interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.newSession()
			r := a.renderer(cmd.OutOrStdout())
			return repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s, r, autoplay.New(a.cfg.ActionDelay))
		},
	}
}

// repl reads one command per line until the puzzle is solved, the input
// ends, or the user quits.
func repl(ctx context.Context, in io.Reader, out io.Writer, s *usecase.Session, r *render.Renderer, player *autoplay.Player) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(out, r.Disclosure(s.Disclosure()))
	fmt.Fprint(out, r.Board(s.Spec, s.Board()))
	fmt.Fprint(out, "> ")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		done, err := step(ctx, out, line, s, r, player)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

// step handles one line. It reports done when the session should end.
func step(ctx context.Context, out io.Writer, line string, s *usecase.Session, r *render.Renderer, player *autoplay.Player) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(out, replHelp)
		return false, nil
	case "show":
		fmt.Fprint(out, r.Board(s.Spec, s.Board()))
		return false, nil
	case "hint":
		h, ok, err := s.Hint()
		if err != nil {
			return false, err
		}
		if !ok {
			fmt.Fprintln(out, "The board already plays the chord. Strum it.")
		} else {
			fmt.Fprintln(out, h.Message+".")
		}
		return false, nil
	case "press":
		if err := press(s, fields[1:]); err != nil {
			fmt.Fprintln(out, err)
			return false, nil
		}
		fmt.Fprint(out, r.Board(s.Spec, s.Board()))
		return false, nil
	case "strum":
		v, err := s.Submit()
		if err != nil {
			return false, err
		}
		return report(out, s, r, v), nil
	case "solve":
		acts, err := s.ForceSolveActions()
		if err != nil {
			return false, err
		}
		player.OnStep = func(i int, a domain.Action, applied bool) {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, a)
		}
		v, err := player.Run(ctx, s, acts)
		if err != nil {
			return false, err
		}
		return report(out, s, r, v), nil
	}

	v, submitted, err := s.Execute(line)
	if err != nil {
		if errors.Is(err, usecase.ErrSolved) {
			return true, nil
		}
		fmt.Fprintf(out, "%v. Type help for commands.\n", err)
		return false, nil
	}
	if !submitted {
		fmt.Fprint(out, r.Board(s.Spec, s.Board()))
		return false, nil
	}
	return report(out, s, r, v), nil
}

func report(out io.Writer, s *usecase.Session, r *render.Renderer, v domain.Verdict) bool {
	fmt.Fprint(out, r.Board(s.Spec, s.Board()))
	fmt.Fprintln(out, r.Verdict(s.Spec, v))
	if s.Solved() {
		fmt.Fprintf(out, "Solved with %d strike(s).\n", s.Strikes())
		return true
	}
	return false
}

var errPressUsage = errors.New("usage: press fret N S | press mute S")

func press(s *usecase.Session, args []string) error {
	if len(args) == 0 {
		return errPressUsage
	}
	nums := make([]int, 0, 2)
	for _, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return errPressUsage
		}
		nums = append(nums, n)
	}

	var applied bool
	switch {
	case args[0] == "fret" && len(nums) == 2:
		if nums[0] < 1 || nums[0] > domain.Frets || nums[1] < 1 || nums[1] > domain.Strings {
			return errPressUsage
		}
		applied = s.ToggleFret(nums[0]-1, nums[1]-1)
	case args[0] == "mute" && len(nums) == 1:
		if nums[0] < 1 || nums[0] > domain.Strings {
			return errPressUsage
		}
		applied = s.ToggleMute(nums[0] - 1)
	default:
		return errPressUsage
	}
	if !applied {
		return fmt.Errorf("the %s string is broken", domain.StringNames[s.Spec.Broken])
	}
	return nil
}
