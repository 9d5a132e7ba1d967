package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/guitarchords/internal/autoplay"
	"svw.info/guitarchords/internal/domain"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Generate a puzzle and watch it being solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := a.newSession()
			r := a.renderer(out)
			fmt.Fprintln(out, r.Disclosure(s.Disclosure()))

			acts, err := s.ForceSolveActions()
			if err != nil {
				return err
			}
			player := autoplay.New(a.cfg.ActionDelay)
			player.OnStep = func(i int, act domain.Action, applied bool) {
				fmt.Fprintf(out, "  %2d. %s\n", i+1, act)
			}
			v, err := player.Run(cmd.Context(), s, acts)
			if err != nil {
				return err
			}
			fmt.Fprint(out, r.Board(s.Spec, s.Board()))
			fmt.Fprintln(out, r.Verdict(s.Spec, v))
			if !v.Solved() {
				return fmt.Errorf("forced solve failed: %s", v.Strike.Message(s.Spec))
			}
			return nil
		},
	}
}
