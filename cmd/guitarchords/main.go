package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"svw.info/guitarchords/internal/config"
	"svw.info/guitarchords/internal/domain"
	"svw.info/guitarchords/internal/generator"
	"svw.info/guitarchords/internal/hint"
	"svw.info/guitarchords/internal/metrics"
	"svw.info/guitarchords/internal/ports"
	"svw.info/guitarchords/internal/render"
	"svw.info/guitarchords/internal/solver"
	"svw.info/guitarchords/internal/usecase"
	"svw.info/guitarchords/internal/validator"
)

// app carries what every subcommand needs, filled in by the root pre-run.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		cfgPath  string
		levelStr string
		seed     int64
		delay    time.Duration
		noColor  bool
	)

	root := &cobra.Command{
		Use:          "guitarchords",
		Short:        "Play a chord on a guitar with one broken string",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = levelStr
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("delay") {
				cfg.ActionDelay = delay
			}
			if noColor {
				cfg.Color = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			lvl, _ := config.ParseLevel(cfg.LogLevel)
			a.cfg = cfg
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			a.registry = prometheus.NewRegistry()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	pf.StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	pf.Int64Var(&seed, "seed", 0, "random seed for the puzzle (0 = time based)")
	pf.DurationVar(&delay, "delay", 100*time.Millisecond, "pause between replayed actions")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(newPlayCmd(a), newSolveCmd(a), newChordsCmd())
	return root
}

// newSession wires generator → rules → session.
func (a *app) newSession() *usecase.Session {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("new puzzle", "seed", seed)

	var g ports.Generator = generator.NewChordGenerator()
	spec, st := g.Generate(rand.New(rand.NewSource(seed)))
	a.logger.Debug("generated", "chord", spec.ChordName(), "duration", st.Duration)

	v := validator.New()
	p := solver.NewPlanner()
	h := hint.NewCorrective(p, v)
	m := metrics.New(a.registry)
	return usecase.NewSession(spec, v, p, h, m, a.logger)
}

func (a *app) renderer(w io.Writer) *render.Renderer { return render.New(w, a.cfg.Color) }

// logMetrics writes counter totals at debug level.
func (a *app) logMetrics() {
	if a.registry == nil || a.logger == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Debug("gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			a.logger.Debug("metric", attrs...)
		}
	}
}

func newChordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chords",
		Short: "List the chord qualities a puzzle can ask for, rooted on C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), domain.CatalogTable())
			return err
		},
	}
}
