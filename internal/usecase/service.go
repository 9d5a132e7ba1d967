package usecase

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"svw.info/guitarchords/internal/command"
	"svw.info/guitarchords/internal/domain"
	"svw.info/guitarchords/internal/ports"
)

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrSolved is returned by operations attempted after the puzzle was solved.
	ErrSolved = errors.New("puzzle already solved")
)

// Session is one puzzle attempt: a fixed spec and the board the player is
// editing. It is not safe for concurrent use.
type Session struct {
	ID        string
	Spec      domain.PuzzleSpec
	Validator ports.Validator
	Planner   ports.Planner
	Hinter    ports.Hinter
	Recorder  ports.Recorder // optional
	Logger    *slog.Logger

	board   *domain.Fretboard
	solved  bool
	last    domain.Verdict
	strikes int
}

func NewSession(spec domain.PuzzleSpec, v ports.Validator, p ports.Planner, h ports.Hinter, rec ports.Recorder, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		ID:        uuid.NewString(),
		Spec:      spec,
		Validator: v,
		Planner:   p,
		Hinter:    h,
		Recorder:  rec,
		board:     domain.NewFretboard(spec.Broken),
	}
	s.Logger = logger.With("session", s.ID)
	d := spec.Disclosure()
	s.Logger.Info("please play me a chord", "chord", d.ChordName)
	s.Logger.Info("expected notes", "notes", d.ExpectedNotes)
	s.Logger.Info("broken string", "string", d.BrokenString)
	return s
}

// Board returns a snapshot of the current board.
func (s *Session) Board() domain.Fretboard { return *s.board }

func (s *Session) Solved() bool { return s.solved }

func (s *Session) Strikes() int { return s.strikes }

func (s *Session) Disclosure() domain.Disclosure { return s.Spec.Disclosure() }

// Apply performs one toggle. It reports false when the toggle was ignored:
// the puzzle is solved, the position is on the broken string, or it is out
// of range.
func (s *Session) Apply(a domain.Action) bool {
	if s.solved || !s.board.Apply(a) {
		return false
	}
	if s.Recorder != nil {
		s.Recorder.Toggle(a.Kind)
	}
	s.Logger.Debug("toggle", "action", a.String())
	return true
}

func (s *Session) ToggleFret(fret, str int) bool { return s.Apply(domain.ToggleFret(fret, str)) }

func (s *Session) ToggleMute(str int) bool { return s.Apply(domain.ToggleMute(str)) }

// PressFret toggles the fret button at index, numbered fret-major.
func (s *Session) PressFret(index int) bool {
	if index < 0 || index >= domain.FretButtons {
		return false
	}
	f, str := domain.FretButton(index)
	return s.ToggleFret(f, str)
}

// PressMute toggles the mute button at index.
func (s *Session) PressMute(index int) bool { return s.ToggleMute(index) }

// Submit validates the current board. A strike leaves the board as it is;
// success locks the session.
func (s *Session) Submit() (domain.Verdict, error) {
	if s.Validator == nil {
		return domain.Verdict{}, errNotConfigured
	}
	if s.solved {
		return s.last, ErrSolved
	}
	v := s.Validator.Validate(s.Spec, s.board)
	s.last = v
	if s.Recorder != nil {
		s.Recorder.Submission(v)
	}
	if v.Strike != nil {
		s.strikes++
		if v.Strike.Reason == domain.ChordIncomplete {
			s.Logger.Info("played notes", "notes", v.Played.Names())
		}
		s.Logger.Warn("strike", "reason", v.Strike.Reason.String(), "msg", v.Strike.Message(s.Spec), "strikes", s.strikes)
		return v, nil
	}
	s.solved = true
	s.Logger.Info("played notes", "notes", v.Played.Names())
	s.Logger.Info("beautiful", "chord", s.Spec.ChordName())
	return v, nil
}

// Execute parses and runs one text command. submitted reports whether the
// command asked for a submission, in which case v holds its verdict.
// Malformed commands change nothing.
func (s *Session) Execute(text string) (v domain.Verdict, submitted bool, err error) {
	if s.solved {
		return s.last, false, ErrSolved
	}
	cmd, err := command.Parse(text, s.board)
	if err != nil {
		s.Logger.Debug("command rejected", "text", text, "err", err)
		return domain.Verdict{}, false, err
	}
	for _, a := range cmd.Actions {
		s.Apply(a)
	}
	if !cmd.Submit {
		return domain.Verdict{}, false, nil
	}
	v, err = s.Submit()
	return v, true, err
}

// ForceSolveActions returns the toggles that clear the board followed by
// the planner's fingering. Applying them and submitting always succeeds.
func (s *Session) ForceSolveActions() ([]domain.Action, error) {
	if s.Planner == nil {
		return nil, errNotConfigured
	}
	if s.solved {
		return nil, ErrSolved
	}
	if s.Recorder != nil {
		s.Recorder.ForcedSolve()
	}
	var acts []domain.Action
	for str := 0; str < domain.Strings; str++ {
		if s.board.Muted[str] {
			acts = append(acts, domain.ToggleMute(str))
		}
	}
	for i := 0; i < domain.FretButtons; i++ {
		f, str := domain.FretButton(i)
		if s.board.Frets[f][str] {
			acts = append(acts, domain.ToggleFret(f, str))
		}
	}
	plan := s.Planner.Plan(s.Spec)
	s.Logger.Debug("forced solve", "clear", len(acts), "plan", len(plan))
	return append(acts, plan...), nil
}

func (s *Session) Hint() (domain.Hint, bool, error) {
	if s.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	if s.solved {
		return domain.Hint{}, false, ErrSolved
	}
	h, ok := s.Hinter.Hint(s.Spec, s.board)
	return h, ok, nil
}
