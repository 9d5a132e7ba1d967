// Package render draws the fretboard and verdicts for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/guitarchords/internal/domain"
)

var (
	colorChord   = lipgloss.Color("#2CD7C7")
	colorFret    = lipgloss.Color("#F4D03F")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// Renderer holds styles bound to one output.
type Renderer struct {
	title   lipgloss.Style
	fret    lipgloss.Style
	broken  lipgloss.Style
	success lipgloss.Style
	errorS  lipgloss.Style
}

// New binds styles to w. With color off, styles render as plain text.
func New(w io.Writer, color bool) *Renderer {
	if !color {
		// not a terminal, so lipgloss falls back to the ASCII profile
		w = io.Discard
	}
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title:   r.NewStyle().Bold(true).Foreground(colorChord),
		fret:    r.NewStyle().Bold(true).Foreground(colorFret),
		broken:  r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		errorS:  r.NewStyle().Bold(true).Foreground(colorError),
	}
}

// Board draws the highest string on top, as in tablature. Each row shows
// the mute state ("x" muted, "|" open) and one cell per fret.
func (r *Renderer) Board(spec domain.PuzzleSpec, b domain.Fretboard) string {
	var sb strings.Builder
	sb.WriteString(r.title.Render(spec.ChordName()))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", 11))
	for f := 1; f <= domain.Frets; f++ {
		fmt.Fprintf(&sb, "%3d", f)
	}
	sb.WriteString("\n")

	for s := domain.Strings - 1; s >= 0; s-- {
		if s == b.Broken {
			row := fmt.Sprintf("%-9s ~ %s", domain.StringNames[s], strings.Repeat(" ~ ", domain.Frets))
			sb.WriteString(r.broken.Render(row))
			sb.WriteString("\n")
			continue
		}
		mark := "|"
		if b.Muted[s] {
			mark = "x"
		}
		fmt.Fprintf(&sb, "%-9s %s ", domain.StringNames[s], mark)
		for f := 0; f < domain.Frets; f++ {
			if b.Frets[f][s] {
				sb.WriteString(r.fret.Render(" o "))
			} else {
				sb.WriteString(" - ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Verdict renders the outcome of a submission.
func (r *Renderer) Verdict(spec domain.PuzzleSpec, v domain.Verdict) string {
	if v.Strike != nil {
		return r.errorS.Render("Strike. ") + v.Strike.Message(spec)
	}
	return r.success.Render("Beautiful.") + " You played " + v.Played.Names() + "."
}

// Disclosure renders the puzzle description shown at start.
func (r *Renderer) Disclosure(d domain.Disclosure) string {
	return fmt.Sprintf("Please play me a %s chord. The %s string is broken.",
		r.title.Render(d.ChordName), d.BrokenString)
}
