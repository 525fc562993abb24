package logger

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone is the colour set used for one severity.
type Tone struct {
	// Prefix chip
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor

	// Message text
	Message lipgloss.TerminalColor
}

// Palette maps each severity to its Tone. Severities missing from the map
// fall back to DefaultPalette.
type Palette map[Severity]Tone

// Basic ANSI colours so output matches whatever theme the terminal uses.
var (
	ansiBlack  = lipgloss.Color("0")
	ansiRed    = lipgloss.Color("1")
	ansiYellow = lipgloss.Color("3")
	ansiBlue   = lipgloss.Color("4")
)

// DefaultPalette is blue for NORMAL, yellow for WARNING and red for ERROR,
// with black text on the prefix chip.
func DefaultPalette() Palette {
	return Palette{
		Normal:  {Background: ansiBlue, Foreground: ansiBlack, Message: ansiBlue},
		Warning: {Background: ansiYellow, Foreground: ansiBlack, Message: ansiYellow},
		Error:   {Background: ansiRed, Foreground: ansiBlack, Message: ansiRed},
	}
}

// Tone returns the tone for s.
func (p Palette) Tone(s Severity) Tone {
	if t, ok := p[s]; ok {
		return t
	}
	return DefaultPalette()[s]
}

// prefixStyle returns the chip style for the subject/severity/elapsed prefix.
func prefixStyle(r *lipgloss.Renderer, t Tone) lipgloss.Style {
	st := r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
	if t.Background != nil {
		st = st.Background(t.Background)
	}
	if t.Foreground != nil {
		st = st.Foreground(t.Foreground)
	}
	return st
}

// messageStyle returns the foreground-only style for message text.
func messageStyle(r *lipgloss.Renderer, t Tone) lipgloss.Style {
	st := r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
	if t.Message != nil {
		st = st.Foreground(t.Message)
	}
	return st
}

// renderVerbatim colours s line by line. Rendering each line inline keeps
// lipgloss from padding lines to a common width or rewriting CRLF.
func renderVerbatim(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = st.Render(ln)
		}
	}
	return strings.Join(lines, "\n")
}
