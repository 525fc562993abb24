// Package logger is a small colourized console logger. Each line carries an
// optional subject, a severity and the time elapsed since the Logger was
// created, and can be suppressed by subject or severity.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Logger writes colour-coded lines to a single output. Its configuration is
// fixed by New; only the write itself is guarded so concurrent lines do not
// interleave.
type Logger struct {
	out      io.Writer
	now      func() time.Time
	initTime time.Time

	ignoredSubjects   map[string]struct{}
	ignoreAllSubjects bool
	ignoredSeverities map[Severity]struct{}

	renderer *lipgloss.Renderer
	noColor  bool
	palette  Palette
	prefix   map[Severity]lipgloss.Style
	message  map[Severity]lipgloss.Style

	mu sync.Mutex
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// IgnoreSubjects drops every message tagged with one of subjects.
func IgnoreSubjects(subjects ...string) Option {
	return func(l *Logger) {
		for _, s := range subjects {
			l.ignoredSubjects[s] = struct{}{}
		}
	}
}

// IgnoreAllSubjects drops every message, tagged or not.
func IgnoreAllSubjects() Option {
	return func(l *Logger) { l.ignoreAllSubjects = true }
}

// IgnoreSeverities drops every message with one of severities. Invalid
// values are skipped since no message can carry them.
func IgnoreSeverities(severities ...Severity) Option {
	return func(l *Logger) {
		for _, s := range severities {
			if s.Valid() {
				l.ignoredSeverities[s] = struct{}{}
			}
		}
	}
}

// WithPalette overrides the colours per severity.
func WithPalette(p Palette) Option {
	return func(l *Logger) { l.palette = p }
}

// WithRenderer sets the lipgloss renderer used for styling. By default a
// renderer bound to the output is used, which only emits colour when the
// output is a colour-capable terminal.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(l *Logger) { l.renderer = r }
}

// WithoutColor disables all escape sequences.
func WithoutColor() Option {
	return func(l *Logger) { l.noColor = true }
}

// New creates a Logger and records the current instant as the origin for
// elapsed times.
func New(opts ...Option) *Logger {
	l := &Logger{
		out:               os.Stdout,
		now:               time.Now,
		ignoredSubjects:   map[string]struct{}{},
		ignoredSeverities: map[Severity]struct{}{},
		palette:           DefaultPalette(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.renderer == nil || l.noColor {
		l.renderer = lipgloss.NewRenderer(l.out)
	}
	if l.noColor {
		l.renderer.SetColorProfile(termenv.Ascii)
	}
	l.prefix = make(map[Severity]lipgloss.Style, len(severityNames))
	l.message = make(map[Severity]lipgloss.Style, len(severityNames))
	for _, s := range Severities() {
		t := l.palette.Tone(s)
		l.prefix[s] = prefixStyle(l.renderer, t)
		l.message[s] = messageStyle(l.renderer, t)
	}
	l.initTime = l.now()
	return l
}

// Elapsed returns the time since the Logger was created, never negative.
func (l *Logger) Elapsed() time.Duration {
	d := l.now().Sub(l.initTime)
	if d < 0 {
		return 0
	}
	return d
}

// Suppressed reports whether a message with the given severity and subject
// would be dropped. An empty subject means the message has none.
func (l *Logger) Suppressed(severity Severity, subject string) bool {
	if l.ignoreAllSubjects {
		return true
	}
	if subject != "" {
		if _, ok := l.ignoredSubjects[subject]; ok {
			return true
		}
	}
	_, ok := l.ignoredSeverities[severity]
	return ok
}

// Log writes message with the given severity and optional subject. It fails
// with *InvalidSeverityError before writing anything when severity is not one
// of Normal, Warning or Error. Suppressed messages are dropped without error.
func (l *Logger) Log(severity Severity, subject, message string) error {
	if !severity.Valid() {
		return &InvalidSeverityError{Value: severity.String()}
	}
	if l.Suppressed(severity, subject) {
		return nil
	}

	head := severity.String() + " @ " + FormatElapsed(l.Elapsed())
	if subject != "" {
		head = subject + " " + head
	}
	line := renderVerbatim(l.prefix[severity], head) + " " + renderVerbatim(l.message[severity], message) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := io.WriteString(l.out, line)
	return err
}

// LogString is Log with the severity given as a token such as "WARNING".
func (l *Logger) LogString(severity, subject, message string) error {
	sev, err := ParseSeverity(severity)
	if err != nil {
		return err
	}
	return l.Log(sev, subject, message)
}

// Normal logs message with severity NORMAL.
func (l *Logger) Normal(subject, message string) {
	_ = l.Log(Normal, subject, message)
}

// Warning logs message with severity WARNING.
func (l *Logger) Warning(subject, message string) {
	_ = l.Log(Warning, subject, message)
}

// Error logs message with severity ERROR.
func (l *Logger) Error(subject, message string) {
	_ = l.Log(Error, subject, message)
}
