package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"huelog/internal/store"
	"huelog/logger"
)

// Settings is the persisted suppression configuration.
type Settings struct {
	IgnoredSubjects   []string `json:"ignored_subjects,omitempty" jsonschema:"description=Subjects whose messages are dropped"`
	IgnoredSeverities []string `json:"ignored_severities,omitempty" jsonschema:"description=Severities whose messages are dropped,enum=NORMAL,enum=WARNING,enum=ERROR"`
	IgnoreAllSubjects bool     `json:"ignore_all_subjects,omitempty" jsonschema:"description=Drop every message"`
	NoColor           bool     `json:"no_color,omitempty" jsonschema:"description=Never emit colour escape sequences"`
}

// Load reads config.json. A missing file yields zero Settings.
func Load() (Settings, error) {
	p, err := Path()
	if err != nil {
		return Settings{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", p, err)
	}
	return s.normalize(), nil
}

// Save writes s to config.json, creating the directory if needed.
// Invalid severities are rejected before anything is written.
func Save(s Settings) error {
	s = s.normalize()
	if err := s.Validate(); err != nil {
		return err
	}
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(b, '\n'), 0o644)
}

func (s Settings) normalize() Settings {
	s.IgnoredSubjects = store.Normalize(s.IgnoredSubjects)
	sev := make([]string, 0, len(s.IgnoredSeverities))
	for _, v := range s.IgnoredSeverities {
		sev = append(sev, strings.ToUpper(v))
	}
	s.IgnoredSeverities = store.Normalize(sev)
	return s
}

// Validate checks that every ignored severity is a known one.
func (s Settings) Validate() error {
	for _, v := range s.IgnoredSeverities {
		if _, err := logger.ParseSeverity(v); err != nil {
			return fmt.Errorf("ignored_severities: %w", err)
		}
	}
	return nil
}

// Options converts s into logger options.
func (s Settings) Options() ([]logger.Option, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts := []logger.Option{logger.IgnoreSubjects(s.IgnoredSubjects...)}
	sevs := make([]logger.Severity, 0, len(s.IgnoredSeverities))
	for _, v := range s.IgnoredSeverities {
		sev, _ := logger.ParseSeverity(v)
		sevs = append(sevs, sev)
	}
	opts = append(opts, logger.IgnoreSeverities(sevs...))
	if s.IgnoreAllSubjects {
		opts = append(opts, logger.IgnoreAllSubjects())
	}
	if s.NoColor {
		opts = append(opts, logger.WithoutColor())
	}
	return opts, nil
}

// AddSubjects adds subjects to the ignore list and saves.
func AddSubjects(names []string) (added, existed []string, err error) {
	return update(func(s *Settings) ([]string, []string) {
		var a, e []string
		s.IgnoredSubjects, a, e = store.Union(s.IgnoredSubjects, names)
		return a, e
	})
}

// RemoveSubjects removes subjects from the ignore list and saves.
func RemoveSubjects(names []string) (removed, missing []string, err error) {
	return update(func(s *Settings) ([]string, []string) {
		var r, m []string
		s.IgnoredSubjects, r, m = store.Difference(s.IgnoredSubjects, names)
		return r, m
	})
}

// AddSeverities adds severities to the ignore list and saves. Tokens are
// validated first; nothing is saved when one is invalid.
func AddSeverities(tokens []string) (added, existed []string, err error) {
	canon, err := canonicalSeverities(tokens)
	if err != nil {
		return nil, nil, err
	}
	return update(func(s *Settings) ([]string, []string) {
		var a, e []string
		s.IgnoredSeverities, a, e = store.Union(s.IgnoredSeverities, canon)
		return a, e
	})
}

// RemoveSeverities removes severities from the ignore list and saves.
func RemoveSeverities(tokens []string) (removed, missing []string, err error) {
	canon, err := canonicalSeverities(tokens)
	if err != nil {
		return nil, nil, err
	}
	return update(func(s *Settings) ([]string, []string) {
		var r, m []string
		s.IgnoredSeverities, r, m = store.Difference(s.IgnoredSeverities, canon)
		return r, m
	})
}

// SetIgnoreAll toggles ignore_all_subjects and saves.
func SetIgnoreAll(on bool) error {
	s, err := Load()
	if err != nil {
		return err
	}
	s.IgnoreAllSubjects = on
	return Save(s)
}

func canonicalSeverities(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if strings.TrimSpace(t) == "" {
			continue
		}
		sev, err := logger.ParseSeverity(t)
		if err != nil {
			return nil, err
		}
		out = append(out, sev.String())
	}
	return out, nil
}

func update(fn func(*Settings) ([]string, []string)) ([]string, []string, error) {
	s, err := Load()
	if err != nil {
		return nil, nil, err
	}
	a, b := fn(&s)
	if err := Save(s); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
