package logger

import (
	"fmt"
	"strings"
)

// Severity classifies a message. Only Normal, Warning and Error exist.
type Severity int

const (
	Normal Severity = iota
	Warning
	Error
)

var severityNames = [...]string{
	Normal:  "NORMAL",
	Warning: "WARNING",
	Error:   "ERROR",
}

// Severities returns every valid severity, least severe first.
func Severities() []Severity {
	return []Severity{Normal, Warning, Error}
}

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	return s >= Normal && s <= Error
}

func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity maps a token such as "WARNING" (any case) to its Severity.
func ParseSeverity(token string) (Severity, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	for _, s := range Severities() {
		if severityNames[s] == t {
			return s, nil
		}
	}
	return Normal, &InvalidSeverityError{Value: token}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &InvalidSeverityError{Value: s.String()}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
