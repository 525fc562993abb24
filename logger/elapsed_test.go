package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, ""},
		{999 * time.Millisecond, ""},
		{5 * time.Second, "5s"},
		{5*time.Second + 900*time.Millisecond, "5s"},
		{60 * time.Second, "1m"},
		{65 * time.Second, "1m5s"},
		{3*time.Minute + 5*time.Second, "3m5s"},
		{3600 * time.Second, "1h"},
		{3605 * time.Second, "1h5s"},
		{3665 * time.Second, "1h1m5s"},
		{26*time.Hour + 10*time.Second, "26h10s"},
		{-time.Second, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.in), "FormatElapsed(%v)", tt.in)
	}
}
