package logger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"NORMAL", Normal, false},
		{"warning", Warning, false},
		{" Error ", Error, false},
		{"CRITICAL", Normal, true},
		{"", Normal, true},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidSeverity, "ParseSeverity(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseSeverity(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "NORMAL", Normal.String())
	assert.Equal(t, "WARNING", Warning.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "Severity(-1)", Severity(-1).String())
	assert.False(t, Severity(3).Valid())
}

func TestSeverity_JSON(t *testing.T) {
	b, err := json.Marshal([]Severity{Warning, Error})
	require.NoError(t, err)
	assert.JSONEq(t, `["WARNING","ERROR"]`, string(b))

	var got []Severity
	require.NoError(t, json.Unmarshal([]byte(`["normal","ERROR"]`), &got))
	assert.Equal(t, []Severity{Normal, Error}, got)

	assert.ErrorIs(t, json.Unmarshal([]byte(`["LOUD"]`), &got), ErrInvalidSeverity)
}
