package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "huelog/internal/config"
	tu "huelog/internal/testutil"
	"huelog/logger"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logSeverity, logSubject = logger.Normal.String(), ""
	tailSeverity, tailSubject = logger.Normal.String(), ""
	flagNoColor, flagVerbose = false, false
	demoPause = time.Second

	var out bytes.Buffer
	rootCmd.SetContext(context.Background())
	tailCmd.SetContext(context.Background())
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// syncBuffer is a bytes.Buffer safe for a command writing from another goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLogCommand(t *testing.T) {
	tu.IsolateConfig(t)

	out, err := run(t, "log", "--subject", "net", "connection", "up")
	require.NoError(t, err)
	assert.Equal(t, "net NORMAL @  connection up\n", out)

	out, err = run(t, "log", "-s", "warning", "careful")
	require.NoError(t, err)
	assert.Equal(t, "WARNING @  careful\n", out)

	out, err = run(t, "error", "--subject", "db", "down")
	require.NoError(t, err)
	assert.Equal(t, "db ERROR @  down\n", out)
}

func TestLogCommand_InvalidSeverity(t *testing.T) {
	tu.IsolateConfig(t)

	out, err := run(t, "log", "--severity", "CRITICAL", "x")
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)
	assert.Empty(t, out)
}

func TestLogCommand_HonoursConfig(t *testing.T) {
	tu.IsolateConfig(t)

	_, err := run(t, "ignore", "subject", "add", "debug")
	require.NoError(t, err)
	_, err = run(t, "ignore", "severity", "add", "warning")
	require.NoError(t, err)

	out, err := run(t, "log", "--subject", "debug", "hidden")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "warning", "hidden")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "log", "--subject", "other", "x")
	require.NoError(t, err)
	assert.Equal(t, "other NORMAL @  x\n", out)

	_, err = run(t, "ignore", "all", "on")
	require.NoError(t, err)
	out, err = run(t, "error", "x")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestIgnoreCommands(t *testing.T) {
	tu.IsolateConfig(t)

	out, err := run(t, "ignore", "subject", "add", "a", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, "✓ ignored: a\n✓ ignored: b\n", out)

	out, err = run(t, "ignore", "subject", "rm", "a", "z")
	require.NoError(t, err)
	assert.Equal(t, "✓ removed: a\n• not ignored: z\n", out)

	_, err = run(t, "ignore", "severity", "add", "LOUD")
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)

	_, err = run(t, "ignore", "all", "maybe")
	assert.Error(t, err)

	out, err = run(t, "ignore", "ls")
	require.NoError(t, err)
	assert.Equal(t, "all subjects: false\nsubjects:     b\nseverities:   (none)\n", out)
}

func TestConfigCommands(t *testing.T) {
	tu.IsolateConfig(t)

	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	out, err = run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "normalized")

	s, err := cfg.Load()
	require.NoError(t, err)
	assert.Empty(t, s.IgnoredSubjects)

	out, err = run(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "ignored_severities")
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo", "--pause", "0s", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "portals NORMAL @ ")
	assert.Contains(t, out, "hi's WARNING @ ")
	assert.Contains(t, out, "ERROR @ ")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTailCommand(t *testing.T) {
	tu.IsolateConfig(t)
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("skipped\n"), 0o644))

	_, err := run(t, "tail", "--severity", "LOUD", path)
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)

	// run in the background; cobra keeps the subcommand's context from
	// earlier runs, so cancel through tailCmd itself
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out syncBuffer
	rootCmd.SetContext(ctx)
	tailCmd.SetContext(ctx)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"tail", "-s", "warning", path})
	done := make(chan error, 1)
	go func() { done <- rootCmd.Execute() }()

	// lines written before the file is opened are skipped, so keep appending
	require.Eventually(t, func() bool {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return false
		}
		_, _ = f.WriteString("hi \x1b[31mred\x1b[0m\n")
		_ = f.Close()
		return strings.Contains(out.String(), "\n")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "app.log WARNING @ "), line)
		assert.True(t, strings.HasSuffix(line, " hi red"), line)
		assert.NotContains(t, line, "\x1b")
	}
}
