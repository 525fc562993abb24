package testutil

import "testing"

// IsolateConfig points the user config and home directories at a fresh temp
// dir for the duration of the test and returns it.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp) // fallback, and macOS UserConfigDir base
	t.Setenv("AppData", tmp)
	return tmp
}
