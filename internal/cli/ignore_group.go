package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ignoreCmd is a group command for the suppression settings in config.json.
var ignoreCmd = &cobra.Command{
	Use:   "ignore",
	Short: "Manage suppressed subjects and severities",
	Long:  "Add, remove and list the subjects and severities whose messages are dropped.",
}

var ignoreSubjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage ignored subjects",
}

var ignoreSeverityCmd = &cobra.Command{
	Use:   "severity",
	Short: "Manage ignored severities",
}

func init() {
	ignoreCmd.AddCommand(ignoreSubjectCmd, ignoreSeverityCmd)
	rootCmd.AddCommand(ignoreCmd)
}

// cleanArgs trims args and drops empty ones.
func cleanArgs(args []string) []string {
	items := make([]string, 0, len(args))
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a != "" {
			items = append(items, a)
		}
	}
	return items
}

func reportChange(w io.Writer, done, skipped []string, doneVerb, skippedVerb string) {
	for _, s := range done {
		fmt.Fprintf(w, "✓ %s: %s\n", doneVerb, s)
	}
	for _, s := range skipped {
		fmt.Fprintf(w, "• %s: %s\n", skippedVerb, s)
	}
	if len(done) == 0 && len(skipped) == 0 {
		fmt.Fprintln(w, "no changes")
	}
}
