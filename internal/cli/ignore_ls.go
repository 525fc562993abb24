package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cfg "huelog/internal/config"
)

func init() {
	ignoreCmd.AddCommand(ignoreLsCmd, ignoreAllCmd, ignoreEditCmd)
}

var ignoreLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the current suppression settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := cfg.Load()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "all subjects: %v\n", s.IgnoreAllSubjects)
		fmt.Fprintf(w, "subjects:     %s\n", listOrEmpty(s.IgnoredSubjects))
		fmt.Fprintf(w, "severities:   %s\n", listOrEmpty(s.IgnoredSeverities))
		return nil
	},
}

var ignoreAllCmd = &cobra.Command{
	Use:       "all on|off",
	Short:     "Toggle ignoring every subject",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var on bool
		switch strings.ToLower(args[0]) {
		case "on", "true", "yes":
			on = true
		case "off", "false", "no":
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		if err := cfg.SetIgnoreAll(on); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ ignore all subjects: %v\n", on)
		return nil
	},
}

func listOrEmpty(list []string) string {
	if len(list) == 0 {
		return "(none)"
	}
	return strings.Join(list, ", ")
}
