package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "huelog/internal/config"
)

func init() {
	ignoreSeverityCmd.AddCommand(ignoreSeverityAddCmd, ignoreSeverityRemoveCmd)
}

var ignoreSeverityAddCmd = &cobra.Command{
	Use:   "add <severity>...",
	Short: "Ignore severities (NORMAL, WARNING, ERROR)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cleanArgs(args)
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no valid severity given")
			return nil
		}
		added, existed, err := cfg.AddSeverities(items)
		if err != nil {
			return err
		}
		reportChange(cmd.OutOrStdout(), added, existed, "ignored", "already ignored")
		return nil
	},
}

var ignoreSeverityRemoveCmd = &cobra.Command{
	Use:     "remove <severity>...",
	Aliases: []string{"rm"},
	Short:   "Stop ignoring severities",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cleanArgs(args)
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no valid severity given")
			return nil
		}
		removed, missing, err := cfg.RemoveSeverities(items)
		if err != nil {
			return err
		}
		reportChange(cmd.OutOrStdout(), removed, missing, "removed", "not ignored")
		return nil
	},
}
