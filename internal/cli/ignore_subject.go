package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "huelog/internal/config"
)

func init() {
	ignoreSubjectCmd.AddCommand(ignoreSubjectAddCmd, ignoreSubjectRemoveCmd)
}

var ignoreSubjectAddCmd = &cobra.Command{
	Use:   "add <subject>...",
	Short: "Ignore subjects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cleanArgs(args)
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no valid subject given")
			return nil
		}
		added, existed, err := cfg.AddSubjects(items)
		if err != nil {
			return err
		}
		reportChange(cmd.OutOrStdout(), added, existed, "ignored", "already ignored")
		return nil
	},
}

var ignoreSubjectRemoveCmd = &cobra.Command{
	Use:     "remove <subject>...",
	Aliases: []string{"rm"},
	Short:   "Stop ignoring subjects",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cleanArgs(args)
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no valid subject given")
			return nil
		}
		removed, missing, err := cfg.RemoveSubjects(items)
		if err != nil {
			return err
		}
		reportChange(cmd.OutOrStdout(), removed, missing, "removed", "not ignored")
		return nil
	},
}
