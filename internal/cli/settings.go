package cli

import (
	"github.com/spf13/cobra"

	"huelog/internal/settings"
)

var ignoreEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit suppression settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
