package cli

import (
	"os"

	"github.com/spf13/cobra"

	"huelog/internal/system"
)

var (
	flagNoColor bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "huelog",
	Short: "huelog – colourized console logging from the shell",
	Long:  "huelog writes colour-coded, subject-tagged log lines and manages which subjects and severities are suppressed.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		system.SetVerbose(flagVerbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colour output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print diagnostic messages")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		system.Logger.Error(err)
		os.Exit(1)
	}
}
