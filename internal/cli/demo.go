package cli

import (
	"time"

	"github.com/spf13/cobra"

	"huelog/logger"
)

var demoPause time.Duration

func init() {
	demoCmd.Flags().DurationVar(&demoPause, "pause", time.Second, "pause between demo lines")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a few sample lines in every severity",
	RunE: func(cmd *cobra.Command, args []string) error {
		// config suppression does not apply to the demo
		opts := []logger.Option{logger.WithOutput(cmd.OutOrStdout())}
		if flagNoColor {
			opts = append(opts, logger.WithoutColor())
		}
		l := logger.New(opts...)
		time.Sleep(demoPause)
		l.Normal("portals", "Portal opened on Level 2")
		l.Warning("hi's", "hi")
		time.Sleep(demoPause)
		l.Error("", "Will stupid artists stop putting terrain over the cutoff height we've all agreed upon?")
		return nil
	},
}
