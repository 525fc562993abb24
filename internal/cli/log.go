package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"huelog/logger"
)

var (
	logSeverity string
	logSubject  string
)

func init() {
	logCmd.Flags().StringVarP(&logSeverity, "severity", "s", logger.Normal.String(), "NORMAL, WARNING or ERROR")
	logCmd.Flags().StringVar(&logSubject, "subject", "", "subject tag used for display and suppression")
	warningCmd.Flags().StringVar(&logSubject, "subject", "", "subject tag used for display and suppression")
	errorCmd.Flags().StringVar(&logSubject, "subject", "", "subject tag used for display and suppression")
	rootCmd.AddCommand(logCmd, warningCmd, errorCmd)
}

var logCmd = &cobra.Command{
	Use:   "log <message>...",
	Short: "Write one log line",
	Long:  "Write one colour-coded log line. Arguments are joined with spaces to form the message.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sev, err := logger.ParseSeverity(logSeverity)
		if err != nil {
			return err
		}
		return writeLine(cmd, sev, args)
	},
}

var warningCmd = &cobra.Command{
	Use:   "warning <message>...",
	Short: "Write one WARNING line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeLine(cmd, logger.Warning, args)
	},
}

var errorCmd = &cobra.Command{
	Use:   "error <message>...",
	Short: "Write one ERROR line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeLine(cmd, logger.Error, args)
	},
}

func writeLine(cmd *cobra.Command, sev logger.Severity, args []string) error {
	l, err := newLogger(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return l.Log(sev, strings.TrimSpace(logSubject), strings.Join(args, " "))
}
