package cli

import (
	"context"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"huelog/internal/system"
	"huelog/internal/tail"
	"huelog/logger"
)

var (
	tailSeverity string
	tailSubject  string
)

func init() {
	tailCmd.Flags().StringVarP(&tailSeverity, "severity", "s", logger.Normal.String(), "severity for every followed line")
	tailCmd.Flags().StringVar(&tailSubject, "subject", "", "subject tag (defaults to the file name)")
	rootCmd.AddCommand(tailCmd)
}

var tailCmd = &cobra.Command{
	Use:   "tail <file>",
	Short: "Follow a file and log each new line",
	Long:  "Follow a file and write every line appended to it as a log line. Escape sequences already in the file are stripped. Stops on Ctrl-C.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sev, err := logger.ParseSeverity(tailSeverity)
		if err != nil {
			return err
		}
		subject := strings.TrimSpace(tailSubject)
		if subject == "" {
			subject = filepath.Base(args[0])
		}
		l, err := newLogger(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		f, err := tail.Open(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		system.Logger.Debug("following", "file", args[0], "subject", subject)
		return f.Run(ctx, func(line string) {
			if err := l.Log(sev, subject, ansi.Strip(line)); err != nil {
				system.Logger.Warn("write failed", "err", err)
			}
		})
	},
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
