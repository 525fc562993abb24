package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "huelog/internal/config"
	"huelog/internal/system"
)

func init() {
	configCmd.AddCommand(configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show the config file location",
	Long:  "Create the huelog config directory and config.json when missing (normalizing an existing one), then print its path.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.Path()
		if err != nil {
			return err
		}
		_, statErr := os.Stat(p)
		existed := statErr == nil
		s, err := cfg.Load()
		if err != nil {
			return err
		}
		if err := cfg.Save(s); err != nil {
			return err
		}
		system.Logger.Debug("config saved", "path", p, "existed", existed)
		if existed {
			fmt.Fprintf(cmd.OutOrStdout(), "• config.json normalized: %s\n", p)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ config.json created: %s\n", p)
		}
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.MarshalSchema(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
