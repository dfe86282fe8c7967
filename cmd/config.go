package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/naclbox/internal/configs"
	"github.com/PolarWolf314/naclbox/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage naclbox configuration",
	Long: `Provides commands for managing the user configuration file.

Examples:
  # Write a default config.toml
  naclbox config init

  # Print the effective configuration, including .env and environment overrides
  naclbox config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a default config.toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.ConfigPath()
		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Failed("Config already exists at "+ui.Path.Sprint(path)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("Use "+ui.Flag.Sprint("--force")+" to overwrite it"))
			return nil
		}

		if err := configs.SaveConfig(configs.DefaultConfig()); err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}
		Logger.Infof("Wrote default config to %s", path)

		fmt.Fprintln(cmd.OutOrStdout(), ui.Succeeded("Config written to "+ui.Path.Sprint(path)))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := configs.GlobalConfig
		if config == nil {
			config = configs.DefaultConfig()
		}

		keyFile := config.Keys.KeyFile
		if keyFile == "" {
			keyFile = ui.Muted.Sprint("not set")
		} else {
			keyFile = ui.Path.Sprint(keyFile)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config file: %s\n", ui.Path.Sprint(configs.ConfigPath()))
		fmt.Fprintf(out, "hex output:  %s\n", ui.Highlight.Sprint(config.Output.Hex))
		fmt.Fprintf(out, "key file:    %s\n", keyFile)
		fmt.Fprintf(out, "extension:   %s\n", ui.Highlight.Sprint(config.Files.Extension))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

func resetConfigInitState() {
	configInitForce = false
}
