package cmd

import (
	"fmt"

	"github.com/PolarWolf314/naclbox/internal/configs"
	logger "github.com/PolarWolf314/naclbox/internal/logging"
	"github.com/PolarWolf314/naclbox/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "naclbox",
		Short: "naclbox - authenticated encryption with NaCl secretbox",
		Long: `naclbox encrypts and authenticates messages with a 32-byte secret key
using XSalsa20-Poly1305 (NaCl secretbox), and provides the hex and random
byte helpers needed to handle keys, nonces and ciphertexts as text.

Examples:
  # Generate a key
  naclbox randombytes 32 --hex > key.hex

  # Encrypt a message, printing the nonce and ciphertext as hex
  naclbox secretbox --key-file key.hex --hex "hello"

  # Decrypt it again
  naclbox secretbox-open --key-file key.hex <nonce-hex> <ciphertext-hex>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

			if err := configs.InitConfig(); err != nil {
				return Logger.ErrorfAndReturn("failed to load configuration: %w", err)
			}
			Logger.Debugf("Loaded configuration from %s", configs.ConfigPath())
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("naclbox", "", true)
			fmt.Fprintln(cmd.OutOrStdout(), banner.String())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("Run "+ui.Code.Sprint("naclbox --help")+" to see available commands"))
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(hexdumpCmd)
	RootCmd.AddCommand(unhexdumpCmd)
	RootCmd.AddCommand(randombytesCmd)
	RootCmd.AddCommand(secretboxCmd)
	RootCmd.AddCommand(secretboxOpenCmd)
	RootCmd.AddCommand(sealFilesCmd)
	RootCmd.AddCommand(openFilesCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Helper functions for testing

// ResetGlobalState resets all global variables and parsed flags to their
// default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetHexdumpState()
	resetRandombytesState()
	resetKeyFlagState()
	resetSecretboxState()
	resetFilesState()
	resetConfigInitState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag of c and its
// subcommands so tests do not observe each other's flags.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
