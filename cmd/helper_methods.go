package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/naclbox/internal/configs"
	"github.com/PolarWolf314/naclbox/internal/keys"
	"github.com/PolarWolf314/naclbox/internal/ui"
	"github.com/PolarWolf314/naclbox/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	keyHex    string
	keyFile   string
	keyPrompt bool

	// promptForKey is swapped out in tests.
	promptForKey keys.PromptFunc = utils.ReadSecret
)

// addKeyFlags registers the flags used to supply a secret key.
func addKeyFlags(c *cobra.Command) {
	c.Flags().StringVar(&keyHex, "key", "", "secret key as hex (visible in process listings, prefer --key-file)")
	c.Flags().StringVar(&keyFile, "key-file", "", "file containing the secret key as hex")
	c.Flags().BoolVar(&keyPrompt, "key-prompt", false, "read the secret key as hex from the terminal")
}

func resetKeyFlagState() {
	keyHex = ""
	keyFile = ""
	keyPrompt = false
	promptForKey = utils.ReadSecret
}

// loadKey resolves the secret key from flags or configuration. Key bytes
// are never logged.
func loadKey() ([]byte, error) {
	src := keys.Source{Hex: keyHex, File: keyFile, Prompt: keyPrompt}
	if configs.GlobalConfig != nil {
		src.ConfigFile = configs.GlobalConfig.Keys.KeyFile
	}

	key, origin, path, err := keys.Resolve(src, promptForKey)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Using key from %s", origin)

	if path != "" {
		if mode, permissive := utils.IsPermissive(path); permissive {
			Logger.WarnfAlways("Key file %s has overly permissive permissions (%o), consider running 'chmod 600 %s'",
				path, mode, path)
		}
	}

	return key, nil
}

// readInput returns the data named by file, the positional argument at
// index idx, or piped stdin, in that order.
func readInput(cmd *cobra.Command, args []string, idx int, file string) ([]byte, error) {
	if file != "" {
		Logger.Debugf("Reading input from %s", file)
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		return data, nil
	}

	if len(args) > idx {
		return []byte(args[idx]), nil
	}

	Logger.Debugf("Reading input from stdin")
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return utils.ReadPiped(f)
	}
	return io.ReadAll(cmd.InOrStdin())
}

// writeOutput writes data to outPath, or to the command's stdout when
// outPath is empty.
func writeOutput(cmd *cobra.Command, data []byte, outPath string) error {
	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0600); err != nil {
			return fmt.Errorf("failed to write to %s: %w", outPath, err)
		}
		Logger.Infof("Wrote %d bytes to %s", len(data), outPath)
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message and prints it to the command's
// output after the spinner line has been cleared.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}
