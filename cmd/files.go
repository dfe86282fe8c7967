package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/naclbox/internal/configs"
	"github.com/PolarWolf314/naclbox/internal/files"
	"github.com/PolarWolf314/naclbox/internal/ui"
	"github.com/PolarWolf314/naclbox/internal/utils"
	"github.com/spf13/cobra"
)

var filesExtension string

var sealFilesCmd = &cobra.Command{
	Use:   "seal-files <path|dir|glob>...",
	Short: "Encrypts files to <file>.box",
	Long: `Encrypts each matching file under the secret key and writes the raw
nonce||ciphertext next to it with the configured extension (".box" by
default). Directories are searched recursively; globs support "**".

Examples:
  naclbox seal-files --key-file key.hex .env
  naclbox seal-files --key-file key.hex "config/**/*.json"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiles(cmd, args, true)
	},
}

var openFilesCmd = &cobra.Command{
	Use:   "open-files <path|dir|glob>...",
	Short: "Decrypts <file>.box files back to <file>",
	Long: `Verifies and decrypts each matching sealed file, writing the plaintext
to the file name without the extension. A file that fails authentication
stops the command and nothing is written for it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiles(cmd, args, false)
	},
}

func runFiles(cmd *cobra.Command, args []string, sealing bool) error {
	verb, done := "Opening", "opened"
	if sealing {
		verb, done = "Sealing", "sealed"
	}
	Logger.Infof("Starting %s command", cmd.Name())

	ext := filesExtension
	if ext == "" && configs.GlobalConfig != nil {
		ext = configs.GlobalConfig.Files.Extension
	}
	if ext == "" {
		ext = configs.DefaultExtension
	}

	key, err := loadKey()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load key: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to get working directory: %w", err)
	}

	paths, err := files.ResolveFiles(args, wd, ext, sealing)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to resolve files: %w", err)
	}
	Logger.Debugf("Resolved %d files", len(paths))

	if len(paths) > 20 {
		Logger.Warnf("Processing %d files - this may take a moment", len(paths))
	}

	s, cleanup := startSpinner(cmd, fmt.Sprintf("%s %d files...", verb, len(paths)))
	defer cleanup()

	var written []string
	if sealing {
		written, err = files.SealFiles(box, key, paths, ext)
	} else {
		written, err = files.OpenFiles(box, key, paths, ext)
	}
	if err != nil {
		s.FinalMSG = ui.Failed(fmt.Sprintf("%s files failed after %d of %d", verb, len(written), len(paths)))
		return Logger.ErrorfAndReturn("%w", err)
	}

	Logger.Infof("%s %d files", done, len(written))
	s.FinalMSG = ui.Succeeded(fmt.Sprintf("Files %s successfully!", done)) + "\n" +
		"The following files were written:" + utils.FormatPaths(written)
	if sealing {
		s.FinalMSG += ui.Hint("The " + ui.Code.Sprint(ext) + " files are safe to store or share without the key")
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{sealFilesCmd, openFilesCmd} {
		addKeyFlags(c)
		c.Flags().StringVar(&filesExtension, "ext", "", "sealed file extension (default from config, \".box\")")
	}
}

func resetFilesState() {
	filesExtension = ""
}
