package cmd

import (
	"fmt"

	"github.com/PolarWolf314/naclbox/internal/nacl"
	"github.com/spf13/cobra"
)

var (
	hexdumpFile   string
	unhexdumpOut  string
	unhexdumpFile string
)

var hexdumpCmd = &cobra.Command{
	Use:   "hexdump [text]",
	Short: "Prints the input as lowercase hex",
	Long: `Encodes text from an argument, a file (--file) or stdin as lowercase hex,
two digits per byte.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args, 0, hexdumpFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input: %w", err)
		}
		Logger.Infof("Encoding %d bytes", len(data))

		_, err = fmt.Fprintln(cmd.OutOrStdout(), nacl.HexEncode(data))
		return err
	},
}

var unhexdumpCmd = &cobra.Command{
	Use:   "unhexdump [hex]",
	Short: "Decodes hex text back to raw bytes",
	Long: `Decodes hex text (either case) from an argument, a file (--file) or stdin
and writes the raw bytes to stdout or --out. Odd-length input or any
non-hex character is rejected and nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, 0, unhexdumpFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input: %w", err)
		}

		input := string(text)
		if len(args) == 0 {
			// Piped and file input usually ends with a newline.
			input = trimTrailingNewline(input)
		}

		data, err := nacl.HexDecode(input)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}
		Logger.Infof("Decoded %d bytes", len(data))

		return writeOutput(cmd, data, unhexdumpOut)
	},
}

func init() {
	hexdumpCmd.Flags().StringVarP(&hexdumpFile, "file", "f", "", "read input from a file")
	unhexdumpCmd.Flags().StringVarP(&unhexdumpFile, "file", "f", "", "read hex text from a file")
	unhexdumpCmd.Flags().StringVarP(&unhexdumpOut, "out", "o", "", "write bytes to a file instead of stdout")
}

func resetHexdumpState() {
	hexdumpFile = ""
	unhexdumpFile = ""
	unhexdumpOut = ""
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
