package cmd

import (
	"github.com/PolarWolf314/naclbox/internal/nacl"
	"github.com/spf13/cobra"
)

var (
	randombytesHex bool
	randombytesOut string
)

var randombytesCmd = &cobra.Command{
	Use:   "randombytes <length>",
	Short: "Prints cryptographically secure random bytes",
	Long: `Draws <length> bytes from the operating system's secure random source.
Output is raw unless --hex is given. Use 32 bytes for a secretbox key:

  naclbox randombytes 32 --hex -o key.hex`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := nacl.ParseLength(args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}

		data, err := nacl.RandomBytes(n)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate random bytes: %w", err)
		}
		Logger.Infof("Generated %d random bytes", n)

		if randombytesHex {
			data = []byte(nacl.HexEncode(data) + "\n")
		}
		return writeOutput(cmd, data, randombytesOut)
	},
}

func init() {
	randombytesCmd.Flags().BoolVar(&randombytesHex, "hex", false, "print the bytes as hex")
	randombytesCmd.Flags().StringVarP(&randombytesOut, "out", "o", "", "write to a file instead of stdout")
}

func resetRandombytesState() {
	randombytesHex = false
	randombytesOut = ""
}
