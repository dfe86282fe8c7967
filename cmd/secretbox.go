package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/naclbox/internal/configs"
	"github.com/PolarWolf314/naclbox/internal/nacl"
	"github.com/spf13/cobra"
)

var (
	secretboxHex  bool
	secretboxFile string
	secretboxOut  string

	openFile string
	openOut  string

	// box is the Box used by all commands; tests may replace it.
	box = nacl.New()
)

var secretboxCmd = &cobra.Command{
	Use:   "secretbox [--hex] <message>",
	Short: "Encrypts and authenticates a message with a fresh random nonce",
	Long: `Encrypts <message> (or --file, or stdin) under the secret key.

With --hex, prints the nonce and the ciphertext as hex on two lines.
Without it, writes the raw nonce (24 bytes) followed by the ciphertext
(message length + 32 bytes) to stdout or --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKey()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load key: %w", err)
		}

		message, err := readInput(cmd, args, 0, secretboxFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read message: %w", err)
		}

		hexOutput := secretboxHex
		if !cmd.Flags().Changed("hex") && configs.GlobalConfig != nil {
			hexOutput = configs.GlobalConfig.Output.Hex
		}

		Logger.Debugf("Sealing %d bytes (hex output: %t)", len(message), hexOutput)
		result, err := box.SealFormatted(key, message, hexOutput)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}
		Logger.Infof("Sealed %d bytes into %d-byte ciphertext", len(message), len(message)+nacl.ZeroBytes)

		if result.Hex {
			pair := result.Strings()
			return writeOutput(cmd, []byte(fmt.Sprintf("%s\n%s\n", pair[0], pair[1])), secretboxOut)
		}
		return writeOutput(cmd, result.Bytes(), secretboxOut)
	},
}

var secretboxOpenCmd = &cobra.Command{
	Use:   "secretbox-open <nonce-hex> <ciphertext-hex>",
	Short: "Verifies and decrypts a secretbox ciphertext",
	Long: `Decrypts a ciphertext given as hex arguments, or with --file a raw
nonce||ciphertext file as written by 'naclbox secretbox'. The plaintext is
written to stdout or --out only if the ciphertext authenticates.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if openFile != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKey()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load key: %w", err)
		}

		nonce, ciphertext, err := openInputs(args)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}

		Logger.Debugf("Opening %d-byte ciphertext", len(ciphertext))
		message, err := box.Open(key, nonce, ciphertext)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}
		Logger.Infof("Opened %d-byte message", len(message))

		return writeOutput(cmd, message, openOut)
	},
}

func openInputs(args []string) (nonce, ciphertext []byte, err error) {
	if openFile != "" {
		sealed, err := os.ReadFile(openFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", openFile, err)
		}
		return nacl.SplitSealed(sealed)
	}

	nonce, err = nacl.HexDecode(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("nonce: %w", err)
	}
	ciphertext, err = nacl.HexDecode(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("ciphertext: %w", err)
	}
	return nonce, ciphertext, nil
}

func init() {
	addKeyFlags(secretboxCmd)
	secretboxCmd.Flags().BoolVar(&secretboxHex, "hex", false, "print nonce and ciphertext as hex")
	secretboxCmd.Flags().StringVarP(&secretboxFile, "file", "f", "", "read the message from a file")
	secretboxCmd.Flags().StringVarP(&secretboxOut, "out", "o", "", "write output to a file instead of stdout")

	addKeyFlags(secretboxOpenCmd)
	secretboxOpenCmd.Flags().StringVarP(&openFile, "file", "f", "", "read a raw nonce||ciphertext file")
	secretboxOpenCmd.Flags().StringVarP(&openOut, "out", "o", "", "write the plaintext to a file instead of stdout")
}

func resetSecretboxState() {
	secretboxHex = false
	secretboxFile = ""
	secretboxOut = ""
	openFile = ""
	openOut = ""
	box = nacl.New()
}
