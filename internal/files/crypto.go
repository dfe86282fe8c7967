package files

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/naclbox/internal/nacl"
)

// SealFiles encrypts each input file to <file><ext>. The output holds
// the nonce followed by the ciphertext. Output paths are returned in
// input order.
func SealFiles(box *nacl.Box, key []byte, inputPaths []string, ext string) ([]string, error) {
	outputs := make([]string, 0, len(inputPaths))

	for _, inputPath := range inputPaths {
		plaintext, err := os.ReadFile(inputPath)
		if err != nil {
			return outputs, fmt.Errorf("failed to read %s: %w", inputPath, err)
		}

		result, err := box.SealFormatted(key, plaintext, false)
		if err != nil {
			return outputs, fmt.Errorf("failed to seal %s: %w", inputPath, err)
		}

		outputPath := inputPath + ext
		if err := os.WriteFile(outputPath, result.Bytes(), 0600); err != nil {
			return outputs, fmt.Errorf("failed to write to %s: %w", outputPath, err)
		}
		outputs = append(outputs, outputPath)
	}

	return outputs, nil
}

// OpenFiles decrypts each <file><ext> back to <file>. A file that fails
// authentication is reported and nothing is written for it.
func OpenFiles(box *nacl.Box, key []byte, inputPaths []string, ext string) ([]string, error) {
	outputs := make([]string, 0, len(inputPaths))

	for _, inputPath := range inputPaths {
		sealed, err := os.ReadFile(inputPath)
		if err != nil {
			return outputs, fmt.Errorf("failed to read %s: %w", inputPath, err)
		}

		nonce, ciphertext, err := nacl.SplitSealed(sealed)
		if err != nil {
			return outputs, fmt.Errorf("failed to open %s: %w", inputPath, err)
		}

		plaintext, err := box.Open(key, nonce, ciphertext)
		if err != nil {
			return outputs, fmt.Errorf("failed to open %s: %w", inputPath, err)
		}

		outputPath := strings.TrimSuffix(inputPath, ext)
		if err := os.WriteFile(outputPath, plaintext, 0600); err != nil {
			return outputs, fmt.Errorf("failed to write to %s: %w", outputPath, err)
		}
		outputs = append(outputs, outputPath)
	}

	return outputs, nil
}
