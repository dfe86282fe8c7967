package keys

import (
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
	"github.com/PolarWolf314/naclbox/internal/nacl"
)

// Source describes where a key may come from, in precedence order:
// Hex, File, Prompt, then ConfigFile.
type Source struct {
	Hex        string
	File       string
	Prompt     bool
	ConfigFile string
}

// Origin names where a resolved key came from, for log output.
type Origin string

const (
	OriginFlag   Origin = "--key"
	OriginFile   Origin = "--key-file"
	OriginPrompt Origin = "prompt"
	OriginConfig Origin = "config"
)

// PromptFunc reads a secret line from the user.
type PromptFunc func(prompt string) ([]byte, error)

// Resolve returns the first key available from src. It never generates a
// key; with no source at all it returns ErrNoKey.
func Resolve(src Source, prompt PromptFunc) ([]byte, Origin, string, error) {
	switch {
	case src.Hex != "":
		key, err := ParseHex(src.Hex)
		return key, OriginFlag, "", err
	case src.File != "":
		key, err := ReadFile(src.File)
		return key, OriginFile, src.File, err
	case src.Prompt:
		if prompt == nil {
			return nil, OriginPrompt, "", kerrors.ErrNoKey
		}
		line, err := prompt(fmt.Sprintf("Enter %d-byte key as hex: ", nacl.KeyBytes))
		if err != nil {
			return nil, OriginPrompt, "", err
		}
		key, err := ParseHex(string(line))
		return key, OriginPrompt, "", err
	case src.ConfigFile != "":
		key, err := ReadFile(src.ConfigFile)
		return key, OriginConfig, src.ConfigFile, err
	}
	return nil, "", "", kerrors.ErrNoKey
}

// ParseHex decodes a hex key and checks its length.
func ParseHex(s string) ([]byte, error) {
	key, err := nacl.HexDecode(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	if len(key) != nacl.KeyBytes {
		return nil, &nacl.KeyLengthError{Expected: nacl.KeyBytes, Actual: len(key)}
	}
	return key, nil
}

// ReadFile reads a hex key from path. Surrounding white space is ignored.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: key file %s", kerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}
	return ParseHex(string(data))
}
