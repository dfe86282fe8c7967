package nacl

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
)

// RandomSource supplies cryptographically secure random bytes.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	Generate(n int) ([]byte, error)
}

// ReaderSource draws random bytes from an io.Reader.
type ReaderSource struct {
	Reader io.Reader
}

// SystemRandom reads from the operating system CSPRNG.
var SystemRandom RandomSource = ReaderSource{Reader: rand.Reader}

// Generate returns n random bytes. n == 0 yields an empty slice.
func (s ReaderSource) Generate(n int) ([]byte, error) {
	if n < 0 {
		return nil, &InvalidLengthError{Input: strconv.Itoa(n)}
	}

	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}

	if _, err := io.ReadFull(s.Reader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrRandomFailed, err)
	}

	return buf, nil
}

// RandomBytes returns n bytes from SystemRandom.
func RandomBytes(n int) ([]byte, error) {
	return SystemRandom.Generate(n)
}

// ParseLength parses a byte count given as text.
func ParseLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &InvalidLengthError{Input: s}
	}
	return n, nil
}
