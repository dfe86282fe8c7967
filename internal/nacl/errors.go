package nacl

import (
	"fmt"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
)

// KeyLengthError is returned when a key is not exactly KeyBytes long.
type KeyLengthError struct {
	Expected int
	Actual   int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("invalid key length [should be %d bytes, got %d]", e.Expected, e.Actual)
}

func (e *KeyLengthError) Unwrap() error { return kerrors.ErrInvalidKeyLength }

// NonceLengthError is returned when a nonce is not exactly NonceBytes long.
type NonceLengthError struct {
	Expected int
	Actual   int
}

func (e *NonceLengthError) Error() string {
	return fmt.Sprintf("invalid nonce length [should be %d bytes, got %d]", e.Expected, e.Actual)
}

func (e *NonceLengthError) Unwrap() error { return kerrors.ErrInvalidNonceLength }

// DecodeError describes why a hex string was rejected.
// Offset is the index of the first invalid character, or -1 when the
// string was rejected for having odd length.
type DecodeError struct {
	Length int
	Offset int
	Char   byte
}

func (e *DecodeError) Odd() bool { return e.Offset < 0 }

func (e *DecodeError) Error() string {
	if e.Odd() {
		return fmt.Sprintf("invalid hex string: odd length %d", e.Length)
	}
	return fmt.Sprintf("invalid hex string: bad character %q at offset %d", e.Char, e.Offset)
}

func (e *DecodeError) Unwrap() error { return kerrors.ErrInvalidHex }

// InvalidLengthError is returned when a requested byte count is not a
// valid non-negative integer.
type InvalidLengthError struct {
	Input string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %q: must be a non-negative integer", e.Input)
}

func (e *InvalidLengthError) Unwrap() error { return kerrors.ErrInvalidLength }
