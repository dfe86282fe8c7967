package nacl

import (
	"crypto/subtle"
	"fmt"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

var zeroPrefix [BoxZeroBytes]byte

// Box seals and opens messages with XSalsa20-Poly1305.
//
// Ciphertexts use the NaCl padded framing: BoxZeroBytes zero bytes, the
// Poly1305 tag, then the encrypted message, so a ciphertext is always
// ZeroBytes longer than its message and is byte-for-byte what
// crypto_secretbox produces over a ZeroBytes-padded plaintext.
//
// A Box holds no mutable state and may be shared between goroutines.
type Box struct {
	random RandomSource
}

// Option configures a Box.
type Option func(*Box)

// WithRandom sets the source used to draw nonces.
func WithRandom(r RandomSource) Option {
	return func(b *Box) {
		b.random = r
	}
}

// New returns a Box drawing nonces from SystemRandom unless overridden.
func New(opts ...Option) *Box {
	b := &Box{random: SystemRandom}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Seal encrypts message under key with a freshly drawn nonce.
func (b *Box) Seal(key, message []byte) (nonce, ciphertext []byte, err error) {
	k, err := keyArray(key)
	if err != nil {
		return nil, nil, err
	}

	nonce, err = b.random.Generate(NonceBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	if len(nonce) != NonceBytes {
		return nil, nil, &NonceLengthError{Expected: NonceBytes, Actual: len(nonce)}
	}

	var n [NonceBytes]byte
	copy(n[:], nonce)

	out := make([]byte, BoxZeroBytes, len(message)+ZeroBytes)
	ciphertext = secretbox.Seal(out, message, &n, k)

	return nonce, ciphertext, nil
}

// Open verifies and decrypts a ciphertext produced by Seal (or by any
// crypto_secretbox implementation). On failure no plaintext is returned.
func (b *Box) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	k, err := keyArray(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != NonceBytes {
		return nil, &NonceLengthError{Expected: NonceBytes, Actual: len(nonce)}
	}
	var n [NonceBytes]byte
	copy(n[:], nonce)

	if len(ciphertext) < ZeroBytes {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, need at least %d",
			kerrors.ErrAuthenticationFailed, len(ciphertext), ZeroBytes)
	}

	// The zero prefix is not covered by the tag, so check it here to
	// reject any modification of the framing.
	if subtle.ConstantTimeCompare(ciphertext[:BoxZeroBytes], zeroPrefix[:]) != 1 {
		return nil, kerrors.ErrAuthenticationFailed
	}

	message, ok := secretbox.Open(make([]byte, 0, len(ciphertext)-ZeroBytes), ciphertext[BoxZeroBytes:], &n, k)
	if !ok {
		return nil, kerrors.ErrAuthenticationFailed
	}

	return message, nil
}

// SealFormatted seals message and formats the pair for output.
func (b *Box) SealFormatted(key, message []byte, hexOutput bool) (Result, error) {
	nonce, ciphertext, err := b.Seal(key, message)
	if err != nil {
		return Result{}, err
	}
	return Format(nonce, ciphertext, hexOutput), nil
}

func keyArray(key []byte) (*[KeyBytes]byte, error) {
	if len(key) != KeyBytes {
		return nil, &KeyLengthError{Expected: KeyBytes, Actual: len(key)}
	}
	var k [KeyBytes]byte
	copy(k[:], key)
	return &k, nil
}

var defaultBox = New()

// Seal encrypts message with the default Box.
func Seal(key, message []byte) (nonce, ciphertext []byte, err error) {
	return defaultBox.Seal(key, message)
}

// Open decrypts ciphertext with the default Box.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	return defaultBox.Open(key, nonce, ciphertext)
}
