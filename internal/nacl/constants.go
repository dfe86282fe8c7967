package nacl

import "golang.org/x/crypto/nacl/secretbox"

const (
	// KeyBytes is the size of a secretbox key in bytes (crypto_secretbox_KEYBYTES).
	KeyBytes = 32
	// NonceBytes is the size of a secretbox nonce in bytes (crypto_secretbox_NONCEBYTES).
	NonceBytes = 24
	// ZeroBytes is the number of reserved leading bytes in the padded
	// plaintext (crypto_secretbox_ZEROBYTES). It is also the total size
	// difference between a ciphertext and its message.
	ZeroBytes = 32
	// BoxZeroBytes is the number of leading zero bytes in a padded
	// ciphertext (crypto_secretbox_BOXZEROBYTES).
	BoxZeroBytes = 16
	// TagBytes is the size of the Poly1305 authentication tag.
	TagBytes = secretbox.Overhead
)
