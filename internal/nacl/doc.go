// Package nacl provides authenticated symmetric encryption built on the
// NaCl secretbox construction (XSalsa20 stream cipher with a Poly1305 MAC),
// along with the hex codecs and random source used to move keys, nonces
// and ciphertexts around as text.
//
// # Framing
//
// Ciphertexts keep the padded layout of the C crypto_secretbox API:
//
//	[ 16 zero bytes | 16-byte Poly1305 tag | encrypted message ]
//
// A ciphertext is therefore always ZeroBytes (32) bytes longer than the
// message. Open rejects ciphertexts shorter than ZeroBytes and any whose
// zero prefix has been altered, so a single flipped bit anywhere in the
// ciphertext is reported as an authentication failure.
//
// # Nonces
//
// Seal draws a fresh NonceBytes (24) byte nonce from its RandomSource for
// every call. Nonces passed to Open are supplied by the caller, and keeping
// them unique per key is the caller's responsibility.
//
// # Errors
//
// All failures are typed and unwrap to sentinels in internal/errors:
//
//   - KeyLengthError      -> ErrInvalidKeyLength
//   - NonceLengthError    -> ErrInvalidNonceLength
//   - DecodeError         -> ErrInvalidHex
//   - InvalidLengthError  -> ErrInvalidLength
//
// Authentication failures are reported as ErrAuthenticationFailed and no
// plaintext, partial or otherwise, is ever returned with them. Error
// messages never include key or message bytes.
package nacl
