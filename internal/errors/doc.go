// Package errors provides typed error values for naclbox.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: wrong sizes or no key at all (ErrInvalidKeyLength, ErrNoKey)
//   - Crypto errors: verification failures (ErrAuthenticationFailed)
//   - Encoding errors: bad hex or length arguments (ErrInvalidHex, ErrInvalidLength)
//   - File errors: file discovery issues (ErrNoFilesFound, ErrFileNotFound)
//
// # Usage
//
// The nacl package returns typed errors that unwrap to these sentinels:
//
//	plaintext, err := box.Open(key, nonce, ciphertext)
//	if errors.Is(err, kerrors.ErrAuthenticationFailed) {
//	    // Reject the message, never use partial output.
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("opening %s: %w", path, errors.ErrAuthenticationFailed)
package errors
