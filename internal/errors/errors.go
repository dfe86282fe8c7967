package errors

import "errors"

// Key errors indicate missing or malformed key material.
var (
	// ErrInvalidKeyLength indicates the secret key is not exactly KeyBytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidNonceLength indicates the nonce is not exactly NonceBytes long.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrNoKey indicates no key was supplied by flag, file, prompt or config.
	ErrNoKey = errors.New("no secret key provided")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrAuthenticationFailed indicates the ciphertext did not verify under
	// the given key and nonce.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrRandomFailed indicates the system entropy source could not be read.
	ErrRandomFailed = errors.New("failed to read random bytes")
)

// Encoding errors indicate malformed textual or numeric input.
var (
	// ErrInvalidHex indicates a hex string has odd length or a non-hex character.
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrInvalidLength indicates a length argument is not a non-negative integer.
	ErrInvalidLength = errors.New("invalid length")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileType indicates the file is not of the expected type.
	ErrInvalidFileType = errors.New("invalid file type")
)
