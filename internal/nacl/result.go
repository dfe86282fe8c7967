package nacl

// Result is an ordered (nonce, ciphertext) pair, either raw or hex text.
type Result struct {
	Nonce      []byte
	Ciphertext []byte
	Hex        bool
}

// Format orders nonce and ciphertext into a Result, hex-encoding both
// when hexOutput is set.
func Format(nonce, ciphertext []byte, hexOutput bool) Result {
	if hexOutput {
		return Result{
			Nonce:      []byte(HexEncode(nonce)),
			Ciphertext: []byte(HexEncode(ciphertext)),
			Hex:        true,
		}
	}
	return Result{Nonce: nonce, Ciphertext: ciphertext}
}

// Strings returns the pair as strings, nonce first.
func (r Result) Strings() [2]string {
	return [2]string{string(r.Nonce), string(r.Ciphertext)}
}

// Bytes returns the flat nonce||ciphertext sequence.
func (r Result) Bytes() []byte {
	out := make([]byte, 0, len(r.Nonce)+len(r.Ciphertext))
	out = append(out, r.Nonce...)
	return append(out, r.Ciphertext...)
}

// SplitSealed separates a flat nonce||ciphertext sequence as written by
// Result.Bytes for raw results.
func SplitSealed(sealed []byte) (nonce, ciphertext []byte, err error) {
	if len(sealed) < NonceBytes {
		return nil, nil, &NonceLengthError{Expected: NonceBytes, Actual: len(sealed)}
	}
	return sealed[:NonceBytes], sealed[NonceBytes:], nil
}
