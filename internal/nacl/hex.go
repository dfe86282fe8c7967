package nacl

import (
	"encoding/hex"
	"strings"
)

// HexEncode renders b as lowercase hex, two digits per byte.
func HexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

// HexDecode parses hex text (either case) into bytes.
// Nothing is returned on failure, not even the bytes decoded before the
// first bad pair.
func HexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &DecodeError{Length: len(s), Offset: -1}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		if bad, ok := err.(hex.InvalidByteError); ok {
			return nil, &DecodeError{
				Length: len(s),
				Offset: strings.IndexByte(s, byte(bad)),
				Char:   byte(bad),
			}
		}
		return nil, &DecodeError{Length: len(s), Offset: -1}
	}

	return b, nil
}
