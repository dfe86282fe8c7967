package nacl

import (
	"bytes"
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/secretbox"
)

// fixedSource always returns the same bytes.
type fixedSource struct {
	b []byte
}

func (f fixedSource) Generate(n int) ([]byte, error) {
	out := make([]byte, n)
	copy(out, f.b)
	return out, nil
}

type failingSource struct{}

func (failingSource) Generate(int) ([]byte, error) {
	return nil, kerrors.ErrRandomFailed
}

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := RandomBytes(KeyBytes)
	require.NoError(t, err)
	return key
}

func TestSealOpen_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		message []byte
	}{
		{"empty", []byte{}},
		{"nil", nil},
		{"hello", []byte("hello")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"exactly zero bytes long", make([]byte, ZeroBytes)},
		{"large", bytes.Repeat([]byte("naclbox"), 5000)},
	}

	box := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := testKey(t)

			nonce, ciphertext, err := box.Seal(key, tt.message)
			require.NoError(t, err)
			assert.Len(t, nonce, NonceBytes)
			assert.Len(t, ciphertext, len(tt.message)+ZeroBytes)

			plaintext, err := box.Open(key, nonce, ciphertext)
			require.NoError(t, err)
			assert.NotNil(t, plaintext)
			assert.Equal(t, len(tt.message), len(plaintext))
			assert.True(t, bytes.Equal(tt.message, plaintext))
		})
	}
}

func TestSealOpen_HelloScenario(t *testing.T) {
	key := make([]byte, 32)

	nonce, ciphertext, err := Seal(key, []byte("hello"))
	require.NoError(t, err)
	assert.Len(t, nonce, 24)
	assert.Len(t, ciphertext, 5+ZeroBytes)

	plaintext, err := Open(key, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(plaintext))

	otherKey := make([]byte, 32)
	otherKey[0] = 1
	plaintext, err = Open(otherKey, nonce, ciphertext)
	assert.ErrorIs(t, err, kerrors.ErrAuthenticationFailed)
	assert.Nil(t, plaintext)
}

func TestSeal_MatchesNaClFraming(t *testing.T) {
	key := testKey(t)
	nonceBytes := bytes.Repeat([]byte{0x42}, NonceBytes)
	box := New(WithRandom(fixedSource{b: nonceBytes}))
	message := []byte("interoperable with crypto_secretbox")

	nonce, ciphertext, err := box.Seal(key, message)
	require.NoError(t, err)
	assert.Equal(t, nonceBytes, nonce)

	var n [NonceBytes]byte
	var k [KeyBytes]byte
	copy(n[:], nonce)
	copy(k[:], key)

	// crypto_secretbox output: BoxZeroBytes zeros, then tag and stream.
	assert.Equal(t, make([]byte, BoxZeroBytes), ciphertext[:BoxZeroBytes])
	assert.Equal(t, secretbox.Seal(nil, message, &n, &k), ciphertext[BoxZeroBytes:])
}

func TestSeal_FreshNonces(t *testing.T) {
	key := testKey(t)
	message := []byte("same message")
	box := New()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		nonce, _, err := box.Seal(key, message)
		require.NoError(t, err)
		require.False(t, seen[string(nonce)], "nonce repeated after %d seals", i)
		seen[string(nonce)] = true
	}
}

func TestSeal_InvalidKeyLength(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"one short", 31},
		{"one long", 33},
		{"too long", 64},
	}

	box := New(WithRandom(failingSource{}))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A failing random source proves the key is checked first.
			nonce, ciphertext, err := box.Seal(make([]byte, tt.keySize), []byte("test"))
			require.Error(t, err)
			assert.Nil(t, nonce)
			assert.Nil(t, ciphertext)
			assert.ErrorIs(t, err, kerrors.ErrInvalidKeyLength)

			var keyErr *KeyLengthError
			require.True(t, errors.As(err, &keyErr))
			assert.Equal(t, KeyBytes, keyErr.Expected)
			assert.Equal(t, tt.keySize, keyErr.Actual)
			assert.Contains(t, err.Error(), "should be 32 bytes")
		})
	}
}

func TestOpen_InvalidKeyLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33} {
		_, err := Open(make([]byte, size), make([]byte, NonceBytes), make([]byte, ZeroBytes))
		assert.ErrorIs(t, err, kerrors.ErrInvalidKeyLength, "key size %d", size)
		assert.NotErrorIs(t, err, kerrors.ErrAuthenticationFailed)
	}
}

func TestOpen_InvalidNonceLength(t *testing.T) {
	key := testKey(t)
	for _, size := range []int{0, 12, 23, 25} {
		_, err := Open(key, make([]byte, size), make([]byte, ZeroBytes))

		var nonceErr *NonceLengthError
		require.True(t, errors.As(err, &nonceErr), "nonce size %d", size)
		assert.Equal(t, size, nonceErr.Actual)
		assert.ErrorIs(t, err, kerrors.ErrInvalidNonceLength)
	}
}

func TestOpen_TruncatedCiphertext(t *testing.T) {
	key := testKey(t)
	nonce, ciphertext, err := Seal(key, []byte("truncate me"))
	require.NoError(t, err)

	for _, n := range []int{0, 1, BoxZeroBytes, ZeroBytes - 1} {
		plaintext, err := Open(key, nonce, ciphertext[:n])
		assert.ErrorIs(t, err, kerrors.ErrAuthenticationFailed, "length %d", n)
		assert.Nil(t, plaintext)
	}

	// Dropping message bytes leaves a well-formed but unauthentic box.
	plaintext, err := Open(key, nonce, ciphertext[:len(ciphertext)-1])
	assert.ErrorIs(t, err, kerrors.ErrAuthenticationFailed)
	assert.Nil(t, plaintext)
}

func TestOpen_TamperDetection(t *testing.T) {
	key := testKey(t)
	nonce, ciphertext, err := Seal(key, []byte("attack at dawn, bring snacks"))
	require.NoError(t, err)

	// Every bit of the ciphertext, including the zero prefix.
	for i := 0; i < len(ciphertext)*8; i++ {
		tampered := bytes.Clone(ciphertext)
		tampered[i/8] ^= 1 << (i % 8)

		plaintext, err := Open(key, nonce, tampered)
		require.ErrorIs(t, err, kerrors.ErrAuthenticationFailed, "bit %d", i)
		require.Nil(t, plaintext)
	}
}

func TestOpen_WrongNonce(t *testing.T) {
	key := testKey(t)
	nonce, ciphertext, err := Seal(key, []byte("hello"))
	require.NoError(t, err)

	wrong := bytes.Clone(nonce)
	wrong[NonceBytes-1] ^= 0x01

	plaintext, err := Open(key, wrong, ciphertext)
	assert.ErrorIs(t, err, kerrors.ErrAuthenticationFailed)
	assert.Nil(t, plaintext)
}

func TestSeal_RandomFailure(t *testing.T) {
	box := New(WithRandom(failingSource{}))
	_, _, err := box.Seal(make([]byte, KeyBytes), []byte("x"))
	assert.ErrorIs(t, err, kerrors.ErrRandomFailed)
}

func TestSealFormatted(t *testing.T) {
	key := testKey(t)
	box := New()

	raw, err := box.SealFormatted(key, []byte("hello"), false)
	require.NoError(t, err)
	assert.False(t, raw.Hex)
	assert.Len(t, raw.Nonce, NonceBytes)
	assert.Len(t, raw.Ciphertext, 5+ZeroBytes)

	hexed, err := box.SealFormatted(key, []byte("hello"), true)
	require.NoError(t, err)
	assert.True(t, hexed.Hex)
	assert.Len(t, hexed.Nonce, 2*NonceBytes)
	assert.Len(t, hexed.Ciphertext, 2*(5+ZeroBytes))

	nonce, err := HexDecode(string(hexed.Nonce))
	require.NoError(t, err)
	ciphertext, err := HexDecode(string(hexed.Ciphertext))
	require.NoError(t, err)

	plaintext, err := box.Open(key, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), plaintext)

	_, err = box.SealFormatted(key[:10], []byte("hello"), true)
	assert.ErrorIs(t, err, kerrors.ErrInvalidKeyLength)
}

func TestErrorsDoNotLeakKeyMaterial(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, KeyBytes-1)
	_, _, err := Seal(key, []byte("super secret"))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super secret")
	assert.NotContains(t, err.Error(), HexEncode(key))
}

func BenchmarkSeal(b *testing.B) {
	key := make([]byte, KeyBytes)
	message := make([]byte, 1024)
	box := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = box.Seal(key, message)
	}
}

func BenchmarkOpen(b *testing.B) {
	key := make([]byte, KeyBytes)
	message := make([]byte, 1024)
	nonce, ciphertext, _ := Seal(key, message)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Open(key, nonce, ciphertext)
	}
}
