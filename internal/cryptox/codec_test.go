package cryptox

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func withFixedNonce(t *testing.T, nonce []byte) {
	t.Helper()
	orig := randReader
	randReader = bytes.NewReader(nonce)
	t.Cleanup(func() { randReader = orig })
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	for _, s := range []string{
		"I felt invisible at work today.",
		"a",
		"",
		"line one\nline two: with a colon",
		"Сегодня было тяжело 🌧",
		strings.Repeat("long entry ", 500),
	} {
		env, err := c.Encrypt(s)
		require.NoError(t, err)

		got, err := c.Decrypt(env)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestCodec_EncryptIsNonDeterministic(t *testing.T) {
	c := newTestCodec(t)

	a, err := c.Encrypt("same words")
	require.NoError(t, err)
	b, err := c.Encrypt("same words")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)

	pa, err := c.Decrypt(a)
	require.NoError(t, err)
	pb, err := c.Decrypt(b)
	require.NoError(t, err)
	assert.Equal(t, "same words", pa)
	assert.Equal(t, "same words", pb)
}

// Envelopes produced by the browser client (WebCrypto PBKDF2 + AES-GCM)
// with a fixed nonce of 1..12.
func TestCodec_KnownAnswers(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		plaintext string
		envelope  string
	}{
		{"I miss the ocean.", "1,2,3,4,5,6,7,8,9,10,11,12:ODXwfpqfYQuqa9i4VYNfh7xrdrRZJc6KtgsIiaC1fJ65"},
		{"Сегодня было тяжело 🌧", "1,2,3,4,5,6,7,8,9,10,11,12:obRNojlfkcESuihq52keOSNtDuZ0SjbiWim5H9sfXisB7Lfa84Sm4x0KuLROgJplIa3qCX/d5nqz"},
	}

	for _, tt := range tests {
		got, err := c.Decrypt(tt.envelope)
		require.NoError(t, err)
		assert.Equal(t, tt.plaintext, got)

		withFixedNonce(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
		env, err := c.Encrypt(tt.plaintext)
		require.NoError(t, err)
		assert.Equal(t, tt.envelope, env)
	}
}

func TestCodec_EmptyPlaintextKnownAnswer(t *testing.T) {
	c := newTestCodec(t)
	withFixedNonce(t, make([]byte, NonceSize))

	env, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "0,0,0,0,0,0,0,0,0,0,0,0:7h7GL8irXYPWycgPsDdtQA==", env)
}

func TestCodec_TamperDetection(t *testing.T) {
	c := newTestCodec(t)

	env, err := c.Encrypt("nobody needs to know this")
	require.NoError(t, err)

	ivPart, data, _ := strings.Cut(env, ":")
	raw, err := base64.StdEncoding.DecodeString(data)
	require.NoError(t, err)

	for i := range raw {
		flipped := append([]byte(nil), raw...)
		flipped[i] ^= 0x01
		tampered := ivPart + ":" + base64.StdEncoding.EncodeToString(flipped)

		_, err := c.Decrypt(tampered)
		require.Error(t, err, "byte %d", i)

		var de *DecryptionError
		require.True(t, errors.As(err, &de))
		assert.ErrorIs(t, err, ErrDecryption)
	}
}

func TestCodec_TamperedBase64Characters(t *testing.T) {
	c := newTestCodec(t)

	env, err := c.Encrypt("keep this safe")
	require.NoError(t, err)

	sep := strings.IndexByte(env, ':')
	for i := sep + 1; i < len(env); i++ {
		if env[i] == '=' {
			continue
		}
		b := []byte(env)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}

		_, err := c.Decrypt(string(b))
		assert.ErrorIs(t, err, ErrDecryption, "position %d", i)
	}
}

func TestCodec_DifferentKeyFails(t *testing.T) {
	other, err := NewCodecWithSecret("unsaid-private-key-v2", Salt)
	require.NoError(t, err)

	env, err := other.Encrypt("written with another key")
	require.NoError(t, err)

	_, err = newTestCodec(t).Decrypt(env)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCodec_MalformedEnvelopes(t *testing.T) {
	c := newTestCodec(t)

	valid, err := c.Encrypt("x")
	require.NoError(t, err)
	_, data, _ := strings.Cut(valid, ":")

	tests := []struct {
		name     string
		envelope string
		reason   string
	}{
		{"no separator", "just some words", "missing separator"},
		{"two separators", "1,2,3,4,5,6,7,8,9,10,11,12:" + data + ":" + data, "more than one separator"},
		{"short nonce", "1,2,3:" + data, "nonce has 3 components"},
		{"long nonce", "1,2,3,4,5,6,7,8,9,10,11,12,13:" + data, "nonce has 13 components"},
		{"non numeric nonce", "1,2,3,4,5,6,7,8,9,10,11,x:" + data, "invalid nonce component"},
		{"nonce out of range", "1,2,3,4,5,6,7,8,9,10,11,256:" + data, "invalid nonce component"},
		{"negative nonce", "1,2,3,4,5,6,7,8,9,10,11,-1:" + data, "invalid nonce component"},
		{"invalid base64", "1,2,3,4,5,6,7,8,9,10,11,12:***", "invalid base64"},
		{"empty data", "1,2,3,4,5,6,7,8,9,10,11,12:", "authentication failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.envelope)
			require.Error(t, err)

			var de *DecryptionError
			require.True(t, errors.As(err, &de))
			assert.Contains(t, de.Error(), tt.reason)
		})
	}
}

func TestCodec_EncryptNonceReadError(t *testing.T) {
	c := newTestCodec(t)
	withFixedNonce(t, []byte{1, 2})

	_, err := c.Encrypt("x")
	require.Error(t, err)
}

func TestDefault_ReturnsSameCodec(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestIsEnvelope(t *testing.T) {
	c := newTestCodec(t)
	env, err := c.Encrypt("hello")
	require.NoError(t, err)

	assert.True(t, IsEnvelope(env))
	assert.False(t, IsEnvelope("plain legacy entry"))
	assert.False(t, IsEnvelope("Dear me: today was ok"))
	assert.False(t, IsEnvelope(""))
	assert.True(t, IsEnvelope("0,0,0,0,0,0,0,0,0,0,0,0:garbage"))
}

func TestShouldEncrypt(t *testing.T) {
	assert.False(t, ShouldEncrypt(""))
	assert.False(t, ShouldEncrypt("  \n\t "))
	assert.True(t, ShouldEncrypt(" ok "))
}
