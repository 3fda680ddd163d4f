// Package cryptox holds the content codec that turns diary text into
// storage envelopes and back, plus the password verifier helpers used
// for account login.
//
// The codec key is derived from constants compiled into every client, so
// envelopes are confidential against the storage provider only. Anyone
// with the application can decrypt them. There is no version tag in the
// envelope: changing Passphrase or Salt makes every stored entry unreadable.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Passphrase = "unsaid-private-key-v1"
	Salt       = "unsaid-salt"
	Iterations = 100000
	KeySize    = 32
	NonceSize  = 12

	// Placeholder replaces the text of an entry whose envelope fails to open.
	Placeholder = "⚠️ Could not decrypt entry"
)

// ErrDecryption matches every *DecryptionError via errors.Is.
var ErrDecryption = errors.New("decryption failed")

// DecryptionError reports a malformed envelope or a failed GCM
// authentication check. It is never worth retrying.
type DecryptionError struct {
	Reason string
	Err    error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decryption failed: %s: %v", e.Reason, e.Err)
	}
	return "decryption failed: " + e.Reason
}

func (e *DecryptionError) Unwrap() error { return e.Err }

func (e *DecryptionError) Is(target error) bool { return target == ErrDecryption }

// randReader is a test seam for nonce generation.
var randReader io.Reader = rand.Reader

// Codec encrypts and decrypts envelopes with a key derived once at
// construction. The key never leaves the AEAD. A Codec is safe for
// concurrent use.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec derives the shared application key.
func NewCodec() (*Codec, error) {
	return NewCodecWithSecret(Passphrase, Salt)
}

// NewCodecWithSecret derives a key from an arbitrary passphrase and salt
// with the same PBKDF2 parameters.
func NewCodecWithSecret(passphrase, salt string) (*Codec, error) {
	key := pbkdf2.Key([]byte(passphrase), []byte(salt), Iterations, KeySize, sha256.New)
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead}, nil
}

var defaultCodec = sync.OnceValues(NewCodec)

// Default returns the process-wide codec, deriving the key on first use.
func Default() (*Codec, error) {
	return defaultCodec()
}

// Encrypt seals plaintext under a fresh random nonce.
// Empty input is accepted; skipping blank content is the caller's policy.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}
	return c.seal(nonce, plaintext), nil
}

func (c *Codec) seal(nonce []byte, plaintext string) string {
	ct := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	parts := make([]string, len(nonce))
	for i, b := range nonce {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",") + ":" + base64.StdEncoding.EncodeToString(ct)
}

// Decrypt opens an envelope produced by Encrypt. Invalid UTF-8 in the
// recovered bytes is replaced with U+FFFD.
func (c *Codec) Decrypt(envelope string) (string, error) {
	ivPart, data, ok := strings.Cut(envelope, ":")
	if !ok {
		return "", &DecryptionError{Reason: "missing separator"}
	}
	if strings.Contains(data, ":") {
		return "", &DecryptionError{Reason: "more than one separator"}
	}

	nonce, err := parseNonce(ivPart)
	if err != nil {
		return "", err
	}

	ct, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", &DecryptionError{Reason: "invalid base64", Err: err}
	}

	pt, err := c.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", &DecryptionError{Reason: "authentication failed", Err: err}
	}

	return strings.ToValidUTF8(string(pt), "�"), nil
}

func parseNonce(s string) ([]byte, error) {
	fields := strings.Split(s, ",")
	if len(fields) != NonceSize {
		return nil, &DecryptionError{Reason: fmt.Sprintf("nonce has %d components, want %d", len(fields), NonceSize)}
	}
	nonce := make([]byte, NonceSize)
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, &DecryptionError{Reason: "invalid nonce component", Err: err}
		}
		nonce[i] = byte(v)
	}
	return nonce, nil
}

// IsEnvelope reports whether content looks like a codec envelope, i.e.
// the text before the first ':' is twelve comma-separated byte values.
// Legacy plaintext entries fail this check and are shown as stored.
func IsEnvelope(content string) bool {
	ivPart, _, ok := strings.Cut(content, ":")
	if !ok {
		return false
	}
	_, err := parseNonce(ivPart)
	return err == nil
}

// ShouldEncrypt is false for empty or whitespace-only content,
// which is stored as "" instead of an envelope.
func ShouldEncrypt(content string) bool {
	return strings.TrimSpace(content) != ""
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
