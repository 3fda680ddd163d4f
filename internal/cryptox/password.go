package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveMasterKey stretches an account password with Argon2id. The result
// never leaves the client; only MakeVerifier(key) is sent to the server.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a master key into the value the server stores and
// compares at login.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}
