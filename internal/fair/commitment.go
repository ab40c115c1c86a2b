package fair

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// SecretSeedBytes is the entropy of a round secret before hex encoding.
const SecretSeedBytes = 32

// ErrCryptoProvider is returned when the underlying randomness source
// fails. It is fatal to the operation that hit it; no round state is
// committed past this error.
var ErrCryptoProvider = errors.New("crypto provider failure")

// GenerateSecretSeed returns a fresh 32-byte secret from crypto/rand,
// hex encoded.
func GenerateSecretSeed() (string, error) {
	bytes := make([]byte, SecretSeedBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoProvider, err)
	}
	return hex.EncodeToString(bytes), nil
}

// Commitment returns the SHA-256 digest of the seed, hex encoded.
//
// The digest is computed over the hex string form of the seed, not its
// raw bytes. Verification hashes the same form, so the two sides stay
// interoperable with the published commitments of earlier rounds.
func Commitment(secretSeed string) string {
	h := sha256.Sum256([]byte(secretSeed))
	return hex.EncodeToString(h[:])
}

// VerifyCommitment recomputes the digest of a revealed seed and compares
// it to the published one. Equality must be exact; a mismatch means the
// committed seed is not the revealed one.
func VerifyCommitment(secretSeed, digest string) bool {
	return Commitment(secretSeed) == digest
}
