package fair

import (
	"encoding/hex"
	"testing"
)

func TestCommitment_KnownDigest(t *testing.T) {
	digest := Commitment(testSecret)
	// SHA-256 of the hex string form of the seed.
	want := "834081bce6232c7c2f931c72f24d5feb28a167d1352d00d801c241c8c75d30b1"
	if digest != want {
		t.Errorf("expected digest %s, got %s", want, digest)
	}
}

func TestGenerateSecretSeed(t *testing.T) {
	seed, err := GenerateSecretSeed()
	if err != nil {
		t.Fatalf("failed to generate seed: %v", err)
	}

	raw, err := hex.DecodeString(seed)
	if err != nil {
		t.Fatalf("seed is not valid hex: %v", err)
	}
	if len(raw) != SecretSeedBytes {
		t.Errorf("expected %d bytes of entropy, got %d", SecretSeedBytes, len(raw))
	}

	other, err := GenerateSecretSeed()
	if err != nil {
		t.Fatalf("failed to generate second seed: %v", err)
	}
	if other == seed {
		t.Error("two generated seeds should not collide")
	}
}

func TestVerifyCommitment(t *testing.T) {
	seed, err := GenerateSecretSeed()
	if err != nil {
		t.Fatalf("failed to generate seed: %v", err)
	}
	digest := Commitment(seed)

	t.Run("round trip", func(t *testing.T) {
		if !VerifyCommitment(seed, digest) {
			t.Error("commitment should verify against its own seed")
		}
	})

	t.Run("any single bit flip fails", func(t *testing.T) {
		raw, _ := hex.DecodeString(seed)
		for i := range raw {
			for bit := 0; bit < 8; bit++ {
				mutated := make([]byte, len(raw))
				copy(mutated, raw)
				mutated[i] ^= 1 << bit
				if VerifyCommitment(hex.EncodeToString(mutated), digest) {
					t.Fatalf("flipping byte %d bit %d still verified", i, bit)
				}
			}
		}
	})

	t.Run("wrong digest fails", func(t *testing.T) {
		if VerifyCommitment(seed, Commitment("not-the-seed")) {
			t.Error("mismatched digest should not verify")
		}
	})
}
