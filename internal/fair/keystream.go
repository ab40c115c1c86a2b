package fair

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Keystream is a deterministic stream of floats in [0,1) derived from a
// round's seeds. Block i is HMAC-SHA256(secretSeed, "publicSeed:sequence:i");
// each float consumes the next 4 bytes of the stream as a big-endian
// uint32 divided by 2^32. Identical inputs always yield identical output,
// which is what lets anyone replay a round after the secret is revealed.
//
// The HMAC key is the hex string form of the secret seed, matching the
// string form hashed by Commitment.
type Keystream struct {
	secretSeed string
	publicSeed string
	sequence   int64

	block int64
	buf   []byte
}

func NewKeystream(secretSeed, publicSeed string, sequence int64) *Keystream {
	return &Keystream{
		secretSeed: secretSeed,
		publicSeed: publicSeed,
		sequence:   sequence,
	}
}

func (ks *Keystream) refill() {
	message := fmt.Sprintf("%s:%d:%d", ks.publicSeed, ks.sequence, ks.block)
	mac := hmac.New(sha256.New, []byte(ks.secretSeed))
	mac.Write([]byte(message))
	ks.buf = append(ks.buf, mac.Sum(nil)...)
	ks.block++
}

// Float returns the next value in [0,1).
func (ks *Keystream) Float() float64 {
	if len(ks.buf) < 4 {
		ks.refill()
	}
	n := binary.BigEndian.Uint32(ks.buf[:4])
	ks.buf = ks.buf[4:]
	return float64(n) / (1 << 32)
}
