package fair

import (
	"math"
	"testing"
)

const (
	testSecret = "fb30c5e2bbd8537b76c6df8e8e86533121cbeeae0bda9d306117147e656ad46e"
	testPublic = "provably-fair-demo"
)

func TestKeystream_KnownVector(t *testing.T) {
	// First ten floats for the fixed (secret, public, 7) triple,
	// computed independently from the HMAC-SHA256 definition.
	expected := []float64{
		0.34086727211251855,
		0.3765950358938426,
		0.03929919586516917,
		0.4162635018583387,
		0.3633026322349906,
		0.9032295153010637,
		0.36546928877942264,
		0.1937493693549186,
		0.1582486431580037,
		0.6889140517450869,
	}

	ks := NewKeystream(testSecret, testPublic, 7)
	for i, want := range expected {
		got := ks.Float()
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("float %d: expected %.17f, got %.17f", i, want, got)
		}
	}
}

func TestKeystream_Deterministic(t *testing.T) {
	a := NewKeystream(testSecret, testPublic, 1)
	b := NewKeystream(testSecret, testPublic, 1)

	// 9 draws crosses the 32-byte block boundary after the 8th float,
	// so the refill path is covered too.
	for i := 0; i < 9; i++ {
		va, vb := a.Float(), b.Float()
		if va != vb {
			t.Errorf("draw %d: streams diverged, %.17f vs %.17f", i, va, vb)
		}
	}
}

func TestKeystream_Range(t *testing.T) {
	ks := NewKeystream(testSecret, testPublic, 42)
	for i := 0; i < 1000; i++ {
		f := ks.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("draw %d: %v outside [0,1)", i, f)
		}
	}
}

func TestKeystream_InputsChangeStream(t *testing.T) {
	base := NewKeystream(testSecret, testPublic, 1).Float()

	t.Run("sequence", func(t *testing.T) {
		if NewKeystream(testSecret, testPublic, 2).Float() == base {
			t.Error("different sequence should change the stream")
		}
	})

	t.Run("public seed", func(t *testing.T) {
		if NewKeystream(testSecret, "other-public", 1).Float() == base {
			t.Error("different public seed should change the stream")
		}
	})

	t.Run("secret seed", func(t *testing.T) {
		other, err := GenerateSecretSeed()
		if err != nil {
			t.Fatalf("failed to generate seed: %v", err)
		}
		if NewKeystream(other, testPublic, 1).Float() == base {
			t.Error("different secret should change the stream")
		}
	})
}
