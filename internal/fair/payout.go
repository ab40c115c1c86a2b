package fair

import "math"

// SafePickProbability is the exact chance of revealing r safe tiles in a
// row, drawing without replacement from a 25-tile board holding the given
// hazard count. r <= 0 is certain. Once the safe tiles are exhausted the
// probability is exactly zero; the loop short-circuits rather than let
// the product go negative.
func SafePickProbability(r, hazards int) float64 {
	if r <= 0 {
		return 1
	}

	p := 1.0
	for i := 0; i < r; i++ {
		safeLeft := BoardSize - hazards - i
		if safeLeft <= 0 {
			return 0
		}
		p *= float64(safeLeft) / float64(BoardSize-i)
	}
	return p
}

// Multiplier returns the payout multiplier after r safe reveals:
// (1 - edge) / P(r safe picks). houseEdgePct is clamped into [0, 99].
// An impossible extraction yields +Inf, the sentinel for "no safe
// cash-out exists at this depth". For fixed hazards and edge the result
// is non-decreasing in r.
func Multiplier(r, hazards int, houseEdgePct float64) float64 {
	if r <= 0 {
		return 1
	}

	p := SafePickProbability(r, hazards)
	if p == 0 {
		return math.Inf(1)
	}

	if houseEdgePct < 0 {
		houseEdgePct = 0
	}
	if houseEdgePct > 99 {
		houseEdgePct = 99
	}

	return (1 - houseEdgePct/100) / p
}
