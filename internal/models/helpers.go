package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
)

const (
	MinHazards = 1
	MaxHazards = 24

	// House edge accepted at round start. The payout formula itself
	// tolerates up to 99 but nothing above this is offered.
	MaxHouseEdgePct = 10
)

// GeneratePublicSeed returns a random default public seed for players
// who don't supply their own.
func GeneratePublicSeed() (string, error) {
	bytes := make([]byte, 16) // 128 bits of entropy
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate public seed: %v", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Normalize clamps every configuration field to its allowed range.
// Invalid configuration is corrected, never fatal: a bet outside
// [minBet, maxBet] moves to the nearest bound, hazard count to [1,24]
// and house edge to [0,10] percent.
func (r *StartRoundRequest) Normalize(minBet, maxBet float64) {
	if r.Bet < minBet {
		r.Bet = minBet
	}
	if r.Bet > maxBet {
		r.Bet = maxBet
	}
	if r.HazardCount < MinHazards {
		r.HazardCount = MinHazards
	}
	if r.HazardCount > MaxHazards {
		r.HazardCount = MaxHazards
	}
	if r.HouseEdgePct < 0 {
		r.HouseEdgePct = 0
	}
	if r.HouseEdgePct > MaxHouseEdgePct {
		r.HouseEdgePct = MaxHouseEdgePct
	}
}

// SortedPositions flattens a position set into ascending order.
func SortedPositions(set map[int]bool) []int {
	positions := make([]int, 0, len(set))
	for pos := range set {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

func FormatCurrency(cents float64) string {
	return fmt.Sprintf("$%.2f", cents/100)
}
