package models

import (
	"time"

	"fairmines/internal/fair"
)

type RoundStatus string

const (
	RoundPending   RoundStatus = "pending"
	RoundActive    RoundStatus = "active"
	RoundBusted    RoundStatus = "busted"
	RoundCashedOut RoundStatus = "cashed_out"
)

type TileState string

const (
	TileHidden         TileState = "hidden"
	TileRevealedSafe   TileState = "safe"
	TileRevealedHazard TileState = "hazard"
)

// Round is the unit of play. The hazard set is fixed at creation, before
// any reveal is accepted, and is fully determined by (SecretSeed,
// PublicSeed, Sequence). SecretSeed stays hidden until the round settles;
// Commitment is published at start so the seed can be checked afterwards.
type Round struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`

	SecretSeed  string       `json:"-"`
	Commitment  string       `json:"commitment"`
	PublicSeed  string       `json:"public_seed"`
	Sequence    int64        `json:"sequence"`
	HazardCount int          `json:"hazard_count"`
	HazardSet   map[int]bool `json:"-"`

	RevealedSafe []int   `json:"revealed_safe"`
	Bet          float64 `json:"bet"`
	HouseEdgePct float64 `json:"house_edge_pct"`

	Status    RoundStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	SettledAt time.Time   `json:"settled_at,omitempty"`
}

func (r *Round) Active() bool {
	return r.Status == RoundActive
}

func (r *Round) Settled() bool {
	return r.Status == RoundBusted || r.Status == RoundCashedOut
}

// Revealed reports whether the tile was already revealed this round.
func (r *Round) Revealed(index int) bool {
	for _, pos := range r.RevealedSafe {
		if pos == index {
			return true
		}
	}
	return false
}

// CurrentMultiplier is the payout multiplier at the round's current
// depth, recomputed from the exact pick probability.
func (r *Round) CurrentMultiplier() float64 {
	return fair.Multiplier(len(r.RevealedSafe), r.HazardCount, r.HouseEdgePct)
}

// Board derives per-tile state from the hazard set and the reveal
// history. Unrevealed hazards stay hidden until the round settles, so an
// active round leaks nothing about mine positions.
func (r *Round) Board() []TileState {
	board := make([]TileState, fair.BoardSize)
	for i := range board {
		board[i] = TileHidden
	}
	for _, pos := range r.RevealedSafe {
		board[pos] = TileRevealedSafe
	}
	if r.Settled() {
		for pos := range r.HazardSet {
			board[pos] = TileRevealedHazard
		}
	}
	return board
}

// HazardPositions returns the mine positions in ascending order, for
// settlement views and verification output.
func (r *Round) HazardPositions() []int {
	return SortedPositions(r.HazardSet)
}
