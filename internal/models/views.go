package models

// StartRoundRequest is the inbound shape of a round start. Out-of-range
// values are clamped, not rejected; see Normalize.
type StartRoundRequest struct {
	Bet          float64 `json:"bet" binding:"required"`
	HazardCount  int     `json:"hazard_count"`
	HouseEdgePct float64 `json:"house_edge_pct"`
	PublicSeed   string  `json:"public_seed"`
}

type RevealRequest struct {
	Index *int `json:"index" binding:"required"`
}

// VerifyRequest lets a third party replay any settled round from its
// public record. All fields optional: an empty body verifies the
// caller's own last settled round.
type VerifyRequest struct {
	SecretSeed  string `json:"secret_seed"`
	PublicSeed  string `json:"public_seed"`
	Sequence    int64  `json:"sequence"`
	HazardCount int    `json:"hazard_count"`
	Commitment  string `json:"commitment"`
}

// CommitmentView is what the player sees at round start: the digest
// binding the hidden secret, plus every public input needed to replay
// the round once the secret is revealed.
type CommitmentView struct {
	RoundID      string  `json:"round_id"`
	Commitment   string  `json:"commitment"`
	PublicSeed   string  `json:"public_seed"`
	Sequence     int64   `json:"sequence"`
	HazardCount  int     `json:"hazard_count"`
	Bet          float64 `json:"bet"`
	HouseEdgePct float64 `json:"house_edge_pct"`
	Balance      float64 `json:"balance"`
}

type TileOutcome struct {
	RoundID     string      `json:"round_id"`
	Index       int         `json:"index"`
	IsHazard    bool        `json:"is_hazard"`
	Multiplier  float64     `json:"multiplier"`
	SafeReveals int         `json:"safe_reveals"`
	Board       []TileState `json:"board"`
	GameOver    bool        `json:"game_over"`
	Status      RoundStatus `json:"status"`

	// Disclosed only when the reveal hit a hazard.
	HazardPositions []int  `json:"hazard_positions,omitempty"`
	SecretSeed      string `json:"secret_seed,omitempty"`
}

type SettlementView struct {
	RoundID     string      `json:"round_id"`
	Status      RoundStatus `json:"status"`
	Multiplier  float64     `json:"multiplier"`
	Payout      float64     `json:"payout"`
	SafeReveals int         `json:"safe_reveals"`
	Balance     float64     `json:"balance"`

	// Revealed at settlement so anyone can re-derive the round.
	SecretSeed      string `json:"secret_seed"`
	Commitment      string `json:"commitment"`
	PublicSeed      string `json:"public_seed"`
	Sequence        int64  `json:"sequence"`
	HazardPositions []int  `json:"hazard_positions"`
}

// VerificationView is the result of replaying a settled round. Valid is
// a detectable-cheating signal, not an error: false means the revealed
// seed does not hash to the published commitment.
type VerificationView struct {
	Valid             bool   `json:"valid"`
	SecretSeed        string `json:"secret_seed"`
	Commitment        string `json:"commitment"`
	RecomputedDigest  string `json:"recomputed_digest"`
	PublicSeed        string `json:"public_seed"`
	Sequence          int64  `json:"sequence"`
	HazardCount       int    `json:"hazard_count"`
	DerivedHazards    []int  `json:"derived_hazards"`
	HazardsReproduced bool   `json:"hazards_reproduced,omitempty"`
}

// RoundView is the sanitized state of the session's round. The secret
// only appears once the round has settled.
type RoundView struct {
	RoundID      string      `json:"round_id"`
	Status       RoundStatus `json:"status"`
	Commitment   string      `json:"commitment"`
	PublicSeed   string      `json:"public_seed"`
	Sequence     int64       `json:"sequence"`
	HazardCount  int         `json:"hazard_count"`
	Bet          float64     `json:"bet"`
	HouseEdgePct float64     `json:"house_edge_pct"`
	SafeReveals  int         `json:"safe_reveals"`
	Multiplier   float64     `json:"multiplier"`
	Board        []TileState `json:"board"`

	SecretSeed      string `json:"secret_seed,omitempty"`
	HazardPositions []int  `json:"hazard_positions,omitempty"`
}
