package game

import "errors"

// Rejections are side-effect-free: a call that returns one of these has
// mutated neither the round nor the balance.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoRound             = errors.New("no round for this session")
	ErrRoundNotActive      = errors.New("round is not active")
	ErrRoundActive         = errors.New("round is still active")
	ErrNoSafeReveals       = errors.New("cash out requires at least one safe reveal")
	ErrTileRevealed        = errors.New("tile already revealed")
	ErrTileOutOfRange      = errors.New("tile index out of range")
)
