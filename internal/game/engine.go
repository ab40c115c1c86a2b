package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"fairmines/internal/fair"
	"fairmines/internal/models"
)

// Limits bounds the bet accepted at round start. Out-of-range bets are
// clamped, not rejected.
type Limits struct {
	MinBet float64
	MaxBet float64
}

// Engine owns one round per session and drives it through the
// commit-reveal lifecycle: StartRound publishes a commitment, RevealTile
// checks picks against the pre-derived hazard set, CashOut and busts
// settle the round and reveal the secret.
//
// A single mutex covers every operation, which also enforces the
// ordering guarantee that the hazard set is fully derived before any
// reveal is accepted.
type Engine struct {
	store  Store
	events Broadcaster
	limits Limits

	mu     sync.Mutex
	rounds map[string]*models.Round
}

func NewEngine(store Store, events Broadcaster, limits Limits) *Engine {
	if events == nil {
		events = nopBroadcaster{}
	}
	return &Engine{
		store:  store,
		events: events,
		limits: limits,
		rounds: make(map[string]*models.Round),
	}
}

// StartRound debits the bet, generates the round secret, publishes its
// commitment and fixes the hazard set. Starting a new round discards the
// session's previous round. On any failure after the debit the bet is
// refunded, so rejection paths leave the balance untouched.
func (e *Engine) StartRound(ctx context.Context, sessionID string, req *models.StartRoundRequest) (*models.CommitmentView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	req.Normalize(e.limits.MinBet, e.limits.MaxBet)

	publicSeed := req.PublicSeed
	if publicSeed == "" {
		var err error
		publicSeed, err = models.GeneratePublicSeed()
		if err != nil {
			return nil, err
		}
	}

	secretSeed, err := fair.GenerateSecretSeed()
	if err != nil {
		return nil, err
	}

	balance, err := e.store.Debit(ctx, sessionID, req.Bet)
	if err != nil {
		return nil, fmt.Errorf("failed to place bet: %w", err)
	}

	sequence, err := e.store.NextSequence(ctx, sessionID)
	if err != nil {
		// Nothing is committed yet, so refund the debit.
		if _, refundErr := e.store.Credit(ctx, sessionID, req.Bet); refundErr != nil {
			log.Printf("Failed to refund bet for session %s: %v", sessionID, refundErr)
		}
		return nil, fmt.Errorf("failed to allocate sequence number: %w", err)
	}

	round := &models.Round{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		SecretSeed:   secretSeed,
		Commitment:   fair.Commitment(secretSeed),
		PublicSeed:   publicSeed,
		Sequence:     sequence,
		HazardCount:  req.HazardCount,
		HazardSet:    fair.HazardSet(secretSeed, publicSeed, sequence, req.HazardCount),
		Bet:          req.Bet,
		HouseEdgePct: req.HouseEdgePct,
		Status:       models.RoundActive,
		CreatedAt:    time.Now(),
	}
	e.rounds[sessionID] = round

	view := &models.CommitmentView{
		RoundID:      round.ID,
		Commitment:   round.Commitment,
		PublicSeed:   round.PublicSeed,
		Sequence:     round.Sequence,
		HazardCount:  round.HazardCount,
		Bet:          round.Bet,
		HouseEdgePct: round.HouseEdgePct,
		Balance:      balance,
	}

	e.events.RoundStarted(sessionID, view)
	e.events.BalanceChanged(sessionID, balance)

	return view, nil
}

// RevealTile checks one pick against the hazard set. A safe pick appends
// to the reveal history and recomputes the multiplier; a hazard busts
// the round and discloses the secret and every mine position. Reveals on
// an inactive round are rejected as no-ops.
func (e *Engine) RevealTile(ctx context.Context, sessionID string, index int) (*models.TileOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	round, ok := e.rounds[sessionID]
	if !ok {
		return nil, ErrNoRound
	}
	if !round.Active() {
		return nil, fmt.Errorf("%w: status %s", ErrRoundNotActive, round.Status)
	}
	if index < 0 || index >= fair.BoardSize {
		return nil, fmt.Errorf("%w: %d", ErrTileOutOfRange, index)
	}
	if round.Revealed(index) {
		return nil, fmt.Errorf("%w: %d", ErrTileRevealed, index)
	}

	if round.HazardSet[index] {
		round.Status = models.RoundBusted
		round.SettledAt = time.Now()

		outcome := &models.TileOutcome{
			RoundID:         round.ID,
			Index:           index,
			IsHazard:        true,
			Multiplier:      0,
			SafeReveals:     len(round.RevealedSafe),
			Board:           round.Board(),
			GameOver:        true,
			Status:          round.Status,
			HazardPositions: round.HazardPositions(),
			SecretSeed:      round.SecretSeed,
		}

		balance, _ := e.store.Balance(ctx, sessionID)
		e.events.TileRevealed(sessionID, outcome)
		e.events.RoundSettled(sessionID, e.settlementView(round, 0, balance))

		return outcome, nil
	}

	round.RevealedSafe = append(round.RevealedSafe, index)

	outcome := &models.TileOutcome{
		RoundID:     round.ID,
		Index:       index,
		IsHazard:    false,
		Multiplier:  round.CurrentMultiplier(),
		SafeReveals: len(round.RevealedSafe),
		Board:       round.Board(),
		Status:      round.Status,
	}

	e.events.TileRevealed(sessionID, outcome)

	return outcome, nil
}

// CashOut settles an active round at the current multiplier and reveals
// the secret. Rejected when nothing safe has been revealed yet; the
// reject leaves the round active and the balance untouched.
func (e *Engine) CashOut(ctx context.Context, sessionID string) (*models.SettlementView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	round, ok := e.rounds[sessionID]
	if !ok {
		return nil, ErrNoRound
	}
	if !round.Active() {
		return nil, fmt.Errorf("%w: status %s", ErrRoundNotActive, round.Status)
	}
	if len(round.RevealedSafe) == 0 {
		return nil, ErrNoSafeReveals
	}

	multiplier := round.CurrentMultiplier()
	payout := round.Bet * multiplier

	balance, err := e.store.Credit(ctx, sessionID, payout)
	if err != nil {
		return nil, fmt.Errorf("failed to credit payout: %w", err)
	}

	round.Status = models.RoundCashedOut
	round.SettledAt = time.Now()

	view := e.settlementView(round, payout, balance)
	view.Multiplier = multiplier

	e.events.RoundSettled(sessionID, view)
	e.events.BalanceChanged(sessionID, balance)

	return view, nil
}

func (e *Engine) settlementView(round *models.Round, payout, balance float64) *models.SettlementView {
	return &models.SettlementView{
		RoundID:         round.ID,
		Status:          round.Status,
		Payout:          payout,
		SafeReveals:     len(round.RevealedSafe),
		Balance:         balance,
		SecretSeed:      round.SecretSeed,
		Commitment:      round.Commitment,
		PublicSeed:      round.PublicSeed,
		Sequence:        round.Sequence,
		HazardPositions: round.HazardPositions(),
	}
}

// CleanupStaleRounds drops rounds no session will come back for:
// settled rounds whose reveal record is older than maxAge, and active
// rounds abandoned for longer than maxAge. Returns how many were
// removed.
func (e *Engine) CleanupStaleRounds(maxAge time.Duration) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := 0
	for sessionID, round := range e.rounds {
		stale := false
		if round.Settled() {
			stale = time.Since(round.SettledAt) > maxAge
		} else {
			stale = time.Since(round.CreatedAt) > maxAge
		}
		if stale {
			delete(e.rounds, sessionID)
			removed++
		}
	}

	return removed
}

// VerifyCommitment replays the session's settled round: it rehashes the
// revealed secret against the published commitment and re-derives the
// hazard set from the public inputs. Rejected while the round is still
// active, since the secret is not yet revealable.
func (e *Engine) VerifyCommitment(sessionID string) (*models.VerificationView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	round, ok := e.rounds[sessionID]
	if !ok {
		return nil, ErrNoRound
	}
	if !round.Settled() {
		return nil, fmt.Errorf("%w: secret is not revealed before settlement", ErrRoundActive)
	}

	view := VerifyRound(round.SecretSeed, round.PublicSeed, round.Sequence, round.HazardCount, round.Commitment)

	// Cross-check the re-derivation against the set the round played.
	reproduced := len(view.DerivedHazards) == len(round.HazardSet)
	for _, pos := range view.DerivedHazards {
		if !round.HazardSet[pos] {
			reproduced = false
		}
	}
	view.HazardsReproduced = reproduced

	return view, nil
}

// VerifyRound is the stateless verifier: anyone holding a settled
// round's public record can re-derive the hazard set and check the
// commitment without trusting this process. A false Valid is the
// cheating signal, reported as data rather than an error.
func VerifyRound(secretSeed, publicSeed string, sequence int64, hazardCount int, commitment string) *models.VerificationView {
	derived := fair.HazardSet(secretSeed, publicSeed, sequence, hazardCount)

	return &models.VerificationView{
		Valid:            fair.VerifyCommitment(secretSeed, commitment),
		SecretSeed:       secretSeed,
		Commitment:       commitment,
		RecomputedDigest: fair.Commitment(secretSeed),
		PublicSeed:       publicSeed,
		Sequence:         sequence,
		HazardCount:      hazardCount,
		DerivedHazards:   models.SortedPositions(derived),
	}
}

// CurrentRound returns the sanitized state of the session's round. The
// secret and the mine positions only appear once the round has settled.
func (e *Engine) CurrentRound(sessionID string) (*models.RoundView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	round, ok := e.rounds[sessionID]
	if !ok {
		return nil, ErrNoRound
	}

	view := &models.RoundView{
		RoundID:      round.ID,
		Status:       round.Status,
		Commitment:   round.Commitment,
		PublicSeed:   round.PublicSeed,
		Sequence:     round.Sequence,
		HazardCount:  round.HazardCount,
		Bet:          round.Bet,
		HouseEdgePct: round.HouseEdgePct,
		SafeReveals:  len(round.RevealedSafe),
		Multiplier:   round.CurrentMultiplier(),
		Board:        round.Board(),
	}
	if round.Settled() {
		view.SecretSeed = round.SecretSeed
		view.HazardPositions = round.HazardPositions()
	}

	return view, nil
}
