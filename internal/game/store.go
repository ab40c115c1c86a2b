package game

import (
	"context"
	"sync"
)

// Store persists the two scalars the engine needs per session: the
// balance and the round sequence counter. Sequence numbers are monotonic
// and never reused, even across restarts when backed by redis.
type Store interface {
	// Balance returns the session's balance, creating it at the
	// starting amount if the session is new.
	Balance(ctx context.Context, sessionID string) (float64, error)

	// Debit atomically subtracts amount and returns the new balance.
	// Returns ErrInsufficientBalance, with no mutation, when the
	// balance does not cover the amount.
	Debit(ctx context.Context, sessionID string, amount float64) (float64, error)

	// Credit atomically adds amount and returns the new balance.
	Credit(ctx context.Context, sessionID string, amount float64) (float64, error)

	// NextSequence returns the next round sequence number for the
	// session, starting at 1.
	NextSequence(ctx context.Context, sessionID string) (int64, error)
}

// MemoryStore is an in-process Store for tests and single-binary demo
// runs without redis.
type MemoryStore struct {
	mu       sync.Mutex
	starting float64
	balances map[string]float64
	nonces   map[string]int64
}

func NewMemoryStore(startingBalance float64) *MemoryStore {
	return &MemoryStore{
		starting: startingBalance,
		balances: make(map[string]float64),
		nonces:   make(map[string]int64),
	}
}

func (s *MemoryStore) balance(sessionID string) float64 {
	if _, ok := s.balances[sessionID]; !ok {
		s.balances[sessionID] = s.starting
	}
	return s.balances[sessionID]
}

func (s *MemoryStore) Balance(ctx context.Context, sessionID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance(sessionID), nil
}

func (s *MemoryStore) Debit(ctx context.Context, sessionID string, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balance(sessionID)
	if balance < amount {
		return balance, ErrInsufficientBalance
	}
	s.balances[sessionID] = balance - amount
	return s.balances[sessionID], nil
}

func (s *MemoryStore) Credit(ctx context.Context, sessionID string, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[sessionID] = s.balance(sessionID) + amount
	return s.balances[sessionID], nil
}

func (s *MemoryStore) NextSequence(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nonces[sessionID]++
	return s.nonces[sessionID], nil
}
