package game

import "fairmines/internal/models"

// Broadcaster pushes round events to whatever display layer is attached.
// The engine never waits on it; implementations must not block.
type Broadcaster interface {
	RoundStarted(sessionID string, view *models.CommitmentView)
	TileRevealed(sessionID string, outcome *models.TileOutcome)
	RoundSettled(sessionID string, view *models.SettlementView)
	BalanceChanged(sessionID string, balance float64)
}

type nopBroadcaster struct{}

func (nopBroadcaster) RoundStarted(string, *models.CommitmentView) {}
func (nopBroadcaster) TileRevealed(string, *models.TileOutcome)    {}
func (nopBroadcaster) RoundSettled(string, *models.SettlementView) {}
func (nopBroadcaster) BalanceChanged(string, float64)              {}
