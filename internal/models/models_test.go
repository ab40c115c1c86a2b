package models_test

import (
	"testing"

	"fairmines/internal/fair"
	"fairmines/internal/models"
)

func TestStartRoundRequestNormalize(t *testing.T) {
	t.Run("in-range values untouched", func(t *testing.T) {
		req := &models.StartRoundRequest{Bet: 500, HazardCount: 3, HouseEdgePct: 1}
		req.Normalize(1, 10000)

		if req.Bet != 500 || req.HazardCount != 3 || req.HouseEdgePct != 1 {
			t.Errorf("valid request was modified: %+v", req)
		}
	})

	t.Run("clamps to nearest bound", func(t *testing.T) {
		req := &models.StartRoundRequest{Bet: -5, HazardCount: 40, HouseEdgePct: 55}
		req.Normalize(1, 10000)

		if req.Bet != 1 {
			t.Errorf("expected bet clamped to 1, got %f", req.Bet)
		}
		if req.HazardCount != models.MaxHazards {
			t.Errorf("expected hazard count clamped to %d, got %d", models.MaxHazards, req.HazardCount)
		}
		if req.HouseEdgePct != models.MaxHouseEdgePct {
			t.Errorf("expected house edge clamped to %d, got %f", models.MaxHouseEdgePct, req.HouseEdgePct)
		}
	})

	t.Run("zero hazard count becomes one", func(t *testing.T) {
		req := &models.StartRoundRequest{Bet: 100}
		req.Normalize(1, 10000)

		if req.HazardCount != models.MinHazards {
			t.Errorf("expected hazard count %d, got %d", models.MinHazards, req.HazardCount)
		}
	})
}

func TestRoundBoard(t *testing.T) {
	round := &models.Round{
		HazardCount:  2,
		HazardSet:    map[int]bool{4: true, 20: true},
		RevealedSafe: []int{0, 7},
		Status:       models.RoundActive,
	}

	board := round.Board()
	if len(board) != fair.BoardSize {
		t.Fatalf("expected %d tiles, got %d", fair.BoardSize, len(board))
	}

	if board[0] != models.TileRevealedSafe || board[7] != models.TileRevealedSafe {
		t.Error("revealed tiles should show as safe")
	}

	// Hazards stay hidden while the round is live.
	if board[4] != models.TileHidden || board[20] != models.TileHidden {
		t.Error("active round must not disclose hazard positions")
	}

	round.Status = models.RoundBusted
	board = round.Board()
	if board[4] != models.TileRevealedHazard || board[20] != models.TileRevealedHazard {
		t.Error("settled round should disclose hazard positions")
	}
}

func TestGeneratePublicSeed(t *testing.T) {
	seed, err := models.GeneratePublicSeed()
	if err != nil {
		t.Fatalf("failed to generate public seed: %v", err)
	}
	if seed == "" {
		t.Error("public seed should not be empty")
	}

	other, _ := models.GeneratePublicSeed()
	if seed == other {
		t.Error("two generated public seeds should not collide")
	}
}
