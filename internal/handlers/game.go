package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fairmines/internal/game"
	"fairmines/internal/models"
)

type GameHandler struct {
	engine *game.Engine
	store  game.Store
}

func NewGameHandler(engine *game.Engine, store game.Store) *GameHandler {
	return &GameHandler{
		engine: engine,
		store:  store,
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrNoRound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrRoundNotActive),
		errors.Is(err, game.ErrRoundActive),
		errors.Is(err, game.ErrNoSafeReveals),
		errors.Is(err, game.ErrTileRevealed):
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *GameHandler) StartRound(c *gin.Context) {
	var req models.StartRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	view, err := h.engine.StartRound(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"round":   view,
	})
}

func (h *GameHandler) RevealTile(c *gin.Context) {
	var req models.RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	outcome, err := h.engine.RevealTile(c.Request.Context(), sessionID(c), *req.Index)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  outcome,
	})
}

func (h *GameHandler) CashOut(c *gin.Context) {
	settlement, err := h.engine.CashOut(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  settlement,
	})
}

func (h *GameHandler) CurrentRound(c *gin.Context) {
	view, err := h.engine.CurrentRound(sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"round":   view,
	})
}

// Verify replays a settled round. With an empty body it verifies the
// caller's own last settled round; with an explicit public record it
// acts as a third-party verifier and touches no session state.
func (h *GameHandler) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if req.SecretSeed != "" {
		view := game.VerifyRound(req.SecretSeed, req.PublicSeed, req.Sequence, req.HazardCount, req.Commitment)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"verification": view,
		})
		return
	}

	view, err := h.engine.VerifyCommitment(sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"verification": view,
	})
}

func (h *GameHandler) GetBalance(c *gin.Context) {
	balance, err := h.store.Balance(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get balance",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": balance,
	})
}
