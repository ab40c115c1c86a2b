package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fairmines/internal/game"
	"fairmines/internal/services"
)

type SessionHandler struct {
	jwtService *services.JWTService
	store      game.Store
}

func NewSessionHandler(jwtService *services.JWTService, store game.Store) *SessionHandler {
	return &SessionHandler{
		jwtService: jwtService,
		store:      store,
	}
}

// CreateSession issues a fresh guest session with the starting balance.
// There is no signup; the returned token is the whole identity.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sessionID := uuid.New().String()

	token, err := h.jwtService.IssueToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	balance, err := h.store.Balance(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to initialize balance",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"session_id": sessionID,
		"token":      token,
		"balance":    balance,
	})
}
