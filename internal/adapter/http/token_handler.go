package http

import (
	"net/http"

	"github.com/amanmaurya001/backend-test/internal/logging"
	"github.com/amanmaurya001/backend-test/internal/security"
	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	tokens *security.TokenService
}

func NewTokenHandler(tokens *security.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// POST /v1/token
// Issues a short-lived anonymous bearer token. The token authorizes whoever
// holds it; there are no accounts and no server-side sessions.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	issued, err := h.tokens.Issue()
	if err != nil {
		logging.From(c).Error("token issue failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     issued.Token,
		"tokenType": "Bearer",
		"expiresIn": int64(issued.ExpiresIn.Seconds()),
	})
}
