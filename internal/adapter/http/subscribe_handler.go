package http

import (
	"context"
	"net/http"
	"time"

	"github.com/amanmaurya001/backend-test/internal/usecase"
	"github.com/gin-gonic/gin"
)

type SubscribeHandler struct {
	subscribe *usecase.Subscribe
}

func NewSubscribeHandler(subscribe *usecase.Subscribe) *SubscribeHandler {
	return &SubscribeHandler{subscribe: subscribe}
}

type subscribeReq struct {
	Email string `json:"email" binding:"required"`
}

func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.subscribe.Execute(ctx, req.Email); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": true})
}
