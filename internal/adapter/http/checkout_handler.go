package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/amanmaurya001/backend-test/internal/adapter/http/middleware"
	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/amanmaurya001/backend-test/internal/logging"
	"github.com/amanmaurya001/backend-test/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	price   *usecase.PriceCart
	confirm *usecase.ConfirmOrder
}

func NewCheckoutHandler(price *usecase.PriceCart, confirm *usecase.ConfirmOrder) *CheckoutHandler {
	return &CheckoutHandler{price: price, confirm: confirm}
}

type priceCartReq struct {
	Cart    []domain.SubmittedItem `json:"cart" binding:"required"`
	Address domain.Address         `json:"address" binding:"required"`
}

// POST /v1/checkout/price
// Prices a cart against the catalog and returns the order summary together
// with its integrity digest. The client holds both until confirm.
func (h *CheckoutHandler) PriceCart(c *gin.Context) {
	var req priceCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	out, err := h.price.Execute(ctx, usecase.PriceCartInput{
		Items:   req.Cart,
		Address: req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": out.Order, "digest": out.Digest})
}

type confirmOrderReq struct {
	Order  domain.OrderSummary `json:"order" binding:"required"`
	Digest string              `json:"digest" binding:"required"`
}

// POST /v1/checkout/confirm
// Re-verifies the echoed summary against its digest and persists it.
func (h *CheckoutHandler) ConfirmOrder(c *gin.Context) {
	var req confirmOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	out, err := h.confirm.Execute(ctx, usecase.ConfirmOrderInput{
		ClientID: c.GetString(middleware.ClientIDKey),
		Order:    req.Order,
		Digest:   req.Digest,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"orderId": out.OrderID})
}

// writeError maps usecase sentinel errors to statuses. Anything unrecognized
// is an internal failure and gets a generic message only: raw storage errors
// never reach the caller.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, usecase.ErrIntegrityViolation):
		c.JSON(http.StatusConflict, gin.H{"error": "integrity_violation"})
	default:
		logging.From(c).Error("request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
