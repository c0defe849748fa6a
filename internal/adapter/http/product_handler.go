package http

import (
	"context"
	"net/http"
	"time"

	"github.com/amanmaurya001/backend-test/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog usecase.CatalogRepo
}

func NewProductHandler(catalog usecase.CatalogRepo) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	products, err := h.catalog.ListAll(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	code := c.Param("code")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	p, err := h.catalog.FindByCode(ctx, code)
	if err != nil {
		writeError(c, err)
		return
	}
	if p == nil {
		writeError(c, usecase.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}
