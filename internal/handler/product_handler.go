package handler

import (
	"net/http"
	"strconv"

	"naijavalue/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	store repository.ProductStore
}

func NewProductHandler(store repository.ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.List(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	p, err := h.store.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
