package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/repository"
)

// ProductHandler handles the non-SanMar product CRUD endpoints.
type ProductHandler struct {
	repo *repository.ProductRepository
}

// NewProductHandler creates a new product handler.
func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List handles GET /api/v1/products?category=
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.repo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list products",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/v1/products/:style
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.repo.GetByStyle(c.Request.Context(), c.Param("style"))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}
	if err := h.repo.Create(c.Request.Context(), input); err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, input)
}

// Update handles PUT /api/v1/products/:style
func (h *ProductHandler) Update(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}
	if err := h.repo.Update(c.Request.Context(), c.Param("style"), input); err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// Delete handles DELETE /api/v1/products/:style
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("style")); err != nil {
		respondProductError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondProductError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Product operation failed",
		"message": err.Error(),
	})
}
