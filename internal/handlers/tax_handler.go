package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/repository"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/services"
)

// TaxHandler handles tax-rate lookup and the stored-rate CRUD endpoints.
type TaxHandler struct {
	taxes *services.TaxService
	repo  *repository.TaxRepository
}

// NewTaxHandler creates a new tax handler.
func NewTaxHandler(taxes *services.TaxService, repo *repository.TaxRepository) *TaxHandler {
	return &TaxHandler{taxes: taxes, repo: repo}
}

// GetRate handles GET /api/v1/tax/rate?zip=&address=&city=
func (h *TaxHandler) GetRate(c *gin.Context) {
	zip := c.Query("zip")
	if zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zip is required"})
		return
	}
	result := h.taxes.GetRate(c.Request.Context(), c.Query("address"), c.Query("city"), zip)
	c.JSON(http.StatusOK, result)
}

// ListRates handles GET /api/v1/tax-rates
func (h *TaxHandler) ListRates(c *gin.Context) {
	rates, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list tax rates",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, rates)
}

// GetStoredRate handles GET /api/v1/tax-rates/:zip
func (h *TaxHandler) GetStoredRate(c *gin.Context) {
	rate, err := h.repo.GetRateByZip(c.Request.Context(), c.Param("zip"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax rate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get tax rate",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, rate)
}

// UpsertRate handles PUT /api/v1/tax-rates/:zip
func (h *TaxHandler) UpsertRate(c *gin.Context) {
	var rate models.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}
	rate.ZipCode = c.Param("zip")

	if err := h.repo.Upsert(c.Request.Context(), rate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save tax rate",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, rate)
}

// DeleteRate handles DELETE /api/v1/tax-rates/:zip
func (h *TaxHandler) DeleteRate(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("zip")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax rate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete tax rate",
			"message": err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}
