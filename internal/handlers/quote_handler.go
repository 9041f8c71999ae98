package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/repository"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/services"
)

// QuoteHandler handles quote retrieval and order push HTTP requests.
type QuoteHandler struct {
	quotes *services.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(quotes *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// GetQuote handles GET /api/v1/quotes/:quoteID
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	detail, err := h.quotes.GetQuote(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PreviewOrder handles GET /api/v1/quotes/:quoteID/order
func (h *QuoteHandler) PreviewOrder(c *gin.Context) {
	order, err := h.quotes.PreviewOrder(c.Request.Context(), c.Param("quoteID"), isTestRequest(c))
	if err != nil {
		respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PushOrder handles POST /api/v1/quotes/:quoteID/push
func (h *QuoteHandler) PushOrder(c *gin.Context) {
	outcome, err := h.quotes.PushQuote(c.Request.Context(), c.Param("quoteID"), isTestRequest(c))
	if err != nil {
		respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// isTestRequest reads the ?test flag; test pushes get the TEST- order prefix.
func isTestRequest(c *gin.Context) bool {
	switch c.Query("test") {
	case "1", "true", "yes":
		return true
	}
	return false
}

func respondQuoteError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Quote not found",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to process quote",
		"message": err.Error(),
	})
}
