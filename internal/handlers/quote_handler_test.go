package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/shopworks"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/config"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/repository"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/services"
)

type fakeQuoteStore struct {
	sessions map[string]*models.QuoteSession
	items    map[string][]models.QuoteItem
}

func (f *fakeQuoteStore) GetSession(ctx context.Context, quoteID string) (*models.QuoteSession, error) {
	if s, ok := f.sessions[quoteID]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeQuoteStore) GetItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	return f.items[quoteID], nil
}

type fakePusher struct {
	enabled bool
	result  *shopworks.PushResult
}

func (f *fakePusher) Enabled() bool { return f.enabled }

func (f *fakePusher) PushOrder(ctx context.Context, order *models.PushOrder) (*shopworks.PushResult, error) {
	return f.result, nil
}

func newQuoteRouter(store services.QuoteStore, pusher services.OrderPusher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	svc := services.NewQuoteService(store, pusher, services.NewPushTransformer(config.DefaultShopWorks()), log)
	h := NewQuoteHandler(svc)

	router := gin.New()
	router.GET("/api/v1/quotes/:quoteID", h.GetQuote)
	router.GET("/api/v1/quotes/:quoteID/order", h.PreviewOrder)
	router.POST("/api/v1/quotes/:quoteID/push", h.PushOrder)
	return router
}

func seededStore() *fakeQuoteStore {
	return &fakeQuoteStore{
		sessions: map[string]*models.QuoteSession{
			"EMB-2024-0042": {QuoteID: "EMB-2024-0042", CustomerName: "Erik Mickelson"},
		},
		items: map[string][]models.QuoteItem{
			"EMB-2024-0042": {{
				QuoteID:           "EMB-2024-0042",
				EmbellishmentType: models.EmbellishmentEmbroidery,
				StyleNumber:       "PC61",
				SizeBreakdown:     `{"M":10,"L":14}`,
			}},
		},
	}
}

func TestGetQuoteEndpoint(t *testing.T) {
	router := newQuoteRouter(seededStore(), &fakePusher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/EMB-2024-0042", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var detail services.QuoteDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "EMB-2024-0042", detail.Session.QuoteID)
	assert.Len(t, detail.Items, 1)
}

func TestGetQuoteEndpointNotFound(t *testing.T) {
	router := newQuoteRouter(seededStore(), &fakePusher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/NOPE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreviewOrderEndpoint(t *testing.T) {
	router := newQuoteRouter(seededStore(), &fakePusher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/EMB-2024-0042/order?test=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var order models.PushOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "TEST-EMB-2024-0042", order.ExtOrderID)
	assert.Len(t, order.LinesOE, 2)
	assert.Len(t, order.ShippingAddresses, 1)
}

func TestPushOrderEndpoint(t *testing.T) {
	pusher := &fakePusher{
		enabled: true,
		result:  &shopworks.PushResult{Success: true, ExtOrderID: "EMB-2024-0042", OrderID: "55123"},
	}
	router := newQuoteRouter(seededStore(), pusher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/EMB-2024-0042/push", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var outcome services.PushOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.True(t, outcome.Result.Success)
	assert.Equal(t, "EMB-2024-0042", outcome.Order.ExtOrderID)
}

func TestPushOrderEndpointDisabled(t *testing.T) {
	router := newQuoteRouter(seededStore(), &fakePusher{enabled: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/EMB-2024-0042/push", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
