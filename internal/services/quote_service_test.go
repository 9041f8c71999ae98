package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/shopworks"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/config"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

type mockQuoteStore struct {
	mock.Mock
}

func (m *mockQuoteStore) GetSession(ctx context.Context, quoteID string) (*models.QuoteSession, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuoteSession), args.Error(1)
}

func (m *mockQuoteStore) GetItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuoteItem), args.Error(1)
}

type mockOrderPusher struct {
	mock.Mock
}

func (m *mockOrderPusher) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *mockOrderPusher) PushOrder(ctx context.Context, order *models.PushOrder) (*shopworks.PushResult, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopworks.PushResult), args.Error(1)
}

func newQuoteService(store QuoteStore, pusher OrderPusher) *QuoteService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewQuoteService(store, pusher, NewPushTransformer(config.DefaultShopWorks()), log)
}

func TestGetQuote(t *testing.T) {
	store := new(mockQuoteStore)
	session := &models.QuoteSession{QuoteID: "EMB-2024-0042", CustomerName: "Erik Mickelson"}
	items := []models.QuoteItem{{QuoteID: "EMB-2024-0042", EmbellishmentType: models.EmbellishmentEmbroidery}}
	store.On("GetSession", mock.Anything, "EMB-2024-0042").Return(session, nil)
	store.On("GetItems", mock.Anything, "EMB-2024-0042").Return(items, nil)

	svc := newQuoteService(store, new(mockOrderPusher))
	detail, err := svc.GetQuote(context.Background(), "EMB-2024-0042")
	require.NoError(t, err)
	assert.Equal(t, session, detail.Session)
	assert.Len(t, detail.Items, 1)
	store.AssertExpectations(t)
}

func TestPreviewOrder(t *testing.T) {
	store := new(mockQuoteStore)
	store.On("GetSession", mock.Anything, "EMB-2024-0042").Return(
		&models.QuoteSession{QuoteID: "EMB-2024-0042", CustomerName: "Erik Mickelson"}, nil)
	store.On("GetItems", mock.Anything, "EMB-2024-0042").Return([]models.QuoteItem{}, nil)

	svc := newQuoteService(store, new(mockOrderPusher))
	order, err := svc.PreviewOrder(context.Background(), "EMB-2024-0042", true)
	require.NoError(t, err)
	assert.Equal(t, "TEST-EMB-2024-0042", order.ExtOrderID)
}

func TestPushQuote(t *testing.T) {
	store := new(mockQuoteStore)
	store.On("GetSession", mock.Anything, "EMB-2024-0042").Return(
		&models.QuoteSession{QuoteID: "EMB-2024-0042", CustomerName: "Erik Mickelson"}, nil)
	store.On("GetItems", mock.Anything, "EMB-2024-0042").Return([]models.QuoteItem{}, nil)

	pusher := new(mockOrderPusher)
	pusher.On("Enabled").Return(true)
	pusher.On("PushOrder", mock.Anything, mock.MatchedBy(func(o *models.PushOrder) bool {
		return o.ExtOrderID == "EMB-2024-0042"
	})).Return(&shopworks.PushResult{Success: true, ExtOrderID: "EMB-2024-0042", OrderID: "55123"}, nil)

	svc := newQuoteService(store, pusher)
	outcome, err := svc.PushQuote(context.Background(), "EMB-2024-0042", false)
	require.NoError(t, err)
	assert.True(t, outcome.Result.Success)
	assert.Equal(t, "55123", outcome.Result.OrderID)
	pusher.AssertExpectations(t)
}

func TestPushQuoteNotConfigured(t *testing.T) {
	pusher := new(mockOrderPusher)
	pusher.On("Enabled").Return(false)

	svc := newQuoteService(new(mockQuoteStore), pusher)
	_, err := svc.PushQuote(context.Background(), "EMB-2024-0042", false)
	assert.Error(t, err)
}

func TestPushQuoteDownstreamFailure(t *testing.T) {
	store := new(mockQuoteStore)
	store.On("GetSession", mock.Anything, "EMB-2024-0042").Return(
		&models.QuoteSession{QuoteID: "EMB-2024-0042"}, nil)
	store.On("GetItems", mock.Anything, "EMB-2024-0042").Return([]models.QuoteItem{}, nil)

	pusher := new(mockOrderPusher)
	pusher.On("Enabled").Return(true)
	pusher.On("PushOrder", mock.Anything, mock.Anything).Return(nil, errors.New("onsite unreachable"))

	svc := newQuoteService(store, pusher)
	_, err := svc.PushQuote(context.Background(), "EMB-2024-0042", false)
	assert.Error(t, err)
}
