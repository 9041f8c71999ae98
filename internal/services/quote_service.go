package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/shopworks"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

// QuoteStore supplies persisted quote data.
type QuoteStore interface {
	GetSession(ctx context.Context, quoteID string) (*models.QuoteSession, error)
	GetItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error)
}

// OrderPusher submits a transformed order downstream.
type OrderPusher interface {
	Enabled() bool
	PushOrder(ctx context.Context, order *models.PushOrder) (*shopworks.PushResult, error)
}

// QuoteService loads quotes, transforms them, and pushes the result to the
// order-management system.
type QuoteService struct {
	store       QuoteStore
	pusher      OrderPusher
	transformer *PushTransformer
	log         *logrus.Logger
}

// NewQuoteService creates a quote service.
func NewQuoteService(store QuoteStore, pusher OrderPusher, transformer *PushTransformer, log *logrus.Logger) *QuoteService {
	return &QuoteService{
		store:       store,
		pusher:      pusher,
		transformer: transformer,
		log:         log,
	}
}

// QuoteDetail bundles a session with its line items.
type QuoteDetail struct {
	Session *models.QuoteSession `json:"session"`
	Items   []models.QuoteItem   `json:"items"`
}

// GetQuote loads a quote header and its items.
func (s *QuoteService) GetQuote(ctx context.Context, quoteID string) (*QuoteDetail, error) {
	session, err := s.store.GetSession(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.GetItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return &QuoteDetail{Session: session, Items: items}, nil
}

// PreviewOrder transforms a quote without submitting it, so the frontend can
// show exactly what would be pushed.
func (s *QuoteService) PreviewOrder(ctx context.Context, quoteID string, isTest bool) (*models.PushOrder, error) {
	detail, err := s.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return s.transformer.TransformQuoteToOrder(*detail.Session, detail.Items, TransformOptions{IsTest: isTest}), nil
}

// PushOutcome is the result of a transform-and-push.
type PushOutcome struct {
	Order  *models.PushOrder     `json:"order"`
	Result *shopworks.PushResult `json:"result"`
}

// PushQuote transforms a quote and submits the order.
func (s *QuoteService) PushQuote(ctx context.Context, quoteID string, isTest bool) (*PushOutcome, error) {
	if !s.pusher.Enabled() {
		return nil, fmt.Errorf("order push is not configured")
	}

	order, err := s.PreviewOrder(ctx, quoteID, isTest)
	if err != nil {
		return nil, err
	}

	result, err := s.pusher.PushOrder(ctx, order)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"quoteId": quoteID,
			"isTest":  isTest,
		}).WithError(err).Error("Order push failed")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"quoteId":    quoteID,
		"extOrderId": order.ExtOrderID,
		"lines":      len(order.LinesOE),
		"designs":    len(order.Designs),
		"isTest":     isTest,
	}).Info("Quote pushed")
	return &PushOutcome{Order: order, Result: result}, nil
}
