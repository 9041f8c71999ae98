// Package repository wraps the Caspio tables the proxy reads and writes.
// There is no relational database in this system; Caspio's records API is
// the store.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/caspio"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

// ErrNotFound is returned when a lookup matches no records.
var ErrNotFound = errors.New("record not found")

// QuoteRepository reads quote sessions and their line items.
type QuoteRepository struct {
	client        *caspio.Client
	sessionsTable string
	itemsTable    string
}

// NewQuoteRepository creates a quote repository over the given tables.
func NewQuoteRepository(client *caspio.Client, sessionsTable, itemsTable string) *QuoteRepository {
	return &QuoteRepository{
		client:        client,
		sessionsTable: sessionsTable,
		itemsTable:    itemsTable,
	}
}

// GetSession fetches the quote header by its QuoteID.
func (r *QuoteRepository) GetSession(ctx context.Context, quoteID string) (*models.QuoteSession, error) {
	var sessions []models.QuoteSession
	q := caspio.Query{Where: whereEquals("QuoteID", quoteID), Limit: 1}
	if err := r.client.GetRecords(ctx, r.sessionsTable, q, &sessions); err != nil {
		return nil, fmt.Errorf("get quote session %s: %w", quoteID, err)
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("quote session %s: %w", quoteID, ErrNotFound)
	}
	return &sessions[0], nil
}

// GetItems fetches all line items of a quote in line-number order.
func (r *QuoteRepository) GetItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	var items []models.QuoteItem
	q := caspio.Query{Where: whereEquals("QuoteID", quoteID), OrderBy: "LineNumber ASC"}
	if err := r.client.GetRecords(ctx, r.itemsTable, q, &items); err != nil {
		return nil, fmt.Errorf("get quote items %s: %w", quoteID, err)
	}
	return items, nil
}

// whereEquals builds a Caspio q.where equality clause, doubling embedded
// single quotes so identifiers cannot break out of the literal.
func whereEquals(field, value string) string {
	return fmt.Sprintf("%s='%s'", field, strings.ReplaceAll(value, "'", "''"))
}
