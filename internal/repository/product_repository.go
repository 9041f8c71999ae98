package repository

import (
	"context"
	"fmt"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/caspio"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

// ProductRepository manages the non-SanMar products table.
type ProductRepository struct {
	client *caspio.Client
	table  string
}

// NewProductRepository creates a product repository over the given table.
func NewProductRepository(client *caspio.Client, table string) *ProductRepository {
	return &ProductRepository{client: client, table: table}
}

// List fetches products, optionally filtered by category.
func (r *ProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	q := caspio.Query{OrderBy: "StyleNumber ASC"}
	if category != "" {
		q.Where = whereEquals("Category", category)
	}
	var products []models.Product
	if err := r.client.GetRecords(ctx, r.table, q, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByStyle fetches one product by style number.
func (r *ProductRepository) GetByStyle(ctx context.Context, styleNumber string) (*models.Product, error) {
	var products []models.Product
	q := caspio.Query{Where: whereEquals("StyleNumber", styleNumber), Limit: 1}
	if err := r.client.GetRecords(ctx, r.table, q, &products); err != nil {
		return nil, fmt.Errorf("get product %s: %w", styleNumber, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product %s: %w", styleNumber, ErrNotFound)
	}
	return &products[0], nil
}

// Create inserts a new product row.
func (r *ProductRepository) Create(ctx context.Context, input models.ProductInput) error {
	if err := r.client.InsertRecord(ctx, r.table, input); err != nil {
		return fmt.Errorf("create product %s: %w", input.StyleNumber, err)
	}
	return nil
}

// Update rewrites the product row for one style number.
func (r *ProductRepository) Update(ctx context.Context, styleNumber string, input models.ProductInput) error {
	affected, err := r.client.UpdateRecords(ctx, r.table, whereEquals("StyleNumber", styleNumber), input)
	if err != nil {
		return fmt.Errorf("update product %s: %w", styleNumber, err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", styleNumber, ErrNotFound)
	}
	return nil
}

// Delete removes the product row for one style number.
func (r *ProductRepository) Delete(ctx context.Context, styleNumber string) error {
	affected, err := r.client.DeleteRecords(ctx, r.table, whereEquals("StyleNumber", styleNumber))
	if err != nil {
		return fmt.Errorf("delete product %s: %w", styleNumber, err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", styleNumber, ErrNotFound)
	}
	return nil
}
