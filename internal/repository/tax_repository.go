package repository

import (
	"context"
	"fmt"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/caspio"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

// TaxRepository manages the Caspio tax-rates fallback table.
type TaxRepository struct {
	client *caspio.Client
	table  string
}

// NewTaxRepository creates a tax repository over the given table.
func NewTaxRepository(client *caspio.Client, table string) *TaxRepository {
	return &TaxRepository{client: client, table: table}
}

// GetRateByZip fetches the stored rate for one ZIP code.
func (r *TaxRepository) GetRateByZip(ctx context.Context, zip string) (*models.TaxRate, error) {
	var rates []models.TaxRate
	q := caspio.Query{Where: whereEquals("ZipCode", zip), Limit: 1}
	if err := r.client.GetRecords(ctx, r.table, q, &rates); err != nil {
		return nil, fmt.Errorf("get tax rate %s: %w", zip, err)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("tax rate %s: %w", zip, ErrNotFound)
	}
	return &rates[0], nil
}

// List fetches all stored rates.
func (r *TaxRepository) List(ctx context.Context) ([]models.TaxRate, error) {
	var rates []models.TaxRate
	if err := r.client.GetRecords(ctx, r.table, caspio.Query{OrderBy: "ZipCode ASC"}, &rates); err != nil {
		return nil, fmt.Errorf("list tax rates: %w", err)
	}
	return rates, nil
}

// Upsert writes a rate row, updating in place when the ZIP already exists.
func (r *TaxRepository) Upsert(ctx context.Context, rate models.TaxRate) error {
	affected, err := r.client.UpdateRecords(ctx, r.table, whereEquals("ZipCode", rate.ZipCode), rate)
	if err != nil {
		return fmt.Errorf("update tax rate %s: %w", rate.ZipCode, err)
	}
	if affected > 0 {
		return nil
	}
	if err := r.client.InsertRecord(ctx, r.table, rate); err != nil {
		return fmt.Errorf("insert tax rate %s: %w", rate.ZipCode, err)
	}
	return nil
}

// Delete removes the rate row for one ZIP code.
func (r *TaxRepository) Delete(ctx context.Context, zip string) error {
	affected, err := r.client.DeleteRecords(ctx, r.table, whereEquals("ZipCode", zip))
	if err != nil {
		return fmt.Errorf("delete tax rate %s: %w", zip, err)
	}
	if affected == 0 {
		return fmt.Errorf("tax rate %s: %w", zip, ErrNotFound)
	}
	return nil
}
