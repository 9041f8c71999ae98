package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/cache"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/dor"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

type fakeRateLookup struct {
	resp  *dor.RateResponse
	err   error
	calls int
}

func (f *fakeRateLookup) LookupRate(ctx context.Context, address, city, zip string) (*dor.RateResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeRateFallback struct {
	rate *models.TaxRate
	err  error
}

func (f *fakeRateFallback) GetRateByZip(ctx context.Context, zip string) (*models.TaxRate, error) {
	return f.rate, f.err
}

func newTaxService(lookup RateLookup, fallback RateFallback) *TaxService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewTaxService(lookup, fallback, cache.NewMemory(), time.Hour, 0.101, log)
}

func TestTaxServiceDORLookup(t *testing.T) {
	lookup := &fakeRateLookup{resp: &dor.RateResponse{Rate: 0.094, LocationCode: "2724"}}
	svc := newTaxService(lookup, &fakeRateFallback{err: errors.New("unused")})

	result := svc.GetRate(context.Background(), "2025 Freeman Rd E", "Milton", "98354")
	require.NotNil(t, result)
	assert.Equal(t, 0.094, result.Rate)
	assert.Equal(t, "2724", result.LocationCode)
	assert.Equal(t, "dor", result.Source)
}

func TestTaxServiceCachesDORAnswer(t *testing.T) {
	lookup := &fakeRateLookup{resp: &dor.RateResponse{Rate: 0.094, LocationCode: "2724"}}
	svc := newTaxService(lookup, &fakeRateFallback{err: errors.New("unused")})

	first := svc.GetRate(context.Background(), "", "", "98354")
	second := svc.GetRate(context.Background(), "", "", "98354")

	assert.Equal(t, 1, lookup.calls, "second call must hit the cache")
	assert.Equal(t, first.Rate, second.Rate)
	assert.Equal(t, "cache", second.Source)
	assert.Equal(t, first.LocationCode, second.LocationCode)
}

func TestTaxServiceFallsBackToStoredRate(t *testing.T) {
	lookup := &fakeRateLookup{err: errors.New("dor unreachable")}
	fallback := &fakeRateFallback{rate: &models.TaxRate{
		ZipCode:      "98354",
		CombinedRate: 0.102,
		LocationCode: "2724",
	}}
	svc := newTaxService(lookup, fallback)

	result := svc.GetRate(context.Background(), "", "", "98354")
	assert.Equal(t, 0.102, result.Rate)
	assert.Equal(t, "caspio", result.Source)
}

func TestTaxServiceDefaultsWhenEverythingFails(t *testing.T) {
	lookup := &fakeRateLookup{err: errors.New("dor unreachable")}
	fallback := &fakeRateFallback{err: errors.New("caspio unreachable")}
	svc := newTaxService(lookup, fallback)

	result := svc.GetRate(context.Background(), "", "", "98354")
	assert.Equal(t, 0.101, result.Rate)
	assert.Equal(t, "default", result.Source)
	assert.Equal(t, "98354", result.ZipCode)
}

func TestCachedRateRoundTrip(t *testing.T) {
	encoded := encodeCachedRate(&models.TaxRateResult{Rate: 0.094, LocationCode: "2724"})
	result, ok := decodeCachedRate("98354", encoded)
	require.True(t, ok)
	assert.Equal(t, 0.094, result.Rate)
	assert.Equal(t, "2724", result.LocationCode)
	assert.Equal(t, "cache", result.Source)

	_, ok = decodeCachedRate("98354", "garbage")
	assert.False(t, ok)
}
