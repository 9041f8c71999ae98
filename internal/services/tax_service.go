package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/cache"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/dor"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

// RateLookup is the outbound rate-authority call.
type RateLookup interface {
	LookupRate(ctx context.Context, address, city, zip string) (*dor.RateResponse, error)
}

// RateFallback is the stored-rate table consulted when the authority is
// unreachable.
type RateFallback interface {
	GetRateByZip(ctx context.Context, zip string) (*models.TaxRate, error)
}

// TaxService resolves a sales-tax rate through a fixed chain: cache, the WA
// DOR API, the Caspio fallback table, then the configured default. A lookup
// never fails outright; the frontend always gets a usable rate plus the
// source that produced it.
type TaxService struct {
	lookup      RateLookup
	fallback    RateFallback
	cache       cache.Store
	cacheTTL    time.Duration
	defaultRate float64
	log         *logrus.Logger
}

// NewTaxService creates a tax service.
func NewTaxService(lookup RateLookup, fallback RateFallback, store cache.Store, cacheTTL time.Duration, defaultRate float64, log *logrus.Logger) *TaxService {
	return &TaxService{
		lookup:      lookup,
		fallback:    fallback,
		cache:       store,
		cacheTTL:    cacheTTL,
		defaultRate: defaultRate,
		log:         log,
	}
}

// GetRate resolves the combined sales-tax rate for an address. Only zip is
// required.
func (s *TaxService) GetRate(ctx context.Context, address, city, zip string) *models.TaxRateResult {
	cacheKey := "taxrate:" + zip

	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		if result, ok := decodeCachedRate(zip, cached); ok {
			return result
		}
	}

	if resp, err := s.lookup.LookupRate(ctx, address, city, zip); err == nil {
		result := &models.TaxRateResult{
			ZipCode:      zip,
			Rate:         resp.Rate,
			LocationCode: resp.LocationCode,
			Source:       "dor",
		}
		s.cache.Set(ctx, cacheKey, encodeCachedRate(result), s.cacheTTL)
		return result
	} else {
		s.log.WithField("zip", zip).WithError(err).Warn("DOR rate lookup failed, using fallback")
	}

	if rate, err := s.fallback.GetRateByZip(ctx, zip); err == nil {
		return &models.TaxRateResult{
			ZipCode:      zip,
			Rate:         rate.CombinedRate.Float64(),
			LocationCode: rate.LocationCode,
			Source:       "caspio",
		}
	}

	return &models.TaxRateResult{ZipCode: zip, Rate: s.defaultRate, Source: "default"}
}

// Cached entries are "rate|locationCode"; a full JSON envelope buys nothing
// for two fields.
func encodeCachedRate(result *models.TaxRateResult) string {
	return strconv.FormatFloat(result.Rate, 'f', -1, 64) + "|" + result.LocationCode
}

func decodeCachedRate(zip, cached string) (*models.TaxRateResult, bool) {
	rateStr, location, _ := strings.Cut(cached, "|")
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return nil, false
	}
	return &models.TaxRateResult{
		ZipCode:      zip,
		Rate:         rate,
		LocationCode: location,
		Source:       "cache",
	}, true
}
