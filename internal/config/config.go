package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the pricing proxy.
type Config struct {
	// Server
	Port        string
	Environment string

	// Caspio
	CaspioAccountDomain string // e.g. c3eku948.caspio.com
	CaspioAccessToken   string
	CaspioPageSize      int
	CaspioRateLimit     int // requests per second

	// Caspio table names
	QuoteSessionsTable string
	QuoteItemsTable    string
	TaxRatesTable      string
	ProductsTable      string

	// ShopWorks order push
	ShopWorksBaseURL string
	ShopWorksAPIKey  string

	// WA Department of Revenue rate lookup
	DORBaseURL     string
	DefaultTaxRate float64
	TaxCacheTTL    time.Duration

	// Redis (optional; in-process cache when unset)
	RedisURL string

	// HTTP client timeouts
	ClientTimeout time.Duration
}

// Load loads configuration from the environment, reading .env first when
// present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	config := &Config{
		Port:        getEnv("PORT", "3002"),
		Environment: getEnv("ENVIRONMENT", "development"),

		CaspioAccountDomain: getEnv("CASPIO_ACCOUNT_DOMAIN", ""),
		CaspioAccessToken:   getEnv("CASPIO_ACCESS_TOKEN", ""),
		CaspioPageSize:      getEnvAsInt("CASPIO_PAGE_SIZE", 1000),
		CaspioRateLimit:     getEnvAsInt("CASPIO_RATE_LIMIT", 5),

		QuoteSessionsTable: getEnv("CASPIO_QUOTE_SESSIONS_TABLE", "quote_sessions"),
		QuoteItemsTable:    getEnv("CASPIO_QUOTE_ITEMS_TABLE", "quote_items"),
		TaxRatesTable:      getEnv("CASPIO_TAX_RATES_TABLE", "tax_rates"),
		ProductsTable:      getEnv("CASPIO_PRODUCTS_TABLE", "non_sanmar_products"),

		ShopWorksBaseURL: getEnv("SHOPWORKS_BASE_URL", ""),
		ShopWorksAPIKey:  getEnv("SHOPWORKS_API_KEY", ""),

		DORBaseURL:     getEnv("WA_DOR_BASE_URL", "https://webgis.dor.wa.gov/webapi/AddressRates.aspx"),
		DefaultTaxRate: getEnvAsFloat("DEFAULT_TAX_RATE", 0.101),
		TaxCacheTTL:    getEnvAsDuration("TAX_CACHE_TTL", 24*time.Hour),

		RedisURL: getEnv("REDIS_URL", ""),

		ClientTimeout: getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 30*time.Second),
	}

	if config.CaspioAccountDomain == "" {
		log.Println("Warning: CASPIO_ACCOUNT_DOMAIN not set, Caspio-backed endpoints will fail")
	}
	if config.ShopWorksBaseURL == "" {
		log.Println("Warning: SHOPWORKS_BASE_URL not set, order push is disabled")
	}

	return config
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer with a default value
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvAsFloat gets an environment variable as a float with a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvAsDuration gets an environment variable as a duration with a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
