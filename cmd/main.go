package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/cache"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/caspio"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/dor"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients/shopworks"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/config"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/handlers"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/middleware"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/repository"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Outbound clients
	caspioClient := caspio.New(caspio.Options{
		AccountDomain: cfg.CaspioAccountDomain,
		AccessToken:   cfg.CaspioAccessToken,
		PageSize:      cfg.CaspioPageSize,
		RateLimit:     cfg.CaspioRateLimit,
		Timeout:       cfg.ClientTimeout,
		Logger:        logger,
	})
	shopworksClient := shopworks.New(shopworks.Options{
		BaseURL: cfg.ShopWorksBaseURL,
		APIKey:  cfg.ShopWorksAPIKey,
		Timeout: cfg.ClientTimeout,
		Logger:  logger,
	})
	dorClient := dor.New(cfg.DORBaseURL, cfg.ClientTimeout)

	// Cache: redis when configured, in-process otherwise
	var rateCache cache.Store
	if cfg.RedisURL != "" {
		var err error
		rateCache, err = cache.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: redis unavailable (%v), using in-process cache", err)
			rateCache = cache.NewMemory()
		} else {
			log.Println("Redis cache initialized")
		}
	} else {
		rateCache = cache.NewMemory()
	}

	// Repositories
	quoteRepo := repository.NewQuoteRepository(caspioClient, cfg.QuoteSessionsTable, cfg.QuoteItemsTable)
	taxRepo := repository.NewTaxRepository(caspioClient, cfg.TaxRatesTable)
	productRepo := repository.NewProductRepository(caspioClient, cfg.ProductsTable)

	// Services
	transformer := services.NewPushTransformer(config.DefaultShopWorks())
	quoteService := services.NewQuoteService(quoteRepo, shopworksClient, transformer, logger)
	taxService := services.NewTaxService(dorClient, taxRepo, rateCache, cfg.TaxCacheTTL, cfg.DefaultTaxRate, logger)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	taxHandler := handlers.NewTaxHandler(taxService, taxRepo)
	productHandler := handlers.NewProductHandler(productRepo)

	router := setupRouter(cfg, logger, healthHandler, quoteHandler, taxHandler, productHandler)

	log.Printf("Caspio pricing proxy starting on port %s (env: %s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures the HTTP router
func setupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
	taxHandler *handlers.TaxHandler,
	productHandler *handlers.ProductHandler,
) *gin.Engine {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// CORS
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{
			"https://www.nwcustomapparel.com",
			"http://localhost:3000",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health checks
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		// Quotes and order push
		quotes := v1.Group("/quotes")
		{
			quotes.GET("/:quoteID", quoteHandler.GetQuote)
			quotes.GET("/:quoteID/order", quoteHandler.PreviewOrder)
			quotes.POST("/:quoteID/push", quoteHandler.PushOrder)
		}

		// Tax lookup + stored rates
		v1.GET("/tax/rate", taxHandler.GetRate)
		taxRates := v1.Group("/tax-rates")
		{
			taxRates.GET("", taxHandler.ListRates)
			taxRates.GET("/:zip", taxHandler.GetStoredRate)
			taxRates.PUT("/:zip", taxHandler.UpsertRate)
			taxRates.DELETE("/:zip", taxHandler.DeleteRate)
		}

		// Non-SanMar products
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/:style", productHandler.Get)
			products.PUT("/:style", productHandler.Update)
			products.DELETE("/:style", productHandler.Delete)
		}
	}

	return router
}
