package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/abhi1117/Flight-Search-Engine/internal/cache"
	"github.com/abhi1117/Flight-Search-Engine/internal/config"
	"github.com/abhi1117/Flight-Search-Engine/internal/handler"
	"github.com/abhi1117/Flight-Search-Engine/internal/normalizer"
	"github.com/abhi1117/Flight-Search-Engine/internal/providers"
	"github.com/abhi1117/Flight-Search-Engine/internal/ratelimit"
	"github.com/abhi1117/Flight-Search-Engine/internal/search"
	"github.com/abhi1117/Flight-Search-Engine/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	provider, err := initializeProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize provider: %v", err)
	}
	log.Printf("Using %s flight provider", provider.Name())

	var offerCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		offerCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.TTL)
	} else {
		offerCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	if len(cfg.Carriers) > 0 {
		log.Printf("Loaded %d extra carrier names", len(cfg.Carriers))
	}

	svc := search.NewService(provider, offerCache, normalizer.New(cfg.Carriers), search.Config{
		Timeout: cfg.Amadeus.Timeout,
	})
	sessions := session.NewStore(session.Config{
		TTL:        cfg.SessionTTL,
		MaxEntries: cfg.MaxSessions,
	})
	clientLimiter := ratelimit.NewKeyedLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.ClientRPS,
		BurstSize:         cfg.ClientBurst,
	})

	searchHandler := handler.NewSearchHandler(svc, sessions)

	api := e.Group("/api/v1", clientLimiter.Middleware())
	searchHandler.Register(api)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initializeProvider(cfg *config.Config) (providers.Provider, error) {
	if cfg.Provider == config.ProviderFixture {
		return providers.NewFixtureProvider()
	}

	if !cfg.HasCredentials() {
		log.Println("Amadeus credentials missing, falling back to fixture data")
		return providers.NewFixtureProvider()
	}

	return providers.NewAmadeusProvider(providers.AmadeusConfig{
		BaseURL:           cfg.Amadeus.BaseURL,
		ClientID:          cfg.Amadeus.ClientID,
		ClientSecret:      cfg.Amadeus.ClientSecret,
		Timeout:           cfg.Amadeus.Timeout,
		RequestsPerSecond: cfg.Amadeus.RPS,
		Burst:             cfg.Amadeus.Burst,
		MaxResults:        cfg.Amadeus.MaxResults,
	}), nil
}
