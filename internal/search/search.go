package search

import (
	"context"
	"log"
	"time"

	"github.com/abhi1117/Flight-Search-Engine/internal/cache"
	"github.com/abhi1117/Flight-Search-Engine/internal/models"
	"github.com/abhi1117/Flight-Search-Engine/internal/normalizer"
	"github.com/abhi1117/Flight-Search-Engine/internal/providers"
)

type Config struct {
	Timeout time.Duration
}

type Service struct {
	provider   providers.Provider
	cache      cache.Cache
	normalizer *normalizer.Normalizer
	config     Config
}

type Result struct {
	Flights      []models.Flight
	Provider     string
	Received     int
	Dropped      int
	AllMalformed bool
	CacheHit     bool
}

func NewService(p providers.Provider, c cache.Cache, n *normalizer.Normalizer, config Config) *Service {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if n == nil {
		n = normalizer.New(nil)
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &Service{
		provider:   p,
		cache:      c,
		normalizer: n,
		config:     config,
	}
}

// Search returns the normalized offers for req, consulting the cache
// before the provider. Provider failures are returned as is.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	resp, hit := s.cache.Get(ctx, req)
	if !hit {
		searchCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()

		var err error
		resp, err = s.provider.Search(searchCtx, req)
		if err != nil {
			log.Printf("Provider %s failed: %v", s.provider.Name(), err)
			return nil, err
		}

		if err := s.cache.Set(ctx, req, resp); err != nil {
			log.Printf("Failed to cache search %s-%s: %v", req.Origin, req.Destination, err)
		}
	}

	batch := s.normalizer.NormalizeAll(*resp)
	if batch.Dropped > 0 {
		log.Printf("Dropped %d of %d offers for %s-%s on %s", batch.Dropped, batch.Received, req.Origin, req.Destination, req.DepartureDate)
	}

	return &Result{
		Flights:      batch.Flights,
		Provider:     s.provider.Name(),
		Received:     batch.Received,
		Dropped:      batch.Dropped,
		AllMalformed: batch.AllMalformed(),
		CacheHit:     hit,
	}, nil
}
