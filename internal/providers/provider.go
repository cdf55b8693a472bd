package providers

import (
	"context"
	"strconv"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
)

// Provider fetches one page of raw flight offers for a search.
type Provider interface {
	Name() string
	Search(ctx context.Context, req models.SearchRequest) (*models.OfferResponse, error)
}

type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return e.Provider + ": HTTP " + strconv.Itoa(e.StatusCode) + ": " + e.Err.Error()
	}
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
