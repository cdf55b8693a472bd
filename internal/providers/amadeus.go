package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
)

const (
	DefaultAmadeusBaseURL = "https://test.api.amadeus.com"

	offersPath = "/v2/shopping/flight-offers"
	tokenPath  = "/v1/security/oauth2/token"
)

type AmadeusConfig struct {
	BaseURL           string
	ClientID          string
	ClientSecret      string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxResults        int
}

func DefaultAmadeusConfig() AmadeusConfig {
	return AmadeusConfig{
		BaseURL:           DefaultAmadeusBaseURL,
		Timeout:           10 * time.Second,
		RequestsPerSecond: 10,
		Burst:             1,
		MaxResults:        50,
	}
}

// AmadeusProvider queries the Amadeus Flight Offers Search API.
type AmadeusProvider struct {
	baseURL     string
	httpClient  *http.Client
	credentials *CredentialManager
	limiter     *rate.Limiter
	maxResults  int
}

type amadeusErrorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func NewAmadeusProvider(cfg AmadeusConfig) *AmadeusProvider {
	defaults := DefaultAmadeusConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaults.MaxResults
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &AmadeusProvider{
		baseURL:     baseURL,
		httpClient:  httpClient,
		credentials: NewCredentialManager(baseURL+tokenPath, cfg.ClientID, cfg.ClientSecret, httpClient),
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		maxResults:  cfg.MaxResults,
	}
}

func (p *AmadeusProvider) Name() string {
	return "amadeus"
}

func (p *AmadeusProvider) Search(ctx context.Context, req models.SearchRequest) (*models.OfferResponse, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	token, err := p.credentials.Token(ctx)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+offersPath+"?"+p.query(req).Encode(), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), fmt.Errorf("creating request: %w", err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/vnd.amadeus+json, application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(p.Name(), fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			p.credentials.Invalidate()
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, &ProviderError{
			Provider:   p.Name(),
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorDetail(body)),
		}
	}

	var offers models.OfferResponse
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, NewProviderError(p.Name(), fmt.Errorf("decoding response: %w", err))
	}

	return &offers, nil
}

func (p *AmadeusProvider) query(req models.SearchRequest) url.Values {
	params := url.Values{
		"originLocationCode":      {req.Origin},
		"destinationLocationCode": {req.Destination},
		"departureDate":           {req.DepartureDate},
		"adults":                  {strconv.Itoa(max(req.Adults, 1))},
	}

	if req.ReturnDate != nil && *req.ReturnDate != "" {
		params.Set("returnDate", *req.ReturnDate)
	}
	if req.TravelClass != "" {
		params.Set("travelClass", req.TravelClass)
	}
	if req.NonStop {
		params.Set("nonStop", "true")
	}
	if req.Currency != "" {
		params.Set("currencyCode", req.Currency)
	}

	limit := p.maxResults
	if req.Max > 0 && req.Max < limit {
		limit = req.Max
	}
	params.Set("max", strconv.Itoa(limit))

	return params
}

func errorDetail(body []byte) string {
	var apiErr amadeusErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 {
		e := apiErr.Errors[0]
		if e.Detail != "" {
			return e.Title + ": " + e.Detail
		}
		if e.Title != "" {
			return e.Title
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response body"
	}
	return msg
}
