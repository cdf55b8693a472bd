package providers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// expiryMargin refreshes tokens slightly before the provider expires them.
const expiryMargin = 30 * time.Second

// CredentialManager holds the access token for the provider API and
// fetches a new one with the client-credentials grant once it expires.
type CredentialManager struct {
	mu         sync.Mutex
	config     clientcredentials.Config
	httpClient *http.Client
	token      *oauth2.Token
	now        func() time.Time
}

func NewCredentialManager(tokenURL, clientID, clientSecret string, httpClient *http.Client) *CredentialManager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CredentialManager{
		config: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Token returns a valid access token, requesting a new one if the cached
// token is missing or about to expire.
func (m *CredentialManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid() {
		return m.token.AccessToken, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
	tok, err := m.config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching access token: %w", err)
	}

	m.token = tok
	return tok.AccessToken, nil
}

// Invalidate drops the cached token so the next call fetches a new one.
func (m *CredentialManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
}

// Must be called with mu held.
func (m *CredentialManager) valid() bool {
	if m.token == nil || m.token.AccessToken == "" {
		return false
	}
	if m.token.Expiry.IsZero() {
		return true
	}
	return m.now().Add(expiryMargin).Before(m.token.Expiry)
}
