package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"shiprelay/internal/pkg/errs"
)

// tokenProvider holds the aggregator bearer token shared by all relayed
// calls. The token is fetched lazily, cached until its TTL elapses, and
// refreshed at most once per expiry even under concurrent requests.
type tokenProvider struct {
	httpClient *http.Client
	baseURL    string
	email      string
	password   string
	ttl        time.Duration

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenProvider(
	httpClient *http.Client, baseURL, email, password string, ttl time.Duration,
) *tokenProvider {
	return &tokenProvider{
		httpClient: httpClient,
		baseURL:    baseURL,
		email:      email,
		password:   password,
		ttl:        ttl,
	}
}

// get returns the cached token, authenticating first when the cache is empty
// or expired.
func (p *tokenProvider) get(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.expiresAt) {
		return p.token, nil
	}

	return p.authenticateLocked(ctx)
}

// refresh drops a token the aggregator rejected and authenticates again.
// When another goroutine already replaced the stale token, the replacement is
// returned without an extra round trip.
func (p *tokenProvider) refresh(ctx context.Context, stale string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.token != stale && time.Now().Before(p.expiresAt) {
		return p.token, nil
	}

	p.token = ""
	return p.authenticateLocked(ctx)
}

// authenticateLocked performs the credential exchange. Callers must hold mu.
func (p *tokenProvider) authenticateLocked(ctx context.Context) (string, error) {
	const operation = "authenticate"

	payload, err := json.Marshal(map[string]string{
		"email":    p.email,
		"password": p.password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, p.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errs.NewGatewayErrorWithCause(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewGatewayErrorWithCause(operation, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errs.NewGatewayError(operation, resp.StatusCode, string(body))
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err = json.Unmarshal(body, &loginResp); err != nil {
		return "", errs.NewGatewayErrorWithCause(operation, err)
	}
	if loginResp.Token == "" {
		return "", errs.NewGatewayError(
			operation, resp.StatusCode, "login response carried no token")
	}

	p.token = loginResp.Token
	p.expiresAt = time.Now().Add(p.ttl)
	return p.token, nil
}

// String masks the credentials when the provider ends up in a log line.
func (p *tokenProvider) String() string {
	return fmt.Sprintf("tokenProvider{baseURL: %s}", p.baseURL)
}
