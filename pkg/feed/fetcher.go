package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/umputun/headlines/pkg/domain"
)

// error kinds returned by Fetch, all wrapped so callers can match with errors.Is
var (
	ErrTransport = errors.New("transport failure")
	ErrStatus    = errors.New("unexpected status")
	ErrParse     = errors.New("invalid payload")
)

// HTTPFetcher fetches headlines from the headlines API via HTTP
type HTTPFetcher struct {
	client   *http.Client
	endpoint string
}

// NewHTTPFetcher creates a new headlines fetcher for the given endpoint.
// Zero timeout leaves the request bounded only by the transport defaults and the context.
func NewHTTPFetcher(endpoint string, timeout time.Duration) (*HTTPFetcher, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint: %s", endpoint)
	}

	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}, nil
}

// Endpoint returns the URL headlines are fetched from
func (f *HTTPFetcher) Endpoint() string {
	return f.endpoint
}

// Fetch retrieves and parses headlines from the endpoint.
// Nil headlines with nil error means the payload had no headlines field.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]domain.Headline, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	addRequestHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrTransport, f.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s from %s", ErrStatus, resp.Status, f.endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	return parseHeadlines(body)
}

// parseHeadlines decodes the API payload, a literal null or a non-object body is rejected
func parseHeadlines(body []byte) ([]domain.Headline, error) {
	var payload *domain.HeadlineResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrParse)
	}
	return payload.Headlines, nil
}
