package wsdl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// fetchTimeout bounds the whole WSDL retrieval, connect included.
const fetchTimeout = 12 * time.Second

// Fetcher retrieves WSDL documents from HTTP URLs or local paths.
// Batch runs share one Fetcher so the rate limiter paces requests
// across all configured APIs.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the default timeout and a polite
// one-request-per-second pace (burst of 3).
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: fetchTimeout},
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// Load fetches and parses a WSDL in one step.
func (f *Fetcher) Load(ctx context.Context, location string) (*Document, error) {
	content, err := f.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return Parse(content, location)
}

// Fetch retrieves raw WSDL content. Non-URL locations are read from
// the local filesystem, which keeps tests and offline use simple.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		content, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read WSDL file: %w", err)
		}
		return content, nil
	}

	if _, err := url.Parse(location); err != nil {
		return nil, fmt.Errorf("invalid WSDL URL: %w", err)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build WSDL request: %w", err)
	}
	req.Header.Set("Accept", "text/xml, application/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch WSDL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch WSDL: HTTP %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read WSDL response: %w", err)
	}
	return content, nil
}
