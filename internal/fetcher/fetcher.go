// Package fetcher retrieves the published menu document, always bypassing caches.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CacheBustParam is the query parameter carrying the single-use token.
const CacheBustParam = "cb"

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Fetcher returns the raw text of the document at rawURL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// BustCache appends a fresh cache-busting token to rawURL, keeping its other parameters.
func BustCache(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse source URL: %w", err)
	}
	q := u.Query()
	q.Set(CacheBustParam, uuid.NewString())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// HTTPFetcher fetches with a plain HTTP client.
type HTTPFetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTP builds an HTTPFetcher. A nil client means http.DefaultClient.
func NewHTTP(client *http.Client, logger *zap.Logger) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, logger: logger.Named("fetcher")}
}

// Fetch downloads the whole body before returning it.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := BustCache(rawURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	f.logger.Debug("Fetching source", zap.String("url", target))
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read source body: %w", err)
	}
	f.logger.Debug("Source fetched", zap.Int("bytes", len(body)))
	return string(body), nil
}
