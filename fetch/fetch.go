package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wippyai/remote-mount/errors"
)

// maxBundleSize bounds a single fetched payload.
const maxBundleSize = 64 << 20

// HTTPFetcher implements remount.Fetcher over an http.Client.
type HTTPFetcher struct {
	client *http.Client
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithClient replaces the default HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// New creates an HTTPFetcher with a pooled transport.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the payload at url. A non-empty integrity string must
// match the payload digest or the fetch fails.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, integrity string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.FetchFailed(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.FetchFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.FetchFailed(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBundleSize+1))
	if err != nil {
		return nil, errors.FetchFailed(url, err)
	}
	if len(data) > maxBundleSize {
		return nil, errors.FetchFailed(url, fmt.Errorf("payload exceeds %d bytes", maxBundleSize))
	}

	if integrity != "" {
		if err := Verify(data, integrity); err != nil {
			if ie, ok := err.(*errors.Error); ok && ie.URL == "" {
				ie.URL = url
			}
			return nil, err
		}
	}

	return data, nil
}
