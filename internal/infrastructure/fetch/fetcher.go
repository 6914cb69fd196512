// Package fetch retrieves the listing page and report payloads over HTTP.
// Requests carry a browser-like identity because the upstream site rejects
// unidentified clients.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"FadaMonitor/internal/config"
	"FadaMonitor/internal/ports"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// HTTPFetcher fetches the listing and individual documents with distinct
// timeouts. Transport failures are reported upward immediately; there is no
// internal retry.
type HTTPFetcher struct {
	listingURL     string
	listingClient  *http.Client
	documentClient *http.Client
}

var _ ports.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher builds a fetcher for the configured source. Document
// fetches get the longer timeout since payloads are larger.
func NewHTTPFetcher(source config.SourceConfig, httpCfg config.HTTPConfig) *HTTPFetcher {
	return &HTTPFetcher{
		listingURL:     source.ListingURL(),
		listingClient:  &http.Client{Timeout: httpCfg.ListingTimeout()},
		documentClient: &http.Client{Timeout: httpCfg.DocumentTimeout()},
	}
}

// FetchListing retrieves the press-release page as HTML text.
func (f *HTTPFetcher) FetchListing(ctx context.Context) (string, error) {
	body, err := f.get(ctx, f.listingClient, f.listingURL, "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	if err != nil {
		return "", fmt.Errorf("fetch listing: %w", err)
	}
	return string(body), nil
}

// FetchDocument retrieves one report payload as raw bytes.
func (f *HTTPFetcher) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	body, err := f.get(ctx, f.documentClient, url, "application/pdf,*/*;q=0.8")
	if err != nil {
		return nil, fmt.Errorf("fetch document %s: %w", url, err)
	}
	return body, nil
}

func (f *HTTPFetcher) get(ctx context.Context, client *http.Client, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
