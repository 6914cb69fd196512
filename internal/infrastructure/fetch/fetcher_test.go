package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FadaMonitor/internal/config"
)

func testConfig(serverURL string) (config.SourceConfig, config.HTTPConfig) {
	source := config.SourceConfig{BaseURL: serverURL, ListingPath: "/press-release-list.php"}
	timeouts := config.HTTPConfig{ListingTimeoutSec: 5, DocumentTimeoutSec: 10}
	return source, timeouts
}

func TestFetchListing(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/press-release-list.php" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<html>listing</html>"))
	}))
	defer server.Close()

	f := NewHTTPFetcher(testConfig(server.URL))
	html, err := f.FetchListing(context.Background())
	if err != nil {
		t.Fatalf("FetchListing error: %v", err)
	}

	if html != "<html>listing</html>" {
		t.Fatalf("unexpected body: %q", html)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Fatalf("expected browser-like user agent, got %q", gotUA)
	}
	if !strings.Contains(gotAccept, "text/html") {
		t.Fatalf("expected html accept header, got %q", gotAccept)
	}
}

func TestFetchListingNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	f := NewHTTPFetcher(testConfig(server.URL))
	if _, err := f.FetchListing(context.Background()); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestFetchDocument(t *testing.T) {
	t.Parallel()

	payload := []byte("%PDF-1.4 fake")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept"), "application/pdf") {
			t.Errorf("expected pdf accept header, got %q", r.Header.Get("Accept"))
		}
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	f := NewHTTPFetcher(testConfig(server.URL))
	got, err := f.FetchDocument(context.Background(), server.URL+"/report.pdf")
	if err != nil {
		t.Fatalf("FetchDocument error: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestFetchDocumentTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	f := NewHTTPFetcher(testConfig(server.URL))
	if _, err := f.FetchDocument(context.Background(), server.URL+"/report.pdf"); err == nil {
		t.Fatal("expected transport error from closed server")
	}
}
