package ports

import (
	"context"
	"time"

	"FadaMonitor/internal/domain"
)

// Fetcher retrieves the listing page and individual report payloads.
type Fetcher interface {
	FetchListing(ctx context.Context) (string, error)
	FetchDocument(ctx context.Context, url string) ([]byte, error)
}

// ListingParser extracts report candidates from listing markup, omitting
// every candidate whose URL is already in the processed state.
type ListingParser interface {
	Parse(html string, processed domain.ProcessingState) ([]domain.Report, error)
}

// StateStore persists the processed set across runs.
type StateStore interface {
	Load() (domain.ProcessingState, error)
	Save(state domain.ProcessingState) error
}

// TextExtractor turns a downloaded artifact into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Summarizer produces a prose digest of extracted report content.
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
}

// Notifier delivers a report-ready notification. Best-effort: a delivery
// failure must not roll back processing state.
type Notifier interface {
	Notify(ctx context.Context, report domain.Report, summary, artifactPath string) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
