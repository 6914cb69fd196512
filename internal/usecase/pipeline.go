package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"FadaMonitor/internal/domain"
	"FadaMonitor/internal/ports"
)

// placeholderSummary stands in whenever summarization is disabled,
// unconfigured, or failed. The report still counts as processed: the
// operator must learn a new report exists even without a digest.
const placeholderSummary = "New report downloaded. Summary generation is currently disabled."

var (
	unsafeChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
// Summarizer may be nil (disabled or unconfigured); everything else is
// required.
type PipelineDeps struct {
	Fetcher     ports.Fetcher
	Parser      ports.ListingParser
	Store       ports.StateStore
	Extractor   ports.TextExtractor
	Summarizer  ports.Summarizer
	Notifier    ports.Notifier
	DownloadDir string
	Logger      *slog.Logger
}

// Pipeline implements one end-to-end monitoring run: load state, fetch the
// listing, diff, process each new report, persist.
type Pipeline struct {
	fetcher     ports.Fetcher
	parser      ports.ListingParser
	store       ports.StateStore
	extractor   ports.TextExtractor
	summarizer  ports.Summarizer
	notifier    ports.Notifier
	downloadDir string
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		fetcher:     deps.Fetcher,
		parser:      deps.Parser,
		store:       deps.Store,
		extractor:   deps.Extractor,
		summarizer:  deps.Summarizer,
		notifier:    deps.Notifier,
		downloadDir: deps.DownloadDir,
		logger:      deps.Logger,
	}
}

// Run executes one monitoring pass. Only listing-level failures abort the
// run; every per-report failure is logged, the report is skipped or
// degraded, and the loop continues. Reports that never reach notification
// stay out of the processed set so the next run retries them.
func (p *Pipeline) Run(ctx context.Context, now time.Time) error {
	if err := os.MkdirAll(p.downloadDir, 0o755); err != nil {
		return fmt.Errorf("ensure download dir: %w", err)
	}

	state, err := p.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	html, err := p.fetcher.FetchListing(ctx)
	if err != nil {
		return fmt.Errorf("fetch press releases: %w", err)
	}

	reports, err := p.parser.Parse(html, state)
	if err != nil {
		return fmt.Errorf("parse listing: %w", err)
	}

	if len(reports) == 0 {
		p.log().Info("no new reports found")
		return nil
	}
	p.log().Info("found new reports", "count", len(reports))

	for _, report := range reports {
		if p.processReport(ctx, report, now) {
			state.Mark(report.URL)
			// Persist after every completed report so a crash mid-run
			// re-notifies at most the report in flight.
			if err := p.store.Save(state); err != nil {
				p.log().Error("persist state", "report", report.Title, "error", err)
			}
		}
	}

	if err := p.store.Save(state); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}

	p.log().Info("monitor run completed")
	return nil
}

// processReport drives one report through download, extraction,
// summarization, and notification. It returns true when the report reached
// notification and must be marked processed.
func (p *Pipeline) processReport(ctx context.Context, report domain.Report, now time.Time) bool {
	p.log().Info("processing report", "title", report.Title, "url", report.URL)

	payload, err := p.fetcher.FetchDocument(ctx, report.URL)
	if err != nil {
		p.log().Error("download failed, will retry next run", "title", report.Title, "error", err)
		return false
	}

	artifactPath := filepath.Join(p.downloadDir, artifactFilename(report.Title, now))
	if err := os.WriteFile(artifactPath, payload, 0o644); err != nil {
		p.log().Error("write artifact failed, will retry next run", "title", report.Title, "error", err)
		return false
	}
	p.log().Info("downloaded", "path", artifactPath)

	text, err := p.extractor.ExtractText(artifactPath)
	if err != nil {
		// The artifact stays on disk; it retains value to an operator.
		p.log().Error("text extraction failed, will retry next run", "title", report.Title, "error", err)
		return false
	}

	summary := placeholderSummary
	if p.summarizer != nil {
		generated, err := p.summarizer.Summarize(ctx, report.Title, text)
		if err != nil {
			p.log().Error("summarization failed, using placeholder", "title", report.Title, "error", err)
		} else {
			summary = generated
		}
	}

	if err := p.notifier.Notify(ctx, report, summary, artifactPath); err != nil {
		p.log().Error("notification error", "title", report.Title, "error", err)
	}

	return true
}

// artifactFilename derives the on-disk name from the sanitized title and the
// run date. A same-day rerun on the same title overwrites the prior file.
func artifactFilename(title string, now time.Time) string {
	name := unsafeChars.ReplaceAllString(title, "")
	name = whitespaceRun.ReplaceAllString(name, "_")
	return fmt.Sprintf("%s_%s.pdf", name, now.Format("20060102"))
}

func (p *Pipeline) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}
