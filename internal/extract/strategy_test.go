package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"FadaMonitor/internal/domain"
)

type stubStrategy struct {
	name    string
	reports []domain.Report
	called  *bool
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Extract(*goquery.Document, func(string) bool) []domain.Report {
	if s.called != nil {
		*s.called = true
	}
	return s.reports
}

func testDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html></html>"))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	t.Parallel()

	var secondCalled bool
	chain := NewChain(
		stubStrategy{name: "first", reports: []domain.Report{{Title: "A", URL: "https://x/a.pdf"}}},
		stubStrategy{name: "second", called: &secondCalled},
	)

	reports, winner := chain.Run(testDoc(t), func(string) bool { return false })
	if winner != "first" {
		t.Fatalf("unexpected winner: %q", winner)
	}
	if len(reports) != 1 || reports[0].Title != "A" {
		t.Fatalf("unexpected reports: %v", reports)
	}
	if secondCalled {
		t.Fatal("second strategy consulted after first produced results")
	}
}

func TestChainFallsThroughEmptyStrategies(t *testing.T) {
	t.Parallel()

	chain := NewChain(
		stubStrategy{name: "first"},
		stubStrategy{name: "second", reports: []domain.Report{{Title: "B", URL: "https://x/b.pdf"}}},
	)

	reports, winner := chain.Run(testDoc(t), func(string) bool { return false })
	if winner != "second" {
		t.Fatalf("unexpected winner: %q", winner)
	}
	if len(reports) != 1 {
		t.Fatalf("unexpected reports: %v", reports)
	}
}

func TestChainAllEmpty(t *testing.T) {
	t.Parallel()

	chain := NewChain(stubStrategy{name: "first"}, stubStrategy{name: "second"})

	reports, winner := chain.Run(testDoc(t), func(string) bool { return false })
	if len(reports) != 0 || winner != "" {
		t.Fatalf("expected empty result, got %v from %q", reports, winner)
	}
}
