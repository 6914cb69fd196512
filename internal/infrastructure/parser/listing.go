package parser

import (
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"FadaMonitor/internal/domain"
	"FadaMonitor/internal/extract"
	"FadaMonitor/internal/ports"
)

// reportExpr matches "FADA releases ... Vehicle Retail Data" in titles and
// link paths, with arbitrary content between the two phrases.
var reportExpr = regexp.MustCompile(`(?i)fada\s+releases.*vehicle\s+retail\s+data`)

// hashPrefixExpr detects a hash-like filename prefix. At least eight hex
// characters followed by a dash; shorter runs would swallow real title words
// such as "fada".
var hashPrefixExpr = regexp.MustCompile(`(?i)^[0-9a-f]{8,}-`)

// ListingParser turns press-release markup into report candidates using an
// ordered strategy chain.
type ListingParser struct {
	baseURL string
	chain   *extract.Chain
	logger  *slog.Logger
}

var _ ports.ListingParser = (*ListingParser)(nil)

// NewListingParser wires the two listing strategies against the site origin.
func NewListingParser(baseURL string, logger *slog.Logger) *ListingParser {
	baseURL = strings.TrimRight(baseURL, "/")
	return &ListingParser{
		baseURL: baseURL,
		chain: extract.NewChain(
			&pdfLinkStrategy{baseURL: baseURL},
			&cardStrategy{baseURL: baseURL},
		),
		logger: logger,
	}
}

// Parse extracts candidates in document order, omitting every URL for which
// the processed state already has an entry.
func (p *ListingParser) Parse(html string, processed domain.ProcessingState) ([]domain.Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing markup: %w", err)
	}

	reports, strategy := p.chain.Run(doc, processed.Contains)
	if p.logger != nil && strategy != "" {
		p.logger.Debug("listing parsed", "strategy", strategy, "candidates", len(reports))
	}
	return reports, nil
}

// pdfLinkStrategy picks direct PDF anchors whose URL matches the report
// pattern. Titles come from the filename with any hash prefix stripped.
type pdfLinkStrategy struct {
	baseURL string
}

func (s *pdfLinkStrategy) Name() string { return "pdf-links" }

func (s *pdfLinkStrategy) Extract(doc *goquery.Document, excluded func(string) bool) []domain.Report {
	var reports []domain.Report
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.HasSuffix(href, ".pdf") || !reportExpr.MatchString(href) {
			return
		}

		title := titleFromFilename(path.Base(href))
		abs := absoluteURL(s.baseURL, href)
		if excluded(abs) {
			return
		}
		reports = append(reports, domain.Report{Title: title, URL: abs})
	})
	return reports
}

// cardStrategy handles listings that render each release as a card with a
// heading and a separate download anchor.
type cardStrategy struct {
	baseURL string
}

func (s *cardStrategy) Name() string { return "cards" }

func (s *cardStrategy) Extract(doc *goquery.Document, excluded func(string) bool) []domain.Report {
	var reports []domain.Report
	doc.Find("div.card-body").Each(func(_ int, card *goquery.Selection) {
		heading := card.Find("h3, h4, h5").First()
		if heading.Length() == 0 {
			return
		}
		title := strings.TrimSpace(heading.Text())
		if !reportExpr.MatchString(title) {
			return
		}

		var href string
		card.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			h, _ := link.Attr("href")
			if strings.HasSuffix(h, ".pdf") {
				href = h
				return false
			}
			return true
		})
		if href == "" {
			return
		}

		abs := absoluteURL(s.baseURL, href)
		if excluded(abs) {
			return
		}
		reports = append(reports, domain.Report{Title: title, URL: abs})
	})
	return reports
}

func titleFromFilename(name string) string {
	name = strings.TrimSuffix(name, ".pdf")
	if prefix := hashPrefixExpr.FindString(name); prefix != "" {
		return strings.TrimSpace(name[len(prefix):])
	}
	return strings.TrimSpace(name)
}

func absoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + "/" + strings.TrimLeft(href, "/")
}
