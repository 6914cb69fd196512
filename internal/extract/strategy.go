package extract

import (
	"github.com/PuerkitoBio/goquery"

	"FadaMonitor/internal/domain"
)

// Strategy is one way of locating report candidates in listing markup.
// Implementations are pure: same document and exclusion set, same output.
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document, excluded func(url string) bool) []domain.Report
}

// Chain evaluates strategies in order; the first strategy that yields any
// candidates wins the run and later strategies are not consulted.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a chain from the given ordered strategies.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Run returns the first non-empty result set along with the winning
// strategy's name, or an empty slice when no strategy produced candidates.
func (c *Chain) Run(doc *goquery.Document, excluded func(url string) bool) ([]domain.Report, string) {
	for _, s := range c.strategies {
		if reports := s.Extract(doc, excluded); len(reports) > 0 {
			return reports, s.Name()
		}
	}
	return nil, ""
}
