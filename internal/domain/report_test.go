package domain

import "testing"

func TestProcessingStateMarkDeduplicates(t *testing.T) {
	t.Parallel()

	var s ProcessingState
	s.Mark("https://fada.in/a.pdf")
	s.Mark("https://fada.in/a.pdf")
	s.Mark("https://fada.in/b.pdf")

	if len(s.ProcessedReports) != 2 {
		t.Fatalf("duplicates accumulated: %v", s.ProcessedReports)
	}
	if !s.Contains("https://fada.in/a.pdf") {
		t.Fatal("marked url not contained")
	}
	if s.Contains("https://fada.in/c.pdf") {
		t.Fatal("unmarked url reported as contained")
	}
}
