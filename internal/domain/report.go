package domain

// Report is a candidate monthly retail-data report discovered on the
// press-release listing. URL is the sole deduplication key.
type Report struct {
	Title string
	URL   string
}

// ProcessingState is the durable record of report URLs whose pipeline has
// completed at least once. Persisted as an ordered sequence, used as a set.
type ProcessingState struct {
	ProcessedReports []string `json:"processed_reports"`
}

// Contains reports whether the URL has already been processed.
func (s ProcessingState) Contains(url string) bool {
	for _, u := range s.ProcessedReports {
		if u == url {
			return true
		}
	}
	return false
}

// Mark appends the URL to the processed set; duplicates never accumulate.
func (s *ProcessingState) Mark(url string) {
	if s.Contains(url) {
		return
	}
	s.ProcessedReports = append(s.ProcessedReports, url)
}
