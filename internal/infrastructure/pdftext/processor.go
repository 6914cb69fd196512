// Package pdftext extracts plain text from downloaded PDF artifacts.
//
// Extraction runs through an ordered engine list. An engine may report
// ErrUnavailable to yield to the next engine; any other failure from an
// available engine fails the document without fallback. Failed extraction
// leaves the artifact on disk, since the file itself retains value to an
// operator.
package pdftext

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnavailable marks an engine whose underlying capability cannot run at
// all, as opposed to an engine that failed on one document.
var ErrUnavailable = errors.New("extraction engine unavailable")

// Engine is a single PDF-to-text implementation. Pages yielding no text
// contribute nothing; remaining pages are joined with a blank line.
type Engine interface {
	Name() string
	Extract(path string) (string, error)
}

// Processor tries each engine in order until one is available.
type Processor struct {
	engines []Engine
	logger  *slog.Logger
}

// NewProcessor builds a processor over the given ordered engines.
func NewProcessor(logger *slog.Logger, engines ...Engine) *Processor {
	return &Processor{engines: engines, logger: logger}
}

// ExtractText runs the first available engine against the artifact.
func (p *Processor) ExtractText(path string) (string, error) {
	if len(p.engines) == 0 {
		return "", fmt.Errorf("extract %s: no engines configured", path)
	}

	for _, engine := range p.engines {
		text, err := engine.Extract(path)
		if errors.Is(err, ErrUnavailable) {
			if p.logger != nil {
				p.logger.Warn("extraction engine unavailable, trying next", "engine", engine.Name())
			}
			continue
		}
		if err != nil {
			return "", fmt.Errorf("extract %s with %s: %w", path, engine.Name(), err)
		}
		return text, nil
	}

	return "", fmt.Errorf("extract %s: %w", path, ErrUnavailable)
}

// Disable wraps an engine so it always reports ErrUnavailable. Operators use
// this through configuration to force the fallback engine.
func Disable(inner Engine) Engine {
	return disabledEngine{inner: inner}
}

type disabledEngine struct {
	inner Engine
}

func (d disabledEngine) Name() string { return d.inner.Name() + " (disabled)" }

func (d disabledEngine) Extract(string) (string, error) {
	return "", ErrUnavailable
}

// joinPages concatenates non-empty page texts with a blank-line separator.
func joinPages(pages []string) string {
	kept := make([]string, 0, len(pages))
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		kept = append(kept, page)
	}
	return strings.Join(kept, "\n\n")
}
