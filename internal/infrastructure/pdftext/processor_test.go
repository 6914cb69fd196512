package pdftext

import (
	"errors"
	"testing"
)

type fakeEngine struct {
	name string
	text string
	err  error
}

func (f fakeEngine) Name() string { return f.name }

func (f fakeEngine) Extract(string) (string, error) { return f.text, f.err }

func TestProcessorUsesFirstAvailableEngine(t *testing.T) {
	t.Parallel()

	p := NewProcessor(nil,
		fakeEngine{name: "primary", text: "page one\n\npage two"},
		fakeEngine{name: "fallback", text: "never"},
	)

	text, err := p.ExtractText("report.pdf")
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if text != "page one\n\npage two" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestProcessorFallsBackWhenPrimaryUnavailable(t *testing.T) {
	t.Parallel()

	p := NewProcessor(nil,
		fakeEngine{name: "primary", err: ErrUnavailable},
		fakeEngine{name: "fallback", text: "from fallback"},
	)

	text, err := p.ExtractText("report.pdf")
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if text != "from fallback" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestProcessorDoesNotFallBackOnDocumentFailure(t *testing.T) {
	t.Parallel()

	docErr := errors.New("damaged xref table")
	p := NewProcessor(nil,
		fakeEngine{name: "primary", err: docErr},
		fakeEngine{name: "fallback", text: "should not run"},
	)

	if _, err := p.ExtractText("report.pdf"); !errors.Is(err, docErr) {
		t.Fatalf("expected document failure to propagate, got %v", err)
	}
}

func TestProcessorAllEnginesUnavailable(t *testing.T) {
	t.Parallel()

	p := NewProcessor(nil,
		fakeEngine{name: "primary", err: ErrUnavailable},
		fakeEngine{name: "fallback", err: ErrUnavailable},
	)

	if _, err := p.ExtractText("report.pdf"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestDisableWrapsEngine(t *testing.T) {
	t.Parallel()

	e := Disable(fakeEngine{name: "primary", text: "ignored"})
	if _, err := e.Extract("report.pdf"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from disabled engine, got %v", err)
	}
}

func TestJoinPagesSkipsEmptyPages(t *testing.T) {
	t.Parallel()

	got := joinPages([]string{"first", "", "  \n", "second"})
	if got != "first\n\nsecond" {
		t.Fatalf("unexpected join: %q", got)
	}
}
