package pdftext

import (
	"fmt"

	dslipak "github.com/dslipak/pdf"
	ledongthuc "github.com/ledongthuc/pdf"
)

// PrimaryEngine extracts text page-by-page via ledongthuc/pdf.
type PrimaryEngine struct{}

func (PrimaryEngine) Name() string { return "ledongthuc" }

func (PrimaryEngine) Extract(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reader panic: %v", r)
		}
	}()

	f, reader, err := ledongthuc.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// One unreadable page does not void the document.
			continue
		}
		pages = append(pages, pageText)
	}

	joined := joinPages(pages)
	if joined == "" {
		return "", fmt.Errorf("no extractable text")
	}
	return joined, nil
}

// FallbackEngine extracts text via dslipak/pdf with the same page contract.
type FallbackEngine struct{}

func (FallbackEngine) Name() string { return "dslipak" }

func (FallbackEngine) Extract(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reader panic: %v", r)
		}
	}()

	reader, err := dslipak.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pageText)
	}

	joined := joinPages(pages)
	if joined == "" {
		return "", fmt.Errorf("no extractable text")
	}
	return joined, nil
}
