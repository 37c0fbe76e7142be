package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
	PageCount(pdfData []byte) (int, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText renders each page as plain text. Pages are separated by
// "--- Page N ---" markers, which the cleaner recognizes and strips;
// pages without text are omitted.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		var textBuilder strings.Builder
		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}

		text := textBuilder.String()
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, fmt.Sprintf("--- Page %d ---\n%s\n", pageIndex, text))
	}

	return strings.Join(pages, "\n"), nil
}

// PageCount validates the document structure and returns the number of
// pages. Corrupt or encrypted files are rejected here, before any
// extraction work.
func (p *pdfProcessor) PageCount(pdfData []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	count, err := api.PageCount(bytes.NewReader(pdfData), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF structure: %w", err)
	}
	return count, nil
}
