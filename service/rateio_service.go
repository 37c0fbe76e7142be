package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rcouto/produtividade-rateio/dto"
	"github.com/rcouto/produtividade-rateio/report"
	"github.com/rcouto/produtividade-rateio/utils"
)

// RateioService turns productivity report PDFs into record sets with
// each worker's percentage of the total and, optionally, their share
// of a distribution amount.
type RateioService struct {
	pdfProcessor PDFProcessor
}

func NewRateioService(pdfProcessor PDFProcessor) *RateioService {
	return &RateioService{
		pdfProcessor: pdfProcessor,
	}
}

// ConvertOptions controls one conversion run.
type ConvertOptions struct {
	// TxtOutput and Output override the default output paths (same
	// name as the PDF with the target extension).
	TxtOutput string
	Output    string

	// Clean runs the boilerplate cleaner before extraction. When
	// false, the raw extracted text goes straight to the extractor's
	// defensive pre-filter.
	Clean bool

	// Print dumps the records to the console after conversion.
	Print bool

	// Format selects the exporter: csv (default), json or xlsx.
	Format string

	// DistributionAmount, when set, is apportioned across records in
	// proportion to their percentages.
	DistributionAmount *float64
}

// ConvertText runs the core pipeline on already-extracted text:
// cleaning (optional), block extraction and the rateio calculation.
func (s *RateioService) ConvertText(raw string, clean bool, distributionAmount *float64) []dto.Record {
	var lines []string
	if clean {
		lines = utils.CleanText(raw)
	} else {
		lines = strings.Split(raw, "\n")
	}

	records := utils.ExtractRecords(lines)
	return utils.CalculateRateio(records, distributionAmount)
}

// ConvertPDFBytes validates an in-memory PDF, extracts its text and
// runs the core pipeline. Used by the HTTP API.
func (s *RateioService) ConvertPDFBytes(pdfData []byte, clean bool, distributionAmount *float64) ([]dto.Record, error) {
	if _, err := s.pdfProcessor.PageCount(pdfData); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	raw, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	return s.ConvertText(raw, clean, distributionAmount), nil
}

// ProcessPDF converts one PDF file: text extraction, cleaning, record
// extraction, rateio calculation and export. The intermediate text is
// written next to the output so the extraction can be reviewed.
func (s *RateioService) ProcessPDF(pdfPath string, opts ConvertOptions) (*dto.ConversionResult, error) {
	log.Printf("Processing %s...", pdfPath)

	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pdfPath, err)
	}

	pages, err := s.pdfProcessor.PageCount(pdfData)
	if err != nil {
		return nil, fmt.Errorf("invalid PDF %s: %w", pdfPath, err)
	}
	log.Printf("%s: %d page(s)", pdfPath, pages)

	raw, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", pdfPath, err)
	}

	text := raw
	var lines []string
	if opts.Clean {
		lines = utils.CleanText(raw)
		text = strings.Join(lines, "\n")
	} else {
		lines = strings.Split(raw, "\n")
	}

	txtPath := opts.TxtOutput
	if txtPath == "" {
		txtPath = replaceExt(pdfPath, ".txt")
	}
	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write text file %s: %w", txtPath, err)
	}
	log.Printf("Text saved to %s", txtPath)

	records := utils.ExtractRecords(lines)
	records = utils.CalculateRateio(records, opts.DistributionAmount)

	if opts.Print {
		printRecords(records, opts.DistributionAmount)
	}

	result := &dto.ConversionResult{
		Records:    records,
		TxtPath:    txtPath,
		TotalValue: utils.TotalValue(records),
	}

	if len(records) == 0 {
		log.Println("No data extracted.")
		return result, nil
	}

	exporter, err := report.NewExporter(opts.Format)
	if err != nil {
		return nil, err
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = replaceExt(pdfPath, exporter.Extension())
	}
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outPath, err)
	}
	defer out.Close()

	if err := exporter.Export(out, records, opts.DistributionAmount != nil); err != nil {
		return nil, fmt.Errorf("failed to export records to %s: %w", outPath, err)
	}
	result.OutputPath = outPath

	log.Printf("Data saved to %s", outPath)
	log.Printf("Total records: %d", len(records))
	log.Printf("Sum of all values: %.2f", result.TotalValue)
	if opts.DistributionAmount != nil {
		log.Printf("Distribution amount: %.2f", *opts.DistributionAmount)
	}

	return result, nil
}

// ProcessDirectory converts every *.pdf in dir with default output
// naming. A failure on one file is logged and does not stop the rest.
func (s *RateioService) ProcessDirectory(dir string, opts ConvertOptions) error {
	pdfFiles, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(pdfFiles) == 0 {
		log.Printf("No PDF files found in %s", dir)
		return nil
	}

	// Per-file outputs always use default naming in directory mode.
	opts.TxtOutput = ""
	opts.Output = ""

	for _, pdfFile := range pdfFiles {
		if _, err := s.ProcessPDF(pdfFile, opts); err != nil {
			log.Printf("Error processing %s: %v", pdfFile, err)
		}
	}

	return nil
}

func printRecords(records []dto.Record, distributionAmount *float64) {
	if len(records) == 0 {
		log.Println("No data extracted.")
		return
	}

	log.Printf("Total records: %d", len(records))
	log.Printf("Sum of all values: %.2f", utils.TotalValue(records))
	if distributionAmount != nil {
		log.Printf("Distribution amount: %.2f", *distributionAmount)
	}

	for _, r := range records {
		log.Println("> data")
		log.Printf("name: %s", r.Name)
		log.Printf("code: %s", r.Code)
		log.Printf("role: %s", r.Role)
		log.Printf("value: %s", r.Value)
		log.Printf("percentage: %s", r.Percentage)
		if distributionAmount != nil {
			log.Printf("total: %s", r.Total)
		}
	}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
