package utils

import (
	"regexp"
	"strings"
)

// cleanState drives the section-skip machine in CleanText. The report
// interleaves per-worker blocks with TOTALIZAÇÃO sections whose lines
// look like data but must never be parsed.
type cleanState int

const (
	stateNormal cleanState = iota
	stateSkippingSection
)

// pageMarkerPrefix is emitted by the PDF text extraction between pages.
const pageMarkerPrefix = "--- Page"

// headerPhrases appear on every page of the report and carry no data.
var headerPhrases = []string{
	"Relação Anual",
	"COOPERATIVA",
	"Rubrica",
	"TRABALHADOR",
	"Página",
}

// monthHeader is the column header above each worker's monthly figures.
const monthHeader = "JAN FEV MAR ABR MAI JUN JUL AGO SET OUT NOV DEZ TOTAL"

// sectionTotalMarker opens a totalization section (TOTALIZAÇÃO, with
// or without the cedilla depending on the extractor).
const sectionTotalMarker = "TOTALIZA"

// reservedCodePrefix marks rubric codes that belong to totalization
// rows, not workers. A 6-digit code outside this prefix is the next
// worker's identity line.
const reservedCodePrefix = "239"

var workerCodeRegex = regexp.MustCompile(`\d{6}`)

// CleanText filters the raw extracted text down to the lines that can
// hold worker data: page markers, page headers, separators, the month
// header and whole totalization sections are dropped. The returned
// lines keep their original order and content.
func CleanText(raw string) []string {
	state := stateNormal
	var cleaned []string

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, pageMarkerPrefix) {
			continue
		}
		if containsAny(line, headerPhrases) {
			continue
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "_") {
			continue
		}
		if strings.Contains(line, monthHeader) {
			continue
		}
		if isDashLine(line) {
			continue
		}
		if strings.Contains(line, sectionTotalMarker) {
			state = stateSkippingSection
			continue
		}
		if state == stateSkippingSection {
			if workerCodeRegex.MatchString(line) && !strings.HasPrefix(line, reservedCodePrefix) {
				// Next worker found; this line is data again.
				state = stateNormal
			} else {
				continue
			}
		}
		cleaned = append(cleaned, line)
	}

	return cleaned
}

// isDashLine reports whether the line is a separator made only of
// dashes and whitespace.
func isDashLine(line string) bool {
	return strings.TrimSpace(strings.ReplaceAll(line, "-", "")) == ""
}

func containsAny(line string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}
