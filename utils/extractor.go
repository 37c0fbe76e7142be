package utils

import (
	"regexp"
	"strings"

	"github.com/rcouto/produtividade-rateio/dto"
)

var (
	// identityRegex matches a worker identity line such as
	// "ADRIANA ALVES 123456 AUX ENFERMAGEM": a diacritic-aware name,
	// the mandatory 6-digit code, then the role.
	identityRegex = regexp.MustCompile(`(?P<name>[A-Za-zÀ-ÖØ-öø-ÿ\s]+?)\s+(?P<code>\d{6})\s+(?P<role>.+)$`)

	// valueRegex captures the trailing Brazilian-format number on the
	// productivity line (the TOTAL column comes last).
	valueRegex = regexp.MustCompile(`(?P<value>[\d.]+,\d+)$`)
)

// extractorNoise mirrors the cleaner's header phrases. ExtractRecords
// re-filters its input because callers may hand it uncleaned text.
var extractorNoise = []string{
	"Relação",
	"COOPERATIVA",
	"Rubrica",
	"TRABALHADOR",
	"Página",
}

// ExtractRecords walks the cleaned lines in blocks of three: identity
// line, productivity line, per-worker total line. A line that does not
// match the identity pattern is treated as noise and skipped one line
// at a time. Once an identity line matches, the whole 3-line block is
// consumed whether or not the productivity line yields a value; a
// block without a value produces no record. The trailing total line is
// never inspected.
func ExtractRecords(lines []string) []dto.Record {
	cleaned := filterContentLines(lines)

	var records []dto.Record
	i := 0
	for i < len(cleaned)-2 {
		identity := identityRegex.FindStringSubmatch(cleaned[i])
		if identity == nil {
			i++
			continue
		}

		if value := valueRegex.FindStringSubmatch(cleaned[i+1]); value != nil {
			records = append(records, dto.Record{
				Name:  strings.TrimSpace(identity[1]),
				Code:  identity[2],
				Role:  strings.TrimSpace(identity[3]),
				Value: value[1],
			})
		}

		i += 3
	}

	return records
}

// filterContentLines trims every line and drops empty lines,
// separator lines and page headers. Kept separate from CleanText so
// extraction also works on raw text when cleaning is disabled.
func filterContentLines(lines []string) []string {
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "_") || strings.HasPrefix(line, "-") {
			continue
		}
		if containsAny(line, extractorNoise) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}
