package utils

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rcouto/produtividade-rateio/dto"
)

var brazilianPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseBrazilianNumber converts a number in Brazilian format
// ("1.234,56") to a float64.
func ParseBrazilianNumber(s string) (float64, error) {
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

// ParseAmount parses the caller-supplied distribution amount. An empty
// or malformed amount means no distribution was requested.
func ParseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := ParseBrazilianNumber(s)
	if err != nil {
		log.Printf("Warning: could not parse amount %q, skipping distribution", s)
		return nil
	}
	return &v
}

// FormatBrazilianNumber renders v with the given number of decimal
// places in Brazilian convention: dot as thousands separator, comma as
// decimal separator.
func FormatBrazilianNumber(v float64, decimalPlaces int) string {
	return brazilianPrinter.Sprintf("%v", number.Decimal(v, number.Scale(decimalPlaces)))
}

// TotalValue sums every record's value. Records whose value does not
// parse are logged and contribute zero.
func TotalValue(records []dto.Record) float64 {
	var total float64
	for _, r := range records {
		if r.Value == "" {
			continue
		}
		v, err := ParseBrazilianNumber(r.Value)
		if err != nil {
			log.Printf("Warning: could not convert value %q to float for %s", r.Value, r.Name)
			continue
		}
		total += v
	}
	return total
}

// CalculateRateio fills in each record's percentage of the grand total
// and, when a distribution amount is given, its proportional share of
// that amount. Records whose value does not parse, and every record
// when the total is zero, get zeroed derived fields.
func CalculateRateio(records []dto.Record, distributionAmount *float64) []dto.Record {
	if len(records) == 0 {
		return records
	}

	total := TotalValue(records)

	for i := range records {
		r := &records[i]
		if r.Value == "" {
			continue
		}

		v, err := ParseBrazilianNumber(r.Value)
		if err != nil || total == 0 {
			r.Percentage = "0,000000"
			r.PercentageFloat = 0
			if distributionAmount != nil {
				r.Total = "0,00"
				r.TotalFloat = 0
			}
			continue
		}

		percentage := v / total * 100
		r.Percentage = FormatBrazilianNumber(percentage, 6)
		r.PercentageFloat = percentage

		if distributionAmount != nil {
			share := percentage / 100 * *distributionAmount
			r.Total = FormatBrazilianNumber(share, 2)
			r.TotalFloat = share
		}
	}

	return records
}
