package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcouto/produtividade-rateio/dto"
)

// Exporter writes a record set to one output format. Column order is
// fixed: name, code, role, value, percentage and, when a distribution
// amount was supplied, total.
type Exporter interface {
	Export(w io.Writer, records []dto.Record, includeTotal bool) error
	Extension() string
	ContentType() string
}

// NewExporter returns the exporter for the given format name. An empty
// format defaults to CSV.
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "xlsx":
		return &XLSXExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Columns returns the output header row.
func Columns(includeTotal bool) []string {
	columns := []string{"name", "code", "role", "value", "percentage"}
	if includeTotal {
		columns = append(columns, "total")
	}
	return columns
}

func row(r dto.Record, includeTotal bool) []string {
	fields := []string{r.Name, r.Code, r.Role, r.Value, r.Percentage}
	if includeTotal {
		fields = append(fields, r.Total)
	}
	return fields
}
