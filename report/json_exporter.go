package report

import (
	"encoding/json"
	"io"

	"github.com/rcouto/produtividade-rateio/dto"
)

type JSONExporter struct{}

// Export writes the records as an indented JSON array. The total field
// is omitted per record when no distribution amount was supplied, so
// includeTotal needs no special handling here.
func (e *JSONExporter) Export(w io.Writer, records []dto.Record, includeTotal bool) error {
	if records == nil {
		records = []dto.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func (e *JSONExporter) Extension() string { return ".json" }

func (e *JSONExporter) ContentType() string { return "application/json" }
