package report

import (
	"encoding/csv"
	"io"

	"github.com/rcouto/produtividade-rateio/dto"
)

type CSVExporter struct{}

func (e *CSVExporter) Export(w io.Writer, records []dto.Record, includeTotal bool) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns(includeTotal)); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r, includeTotal)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (e *CSVExporter) Extension() string { return ".csv" }

func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }
