package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rcouto/produtividade-rateio/dto"
)

type XLSXExporter struct{}

func (e *XLSXExporter) Export(w io.Writer, records []dto.Record, includeTotal bool) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := Columns(includeTotal)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		fields := row(r, includeTotal)
		if err := f.SetSheetRow(sheet, cell, &fields); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func (e *XLSXExporter) Extension() string { return ".xlsx" }

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
