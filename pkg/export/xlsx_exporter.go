package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet pairs a worksheet name with its tabular content.
type Sheet struct {
	Name string
	Data Dataset
}

// XLSXExporter renders one or more sheets into an xlsx workbook.
type XLSXExporter struct{}

// NewXLSXExporter constructs an xlsx exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Render builds a workbook with one worksheet per sheet, headers in row 1.
func (e *XLSXExporter) Render(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	for i, sheet := range sheets {
		if sheet.Name == "" {
			return nil, fmt.Errorf("xlsx sheet %d has no name", i)
		}
		if len(sheet.Data.Headers) == 0 {
			return nil, fmt.Errorf("xlsx sheet %q requires at least one header", sheet.Name)
		}

		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("add sheet %q: %w", sheet.Name, err)
			}
		}

		for col, header := range sheet.Data.Headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, fmt.Errorf("header cell: %w", err)
			}
			if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
				return nil, fmt.Errorf("write header: %w", err)
			}
		}

		for rowIdx, row := range sheet.Data.Rows {
			for col, header := range sheet.Data.Headers {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return nil, fmt.Errorf("row cell: %w", err)
				}
				if err := f.SetCellValue(sheet.Name, cell, row[header]); err != nil {
					return nil, fmt.Errorf("write row: %w", err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
