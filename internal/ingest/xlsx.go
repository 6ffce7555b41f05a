package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/verte-zerg/barviz/internal/dataview"
)

// LoadXLSX reads a two-column (category, value) table from the first sheet
// of an Excel workbook. Header detection matches LoadCSV.
func LoadXLSX(path string) (*dataview.DataTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close after read.
			_ = cerr
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return buildTable(rows)
}
