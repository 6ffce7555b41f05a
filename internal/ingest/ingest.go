// Package ingest loads chart data tables from local files, producing the
// same nested structure the host's data-query layer hands the visual.
package ingest

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verte-zerg/barviz/internal/dataview"
)

// Load reads a data table from path, dispatching on the file extension.
// Supported: .csv, .xlsx.
func Load(path string) (*dataview.DataTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	}
	return nil, fmt.Errorf("unsupported data file extension: %s", filepath.Ext(path))
}

// LoadCSV reads a two-column (category, value) CSV file. A first row whose
// second field does not parse as a number is treated as a header and used
// for the column descriptor.
func LoadCSV(path string) (*dataview.DataTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close after read.
			_ = cerr
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return buildTable(records)
}

// buildTable converts raw rows into the host-shaped data table, computing
// the value column's reported maximum the way the host query layer would.
func buildTable(records [][]string) (*dataview.DataTable, error) {
	queryName := "category"
	displayName := "Category"
	if len(records) > 0 && len(records[0]) >= 2 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][1]), 64); err != nil {
			displayName = strings.TrimSpace(records[0][0])
			queryName = strings.ToLower(displayName)
			records = records[1:]
		}
	}

	categories := make([]string, 0, len(records))
	values := make([]float64, 0, len(records))
	maxLocal := math.Inf(-1)
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", i+1, len(rec))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid value %q: %w", i+1, rec[1], err)
		}
		categories = append(categories, strings.TrimSpace(rec[0]))
		values = append(values, v)
		if v > maxLocal {
			maxLocal = v
		}
	}
	if len(values) == 0 {
		maxLocal = 0
	}

	return &dataview.DataTable{
		Views: []dataview.DataView{{
			Categorical: &dataview.Categorical{
				Categories: []dataview.CategoryColumn{{
					Source: &dataview.ColumnDescriptor{
						QueryName:   queryName,
						DisplayName: displayName,
					},
					Values: categories,
				}},
				Values: []dataview.ValueColumn{{
					Values:   values,
					MaxLocal: maxLocal,
				}},
			},
		}},
	}, nil
}
