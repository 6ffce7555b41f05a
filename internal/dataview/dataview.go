// Package dataview models the data table contract supplied by the host on
// each update cycle. Every structural piece is optional; accessors tolerate
// absence, and validation happens downstream in the view model builder.
package dataview

// DataTable is the top-level structure handed over by the host. A nil
// table, an empty Views slice, or any missing nested piece is a normal
// state, not an error.
type DataTable struct {
	Views    []DataView
	Metadata Metadata
}

// Primary returns the table's primary view, or nil when absent.
func (t *DataTable) Primary() *DataView {
	if t == nil || len(t.Views) == 0 {
		return nil
	}
	return &t.Views[0]
}

// DataView is one projection of the queried data.
type DataView struct {
	Categorical *Categorical
}

// Categorical groups the category and value columns of a categorical
// projection. Columns may be missing or of unequal length.
type Categorical struct {
	Categories []CategoryColumn
	Values     []ValueColumn
}

// CategoryColumn carries the category labels and their source descriptor.
type CategoryColumn struct {
	Source *ColumnDescriptor
	Values []string
}

// ValueColumn carries the numeric values and the host's reported local
// maximum for the column.
type ValueColumn struct {
	Values   []float64
	MaxLocal float64
}

// ColumnDescriptor identifies a column within the host's query model.
type ColumnDescriptor struct {
	QueryName   string
	DisplayName string
}

// Metadata carries user-set property objects grouped by object name.
type Metadata struct {
	Objects map[string]map[string]any
}
