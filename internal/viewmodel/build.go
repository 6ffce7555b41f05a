// Package viewmodel converts host data tables into render-ready chart
// view models.
package viewmodel

import (
	"math"

	"github.com/verte-zerg/barviz/internal/dataview"
	"github.com/verte-zerg/barviz/internal/model"
	"github.com/verte-zerg/barviz/internal/selection"
)

// Palette resolves a stable color for a category label.
type Palette interface {
	Color(key string) string
}

// IdentityFactory mints selection identities for row indices.
type IdentityFactory interface {
	ForRow(row int) selection.ID
}

// Empty returns the canonical empty view model: no points, zero maximum,
// default settings.
func Empty() model.ChartViewModel {
	return model.ChartViewModel{Settings: model.DefaultSettings()}
}

// Build validates the host table and projects it into a chart view model.
// Any missing structural piece (table, primary view, categorical section,
// category column, category source descriptor, value column) yields the
// empty view model; absence of valid data is a normal state, not an error.
//
// One data point is produced per index up to the longer of the two
// columns: a missing category reads as "", a missing value as NaN.
// DataMax is copied verbatim from the value column's reported maximum.
func Build(table *dataview.DataTable, colors Palette, ids IdentityFactory) model.ChartViewModel {
	view := table.Primary()
	if view == nil || view.Categorical == nil {
		return Empty()
	}
	categorical := view.Categorical
	if len(categorical.Categories) == 0 || categorical.Categories[0].Source == nil {
		return Empty()
	}
	if len(categorical.Values) == 0 {
		return Empty()
	}
	categoryCol := categorical.Categories[0]
	valueCol := categorical.Values[0]

	settings := model.DisplaySettings{
		EnableAxis: model.AxisSettings{
			Show: dataview.Option(table.Metadata, "enableAxis", "show", false),
		},
	}

	count := len(categoryCol.Values)
	if len(valueCol.Values) > count {
		count = len(valueCol.Values)
	}
	points := make([]model.DataPoint, 0, count)
	for i := 0; i < count; i++ {
		category := ""
		if i < len(categoryCol.Values) {
			category = categoryCol.Values[i]
		}
		value := math.NaN()
		if i < len(valueCol.Values) {
			value = valueCol.Values[i]
		}
		points = append(points, model.DataPoint{
			Category:    category,
			Value:       value,
			Color:       colors.Color(category),
			SelectionID: ids.ForRow(i),
		})
	}

	return model.ChartViewModel{
		DataPoints: points,
		DataMax:    valueCol.MaxLocal,
		Settings:   settings,
	}
}
