// Package model defines shared data structures.
package model

import "github.com/verte-zerg/barviz/internal/selection"

// AxisSettings controls the category axis display.
type AxisSettings struct {
	Show bool
}

// DisplaySettings holds the user-configurable chart settings for one
// render cycle. The renderer persists them across cycles so the host's
// property panel can read them back.
type DisplaySettings struct {
	EnableAxis AxisSettings
}

// DefaultSettings returns the settings used when the host provides none.
func DefaultSettings() DisplaySettings {
	return DisplaySettings{EnableAxis: AxisSettings{Show: false}}
}

// DataPoint is one renderable category/value pair. Value is NaN when the
// value column is shorter than the category column.
type DataPoint struct {
	Category    string
	Value       float64
	Color       string
	SelectionID selection.ID
}

// ChartViewModel is the validated, render-ready projection of the host
// data table. DataMax carries the value column's reported maximum verbatim
// and may diverge from the actual per-point maximum.
type ChartViewModel struct {
	DataPoints []DataPoint
	DataMax    float64
	Settings   DisplaySettings
}

// Viewport is the drawing surface size in device-independent pixels.
type Viewport struct {
	Width  float64
	Height float64
}
