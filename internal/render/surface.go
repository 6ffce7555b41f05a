// Package render maps chart view models onto the drawing surface and keeps
// selection highlighting consistent across renders.
package render

import "github.com/verte-zerg/barviz/internal/selection"

// Bar is one rectangle primitive on the drawing surface. Opacity is
// transition state managed by selection highlighting and survives
// attribute updates across renders.
type Bar struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Fill    string
	Opacity float64

	Category string
	Value    float64
	ID       selection.ID
}

// Tick is one category axis tick, anchored at the band center.
type Tick struct {
	X     float64
	Y     float64
	Label string
}

// Axis is the rendered category axis: a baseline at Y plus one tick per
// band, labeled at the responsive font size.
type Axis struct {
	Y        float64
	FontSize float64
	Ticks    []Tick
}

// Surface is the drawing surface sized to the viewport. It owns the bar
// and axis primitives across render cycles; bars are keyed by array
// position and mutated in place when their key persists.
type Surface struct {
	Width  float64
	Height float64
	Bars   []*Bar
	Axis   *Axis
}
