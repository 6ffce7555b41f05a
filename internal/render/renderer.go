package render

import (
	"math"

	"github.com/verte-zerg/barviz/internal/model"
	"github.com/verte-zerg/barviz/internal/scale"
	"github.com/verte-zerg/barviz/internal/selection"
)

const (
	axisReserve  = 25.0
	paddingInner = 0.1
	paddingOuter = 0.2
	fontScale    = 0.04

	fullOpacity   = 1.0
	dimmedOpacity = 0.5
)

// Renderer reconciles chart view models against a persistent drawing
// surface. It owns the surface and the settings persisted from the last
// render; the view model itself is rebuilt by the caller every cycle.
type Renderer struct {
	surface  *Surface
	manager  selection.Manager
	settings model.DisplaySettings
}

// New returns a renderer bound to the given selection manager. A nil
// manager disables click handling.
func New(manager selection.Manager) *Renderer {
	return &Renderer{
		surface:  &Surface{},
		manager:  manager,
		settings: model.DefaultSettings(),
	}
}

// Surface returns the drawing surface owned by the renderer.
func (r *Renderer) Surface() *Surface {
	return r.surface
}

// Resize sets the drawing surface pixel dimensions. The next Render picks
// the new size up; nothing is redrawn here.
func (r *Renderer) Resize(width, height float64) {
	r.surface.Width = width
	r.surface.Height = height
}

// Render reconciles the surface against vm: bars are created, updated in
// place, or removed keyed by array position, and the axis is redrawn only
// when enabled. Settings are persisted for EnumerateSettings.
func (r *Renderer) Render(vm model.ChartViewModel) {
	r.settings = vm.Settings

	height := r.surface.Height
	if vm.Settings.EnableAxis.Show {
		height -= axisReserve
	}

	valueScale := scale.NewLinear(0, vm.DataMax, height, 0)
	categories := make([]string, len(vm.DataPoints))
	for i, p := range vm.DataPoints {
		categories[i] = p.Category
	}
	categoryScale := scale.NewBand(categories, 0, r.surface.Width, paddingInner, paddingOuter)

	for i, p := range vm.DataPoints {
		var bar *Bar
		if i < len(r.surface.Bars) {
			bar = r.surface.Bars[i]
		} else {
			bar = &Bar{Opacity: fullOpacity}
			r.surface.Bars = append(r.surface.Bars, bar)
		}

		x, _ := categoryScale.Position(p.Category)
		top := valueScale.Scale(p.Value)
		if math.IsNaN(top) {
			// Value missing (asymmetric columns): zero-height bar at the baseline.
			top = height
		}
		bar.X = x
		bar.Y = top
		bar.Width = categoryScale.Bandwidth()
		bar.Height = height - top
		bar.Fill = p.Color
		bar.Category = p.Category
		bar.Value = p.Value
		bar.ID = p.SelectionID
	}
	if len(vm.DataPoints) < len(r.surface.Bars) {
		r.surface.Bars = r.surface.Bars[:len(vm.DataPoints)]
	}

	if vm.Settings.EnableAxis.Show {
		ticks := make([]Tick, 0, len(categoryScale.Domain()))
		for _, c := range categoryScale.Domain() {
			x, _ := categoryScale.Position(c)
			ticks = append(ticks, Tick{
				X:     x + categoryScale.Bandwidth()/2,
				Y:     height,
				Label: c,
			})
		}
		r.surface.Axis = &Axis{
			Y:        height,
			FontSize: math.Min(r.surface.Width, height) * fontScale,
			Ticks:    ticks,
		}
	} else {
		r.surface.Axis = nil
	}
}

// HandleClick toggles selection for the bar at index i. When the selection
// result arrives, a non-empty set dims every bar and the clicked bar is
// forced back to full opacity; an empty set restores full opacity for all.
func (r *Renderer) HandleClick(i int) {
	if r.manager == nil || i < 0 || i >= len(r.surface.Bars) {
		return
	}
	surface := r.surface
	clicked := surface.Bars[i]
	r.manager.Select(clicked.ID, func(selected []selection.ID) {
		applyClickHighlight(surface, clicked, selected)
	})
}

// applyClickHighlight carries the renderer state the continuation needs
// explicitly, so completions remain valid regardless of later clicks.
func applyClickHighlight(surface *Surface, clicked *Bar, selected []selection.ID) {
	opacity := fullOpacity
	if len(selected) > 0 {
		opacity = dimmedOpacity
	}
	for _, b := range surface.Bars {
		b.Opacity = opacity
	}
	clicked.Opacity = fullOpacity
}

// ApplySelection restores highlighting from a persisted selection set:
// members render at full opacity, everything else dimmed; an empty set
// restores full opacity for all bars.
func (r *Renderer) ApplySelection(selected []selection.ID) {
	members := make(map[selection.ID]struct{}, len(selected))
	for _, id := range selected {
		members[id] = struct{}{}
	}
	for _, b := range r.surface.Bars {
		if len(members) == 0 {
			b.Opacity = fullOpacity
			continue
		}
		if _, ok := members[b.ID]; ok {
			b.Opacity = fullOpacity
		} else {
			b.Opacity = dimmedOpacity
		}
	}
}

// EnumerateSettings reports the persisted values for a settings group in
// the shape the host property panel expects. Unknown group names yield an
// empty result.
func (r *Renderer) EnumerateSettings(objectName string) map[string]any {
	switch objectName {
	case "enableAxis":
		return map[string]any{"show": r.settings.EnableAxis.Show}
	}
	return map[string]any{}
}
