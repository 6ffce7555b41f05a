// Package export renders the chart into portable formats (PNG, PDF) for
// use outside the host's drawing surface.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/verte-zerg/barviz/internal/model"
)

// WritePNG renders the view model as a PNG bar chart.
func WritePNG(w io.Writer, vm model.ChartViewModel, viewport model.Viewport, title string) error {
	if len(vm.DataPoints) == 0 {
		return fmt.Errorf("no data points to render")
	}

	values := make([]chart.Value, 0, len(vm.DataPoints))
	for _, p := range vm.DataPoints {
		v := p.Value
		if math.IsNaN(v) {
			v = 0
		}
		fill := drawing.ColorFromHex(strings.TrimPrefix(p.Color, "#"))
		values = append(values, chart.Value{
			Label: p.Category,
			Value: v,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  int(viewport.Width),
		Height: int(viewport.Height),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.Style{Hidden: !vm.Settings.EnableAxis.Show},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: !vm.Settings.EnableAxis.Show},
			Range: &chart.ContinuousRange{Min: 0, Max: vm.DataMax},
		},
		Bars: values,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render png: %w", err)
	}
	return nil
}
