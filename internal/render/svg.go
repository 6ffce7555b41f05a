package render

import (
	"fmt"
	"html/template"
	"io"
)

var svgTmpl = template.Must(template.New("svg").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
{{- range .Bars}}
  <rect x="{{.X}}" y="{{.Y}}" width="{{.Width}}" height="{{.Height}}" fill="{{.Fill}}" fill-opacity="{{.Opacity}}"/>
{{- end}}
{{- with .Axis}}
  <line x1="0" y1="{{.Y}}" x2="{{$.Width}}" y2="{{.Y}}" stroke="#333333" stroke-width="1"/>
  {{- range .Ticks}}
  <text x="{{.X}}" y="{{.LabelY}}" font-size="{{$.Axis.FontSize}}" text-anchor="middle" fill="#333333">{{.Label}}</text>
  {{- end}}
{{- end}}
</svg>
`))

type svgView struct {
	Width  string
	Height string
	Bars   []svgBar
	Axis   *svgAxis
}

type svgBar struct {
	X, Y, Width, Height string
	Fill                string
	Opacity             string
}

type svgAxis struct {
	Y        string
	FontSize string
	Ticks    []svgTick
}

type svgTick struct {
	X      string
	LabelY string
	Label  string
}

// WriteSVG serializes the surface's current primitive set to w.
func (s *Surface) WriteSVG(w io.Writer) error {
	view := svgView{
		Width:  coord(s.Width),
		Height: coord(s.Height),
		Bars:   make([]svgBar, 0, len(s.Bars)),
	}
	for _, b := range s.Bars {
		view.Bars = append(view.Bars, svgBar{
			X:       coord(b.X),
			Y:       coord(b.Y),
			Width:   coord(b.Width),
			Height:  coord(b.Height),
			Fill:    b.Fill,
			Opacity: coord(b.Opacity),
		})
	}
	if s.Axis != nil {
		axis := &svgAxis{
			Y:        coord(s.Axis.Y),
			FontSize: coord(s.Axis.FontSize),
		}
		// Labels sit inside the reserved strip, one line below the baseline.
		for _, t := range s.Axis.Ticks {
			axis.Ticks = append(axis.Ticks, svgTick{
				X:      coord(t.X),
				LabelY: coord(t.Y + s.Axis.FontSize + 4),
				Label:  t.Label,
			})
		}
		view.Axis = axis
	}
	if err := svgTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}
	return nil
}

func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
