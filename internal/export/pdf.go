package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/verte-zerg/barviz/internal/render"
)

// WritePDF draws the reconciled surface into a single-page PDF sized to
// the surface, preserving bar opacities and the axis when present.
func WritePDF(w io.Writer, surface *render.Surface) error {
	if surface.Width <= 0 || surface.Height <= 0 {
		return fmt.Errorf("surface has no size")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: surface.Width, Ht: surface.Height},
	})
	pdf.AddPage()

	for _, b := range surface.Bars {
		r, g, bl, err := hexRGB(b.Fill)
		if err != nil {
			return err
		}
		pdf.SetFillColor(r, g, bl)
		pdf.SetAlpha(b.Opacity, "Normal")
		pdf.Rect(b.X, b.Y, b.Width, b.Height, "F")
	}

	if axis := surface.Axis; axis != nil {
		pdf.SetAlpha(1, "Normal")
		pdf.SetDrawColor(51, 51, 51)
		pdf.Line(0, axis.Y, surface.Width, axis.Y)
		pdf.SetTextColor(51, 51, 51)
		pdf.SetFont("Helvetica", "", axis.FontSize)
		for _, t := range axis.Ticks {
			width := pdf.GetStringWidth(t.Label)
			pdf.Text(t.X-width/2, t.Y+axis.FontSize+4, t.Label)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func hexRGB(hex string) (int, int, int, error) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}
