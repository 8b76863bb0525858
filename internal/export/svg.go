package export

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/san-kum/trajview/internal/trajectory"
)

const svgMargin = 40

// ComparisonSVG draws every series as a solid path and the reference as a
// dashed path, all within the fixed bounds of opts.
func ComparisonSVG(w io.Writer, sims []trajectory.Series, ref *trajectory.Series, opts Options) error {
	if !hasPoints(sims, ref) {
		return ErrNothingToPlot
	}

	width, height := float64(opts.Width), float64(opts.Height)
	plotW, plotH := width-2*svgMargin, height-2*svgMargin
	b := opts.Bounds
	project := projector(b, plotW, plotH)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<defs><clipPath id="plot"><rect x="%d" y="%d" width="%.0f" height="%.0f"/></clipPath></defs>
<rect x="%d" y="%d" width="%.0f" height="%.0f" fill="none" stroke="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, background,
		svgMargin, svgMargin, plotW, plotH,
		svgMargin, svgMargin, plotW, plotH, opts.Theme.Axis))

	if b.YMin < 0 && b.YMax > 0 {
		x0, y0 := project(b.XMin, 0)
		x1, _ := project(b.XMax, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="1,3"/>
`, x0, y0, x1, y0, opts.Theme.Axis))
	}

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" fill="%s" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, width/2, svgMargin/2, opts.Theme.Title, html.EscapeString(opts.Title)))
	}

	legend := 0
	writeSeries := func(s trajectory.Series, color, dash string) {
		if d := pathData(s, project); d != "" {
			sb.WriteString(fmt.Sprintf(`<path clip-path="url(#plot)" fill="none" stroke="%s" stroke-width="1.5"%s d="%s"/>
`, color, dash, d))
		}
		legend++
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s</text>
`, svgMargin+8, float64(svgMargin+16*legend), color, html.EscapeString(s.Name)))
	}

	if ref != nil {
		writeSeries(*ref, string(opts.Theme.Reference), ` stroke-dasharray="6,4"`)
	}
	for i, s := range sims {
		writeSeries(s, string(opts.Theme.SeriesColor(i)), "")
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// projector maps data coordinates into the plot rectangle, with y growing
// downwards. The bounds' corners land on the rectangle's corners.
func projector(b trajectory.Bounds, plotW, plotH float64) func(x, y float64) (float64, float64) {
	rangeX, rangeY := b.XMax-b.XMin, b.YMax-b.YMin
	if rangeX <= 0 {
		rangeX = 1
	}
	if rangeY <= 0 {
		rangeY = 1
	}
	return func(x, y float64) (float64, float64) {
		return svgMargin + (x-b.XMin)/rangeX*plotW, svgMargin + plotH - (y-b.YMin)/rangeY*plotH
	}
}

// pathData joins consecutive finite points with M/L commands. A non-finite
// point breaks the path.
func pathData(s trajectory.Series, project func(x, y float64) (float64, float64)) string {
	var sb strings.Builder
	pen := false
	for i := 0; i < s.Frames(); i++ {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			pen = false
			continue
		}
		px, py := project(x, y)
		// %.1f prints negative zero as -0.0
		px, py = px+0, py+0
		cmd := "L"
		if !pen {
			cmd = "M"
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, px, py))
		pen = true
	}
	return sb.String()
}
