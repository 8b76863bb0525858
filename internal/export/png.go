package export

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/trajview/internal/trajectory"
)

func color(c lipgloss.Color) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(string(c), "#"))
}

// finite drops non-finite samples, which go-chart cannot range over.
func finite(s trajectory.Series) (xs, ys []float64) {
	for i := 0; i < s.Frames(); i++ {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// ComparisonPNG renders the same comparison as ComparisonSVG with go-chart.
func ComparisonPNG(w io.Writer, sims []trajectory.Series, ref *trajectory.Series, opts Options) error {
	var series []chart.Series
	add := func(s trajectory.Series, st chart.Style) {
		xs, ys := finite(s)
		if len(xs) == 0 {
			return
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}

	for i, s := range sims {
		add(s, chart.Style{StrokeColor: color(opts.Theme.SeriesColor(i)), StrokeWidth: 2})
	}
	if ref != nil {
		add(*ref, chart.Style{StrokeColor: color(opts.Theme.Reference), StrokeWidth: 1.5, StrokeDashArray: []float64{6, 4}})
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	text := color(opts.Theme.Text)
	axis := chart.Style{FontColor: text, StrokeColor: color(opts.Theme.Axis)}
	b := opts.Bounds

	ch := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontColor: color(opts.Theme.Title)},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: color(background)},
		Canvas:     chart.Style{FillColor: color(background)},
		XAxis:      chart.XAxis{Name: "x", NameStyle: axis, Style: axis, Range: &chart.ContinuousRange{Min: b.XMin, Max: b.XMax}},
		YAxis:      chart.YAxis{Name: "y", NameStyle: axis, Style: axis, Range: &chart.ContinuousRange{Min: b.YMin, Max: b.YMax}},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}
