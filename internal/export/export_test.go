package export

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/trajview/internal/trajectory"
)

var bounds = trajectory.Bounds{XMin: 0, XMax: 20, YMin: -5.5, YMax: 5.5}

func fixtures() ([]trajectory.Series, *trajectory.Series) {
	ref := trajectory.DefaultBallistic().Sample("Analytical (no drag)", 5e-3, 100)
	sim := trajectory.Series{
		Name: "Forward <Euler>",
		X:    []float64{0, 1, 2, math.NaN(), 4},
		Y:    []float64{0, 1, 1.5, 0, 1},
	}
	return []trajectory.Series{sim}, &ref
}

func TestComparisonSVG(t *testing.T) {
	sims, ref := fixtures()
	opts := DefaultOptions(bounds)
	opts.Title = "drag & no drag"

	var buf bytes.Buffer
	require.NoError(t, ComparisonSVG(&buf, sims, ref, opts))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 2, strings.Count(out, "<path "))
	assert.Equal(t, 1, strings.Count(out, `stroke-dasharray="6,4"`), "reference is dashed")
	assert.Contains(t, out, "Forward &lt;Euler&gt;")
	assert.Contains(t, out, "drag &amp; no drag")
	assert.Contains(t, out, `d="M40.0,225.0 L`)
	// NaN splits the simulated path into two runs
	assert.Contains(t, out, " M184.0,191.4")
}

func TestPathDataFixedBounds(t *testing.T) {
	project := func(x, y float64) (float64, float64) { return x * 10, -y }
	s := trajectory.Series{X: []float64{0, 1, math.Inf(1), 2}, Y: []float64{0, 2, 0, 3}}
	assert.Equal(t, "M0.0,0.0 L10.0,-2.0 M20.0,-3.0", pathData(s, project))
	assert.Empty(t, pathData(trajectory.Series{}, project))
}

func TestProjectorCorners(t *testing.T) {
	b := trajectory.Bounds{XMin: -10, XMax: 10, YMin: 0, YMax: 10}
	project := projector(b, 720, 370)

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"bottom left", -10, 0, 40, 410},
		{"top right", 10, 10, 760, 40},
		{"top left", -10, 10, 40, 40},
		{"centre bottom", 0, 0, 400, 410},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := project(tt.x, tt.y)
			assert.InDelta(t, tt.px, px, 1e-9)
			assert.InDelta(t, tt.py, py, 1e-9)
		})
	}

	s := trajectory.Series{X: []float64{-10, 10}, Y: []float64{0, 10}}
	assert.Equal(t, "M40.0,410.0 L760.0,40.0", pathData(s, project))
}

func TestComparisonPNG(t *testing.T) {
	sims, ref := fixtures()

	var buf bytes.Buffer
	require.NoError(t, ComparisonPNG(&buf, sims, ref, DefaultOptions(bounds)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestNothingToPlot(t *testing.T) {
	opts := DefaultOptions(bounds)
	empty := []trajectory.Series{{Name: "empty"}}

	assert.ErrorIs(t, ComparisonSVG(&bytes.Buffer{}, empty, nil, opts), ErrNothingToPlot)
	assert.ErrorIs(t, ComparisonPNG(&bytes.Buffer{}, empty, nil, opts), ErrNothingToPlot)
}

func TestWriteFile(t *testing.T) {
	sims, ref := fixtures()
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "out.svg")
	require.NoError(t, WriteFile(svgPath, sims, ref, DefaultOptions(bounds)))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	assert.Error(t, WriteFile(filepath.Join(dir, "out.gif"), sims, ref, DefaultOptions(bounds)))

	failed := filepath.Join(dir, "empty.svg")
	assert.ErrorIs(t, WriteFile(failed, nil, nil, DefaultOptions(bounds)), ErrNothingToPlot)
	assert.NoFileExists(t, failed)
}
