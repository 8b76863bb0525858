// Package export renders static comparison images of trajectories against
// the analytical reference.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/trajview/internal/trajectory"
	"github.com/san-kum/trajview/internal/viz"
)

const background = "#0a0a0a"

var ErrNothingToPlot = errors.New("export: no points to plot")

type Options struct {
	Title  string
	Width  int
	Height int
	Bounds trajectory.Bounds
	Theme  viz.Theme
}

func DefaultOptions(bounds trajectory.Bounds) Options {
	return Options{
		Width:  800,
		Height: 450,
		Bounds: bounds,
		Theme:  viz.ThemeMinimal,
	}
}

// WriteFile picks the renderer from the extension of path (.svg or .png).
func WriteFile(path string, sims []trajectory.Series, ref *trajectory.Series, opts Options) error {
	var render func(io.Writer, []trajectory.Series, *trajectory.Series, Options) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		render = ComparisonSVG
	case ".png":
		render = ComparisonPNG
	default:
		return fmt.Errorf("unsupported image format %q (use .svg or .png)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f, sims, ref, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func hasPoints(sims []trajectory.Series, ref *trajectory.Series) bool {
	for _, s := range sims {
		if s.Frames() > 0 {
			return true
		}
	}
	return ref != nil && ref.Frames() > 0
}
