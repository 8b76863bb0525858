package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	panelWidth   = 40
	graphWidth   = 30
	graphHeight  = 5
	progressSize = 24
)

// styles are derived from the active theme on every theme change.
type styles struct {
	canvas   lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	finished lipgloss.Style
	progress lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Axis).
			Padding(1, 2).
			Width(panelWidth),
		header:   lipgloss.NewStyle().Foreground(t.Title).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		graph:    lipgloss.NewStyle().Foreground(t.SeriesColor(0)).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		running:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		finished: lipgloss.NewStyle().Bold(true).Foreground(t.Muted),
		progress: lipgloss.NewStyle().Foreground(t.SeriesColor(0)),
	}
}

// layerStyles colours canvas layers: one per track, then the reference and
// the axes.
func layerStyles(t Theme, tracks int) []lipgloss.Style {
	out := make([]lipgloss.Style, tracks+2)
	for i := 0; i < tracks; i++ {
		out[i] = lipgloss.NewStyle().Foreground(t.SeriesColor(i))
	}
	out[tracks] = lipgloss.NewStyle().Foreground(t.Reference)
	out[tracks+1] = lipgloss.NewStyle().Foreground(t.Axis)
	return out
}

// ProgressBar renders percent in [0, 1] as a fixed-width bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func legendEntry(color lipgloss.Color, mark, name string) string {
	return lipgloss.NewStyle().Foreground(color).Render(mark) + " " + name
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
