package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajview/internal/anim"
	"github.com/san-kum/trajview/internal/trajectory"
)

const (
	defaultWidth  = 60
	defaultHeight = 20
	minWidth      = 20
	minHeight     = 6

	referenceDash = 2
)

type TickMsg time.Time

// Options configure a playback window.
type Options struct {
	Title     string
	Bounds    trajectory.Bounds
	Reference *trajectory.Series
	Dt        float64
	Interval  time.Duration
	Theme     string
}

// Model is the Bubble Tea program state. The player is advanced only from
// Update.
type Model struct {
	player    *anim.Player
	reference *trajectory.Series
	bounds    trajectory.Bounds
	title     string
	dt        float64
	interval  time.Duration

	theme  Theme
	styles styles
	canvas *Canvas
	// plot is the last canvas image with its legend. Only Update and
	// NewModel redraw it; View reads it.
	plot string

	paused  bool
	ticking bool
}

func NewModel(player *anim.Player, opts Options) Model {
	theme, ok := GetTheme(opts.Theme)
	if !ok && opts.Theme != "" {
		log.Printf("viz: unknown theme %q, using %s", opts.Theme, theme.Name)
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	m := Model{
		player:    player,
		reference: opts.Reference,
		bounds:    opts.Bounds,
		title:     opts.Title,
		dt:        opts.Dt,
		interval:  interval,
		theme:     theme,
		styles:    newStyles(theme),
		canvas:    NewCanvas(defaultWidth, defaultHeight),
		ticking:   !player.Finished(),
	}
	m.render()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// schedule restarts the tick loop after a pause or reset. Init owns the
// first tick.
func (m *Model) schedule() tea.Cmd {
	if m.ticking || m.paused || m.player.Finished() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m Model) Init() tea.Cmd {
	if m.player.Finished() {
		return nil
	}
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			cmd = m.schedule()
		case "r":
			m.player.Reset()
			log.Printf("viz: playback reset")
			cmd = m.schedule()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		default:
			return m, nil
		}
	case tea.WindowSizeMsg:
		w := max(minWidth, msg.Width-panelWidth-8)
		h := max(minHeight, msg.Height-6)
		m.canvas = NewCanvas(w, h)
	case TickMsg:
		m.ticking = false
		if m.paused || !m.player.Tick() {
			return m, nil
		}
		if m.player.Finished() {
			log.Printf("viz: playback finished after %d ticks", m.player.Ticks())
		} else {
			m.ticking = true
			cmd = m.tick()
		}
	default:
		return m, nil
	}
	m.render()
	return m, cmd
}

// Player exposes the session for inspection.
func (m Model) Player() *anim.Player { return m.player }

func (m Model) Paused() bool { return m.paused }

func (m Model) Theme() Theme { return m.theme }

// draw renders the axes, the full reference and every visible prefix.
func (m *Model) draw() {
	c := m.canvas
	c.Clear()
	vp := c.Viewport(m.bounds)
	tracks := m.player.Len()
	refLayer, axisLayer := tracks, tracks+1

	if m.bounds.YMin < 0 && m.bounds.YMax > 0 {
		c.Polyline([]float64{m.bounds.XMin, m.bounds.XMax}, []float64{0, 0}, vp, axisLayer, 1)
	}
	if m.reference != nil {
		c.Polyline(m.reference.X, m.reference.Y, vp, refLayer, referenceDash)
	}
	for i := 0; i < tracks; i++ {
		xs, ys := m.player.Visible(i)
		c.Polyline(xs, ys, vp, i, 0)
		if n := len(xs); n > 0 && !m.player.TrackDone(i) {
			c.Marker(xs[n-1], ys[n-1], vp, i)
		}
	}
}

func (m Model) status() string {
	switch {
	case m.player.Finished():
		return m.styles.finished.Render("FINISHED")
	case m.paused:
		return m.styles.paused.Render("PAUSED")
	case m.player.State() == anim.Idle:
		return m.styles.paused.Render("READY")
	default:
		return m.styles.running.Render("PLAYING")
	}
}

func (m Model) legend() string {
	entries := make([]string, 0, m.player.Len()+1)
	for i := 0; i < m.player.Len(); i++ {
		entries = append(entries, legendEntry(m.theme.SeriesColor(i), "━━", m.player.Track(i).Series.Name))
	}
	if m.reference != nil {
		entries = append(entries, legendEntry(m.theme.Reference, "╌╌", m.reference.Name))
	}
	return strings.Join(entries, "   ")
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
}

func (m Model) panel() string {
	var s strings.Builder
	title := m.title
	if title == "" {
		title = "trajectory"
	}
	s.WriteString(m.styles.header.Render(strings.ToUpper(title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	frame := m.player.Frame()
	s.WriteString(m.row("Frame", fmt.Sprintf("%d / %d", frame+1, m.player.MaxFrames())))
	if m.dt > 0 {
		s.WriteString(m.row("Time", fmt.Sprintf("%.3fs", float64(frame+1)*m.dt)))
	}
	s.WriteString(m.styles.progress.Render(ProgressBar(m.player.Progress(), progressSize)) + "\n")

	if m.player.Len() > 0 {
		_, ys := m.player.Visible(0)
		if len(ys) > 1 {
			chart := asciigraph.Plot(ys, asciigraph.Height(graphHeight), asciigraph.Width(graphWidth), asciigraph.Caption("y"))
			s.WriteString(m.styles.graph.Render(chart) + "\n")
		}
		if idx := m.player.Index(0); idx >= 0 {
			tr := m.player.Track(0).Series
			s.WriteString(m.row("x", formatFloat(tr.X[idx])))
			s.WriteString(m.row("y", formatFloat(tr.Y[idx])))
		}
		if m.reference != nil {
			dev := trajectory.CompareUpTo(m.player.Track(0).Series, *m.reference, m.player.Index(0)+1)
			if dev.Samples > 0 {
				s.WriteString(m.row("RMS dev", formatFloat(dev.RMS)))
				s.WriteString(m.row("Max dev", fmt.Sprintf("%s @%d", formatFloat(dev.Max), dev.MaxFrame)))
			}
		}
	}

	s.WriteString(m.styles.help.Render("─────────────────────\nSP:Pause R:Replay\nT:Theme  Q:Quit\ntheme: " + m.theme.Name))
	return m.styles.panel.Render(s.String())
}

// render redraws the canvas and caches the styled plot.
func (m *Model) render() {
	m.draw()
	m.plot = m.styles.canvas.Render(m.canvas.Render(layerStyles(m.theme, m.player.Len())) + "\n\n" + m.legend())
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.plot, m.panel())
}
