package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for the player. Tracks cycle through
// Series; the reference overlay and the axes get their own colours.
type Theme struct {
	Name      string
	Series    []lipgloss.Color
	Reference lipgloss.Color
	Axis      lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:      "minimal",
		Series:    []lipgloss.Color{"#ffffff", "#0088ff", "#ffaa00"},
		Reference: lipgloss.Color("#888888"),
		Axis:      lipgloss.Color("#444444"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Series:    []lipgloss.Color{"#ff00ff", "#00ffff", "#ffff00"}, // magenta, cyan, yellow
		Reference: lipgloss.Color("#00ff88"),
		Axis:      lipgloss.Color("#444466"),
		Title:     lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Series:    []lipgloss.Color{"#00ff00", "#88ff88", "#00cc00"}, // green phosphor
		Reference: lipgloss.Color("#ffff00"),
		Axis:      lipgloss.Color("#005500"),
		Title:     lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Series:    []lipgloss.Color{"#00a8cc", "#0077be", "#e0f0ff"},
		Reference: lipgloss.Color("#ffd700"),
		Axis:      lipgloss.Color("#4488aa"),
		Title:     lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Series:    []lipgloss.Color{"#ff6b6b", "#feca57", "#ff9ff3"}, // coral first
		Reference: lipgloss.Color("#5fd068"),
		Axis:      lipgloss.Color("#8b6b8c"),
		Title:     lipgloss.Color("#feca57"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeMinimal,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeMinimal, false
}

// NextTheme is the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SeriesColor is the colour of track i.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	if len(t.Series) == 0 {
		return t.Text
	}
	return t.Series[i%len(t.Series)]
}
