package config

import "sort"

// Presets mirror the scenarios the producers ship with.
var Presets = map[string]*Config{
	"ballistics": DefaultConfig(),
	"ballistics-drag": func() *Config {
		c := DefaultConfig()
		c.Dt = 50e-3
		c.Plot.SimLabel = "RK4 (drag)"
		c.Reference.Frames = 50
		c.Generate.Integrator = "rk4"
		c.Generate.Steps = 50
		c.Generate.Drag = 0.02
		return c
	}(),
	"slow-launch": func() *Config {
		c := DefaultConfig()
		c.Dt = 1e-3
		c.Plot.Auto = true
		c.Reference.V0X, c.Reference.V0Y = 1, 1
		c.Generate.V0X, c.Generate.V0Y = 1, 1
		return c
	}(),
	"mcd": func() *Config {
		c := DefaultConfig()
		c.Plot.Auto = true
		c.Plot.SimLabel = "carrier density"
		c.Reference.Enabled = false
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
