package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/trajview/internal/trajectory"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 5e-3
	DefaultFrames     = 500
	DefaultResultsDir = "results"
	DefaultV0         = 10.0
	DefaultGravity    = 9.81
	DefaultSpeed      = 1.0
	DefaultTheme      = "minimal"
	DefaultXMin       = 0.0
	DefaultXMax       = 20.0
	DefaultYMin       = -5.5
	DefaultYMax       = 5.5
)

type Config struct {
	Dt         float64         `yaml:"dt"`
	ResultsDir string          `yaml:"results_dir"`
	Feature    int             `yaml:"feature"`
	Plot       PlotConfig      `yaml:"plot"`
	Reference  ReferenceConfig `yaml:"reference"`
	Playback   PlaybackConfig  `yaml:"playback"`
	Generate   GenerateConfig  `yaml:"generate"`
}

type PlotConfig struct {
	XMin     float64 `yaml:"x_min"`
	XMax     float64 `yaml:"x_max"`
	YMin     float64 `yaml:"y_min"`
	YMax     float64 `yaml:"y_max"`
	Auto     bool    `yaml:"auto"`
	SimLabel string  `yaml:"sim_label"`
	RefLabel string  `yaml:"ref_label"`
}

type ReferenceConfig struct {
	Enabled bool    `yaml:"enabled"`
	V0X     float64 `yaml:"v0x"`
	V0Y     float64 `yaml:"v0y"`
	Gravity float64 `yaml:"gravity"`
	Frames  int     `yaml:"frames"`
}

type PlaybackConfig struct {
	Speed float64 `yaml:"speed"`
	Theme string  `yaml:"theme"`
}

// GenerateConfig drives the built-in projectile producer.
type GenerateConfig struct {
	Integrator string  `yaml:"integrator"`
	Steps      int     `yaml:"steps"`
	Drag       float64 `yaml:"drag"`
	V0X        float64 `yaml:"v0x"`
	V0Y        float64 `yaml:"v0y"`
	Gravity    float64 `yaml:"gravity"`
	Format     string  `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		ResultsDir: DefaultResultsDir,
		Plot: PlotConfig{
			XMin:     DefaultXMin,
			XMax:     DefaultXMax,
			YMin:     DefaultYMin,
			YMax:     DefaultYMax,
			SimLabel: "Forward Euler",
			RefLabel: "Analytical (no drag)",
		},
		Reference: ReferenceConfig{
			Enabled: true,
			V0X:     DefaultV0,
			V0Y:     DefaultV0,
			Gravity: DefaultGravity,
			Frames:  DefaultFrames,
		},
		Playback: PlaybackConfig{
			Speed: DefaultSpeed,
			Theme: DefaultTheme,
		},
		Generate: GenerateConfig{
			Integrator: "euler",
			Steps:      DefaultFrames,
			V0X:        DefaultV0,
			V0Y:        DefaultV0,
			Gravity:    DefaultGravity,
			Format:     "legacy",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Playback.Speed <= 0 {
		return fmt.Errorf("playback speed must be positive, got %g", c.Playback.Speed)
	}
	if c.Feature < 0 {
		return fmt.Errorf("feature index must not be negative, got %d", c.Feature)
	}
	if !c.Plot.Auto && (c.Plot.XMax <= c.Plot.XMin || c.Plot.YMax <= c.Plot.YMin) {
		return fmt.Errorf("plot bounds are empty: x [%g, %g], y [%g, %g]", c.Plot.XMin, c.Plot.XMax, c.Plot.YMin, c.Plot.YMax)
	}
	if c.Reference.Enabled && c.Reference.Frames < 0 {
		return fmt.Errorf("reference frames must not be negative, got %d", c.Reference.Frames)
	}
	return nil
}

// Bounds is the fixed plot window.
func (c *Config) Bounds() trajectory.Bounds {
	return trajectory.Bounds{XMin: c.Plot.XMin, XMax: c.Plot.XMax, YMin: c.Plot.YMin, YMax: c.Plot.YMax}
}

// Ballistic is the analytical reference model.
func (c *Config) Ballistic() trajectory.Ballistic {
	return trajectory.Ballistic{V0X: c.Reference.V0X, V0Y: c.Reference.V0Y, Gravity: c.Reference.Gravity}
}

// ReferenceSeries samples the analytical reference, or returns false when
// the overlay is disabled.
func (c *Config) ReferenceSeries() (trajectory.Series, bool) {
	if !c.Reference.Enabled {
		return trajectory.Series{}, false
	}
	return c.Ballistic().Sample(c.Plot.RefLabel, c.Dt, c.Reference.Frames), true
}

// Interval is the nominal delay between animation ticks.
func (c *Config) Interval() time.Duration {
	d := time.Duration(c.Dt / c.Playback.Speed * float64(time.Second))
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
