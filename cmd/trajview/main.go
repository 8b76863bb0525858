package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/viz"
)

var (
	configFile  string
	preset      string
	dt          float64
	resultsDir  string
	noReference bool
	speed       float64
	feature     int
	theme       string
	debug       bool
	logPath     string

	// snapshot
	output string

	// list, presets
	showRuns bool
	dumpPath string

	// generate
	integrator string
	steps      int
	drag       float64
	v0x, v0y   float64
	format     string
)

var logFile io.Closer

// main registers the commands and flags and runs the root command, which
// plays a trajectory file. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "trajview [file]",
		Short:             "animate simulated trajectories against the analytical reference",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setupLogging(debug, logPath) },
		PersistentPostRun: func(cmd *cobra.Command, args []string) { closeLogging() },
		RunE:              runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "time step between frames")
	pf.StringVar(&resultsDir, "results", config.DefaultResultsDir, "results directory searched when no file is given")
	pf.BoolVar(&noReference, "no-reference", false, "hide the analytical reference")
	pf.Float64Var(&speed, "speed", config.DefaultSpeed, "playback speed multiplier")
	pf.IntVar(&feature, "feature", 0, "flattened feature index for rank 3+ arrays")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.BoolVar(&debug, "debug", false, "write debug log")
	pf.StringVar(&logPath, "log", "trajview.log", "debug log file")

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "play a trajectory file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "print header, values and plots of a trajectory file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list trajectory files in the results directory",
		Args:  cobra.NoArgs,
		RunE:  listResults,
	}
	listCmd.Flags().BoolVar(&showRuns, "runs", false, "list generated runs with their metadata")

	generateCmd := &cobra.Command{
		Use:   "generate [name]",
		Short: "run the built-in projectile producer and save the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&integrator, "integrator", "euler", "integrator")
	generateCmd.Flags().IntVar(&steps, "steps", config.DefaultFrames, "number of steps to record")
	generateCmd.Flags().Float64Var(&drag, "drag", 0, "quadratic drag coefficient")
	generateCmd.Flags().Float64Var(&v0x, "v0x", config.DefaultV0, "initial horizontal velocity")
	generateCmd.Flags().Float64Var(&v0y, "v0y", config.DefaultV0, "initial vertical velocity")
	generateCmd.Flags().StringVar(&format, "format", "legacy", "file layout (legacy, v2)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "render a static comparison image",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&output, "output", "o", "trajectory.svg", "output image (.svg or .png)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}
	presetsCmd.Flags().StringVar(&dumpPath, "dump", "", "write the resolved configuration to a yaml file")

	rootCmd.AddCommand(playCmd, inspectCmd, listCmd, generateCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		closeLogging()
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to a file in debug mode. The TUI
// owns the terminal, so logs are otherwise discarded.
func setupLogging(enabled bool, path string) error {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(path, "trajview")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	log.Printf("debug logging to %s", path)
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// resolveConfig applies preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("results") {
		cfg.ResultsDir = resultsDir
	}
	if flags.Changed("no-reference") {
		cfg.Reference.Enabled = !noReference
	}
	if flags.Changed("speed") {
		cfg.Playback.Speed = speed
	}
	if flags.Changed("feature") {
		cfg.Feature = feature
	}
	if flags.Changed("theme") {
		cfg.Playback.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := validateTheme(cfg.Playback.Theme); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	log.Printf("config: dt=%g results=%s reference=%v speed=%g feature=%d", cfg.Dt, cfg.ResultsDir, cfg.Reference.Enabled, cfg.Playback.Speed, cfg.Feature)
	return cfg, nil
}

// validateTheme rejects theme names the renderer does not know. An empty
// name selects the default theme.
func validateTheme(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := viz.GetTheme(name); !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", name, viz.ThemeNames())
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	if dumpPath == "" {
		fmt.Println("presets:")
		for _, p := range config.ListPresets() {
			fmt.Printf("  %s\n", p)
		}
		return nil
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(dumpPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("wrote %s\n", dumpPath)
	return nil
}
