package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajview/internal/binarray"
	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/physics"
	"github.com/san-kum/trajview/internal/storage"
)

func TestValidateTheme(t *testing.T) {
	for _, name := range []string{"", "minimal", "ocean"} {
		if err := validateTheme(name); err != nil {
			t.Errorf("theme %q: unexpected error %v", name, err)
		}
	}

	err := validateTheme("solarized")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "cyberpunk") {
		t.Errorf("expected available themes in error, got %v", err)
	}
}

func TestResolveConfigRejectsUnknownTheme(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "")
	t.Cleanup(func() { theme = config.DefaultTheme })

	if err := cmd.Flags().Set("theme", "neon"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected unknown theme to be rejected")
	}

	if err := cmd.Flags().Set("theme", "sunset"); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Playback.Theme != "sunset" {
		t.Errorf("expected sunset, got %s", cfg.Playback.Theme)
	}
}

func TestNewProjectile(t *testing.T) {
	gen := config.DefaultConfig().Generate
	gen.Drag = 0.05
	gen.Gravity = 1.62

	sys, err := newProjectile(gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.Drag != 0.05 || sys.Gravity != 1.62 {
		t.Errorf("expected drag 0.05 gravity 1.62, got %v", sys.GetParams())
	}

	gen.Gravity = 0
	sys, err = newProjectile(gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.Gravity != physics.StandardGravity {
		t.Errorf("expected standard gravity, got %g", sys.Gravity)
	}

	gen.Drag = -1
	if _, err := newProjectile(gen); err == nil {
		t.Error("expected negative drag to be rejected")
	}
}

func TestRunPresetsDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.yaml")
	preset, dumpPath = "ballistics-drag", path
	t.Cleanup(func() { preset, dumpPath = "", "" })

	if err := runPresets(&cobra.Command{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load dumped config: %v", err)
	}
	if loaded.Dt != 50e-3 || loaded.Generate.Integrator != "rk4" {
		t.Errorf("dumped config does not match preset: dt=%g integrator=%s", loaded.Dt, loaded.Generate.Integrator)
	}
}

func TestWriteRuns(t *testing.T) {
	st := storage.New(t.TempDir())
	arr, err := binarray.New(binarray.Shape{2, 4}, []float32{0, 0, 1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	meta := storage.RunMetadata{
		Integrator: "verlet",
		Dt:         0.01,
		Steps:      2,
		Drag:       0.1,
		V0X:        3,
		V0Y:        4,
		Timestamp:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if _, err := st.Save("run-a", arr, meta, binarray.FormatLegacy); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeRuns(&buf, runs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"NAME", "run-a", "verlet", "(3, 4)", "2024-03-01 12:00:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
