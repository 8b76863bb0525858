package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/storage"
	"github.com/san-kum/trajview/internal/trajectory"
)

// session is everything a display needs, loaded before any UI starts.
type session struct {
	title     string
	sims      []trajectory.Series
	reference *trajectory.Series
	bounds    trajectory.Bounds
}

// resolveInput returns the given file, or the first data file in the
// results directory when none is given.
func resolveInput(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path, err := storage.New(cfg.ResultsDir).First()
	if err != nil {
		return "", err
	}
	log.Printf("no input given, using %s", path)
	return path, nil
}

func trackName(cfg *config.Config, path string) string {
	if cfg.Plot.SimLabel != "" {
		return cfg.Plot.SimLabel
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func loadSession(cfg *config.Config, path string) (*session, error) {
	s := &session{title: filepath.Base(path)}

	traj, err := trajectory.Load(path)
	if err != nil {
		return nil, err
	}
	series, err := traj.Series(trackName(cfg, path), cfg.Feature)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("loaded %s: shape %v, %d frames", path, []int(traj.Shape()), series.Frames())
	s.sims = []trajectory.Series{series}

	if ref, ok := cfg.ReferenceSeries(); ok {
		s.reference = &ref
	}

	s.bounds = cfg.Bounds()
	if cfg.Plot.Auto {
		all := append([]trajectory.Series{}, s.sims...)
		if s.reference != nil {
			all = append(all, *s.reference)
		}
		if b, ok := trajectory.Fit(all...); ok {
			s.bounds = b
		}
	}
	return s, nil
}
