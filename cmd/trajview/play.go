package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajview/internal/anim"
	"github.com/san-kum/trajview/internal/export"
	"github.com/san-kum/trajview/internal/viz"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}
	s, err := loadSession(cfg, path)
	if err != nil {
		return err
	}

	m := viz.NewModel(anim.New(s.sims...), viz.Options{
		Title:     s.title,
		Bounds:    s.bounds,
		Reference: s.reference,
		Dt:        cfg.Dt,
		Interval:  cfg.Interval(),
		Theme:     cfg.Playback.Theme,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}
	s, err := loadSession(cfg, path)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions(s.bounds)
	opts.Title = s.title
	if t, ok := viz.GetTheme(cfg.Playback.Theme); ok {
		opts.Theme = t
	}
	if err := export.WriteFile(output, s.sims, s.reference, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
