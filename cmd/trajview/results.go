package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajview/internal/binarray"
	"github.com/san-kum/trajview/internal/storage"
	"github.com/san-kum/trajview/internal/trajectory"
)

const maxPlots = 6

func channelCaption(c int) string {
	switch c {
	case 0:
		return "x (channel 0)"
	case 1:
		return "y (channel 1)"
	default:
		return fmt.Sprintf("channel %d", c)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}

	h, err := binarray.ReadHeader(path)
	if err != nil {
		return err
	}
	traj, err := trajectory.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", path)
	fmt.Printf("format: %s (word size %d)\n", h.Format, h.WordSize)
	fmt.Printf("producer shape: %v\n", []int(h.Shape))
	fmt.Printf("consumer shape: %v\n", []int(traj.Shape()))
	fmt.Printf("channels: %d, frames: %d, features: %d\n\n", traj.Channels(), traj.Frames(), traj.Features())

	for c := 0; c < min(traj.Channels(), maxPlots); c++ {
		data, err := traj.Channel(c, cfg.Feature)
		if err != nil {
			return err
		}
		if len(data) < 2 {
			fmt.Printf("%s: %v\n", channelCaption(c), data)
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(channelCaption(c)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	ref, ok := cfg.ReferenceSeries()
	if !ok {
		return nil
	}
	series, err := traj.Series(cfg.Plot.SimLabel, cfg.Feature)
	if err != nil {
		return err
	}
	dev := trajectory.Compare(series, ref)
	if dev.Samples == 0 {
		fmt.Println("deviation: no overlapping frames")
		return nil
	}
	fmt.Printf("deviation from %s over %d frames:\n", ref.Name, dev.Samples)
	fmt.Printf("  rms: %.6f\n", dev.RMS)
	fmt.Printf("  max: %.6f (frame %d)\n", dev.Max, dev.MaxFrame)
	return nil
}

func listResults(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.ResultsDir)
	if showRuns {
		runs, err := st.List()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Printf("no generated runs in %s\n", cfg.ResultsDir)
			return nil
		}
		return writeRuns(os.Stdout, runs)
	}

	entries, err := st.Inspect(cmd.Context())
	if errors.Is(err, storage.ErrNoResults) {
		fmt.Printf("no results in %s\n", cfg.ResultsDir)
		return nil
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tSHAPE\tFRAMES\tINTEG\tCREATED")

	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\terror: %v\n", e.Name, e.Err)
			continue
		}
		shape := binarray.ConsumerShape(e.Header.Shape)
		frames := "-"
		if len(shape) >= 2 {
			frames = fmt.Sprint(shape[1])
		}
		integ, created := "-", "-"
		if e.Meta != nil {
			integ = e.Meta.Integrator
			created = e.Meta.Timestamp.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			e.Header.Format,
			formatShape(shape),
			frames,
			integ,
			created,
		)
	}

	return w.Flush()
}

// writeRuns prints one row per run from its metadata alone.
func writeRuns(out io.Writer, runs []storage.RunMetadata) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTEG\tDT\tSTEPS\tDRAG\tV0\tDRIFT\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%g\t(%g, %g)\t%.2e\t%s\n",
			r.Name,
			r.Integrator,
			r.Dt,
			r.Steps,
			r.Drag,
			r.V0X, r.V0Y,
			r.EnergyDrift,
			r.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func formatShape(s binarray.Shape) string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprint(d)
	}
	return "[" + strings.Join(parts, "x") + "]"
}
