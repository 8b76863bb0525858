package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajview/internal/binarray"
	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/dynamo"
	"github.com/san-kum/trajview/internal/integrators"
	"github.com/san-kum/trajview/internal/physics"
	"github.com/san-kum/trajview/internal/storage"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	gen := cfg.Generate
	flags := cmd.Flags()
	if flags.Changed("integrator") {
		gen.Integrator = integrator
	}
	if flags.Changed("steps") {
		gen.Steps = steps
	}
	if flags.Changed("drag") {
		gen.Drag = drag
	}
	if flags.Changed("v0x") {
		gen.V0X = v0x
	}
	if flags.Changed("v0y") {
		gen.V0Y = v0y
	}
	if flags.Changed("format") {
		gen.Format = format
	}

	integ, err := integrators.New(gen.Integrator)
	if err != nil {
		return err
	}
	layout, err := binarray.ParseFormat(gen.Format)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("projectile_%s_%d", gen.Integrator, time.Now().Unix())
	if len(args) > 0 {
		name = args[0]
	}

	sys, err := newProjectile(gen)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := dynamo.New(sys, integ).Run(ctx, sys.Launch(gen.V0X, gen.V0Y), dynamo.Config{
		Dt:            cfg.Dt,
		Steps:         gen.Steps,
		ValidateState: true,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	log.Printf("generate: %d steps with %s in %v", result.StepsTaken, gen.Integrator, time.Since(start))

	rows, cols, data := result.Flatten()
	arr, err := binarray.New(binarray.Shape{rows, cols}, data)
	if err != nil {
		return err
	}

	path, err := storage.New(cfg.ResultsDir).Save(name, arr, storage.RunMetadata{
		Producer:    "projectile",
		Integrator:  gen.Integrator,
		Dt:          cfg.Dt,
		Steps:       result.StepsTaken,
		Drag:        gen.Drag,
		V0X:         gen.V0X,
		V0Y:         gen.V0Y,
		Gravity:     sys.Gravity,
		EnergyDrift: result.EnergyDrift,
	}, layout)
	if err != nil {
		return err
	}

	fmt.Printf("saved %s\n", path)
	fmt.Printf("steps: %d, dt: %g, integrator: %s, drag: %g\n", result.StepsTaken, cfg.Dt, gen.Integrator, gen.Drag)
	fmt.Printf("energy drift: %.2e\n", result.EnergyDrift)
	return nil
}

// newProjectile applies the drag and gravity settings through SetParam so
// invalid values are rejected before the run starts.
func newProjectile(gen config.GenerateConfig) (*physics.Projectile, error) {
	sys := physics.NewProjectile(0)
	params := map[string]float64{"drag": gen.Drag}
	if gen.Gravity > 0 {
		params["gravity"] = gen.Gravity
	}
	for name, value := range params {
		if err := sys.SetParam(name, value); err != nil {
			return nil, fmt.Errorf("invalid generate config: %w", err)
		}
	}
	log.Printf("generate: projectile params %v", sys.GetParams())
	return sys, nil
}
