// casex is a command-line front end for the critical-area toolkit.
//
// Subcommands:
//
//	compute    run all five critical-area models for the configured scenario
//	obstacles  compare the analytic and Monte-Carlo obstacle-density estimators
//	footprint  print the configured model's ground footprint as WKT
//
// All inputs come from casex.cfg.json in the working directory.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/uasrisk/casex/internal/config"
	"github.com/uasrisk/casex/internal/criticalarea"
	"github.com/uasrisk/casex/internal/footprint"
	"github.com/uasrisk/casex/internal/logging"
	"github.com/uasrisk/casex/internal/obstacles"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "casex:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.Load("."); err != nil {
		return err
	}

	logManager := logging.NewManager()
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, "casex", time.Now()))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()
	logManager.Setup(logFile, config.GetString("logLevel"))

	if len(args) == 0 {
		return fmt.Errorf("usage: casex <compute|obstacles|footprint>")
	}

	switch strings.ToLower(args[0]) {
	case "compute":
		return runCompute(logManager)
	case "obstacles":
		return runObstacles(logManager)
	case "footprint":
		return runFootprint(logManager)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func newGenerator() (*criticalarea.Generator, error) {
	sink := logging.NewDiagnosticLogger(
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

	return criticalarea.NewGenerator(
		criticalarea.WithBuffer(config.GetFloat64("engine.buffer")),
		criticalarea.WithHeight(config.GetFloat64("engine.height")),
		criticalarea.WithLogger(sink),
	)
}

func runCompute(lm *logging.Manager) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	ac, err := config.Aircraft()
	if err != nil {
		return err
	}

	speed := config.GetFloat64("scenario.impactSpeed")
	angle := config.GetFloat64("scenario.impactAngle")
	overlap := config.GetFloat64("scenario.overlap")
	threshold := config.GetFloat64("scenario.threshold")

	lm.Logger().Info("computing critical areas",
		"impactSpeed", speed, "impactAngle", angle, "overlap", overlap)

	out := make(map[string]criticalarea.Result, 5)
	for _, model := range []criticalarea.Model{
		criticalarea.RCC, criticalarea.RTI, criticalarea.FAA,
		criticalarea.NAWCAD, criticalarea.JARUS,
	} {
		res, err := gen.Compute(model, ac, speed, angle, overlap, threshold)
		if err != nil {
			return fmt.Errorf("model %v: %w", model, err)
		}
		out[model.String()] = res
	}

	return printJSON(out)
}

func runObstacles(lm *logging.Manager) error {
	density := config.GetFloat64("obstacles.density")
	width := config.GetFloat64("obstacles.width")
	length := config.GetFloat64("obstacles.length")
	resolution := config.GetInt("obstacles.resolution")
	trials := config.GetInt("obstacles.trials")

	approx, err := obstacles.ApproximateCDF(density, width, length, resolution,
		config.GetFloat64("obstacles.targetProbability"))
	if err != nil {
		return err
	}
	poisson, err := obstacles.PoissonCDF(density, width, length, resolution)
	if err != nil {
		return err
	}

	lm.Logger().Info("running obstacle simulation", "trials", trials)
	sim, err := obstacles.SimulateMinimumDistance(density, width, length, trials,
		obstacles.WithSeed(uint64(config.GetInt("obstacles.seed"))),
		obstacles.WithWorkers(config.GetInt("obstacles.workers")))
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"approximatePNone": approx.PNone,
		"reducedArea":      approx.ReducedArea,
		"poissonPNone":     poisson.PNone,
		"simulatedPNone":   sim.PNone(),
		"trials":           trials,
	})
}

func runFootprint(lm *logging.Manager) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	ac, err := config.Aircraft()
	if err != nil {
		return err
	}
	model, err := config.Model()
	if err != nil {
		return err
	}

	res, err := gen.Compute(model, ac,
		config.GetFloat64("scenario.impactSpeed"),
		config.GetFloat64("scenario.impactAngle"),
		config.GetFloat64("scenario.overlap"),
		config.GetFloat64("scenario.threshold"))
	if err != nil {
		return err
	}

	poly, err := footprint.ForResult(model, ac, gen.Buffer(), res)
	if err != nil {
		return err
	}

	lm.Logger().Info("footprint computed", "model", model.String(), "inertArea", res.Inert)
	fmt.Println(footprint.WKT(poly))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
