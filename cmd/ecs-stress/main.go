package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/sparsecs/ecs"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	profileNone = "none"
	profileCPU  = "cpu"
	profileMem  = "mem"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, loadErr := loadConfig()

	cmd := &cobra.Command{
		Use:           "ecs-stress",
		Short:         "Churn a sparse-set ECS scene and report frame times",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.validate(); err != nil {
				return eris.Wrap(err, "failed to validate stress config")
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&cfg.Duration, "duration", cfg.Duration, "total duration the test should run for")
	flags.IntVar(&cfg.Entities, "entities", cfg.Entities, "initial number of entities to create")
	flags.Float64Var(&cfg.ChurnRate, "churn", cfg.ChurnRate, "fraction of entities respawned per frame")
	flags.BoolVar(&cfg.EagerCleanup, "eager-cleanup", cfg.EagerCleanup, "free component values when entities are destroyed")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the component mix")
	flags.BoolVar(&cfg.GCPauseMetrics, "gc-pause-metrics", cfg.GCPauseMetrics, "include GC pause metrics in the report")
	flags.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile mode: none, cpu or mem")
	flags.StringVar(&cfg.ProfilePath, "profile-path", cfg.ProfilePath, "directory profiles are written to")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json or pretty")

	return cmd
}

func run(ctx context.Context, cfg Config) error {
	switch cfg.Profile {
	case profileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook, profile.Quiet).Stop()
	case profileMem:
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	report, err := simulate(ctx, cfg)
	if err != nil {
		return err
	}

	if err := report.Generate(os.Stdout); err != nil {
		return eris.Wrap(err, "failed to generate report")
	}
	return nil
}

// simulate populates a scene and drives the scheduler until cfg.Duration has
// elapsed.
func simulate(ctx context.Context, cfg Config) (*Report, error) {
	logger := cfg.logger()
	logger.Info().Msg("starting ECS stress test")

	opts := []ecs.Option{
		ecs.WithRegistry(ecs.NewComponentRegistry()),
		ecs.WithLogger(logger),
		ecs.WithEntityCapacity(cfg.Entities),
		ecs.WithPoolCapacity(cfg.Entities),
	}
	if cfg.EagerCleanup {
		opts = append(opts, ecs.WithEagerCleanup())
	}
	scene := ecs.NewScene(opts...)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	spawner := &spawner{rng: rng}

	scheduler := ecs.NewScheduler(scene)
	registerSystems(scheduler, spawner, cfg.ChurnRate)

	logger.Info().Int("entities", cfg.Entities).Msg("populating scene")
	for i := 0; i < cfg.Entities; i++ {
		if _, err := scene.Spawn(spawner.initializers()...); err != nil {
			return nil, eris.Wrap(err, "failed to populate scene")
		}
	}
	scene.LogStats(zerolog.DebugLevel)

	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Components:     componentKinds,
		Systems:        scheduler.GetStats().SystemCount,
		ChurnRate:      cfg.ChurnRate,
		EagerCleanup:   cfg.EagerCleanup,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", cfg.Duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Scene = scene.CollectStats()
	report.Scheduler = scheduler.GetStats()

	logger.Info().Int64("updates", report.TotalUpdates).Msg("simulation finished")
	scene.LogStats(zerolog.InfoLevel)
	return report, nil
}
