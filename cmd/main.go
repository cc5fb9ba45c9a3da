package main

import (
	"context"
	"fmt"
	"game-hub/domain/game"
	"game-hub/internal"
	"game-hub/internal/simulation"
	"game-hub/moderation"
	"game-hub/observability"
	"game-hub/repositories"
	"game-hub/runtime"
	"game-hub/runtime/workers"
	"game-hub/transport/console"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and keeps all the defers on the way out.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	simConfig, err := simulation.LoadConfig()
	if err != nil {
		return fmt.Errorf("simulation config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Engine
	resultRepository := repositories.NewResultRepository(db, log, config.LimitRecords)
	monitor := observability.NewMonitor(log)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sessions := workers.NewBlockingExecutor(log, "sessions", config.NumberOfWorkers)
	housekeeping := workers.NewDroppingExecutor(log, "housekeeping", config.HousekeepingWorkers)
	waitlist := runtime.NewWaitlist(config.KindSpecs())
	censored, err := moderation.LoadDefault()
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, config.Mask(), log)
	if err != nil {
		return fmt.Errorf("moderator failed to build: %w", err)
	}
	log.Info("Censored words loaded", "count", len(censored.Words), "languages", censored.Languages)
	renderer := console.NewRenderer(os.Stdout, simConfig.Colours).WithCensor(moderator)
	simulator := simulation.NewSimulator(log, simConfig, renderer, config.RandomSeed())

	orchestrator := runtime.NewOrchestrator(
		log, sup, runtime.NewRegistry(), waitlist, sessions,
		game.NewFactory(config.RandomSeed()), simulator, resultRepository, monitor,
		config.PollInterval, config.IdlePollInterval,
	)
	simulator.Bind(orchestrator)
	sup.Add(
		workers.NewTelemetryWorker(log, config.MetricInterval, housekeeping, monitor),
		workers.NewReporterWorker(log, config.ReportInterval, monitor, orchestrator),
		simulator,
	)

	if config.DebugPort > 0 {
		handler := internal.NewDebugHandler(log, resultRepository, "/inspect", func() any { return orchestrator.Stats() })
		internal.StartDebugServer(log, config.DebugPort, handler)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, simConfig.Duration)
	defer cancel()

	// 5. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}
	log.Info("Simulation started", "participants", simConfig.Participants, "duration", simConfig.Duration)

	// 6. Wait for a signal or the end of the simulation
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	// 7. Final Cleanup
	if err = orchestrator.Stop(); err != nil {
		return fmt.Errorf("orchestrator failed to stop: %w", err)
	}
	housekeeping.Wait()
	stats := orchestrator.Stats()
	log.Info("Program stopped cleanly",
		"formed", stats.Engine.SessionsFormed,
		"finished", stats.Engine.SessionsFinished,
		"cancelled", stats.Engine.SessionsCancelled,
		"events", stats.Engine.EventsApplied,
		"restarts", sup.Restarts())
	return nil
}
