package workers

import (
	"context"
	"game-hub/observability"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTelemetryWorker_Records_Process_Samples(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitor := observability.NewMonitor(log)
	executor := NewDroppingExecutor(log, "housekeeping", 1)
	worker := NewTelemetryWorker(log, 10*time.Millisecond, executor, monitor)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// When the worker runs for a few ticks
	req.NoError(worker.Run(ctx))
	executor.Wait()

	// Then the latest sample describes this process
	sample := monitor.GetLatest().Process
	req.False(sample.SampledAt.IsZero())
	req.Positive(sample.Goroutines)
}

func TestTelemetryWorker_Skips_Ticks_While_Paused(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitor := observability.NewMonitor(log)
	executor := NewDroppingExecutor(log, "housekeeping", 1)
	executor.Pause()
	worker := NewTelemetryWorker(log, 10*time.Millisecond, executor, monitor)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))

	req.True(monitor.GetLatest().Process.SampledAt.IsZero())
	req.Positive(executor.Dropped())
}
