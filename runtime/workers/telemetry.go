package workers

import (
	"context"
	"fmt"
	"game-hub/contract"
	"game-hub/observability"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker samples the hosting process on every tick.
// Samples go through a dropping executor: a tick is skipped rather than queued.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	executor       contract.IExecutor
	monitor        *observability.Monitor
	pid            int32
}

func NewTelemetryWorker(log *slog.Logger,
	metricInterval time.Duration,
	executor contract.IExecutor,
	monitor *observability.Monitor) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		executor:       executor,
		monitor:        monitor,
		pid:            int32(os.Getpid()),
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return fmt.Errorf("unable to track process %d: %w", w.pid, err)
	}
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case <-ticker.C:
			w.executor.Submit(ctx, "telemetry-sample", func(ctx context.Context) error {
				return w.sample(p)
			})
		}
	}
}

func (w *TelemetryWorker) sample(p *process.Process) error {
	memory, err := p.MemoryInfo()
	if err != nil {
		return fmt.Errorf("unable to read memory of process %d: %w", w.pid, err)
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return fmt.Errorf("unable to read cpu of process %d: %w", w.pid, err)
	}
	w.monitor.Record(observability.ProcessSample{
		RSSMb:      memory.RSS / 1024 / 1024,
		CPUPercent: cpu,
		Goroutines: runtime.NumGoroutine(),
		SampledAt:  time.Now().UTC(),
	})
	return nil
}
