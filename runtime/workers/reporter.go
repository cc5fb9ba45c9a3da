package workers

import (
	"context"
	"game-hub/contract"
	"game-hub/observability"
	"log/slog"
	"time"
)

// ReporterWorker logs a summary of the engine until its context is cancelled.
type ReporterWorker struct {
	log          *slog.Logger
	monitor      *observability.Monitor
	orchestrator contract.IOrchestrator
	interval     time.Duration
}

func NewReporterWorker(log *slog.Logger, interval time.Duration,
	monitor *observability.Monitor, orchestrator contract.IOrchestrator) *ReporterWorker {
	return &ReporterWorker{log: log, monitor: monitor, orchestrator: orchestrator, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			return nil
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *ReporterWorker) report(startTime time.Time) {
	stats := w.monitor.GetLatest()
	w.log.Info("Engine report",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"active", w.orchestrator.ActiveSessionCount(),
		"finished", stats.SessionsFinished,
		"cancelled", stats.SessionsCancelled,
		"events", stats.EventsApplied,
		"rss_mb", stats.Process.RSSMb,
		"goroutines", stats.Process.Goroutines)
}
