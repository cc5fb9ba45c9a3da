package observability

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ProcessSample is one reading of the hosting process.
type ProcessSample struct {
	RSSMb      uint64    `json:"rss_mb"`
	CPUPercent float64   `json:"cpu_percent"`
	Goroutines int       `json:"goroutines"`
	SampledAt  time.Time `json:"sampled_at"`
}

// EngineStats aggregates the engine counters with the latest process sample.
type EngineStats struct {
	SessionsFormed    uint64        `json:"sessions_formed"`
	SessionsStarted   uint64        `json:"sessions_started"`
	SessionsFinished  uint64        `json:"sessions_finished"`
	SessionsCancelled uint64        `json:"sessions_cancelled"`
	EventsApplied     uint64        `json:"events_applied"`
	EventsRejected    uint64        `json:"events_rejected"`
	StaleEvents       uint64        `json:"stale_events"`
	Process           ProcessSample `json:"process"`
}

// Monitor counts what happens to sessions. Every method is safe for concurrent use.
type Monitor struct {
	log *slog.Logger

	sessionsFormed    atomic.Uint64
	sessionsStarted   atomic.Uint64
	sessionsFinished  atomic.Uint64
	sessionsCancelled atomic.Uint64
	eventsApplied     atomic.Uint64
	eventsRejected    atomic.Uint64
	staleEvents       atomic.Uint64

	mu     sync.RWMutex
	latest ProcessSample
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log}
}

func (m *Monitor) IncrSessionsFormed()    { m.sessionsFormed.Add(1) }
func (m *Monitor) IncrSessionsStarted()   { m.sessionsStarted.Add(1) }
func (m *Monitor) IncrSessionsFinished()  { m.sessionsFinished.Add(1) }
func (m *Monitor) IncrSessionsCancelled() { m.sessionsCancelled.Add(1) }
func (m *Monitor) IncrEventsApplied()     { m.eventsApplied.Add(1) }
func (m *Monitor) IncrEventsRejected()    { m.eventsRejected.Add(1) }
func (m *Monitor) IncrStaleEvents()       { m.staleEvents.Add(1) }

// Record keeps the latest process sample.
func (m *Monitor) Record(sample ProcessSample) {
	m.mu.Lock()
	m.latest = sample
	m.mu.Unlock()

	m.log.Debug("Process sampled",
		"rss_mb", sample.RSSMb,
		"cpu_percent", sample.CPUPercent,
		"goroutines", sample.Goroutines,
	)
}

func (m *Monitor) GetLatest() EngineStats {
	m.mu.RLock()
	sample := m.latest
	m.mu.RUnlock()

	return EngineStats{
		SessionsFormed:    m.sessionsFormed.Load(),
		SessionsStarted:   m.sessionsStarted.Load(),
		SessionsFinished:  m.sessionsFinished.Load(),
		SessionsCancelled: m.sessionsCancelled.Load(),
		EventsApplied:     m.eventsApplied.Load(),
		EventsRejected:    m.eventsRejected.Load(),
		StaleEvents:       m.staleEvents.Load(),
		Process:           sample,
	}
}
