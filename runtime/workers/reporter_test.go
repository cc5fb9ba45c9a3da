package workers

import (
	"context"
	"game-hub/mocks"
	"game-hub/observability"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReporterWorker_Reports_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	orchestrator := mocks.NewMockIOrchestrator(ctrl)
	reported := make(chan struct{}, 10)
	orchestrator.EXPECT().ActiveSessionCount().DoAndReturn(func() int {
		select {
		case reported <- struct{}{}:
		default:
		}
		return 2
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewReporterWorker(log, 5*time.Millisecond, observability.NewMonitor(log), orchestrator)
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// When a tick went by, the worker is cancelled
	<-reported
	cancel()

	// Then it ends cleanly after a final report
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("reporter did not stop")
	}
}
