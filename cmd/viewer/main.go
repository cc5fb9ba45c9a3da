package main

import (
	"context"
	"flag"
	"fmt"
	"game-hub/domain"
	"game-hub/internal"
	"game-hub/repositories"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LimitRecords   *int   `env:"LIMIT_RECORDS"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	participant := flag.String("participant", "", "Participant whose history is listed")
	port := flag.Int("port", 0, "Serve the inspect page on this port instead of printing")
	flag.Parse()

	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while the engine holds the lock
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	results := repositories.NewResultRepository(db, logger, config.LimitRecords)

	if *port > 0 {
		logger.Info("Viewer started", "url", fmt.Sprintf("http://localhost:%d/inspect", *port))
		internal.StartDebugServer(logger, *port, internal.NewDebugHandler(logger, results, "/inspect", nil))
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return
	}

	if *participant == "" {
		log.Fatal("Either -participant or -port is required")
	}
	records, err := results.ListByParticipant(domain.ParticipantID(*participant))
	if err != nil {
		log.Fatalf("Failed to list records: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Session", "Kind", "Outcome", "Closed at", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, record := range records {
		row := internal.ToInspectRow(record)
		table.Append([]string{row.SessionID, row.Kind, row.Outcome, row.ClosedAt, row.Detail})
	}
	table.Render()
}
