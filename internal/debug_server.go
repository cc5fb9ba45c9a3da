package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"game-hub/contract"
	"game-hub/domain"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	SessionID string
	Kind      string
	Outcome   string
	ClosedAt  string
	Detail    string
}

type StatsProvider func() any

type PageData struct {
	Participant string
	Items       []InspectRow
	Stats       string
}

// NewDebugHandler serves the result history of a participant on endpoint
// and the live engine stats as json on /stats.
func NewDebugHandler(log *slog.Logger, results contract.ResultRepository, endpoint string, statsProvider StatsProvider) http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("GET "+endpoint, func(w http.ResponseWriter, r *http.Request) {
		data := PageData{Participant: r.URL.Query().Get("participant")}
		if statsProvider != nil {
			if bytes, err := json.MarshalIndent(statsProvider(), "", "  "); err == nil {
				data.Stats = string(bytes)
			}
		}
		if data.Participant != "" {
			records, err := results.ListByParticipant(domain.ParticipantID(data.Participant))
			if err != nil {
				log.Error("Unable to list records", "participant", data.Participant, "error", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			data.Items = lo.Map(records, func(record domain.SessionRecord, _ int) InspectRow {
				return ToInspectRow(record)
			})
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var stats any
		if statsProvider != nil {
			stats = statsProvider()
		}
		_ = json.NewEncoder(w).Encode(stats)
	})
	return mux
}

// StartDebugServer listens on every interface until the process exits.
func StartDebugServer(log *slog.Logger, port int, handler http.Handler) {
	address := fmt.Sprintf("0.0.0.0:%d", port)
	go func() {
		log.Info("Starting debug server", "address", address)
		if err := http.ListenAndServe(address, handler); err != nil {
			log.Error("Debug server stopped", "error", err)
		}
	}()
}

// ToInspectRow flattens a record into one display row.
func ToInspectRow(record domain.SessionRecord) InspectRow {
	detail := string(record.Cause)
	if record.Outcome == domain.OutcomeFinished {
		detail = strings.Join(lo.Map(record.Results, func(result domain.Result, _ int) string {
			return fmt.Sprintf("%s:%s(%d)", result.Participant, result.Status, result.Moves)
		}), " ")
	}
	id := string(record.SessionID)
	if len(id) > 8 {
		id = id[:8]
	}
	return InspectRow{
		SessionID: id,
		Kind:      string(record.Kind),
		Outcome:   string(record.Outcome),
		ClosedAt:  record.ClosedAt.Format(time.RFC822),
		Detail:    detail,
	}
}
