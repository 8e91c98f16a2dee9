package handlers

import (
	"net/http"
	"time"

	"emotional_journal/internal/logger"
	"emotional_journal/internal/storage"
	"emotional_journal/internal/usecases"
)

type StatsHandler struct {
	storage *storage.JournalStorage
	log     *logger.Logger
}

func NewStatsHandler(s *storage.JournalStorage, log *logger.Logger) *StatsHandler {
	return &StatsHandler{storage: s, log: log}
}

func (sh *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleGetStats"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	entries, err := sh.storage.GetAllEntries(r.Context())
	if err != nil {
		sh.log.Error("get entries failed", "op", op, "error", err)
		http.Error(w, "Couldnt get entries.", http.StatusInternalServerError)
		return
	}

	stats := usecases.ComputeStats(entries, time.Now())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   stats,
	})
}

func (sh *StatsHandler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleGetInsights"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	entries, err := sh.storage.GetAllEntries(r.Context())
	if err != nil {
		sh.log.Error("get entries failed", "op", op, "error", err)
		http.Error(w, "Couldnt get entries.", http.StatusInternalServerError)
		return
	}

	insights := map[string]interface{}{
		"weekly_summary": usecases.ComputeWeeklySummary(entries, time.Now()),
	}
	if journey := usecases.ComputeEmotionalJourney(entries); journey != nil {
		insights["emotional_journey"] = journey
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   insights,
	})
}
