package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"emotional_journal/internal/logger"
	"emotional_journal/internal/models"
	"emotional_journal/internal/storage"
	"emotional_journal/internal/usecases"
)

const (
	minEntryRunes = 20
	maxEntryRunes = 5000

	defaultListLimit = 10
	dateParamLayout  = "2006-01-02"
)

type JournalHandler struct {
	storage  *storage.JournalStorage
	analyzer *usecases.Analyzer
	log      *logger.Logger
}

func NewJournalHandler(s *storage.JournalStorage, a *usecases.Analyzer, log *logger.Logger) *JournalHandler {
	return &JournalHandler{storage: s, analyzer: a, log: log}
}

type createEntryRequest struct {
	EntryText string `json:"entry_text"`
	UserMood  string `json:"user_mood"`
}

// validateEntryText enforces the 20..5000 rune window on trimmed text.
// Rejected text never reaches the analyzer.
func validateEntryText(text string) error {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)
	if n < minEntryRunes {
		return fmt.Errorf("entry too short: %d characters, minimum %d", n, minEntryRunes)
	}
	if n > maxEntryRunes {
		return fmt.Errorf("entry too long: %d characters, maximum %d", n, maxEntryRunes)
	}
	return nil
}

func (jh *JournalHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleCreateEntry"

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jh.log.Warn("decode error", "op", op, "error", err)
		http.Error(w, "Couldnt decode json. Wrong request.", http.StatusBadRequest)
		return
	}

	if err := validateEntryText(req.EntryText); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	result := jh.analyzer.Analyze(req.EntryText)

	entry := models.JournalEntry{
		EntryText:      req.EntryText,
		UserMood:       req.UserMood,
		SentimentLabel: result.Label,
		SentimentScore: result.Score,
		Confidence:     result.Confidence,
		WordCount:      len(strings.Fields(req.EntryText)),
		Emotions:       result.Emotions,
		Keywords:       result.Keywords,
	}

	if err := jh.storage.CreateEntry(r.Context(), &entry); err != nil {
		jh.log.Error("create entry failed", "op", op, "error", err)
		http.Error(w, "Couldnt create entry.", http.StatusInternalServerError)
		return
	}

	jh.log.Info("entry created", "op", op, "id", entry.ID, "label", entry.SentimentLabel)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "created",
		"data":   entry,
	})
}

func (jh *JournalHandler) HandleGetEntries(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleGetEntries"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	var entries []models.JournalEntry
	var err error

	if r.URL.Query().Get("all") == "true" {
		entries, err = jh.storage.GetAllEntries(r.Context())
	} else {
		limit := defaultListLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			if l, convErr := strconv.Atoi(limitStr); convErr == nil && l > 0 {
				limit = l
			}
		}
		entries, err = jh.storage.GetRecentEntries(r.Context(), limit)
	}

	if err != nil {
		jh.log.Error("get entries failed", "op", op, "error", err)
		http.Error(w, "Couldnt get entries.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entries,
	})
}

func (jh *JournalHandler) HandleGetEntry(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleGetEntry"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Bad id.", http.StatusBadRequest)
		return
	}

	entry, err := jh.storage.GetEntryByID(r.Context(), id)
	if err != nil {
		jh.log.Error("get entry failed", "op", op, "id", id, "error", err)
		http.Error(w, "Couldnt get entry.", http.StatusInternalServerError)
		return
	}
	if entry == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status":  "error",
			"message": "Entry not found.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entry,
	})
}

func (jh *JournalHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleDeleteEntry"

	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Bad id.", http.StatusBadRequest)
		return
	}

	deleted, err := jh.storage.DeleteEntry(r.Context(), id)
	if err != nil {
		jh.log.Error("delete entry failed", "op", op, "id", id, "error", err)
		http.Error(w, "Couldnt delete entry.", http.StatusInternalServerError)
		return
	}

	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"status":  "error",
			"deleted": false,
			"message": "Entry not found.",
		})
		return
	}

	jh.log.Info("entry deleted", "op", op, "id", id)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"deleted": true,
	})
}

func (jh *JournalHandler) HandleSearchEntries(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleSearchEntries"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		http.Error(w, "Missing q parameter.", http.StatusBadRequest)
		return
	}

	entries, err := jh.storage.SearchEntries(r.Context(), keyword)
	if err != nil {
		jh.log.Error("search failed", "op", op, "error", err)
		http.Error(w, "Couldnt search entries.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entries,
	})
}

func (jh *JournalHandler) HandleEntriesByRange(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleEntriesByRange"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := jh.storage.GetEntriesByDateRange(r.Context(), from, to)
	if err != nil {
		jh.log.Error("range query failed", "op", op, "error", err)
		http.Error(w, "Couldnt get entries.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entries,
	})
}

func parseID(r *http.Request) (int64, error) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		return 0, errors.New("missing id")
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// parseDateRange reads start/end as YYYY-MM-DD in local time; end is
// inclusive through the last instant of that day.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	start, err := time.ParseInLocation(dateParamLayout, startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad start date: %s", startStr)
	}
	end, err := time.ParseInLocation(dateParamLayout, endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad end date: %s", endStr)
	}

	return start, end.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
