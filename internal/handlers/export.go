package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"emotional_journal/internal/logger"
	"emotional_journal/internal/models"
	"emotional_journal/internal/storage"
)

var exportHeader = []string{
	"id", "created_at", "entry_text", "user_mood", "sentiment_label",
	"sentiment_score", "confidence", "word_count", "emotions", "keywords",
}

type ExportHandler struct {
	storage *storage.JournalStorage
	log     *logger.Logger
}

func NewExportHandler(s *storage.JournalStorage, log *logger.Logger) *ExportHandler {
	return &ExportHandler{storage: s, log: log}
}

// HandleExportCSV streams every entry as one CSV row, list fields encoded
// as JSON strings.
func (eh *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleExportCSV"

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		return
	}

	entries, err := eh.storage.GetAllEntries(r.Context())
	if err != nil {
		eh.log.Error("get entries failed", "op", op, "error", err)
		http.Error(w, "Couldnt get entries.", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("journal_export_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		eh.log.Error("write csv header failed", "op", op, "error", err)
		return
	}
	for _, entry := range entries {
		if err := cw.Write(exportRow(entry)); err != nil {
			eh.log.Error("write csv row failed", "op", op, "id", entry.ID, "error", err)
			return
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		eh.log.Error("flush csv failed", "op", op, "error", err)
		return
	}

	eh.log.Info("export complete", "op", op, "rows", len(entries), "filename", filename)
}

func exportRow(entry models.JournalEntry) []string {
	emotions, _ := json.Marshal(entry.Emotions)
	keywords, _ := json.Marshal(entry.Keywords)

	return []string{
		strconv.FormatInt(entry.ID, 10),
		entry.CreatedAt.Format(time.RFC3339),
		entry.EntryText,
		entry.UserMood,
		entry.SentimentLabel,
		strconv.FormatFloat(entry.SentimentScore, 'f', -1, 64),
		strconv.FormatFloat(entry.Confidence, 'f', -1, 64),
		strconv.Itoa(entry.WordCount),
		string(emotions),
		string(keywords),
	}
}
