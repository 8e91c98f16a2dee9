package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"emotional_journal/internal/ai"
	"emotional_journal/internal/config"
	"emotional_journal/internal/handlers"
	"emotional_journal/internal/logger"
	"emotional_journal/internal/storage"
	"emotional_journal/internal/usecases"
)

func main() {
	cfg := config.New()

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer logg.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logg.Fatal("unable to connect to db", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logg.Fatal("unable to ping db", "error", err)
	}

	logg.Info("connected to db successfully")

	if err := storage.CreateTables(ctx, pool); err != nil {
		logg.Fatal("unable to create tables", "error", err)
	}

	journalStorage := storage.NewJournalStorage(pool)

	// One scorer per process; the analyzer shares it across all requests.
	scorer := ai.NewVaderScorer()
	analyzer := usecases.NewAnalyzer(scorer, logg)

	journalHandler := handlers.NewJournalHandler(journalStorage, analyzer, logg)
	statsHandler := handlers.NewStatsHandler(journalStorage, logg)
	exportHandler := handlers.NewExportHandler(journalStorage, logg)

	mux := http.NewServeMux()
	mux.HandleFunc("/entry", journalHandler.HandleCreateEntry)
	mux.HandleFunc("/entry/get", journalHandler.HandleGetEntry)
	mux.HandleFunc("/entry/delete", journalHandler.HandleDeleteEntry)
	mux.HandleFunc("/entries", journalHandler.HandleGetEntries)
	mux.HandleFunc("/entries/search", journalHandler.HandleSearchEntries)
	mux.HandleFunc("/entries/range", journalHandler.HandleEntriesByRange)
	mux.HandleFunc("/stats", statsHandler.HandleGetStats)
	mux.HandleFunc("/insights", statsHandler.HandleGetInsights)
	mux.HandleFunc("/export", exportHandler.HandleExportCSV)

	logg.Info("starting server", "addr", cfg.HTTPAddr)

	if err := http.ListenAndServe(cfg.HTTPAddr, handlers.RequestLogger(logg, mux)); err != nil {
		logg.Fatal("fail listen and serve", "error", err)
	}
}
