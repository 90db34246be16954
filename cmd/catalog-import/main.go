// Command catalog-import bulk-loads manufacturer paint ranges into the
// shared catalog. It reads a JSON file of entries, validates and chunks
// them, and upserts into PostgreSQL through the catalog service.
//
// Flags:
//
//	--file  path to the JSON entries file (required)
//
// The file format is a JSON array:
//
//	[{"brand":"Tamiya","code":"XF-1","name":"Flat Black","type":"Akryl","hex":"#1a1a1a"}, ...]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vrusch/ModSkl/internal/adapter/postgres"
	catalogrepo "github.com/vrusch/ModSkl/internal/adapter/postgres/catalog"
	"github.com/vrusch/ModSkl/internal/app"
	"github.com/vrusch/ModSkl/internal/config"
	"github.com/vrusch/ModSkl/internal/domain"
	catalogsvc "github.com/vrusch/ModSkl/internal/service/catalog"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

type fileEntry struct {
	Brand string `json:"brand"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Hex   string `json:"hex"`
}

func main() {
	_ = godotenv.Load()

	filePath := flag.String("file", "", "path to the JSON entries file")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	data, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Error("read entries file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var raw []fileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Error("parse entries file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	entries := make([]catalogsvc.BulkEntry, len(raw))
	for i, e := range raw {
		entries[i] = catalogsvc.BulkEntry{
			Brand: e.Brand,
			Code:  e.Code,
			Name:  e.Name,
			Type:  e.Type,
			Hex:   e.Hex,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalogsvc.NewService(logger, catalogrepo.New(pool), nil, cfg.Catalog)

	// The import runs against the database directly; grant the admin
	// role the same way the API middleware would.
	ctx = ctxutil.WithRole(ctx, domain.RoleAdmin.String())

	result, err := svc.BulkImport(ctx, catalogsvc.BulkImportInput{Entries: entries})
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
	for _, e := range result.Errors {
		logger.Warn("entry rejected",
			slog.Int("line", e.LineNumber),
			slog.String("brand", e.Brand),
			slog.String("code", e.Code),
			slog.String("reason", e.Reason),
		)
	}
}
