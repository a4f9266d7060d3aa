package main

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-manager/internal/db"
	"github.com/BruksfildServices01/studio-manager/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Must(cfg.LogLevel, cfg.LogFormat, "studio-migrate")
	defer func() { _ = log.Sync() }()

	// NewDB runs the schema migration itself.
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	remapped, err := dbpkg.RemapLegacyEditingStatuses(db)
	if err != nil {
		log.Fatal("editing status remap failed", zap.Error(err))
	}
	log.Info("legacy editing statuses remapped", zap.Int64("events", remapped))

	if err := dbpkg.BackfillTimezones(db, cfg.DefaultTimezone); err != nil {
		log.Fatal("timezone backfill failed", zap.Error(err))
	}

	log.Info("migration complete")
}
