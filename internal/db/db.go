package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/studio-manager/internal/config"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

// GormConfig is shared by every dialect. Foreign keys are not created:
// deleting a client leaves its events and payments in place.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),

		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// RemapLegacyEditingStatuses rewrites editing statuses that are no longer
// part of the enumeration. It returns the number of events touched.
func RemapLegacyEditingStatuses(db *gorm.DB) (int64, error) {
	var total int64
	for from, to := range workflow.LegacyEditingRemap() {
		res := db.Model(&models.Event{}).
			Where("editing_status = ?", from).
			UpdateColumn("editing_status", to)
		if res.Error != nil {
			return total, fmt.Errorf("remap %q: %w", from, res.Error)
		}
		total += res.RowsAffected
	}
	return total, nil
}

// BackfillTimezones sets the default timezone on accounts created before
// the column existed.
func BackfillTimezones(db *gorm.DB, tz string) error {
	return db.Model(&models.User{}).
		Where("timezone IS NULL OR timezone = ''").
		UpdateColumn("timezone", tz).Error
}
