package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

// Snapshot loads everything the dashboard needs inside one read-only
// transaction so the figures agree with each other.
func (r *StudioGormRepository) Snapshot(
	ctx context.Context,
	caller tenancy.Caller,
) (*dashboard.Snapshot, error) {

	var snap dashboard.Snapshot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("Client", tenancy.Owned(caller)).
			Scopes(tenancy.Owned(caller)).
			Order("date ASC, id ASC").
			Find(&snap.Events).Error; err != nil {
			return err
		}

		if err := tx.
			Preload("Client", tenancy.Owned(caller)).
			Scopes(tenancy.Owned(caller)).
			Order("date ASC, id ASC").
			Find(&snap.Payments).Error; err != nil {
			return err
		}

		if err := tx.
			Scopes(tenancy.Owned(caller)).
			Order("date ASC, id ASC").
			Find(&snap.Expenses).Error; err != nil {
			return err
		}

		return tx.Model(&models.Client{}).
			Scopes(tenancy.Owned(caller)).
			Count(&snap.ClientCount).Error
	}, r.snapshotTxOptions()...)

	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *StudioGormRepository) snapshotTxOptions() []*sql.TxOptions {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
}
