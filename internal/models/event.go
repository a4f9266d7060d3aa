package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
)

type Event struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AccountID uint `gorm:"index;not null" json:"account_id"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `json:"client,omitempty"`

	EventType catalog.EventType `gorm:"size:30;not null" json:"event_type"`
	Date      time.Time         `gorm:"index;not null" json:"date"`
	EndDate   *time.Time        `json:"end_date"`
	Location  string            `gorm:"size:255;not null" json:"location"`

	PackageSelected string  `gorm:"size:100" json:"package_selected"`
	PackageCost     float64 `gorm:"not null;default:0" json:"package_cost"`
	AdvancePaid     float64 `gorm:"not null;default:0" json:"advance_paid"`

	Photographer   string `gorm:"size:100" json:"photographer"`
	BackupLocation string `gorm:"size:255" json:"backup_location"`
	Notes          string `gorm:"type:text" json:"notes"`

	Status        workflow.BookingStatus `gorm:"size:20;not null;default:'Booked'" json:"status"`
	EditingStatus workflow.EditingStatus `gorm:"size:30;not null;default:'Not Started'" json:"editing_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RemainingBalance is derived on every read and never stored.
func (e *Event) RemainingBalance() float64 {
	return e.PackageCost - e.AdvancePaid
}

func (e *Event) BeforeSave(tx *gorm.DB) error {
	e.Date = e.Date.UTC()
	if e.EndDate != nil {
		end := e.EndDate.UTC()
		e.EndDate = &end
	}
	return nil
}
