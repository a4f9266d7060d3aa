package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
)

type Expense struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AccountID uint `gorm:"index;not null" json:"account_id"`

	Category    catalog.ExpenseCategory `gorm:"size:30;not null" json:"category"`
	Amount      float64                 `gorm:"not null" json:"amount"`
	Date        time.Time               `gorm:"index;not null" json:"date"`
	Description string                  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Date = e.Date.UTC()
	return nil
}
