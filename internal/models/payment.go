package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
)

type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AccountID uint `gorm:"index;not null" json:"account_id"`

	EventID uint   `gorm:"index;not null" json:"event_id"`
	Event   *Event `json:"event,omitempty"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `json:"client,omitempty"`

	Amount float64               `gorm:"not null" json:"amount"`
	Method catalog.PaymentMethod `gorm:"size:20;not null;default:'Cash'" json:"method"`
	Date   time.Time             `gorm:"index;not null" json:"date"`
	Notes  string                `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	p.Date = p.Date.UTC()
	return nil
}
