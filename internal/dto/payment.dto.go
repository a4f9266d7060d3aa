package dto

import (
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

type EventSummary struct {
	ID          uint              `json:"id"`
	EventType   catalog.EventType `json:"event_type"`
	Date        time.Time         `json:"date"`
	PackageCost float64           `json:"package_cost"`
}

type PaymentDTO struct {
	ID       uint           `json:"id"`
	EventID  uint           `json:"event_id"`
	Event    *EventSummary  `json:"event"`
	ClientID uint           `json:"client_id"`
	Client   *ClientSummary `json:"client"`

	Amount float64               `json:"amount"`
	Method catalog.PaymentMethod `json:"method"`
	Date   time.Time             `json:"date"`
	Notes  string                `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func FromPayment(p *models.Payment) PaymentDTO {
	out := PaymentDTO{
		ID:        p.ID,
		EventID:   p.EventID,
		ClientID:  p.ClientID,
		Client:    Summarize(p.Client),
		Amount:    p.Amount,
		Method:    p.Method,
		Date:      p.Date,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
	if p.Event != nil && p.Event.ID != 0 {
		out.Event = &EventSummary{
			ID:          p.Event.ID,
			EventType:   p.Event.EventType,
			Date:        p.Event.Date,
			PackageCost: p.Event.PackageCost,
		}
	}
	return out
}

func FromPayments(payments []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		out = append(out, FromPayment(&payments[i]))
	}
	return out
}
