package dto

import (
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

type ClientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type EventDTO struct {
	ID        uint              `json:"id"`
	ClientID  uint              `json:"client_id"`
	Client    *ClientSummary    `json:"client"`
	EventType catalog.EventType `json:"event_type"`
	Date      time.Time         `json:"date"`
	EndDate   *time.Time        `json:"end_date"`
	Location  string            `json:"location"`

	PackageSelected  string  `json:"package_selected"`
	PackageCost      float64 `json:"package_cost"`
	AdvancePaid      float64 `json:"advance_paid"`
	RemainingBalance float64 `json:"remaining_balance"`

	Photographer   string `json:"photographer"`
	BackupLocation string `json:"backup_location"`
	Notes          string `json:"notes"`

	Status          workflow.BookingStatus `json:"status"`
	EditingStatus   workflow.EditingStatus `json:"editing_status"`
	EditingProgress int                    `json:"editing_progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Summarize(c *models.Client) *ClientSummary {
	if c == nil || c.ID == 0 {
		return nil
	}
	return &ClientSummary{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
}

func FromEvent(e *models.Event) EventDTO {
	return EventDTO{
		ID:               e.ID,
		ClientID:         e.ClientID,
		Client:           Summarize(e.Client),
		EventType:        e.EventType,
		Date:             e.Date,
		EndDate:          e.EndDate,
		Location:         e.Location,
		PackageSelected:  e.PackageSelected,
		PackageCost:      e.PackageCost,
		AdvancePaid:      e.AdvancePaid,
		RemainingBalance: e.RemainingBalance(),
		Photographer:     e.Photographer,
		BackupLocation:   e.BackupLocation,
		Notes:            e.Notes,
		Status:           e.Status,
		EditingStatus:    e.EditingStatus,
		EditingProgress:  workflow.EditingProgress(e.EditingStatus),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromEvents(events []models.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for i := range events {
		out = append(out, FromEvent(&events[i]))
	}
	return out
}
