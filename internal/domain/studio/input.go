package studio

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

// ===============================
// Client
// ===============================

type ClientInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// ApplyTo validates the input and copies it onto c. Ownership is left to
// the repository.
func (in ClientInput) ApplyTo(c *models.Client) error {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)

	if name == "" {
		return httperr.Validation("name_required", "Client name is required.")
	}
	if phone == "" {
		return httperr.Validation("phone_required", "Client phone is required.")
	}

	c.Name = name
	c.Phone = phone
	c.Email = strings.ToLower(strings.TrimSpace(in.Email))
	c.Address = strings.TrimSpace(in.Address)
	c.Notes = in.Notes
	return nil
}

// ===============================
// Event
// ===============================

type EventInput struct {
	ClientID        uint
	EventType       string
	Date            time.Time
	EndDate         *time.Time
	Location        string
	PackageSelected string
	PackageCost     float64
	AdvancePaid     float64
	Photographer    string
	BackupLocation  string
	Notes           string

	// Empty keeps the current value (or the initial one on create).
	Status        string
	EditingStatus string
}

func (in EventInput) ApplyTo(e *models.Event) error {
	if in.ClientID == 0 {
		return httperr.Validation("client_required", "Client is required.")
	}

	eventType := catalog.EventType(in.EventType)
	if !eventType.Valid() {
		return httperr.Validation("invalid_event_type", "Unknown event type.")
	}

	if in.Date.IsZero() {
		return httperr.Validation("date_required", "Event date is required.")
	}
	if in.EndDate != nil && in.EndDate.Before(in.Date) {
		return httperr.Validation("invalid_end_date", "End date is before the event date.")
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		return httperr.Validation("location_required", "Event location is required.")
	}

	if in.PackageCost < 0 {
		return httperr.Validation("invalid_package_cost", "Package cost cannot be negative.")
	}
	if in.AdvancePaid < 0 {
		return httperr.Validation("invalid_advance", "Advance cannot be negative.")
	}

	status := e.Status
	if in.Status != "" {
		s, err := workflow.ParseBookingStatus(in.Status)
		if err != nil {
			return err
		}
		status = s
	}
	if status == "" {
		status = workflow.InitialBookingStatus()
	}

	editing := e.EditingStatus
	if in.EditingStatus != "" {
		s, err := workflow.ParseEditingStatus(in.EditingStatus)
		if err != nil {
			return err
		}
		editing = s
	}
	if editing == "" {
		editing = workflow.InitialEditingStatus()
	}

	e.ClientID = in.ClientID
	e.EventType = eventType
	e.Date = in.Date
	e.EndDate = in.EndDate
	e.Location = location
	e.PackageSelected = strings.TrimSpace(in.PackageSelected)
	e.PackageCost = in.PackageCost
	e.AdvancePaid = in.AdvancePaid
	e.Photographer = strings.TrimSpace(in.Photographer)
	e.BackupLocation = strings.TrimSpace(in.BackupLocation)
	e.Notes = in.Notes
	e.Status = status
	e.EditingStatus = editing
	return nil
}

// EventPatch changes only the fields that are set. A nil field keeps the
// stored value.
type EventPatch struct {
	ClientID        *uint
	EventType       *string
	Date            *time.Time
	EndDate         *time.Time
	ClearEndDate    bool
	Location        *string
	PackageSelected *string
	PackageCost     *float64
	AdvancePaid     *float64
	Photographer    *string
	BackupLocation  *string
	Notes           *string
	Status          *string
	EditingStatus   *string
}

// ApplyTo overlays the patch on e and validates the merged event the same
// way a full input is validated.
func (p EventPatch) ApplyTo(e *models.Event) error {
	in := EventInput{
		ClientID:        e.ClientID,
		EventType:       string(e.EventType),
		Date:            e.Date,
		EndDate:         e.EndDate,
		Location:        e.Location,
		PackageSelected: e.PackageSelected,
		PackageCost:     e.PackageCost,
		AdvancePaid:     e.AdvancePaid,
		Photographer:    e.Photographer,
		BackupLocation:  e.BackupLocation,
		Notes:           e.Notes,
	}

	if p.ClientID != nil {
		in.ClientID = *p.ClientID
	}
	if p.EventType != nil {
		in.EventType = *p.EventType
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	switch {
	case p.ClearEndDate:
		in.EndDate = nil
	case p.EndDate != nil:
		in.EndDate = p.EndDate
	}
	if p.Location != nil {
		in.Location = *p.Location
	}
	if p.PackageSelected != nil {
		in.PackageSelected = *p.PackageSelected
	}
	if p.PackageCost != nil {
		in.PackageCost = *p.PackageCost
	}
	if p.AdvancePaid != nil {
		in.AdvancePaid = *p.AdvancePaid
	}
	if p.Photographer != nil {
		in.Photographer = *p.Photographer
	}
	if p.BackupLocation != nil {
		in.BackupLocation = *p.BackupLocation
	}
	if p.Notes != nil {
		in.Notes = *p.Notes
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	if p.EditingStatus != nil {
		in.EditingStatus = *p.EditingStatus
	}

	return in.ApplyTo(e)
}

// ===============================
// Payment
// ===============================

type PaymentInput struct {
	EventID  uint
	ClientID uint
	Amount   float64
	Method   string
	Date     *time.Time
	Notes    string
}

func (in PaymentInput) Build(now time.Time) (*models.Payment, error) {
	if in.EventID == 0 {
		return nil, httperr.Validation("event_required", "Event is required.")
	}
	if in.Amount <= 0 {
		return nil, httperr.Validation("invalid_amount", "Amount must be greater than zero.")
	}

	method, err := ParsePaymentMethod(in.Method)
	if err != nil {
		return nil, err
	}

	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	return &models.Payment{
		EventID:  in.EventID,
		ClientID: in.ClientID,
		Amount:   in.Amount,
		Method:   method,
		Date:     date,
		Notes:    in.Notes,
	}, nil
}

func ParsePaymentMethod(raw string) (catalog.PaymentMethod, error) {
	if raw == "" {
		return catalog.DefaultPaymentMethod, nil
	}
	m := catalog.PaymentMethod(raw)
	if !m.Valid() {
		return "", httperr.Validation("invalid_method", "Unknown payment method.")
	}
	return m, nil
}

// ===============================
// Expense
// ===============================

type ExpenseInput struct {
	Category    string
	Amount      float64
	Date        *time.Time
	Description string
}

func (in ExpenseInput) Build(now time.Time) (*models.Expense, error) {
	category := catalog.ExpenseCategory(in.Category)
	if !category.Valid() {
		return nil, httperr.Validation("invalid_category", "Unknown expense category.")
	}
	if in.Amount <= 0 {
		return nil, httperr.Validation("invalid_amount", "Amount must be greater than zero.")
	}

	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	return &models.Expense{
		Category:    category,
		Amount:      in.Amount,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
	}, nil
}
