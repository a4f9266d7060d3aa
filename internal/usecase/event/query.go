package event

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/timezone"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

const upcomingLimit = 10

// ======================================================
// LIST (filters)
// ======================================================

// ListInput filters arrive as raw query values. Month and year only apply
// together.
type ListInput struct {
	Status    string
	EventType string
	Month     int
	Year      int
}

type ListEvents struct {
	repo  studio.Repository
	clock *usecase.Clock
}

func NewListEvents(repo studio.Repository, clock *usecase.Clock) *ListEvents {
	return &ListEvents{repo: repo, clock: clock}
}

func (uc *ListEvents) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in ListInput,
) ([]models.Event, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	var f studio.EventFilter

	if in.Status != "" {
		s, err := workflow.ParseBookingStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = s
	}

	if in.EventType != "" {
		t := catalog.EventType(in.EventType)
		if !t.Valid() {
			return nil, httperr.Validation("invalid_event_type", "Unknown event type.")
		}
		f.EventType = t
	}

	if in.Month != 0 && in.Year != 0 {
		now, err := uc.clock.Now(ctx, caller)
		if err != nil {
			return nil, err
		}
		from, to, err := monthWindow(in.Year, in.Month, now.Location())
		if err != nil {
			return nil, err
		}
		f.From, f.To = &from, &to
	}

	return orEmpty(uc.repo.ListEvents(ctx, caller, f))
}

// ======================================================
// UPCOMING
// ======================================================

type ListUpcoming struct {
	repo  studio.Repository
	clock *usecase.Clock
}

func NewListUpcoming(repo studio.Repository, clock *usecase.Clock) *ListUpcoming {
	return &ListUpcoming{repo: repo, clock: clock}
}

func (uc *ListUpcoming) Execute(ctx context.Context, caller tenancy.Caller) ([]models.Event, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		return nil, err
	}

	return orEmpty(uc.repo.ListEvents(ctx, caller, studio.EventFilter{
		From:      &now,
		Ascending: true,
		Limit:     upcomingLimit,
	}))
}

// ======================================================
// CALENDAR
// ======================================================

type Calendar struct {
	repo  studio.Repository
	clock *usecase.Clock
}

func NewCalendar(repo studio.Repository, clock *usecase.Clock) *Calendar {
	return &Calendar{repo: repo, clock: clock}
}

// Execute lists one month of events in date order. Zero month or year
// default to the current month in the account's timezone.
func (uc *Calendar) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	year int,
	month int,
) ([]models.Event, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	from, to, err := monthWindow(year, month, now.Location())
	if err != nil {
		return nil, err
	}

	return orEmpty(uc.repo.ListEvents(ctx, caller, studio.EventFilter{
		From:      &from,
		To:        &to,
		Ascending: true,
	}))
}

// ======================================================
// GET
// ======================================================

type GetEvent struct {
	repo studio.Repository
}

func NewGetEvent(repo studio.Repository) *GetEvent {
	return &GetEvent{repo: repo}
}

func (uc *GetEvent) Execute(ctx context.Context, caller tenancy.Caller, id uint) (*models.Event, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.GetEvent(ctx, caller, id)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func monthWindow(year, month int, loc *time.Location) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, httperr.Validation("invalid_month", "Month must be between 1 and 12.")
	}
	if year < 1970 || year > 9999 {
		return time.Time{}, time.Time{}, httperr.Validation("invalid_year", "Year is out of range.")
	}
	from, to := timezone.MonthOf(year, time.Month(month), loc)
	return from, to, nil
}

func orEmpty(events []models.Event, err error) ([]models.Event, error) {
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
