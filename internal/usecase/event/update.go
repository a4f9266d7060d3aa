package event

import (
	"context"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

// ======================================================
// UPDATE
// ======================================================

// UpdateEvent applies a partial change. Fields missing from the patch keep
// their stored value.
type UpdateEvent struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewUpdateEvent(repo studio.Repository, audit *audit.Dispatcher) *UpdateEvent {
	return &UpdateEvent{repo: repo, audit: audit}
}

func (uc *UpdateEvent) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
	patch studio.EventPatch,
) (*models.Event, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	event, err := uc.repo.GetEvent(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	previousClient := event.ClientID
	if err := patch.ApplyTo(event); err != nil {
		return nil, err
	}

	if event.ClientID != previousClient {
		client, err := uc.repo.GetClient(ctx, caller, event.ClientID)
		if err != nil {
			return nil, err
		}
		event.Client = client
	}

	if err := uc.repo.SaveEvent(ctx, caller, event); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "event_updated",
		Entity:    "event",
		EntityID:  &event.ID,
	})

	return event, nil
}

// ======================================================
// STATUS
// ======================================================

// SetStatus replaces the booking status. Any value may follow any other
// and repeating the current value is harmless.
type SetStatus struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(repo studio.Repository, audit *audit.Dispatcher) *SetStatus {
	return &SetStatus{repo: repo, audit: audit}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
	raw string,
) (*models.Event, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	status, err := workflow.ParseBookingStatus(raw)
	if err != nil {
		return nil, err
	}

	event, err := uc.repo.GetEvent(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	from := event.Status
	event.Status = status

	if err := uc.repo.SaveEvent(ctx, caller, event); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "event_status_changed",
		Entity:    "event",
		EntityID:  &event.ID,
		Metadata:  map[string]any{"from": from, "to": status},
	})

	return event, nil
}

// ======================================================
// EDITING STATUS
// ======================================================

type SetEditingStatus struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewSetEditingStatus(repo studio.Repository, audit *audit.Dispatcher) *SetEditingStatus {
	return &SetEditingStatus{repo: repo, audit: audit}
}

func (uc *SetEditingStatus) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
	raw string,
) (*models.Event, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	status, err := workflow.ParseEditingStatus(raw)
	if err != nil {
		return nil, err
	}

	event, err := uc.repo.GetEvent(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	from := event.EditingStatus
	event.EditingStatus = status

	if err := uc.repo.SaveEvent(ctx, caller, event); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "event_editing_status_changed",
		Entity:    "event",
		EntityID:  &event.ID,
		Metadata:  map[string]any{"from": from, "to": status},
	})

	return event, nil
}

// ======================================================
// DELETE
// ======================================================

// DeleteEvent leaves the event's payments in place.
type DeleteEvent struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewDeleteEvent(repo studio.Repository, audit *audit.Dispatcher) *DeleteEvent {
	return &DeleteEvent{repo: repo, audit: audit}
}

func (uc *DeleteEvent) Execute(ctx context.Context, caller tenancy.Caller, id uint) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if err := uc.repo.DeleteEvent(ctx, caller, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "event_deleted",
		Entity:    "event",
		EntityID:  &id,
	})
	return nil
}
