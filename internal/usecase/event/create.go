package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

const advanceNote = "Advance payment on booking"

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	studio.EventInput

	// AdvanceMethod is used for the payment recorded for a non-zero
	// advance. Empty means cash.
	AdvanceMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateEvent struct {
	repo  studio.Repository
	clock *usecase.Clock
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateEvent(
	repo studio.Repository,
	clock *usecase.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateEvent {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateEvent{repo: repo, clock: clock, audit: audit, log: log}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateEvent) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in CreateInput,
) (*models.Event, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. Payload
	// --------------------------------------------------
	var event models.Event
	if err := in.ApplyTo(&event); err != nil {
		return nil, err
	}

	method, err := studio.ParsePaymentMethod(in.AdvanceMethod)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Client must belong to the caller
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, caller, event.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Event
	// --------------------------------------------------
	if err := uc.repo.CreateEvent(ctx, caller, &event); err != nil {
		return nil, err
	}
	event.Client = client

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "event_created",
		Entity:    "event",
		EntityID:  &event.ID,
	})

	// --------------------------------------------------
	// 4. Advance payment (best effort)
	// --------------------------------------------------
	if event.AdvancePaid > 0 {
		uc.recordAdvance(ctx, caller, &event, method)
	}

	return &event, nil
}

// recordAdvance books the booking advance as a payment. The event is
// already stored, so a failure here is logged and the booking stands.
func (uc *CreateEvent) recordAdvance(
	ctx context.Context,
	caller tenancy.Caller,
	event *models.Event,
	method catalog.PaymentMethod,
) {

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		uc.log.Warn("advance payment skipped", zap.Uint("event_id", event.ID), zap.Error(err))
		return
	}

	payment := &models.Payment{
		EventID:  event.ID,
		ClientID: event.ClientID,
		Amount:   event.AdvancePaid,
		Method:   method,
		Date:     now,
		Notes:    advanceNote,
	}

	if err := uc.repo.CreatePayment(ctx, caller, payment); err != nil {
		uc.log.Warn("advance payment not recorded",
			zap.Uint("event_id", event.ID),
			zap.Uint("account_id", caller.AccountID),
			zap.Error(err),
		)
		return
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "payment_recorded",
		Entity:    "payment",
		EntityID:  &payment.ID,
		Metadata:  map[string]any{"event_id": event.ID, "advance": true},
	})
}
