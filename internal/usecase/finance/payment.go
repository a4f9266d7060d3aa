package finance

import (
	"context"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

// ======================================================
// LIST
// ======================================================

type ListPayments struct {
	repo studio.Repository
}

func NewListPayments(repo studio.Repository) *ListPayments {
	return &ListPayments{repo: repo}
}

func (uc *ListPayments) Execute(ctx context.Context, caller tenancy.Caller) ([]models.Payment, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.ListPayments(ctx, caller, nil)
}

// ======================================================
// RECORD
// ======================================================

type RecordPayment struct {
	repo  studio.Repository
	clock *usecase.Clock
	audit *audit.Dispatcher
}

func NewRecordPayment(
	repo studio.Repository,
	clock *usecase.Clock,
	audit *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{repo: repo, clock: clock, audit: audit}
}

// Execute stores the payment and then adds it to the event's advance.
// The two writes are not atomic: a failure between them leaves the
// payment without its increment, and concurrent payments on one event
// may lose an increment.
func (uc *RecordPayment) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in studio.PaymentInput,
) (*models.Payment, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		return nil, err
	}

	payment, err := in.Build(now)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. References must belong to the caller
	// --------------------------------------------------
	event, err := uc.repo.GetEvent(ctx, caller, payment.EventID)
	if err != nil {
		return nil, err
	}

	if payment.ClientID == 0 {
		payment.ClientID = event.ClientID
	}

	client := event.Client
	if client == nil || client.ID != payment.ClientID {
		client, err = uc.repo.GetClient(ctx, caller, payment.ClientID)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2. Payment
	// --------------------------------------------------
	if err := uc.repo.CreatePayment(ctx, caller, payment); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Event advance
	// --------------------------------------------------
	updated, err := uc.repo.AddAdvancePaid(ctx, caller, event.ID, payment.Amount)
	if err != nil {
		return nil, err
	}

	payment.Event = updated
	payment.Client = client

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "payment_recorded",
		Entity:    "payment",
		EntityID:  &payment.ID,
		Metadata:  map[string]any{"event_id": event.ID, "amount": payment.Amount},
	})

	return payment, nil
}

// ======================================================
// DELETE
// ======================================================

// DeletePayment does not touch the event's advance.
type DeletePayment struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewDeletePayment(repo studio.Repository, audit *audit.Dispatcher) *DeletePayment {
	return &DeletePayment{repo: repo, audit: audit}
}

func (uc *DeletePayment) Execute(ctx context.Context, caller tenancy.Caller, id uint) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if err := uc.repo.DeletePayment(ctx, caller, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "payment_deleted",
		Entity:    "payment",
		EntityID:  &id,
	})
	return nil
}
