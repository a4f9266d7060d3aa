package finance

import (
	"context"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

type ListExpenses struct {
	repo studio.Repository
}

func NewListExpenses(repo studio.Repository) *ListExpenses {
	return &ListExpenses{repo: repo}
}

func (uc *ListExpenses) Execute(ctx context.Context, caller tenancy.Caller) ([]models.Expense, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	expenses, err := uc.repo.ListExpenses(ctx, caller, nil)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

type RecordExpense struct {
	repo  studio.Repository
	clock *usecase.Clock
	audit *audit.Dispatcher
}

func NewRecordExpense(
	repo studio.Repository,
	clock *usecase.Clock,
	audit *audit.Dispatcher,
) *RecordExpense {
	return &RecordExpense{repo: repo, clock: clock, audit: audit}
}

func (uc *RecordExpense) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	in studio.ExpenseInput,
) (*models.Expense, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		return nil, err
	}

	expense, err := in.Build(now)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateExpense(ctx, caller, expense); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "expense_recorded",
		Entity:    "expense",
		EntityID:  &expense.ID,
		Metadata:  map[string]any{"category": expense.Category, "amount": expense.Amount},
	})

	return expense, nil
}

type DeleteExpense struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewDeleteExpense(repo studio.Repository, audit *audit.Dispatcher) *DeleteExpense {
	return &DeleteExpense{repo: repo, audit: audit}
}

func (uc *DeleteExpense) Execute(ctx context.Context, caller tenancy.Caller, id uint) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if err := uc.repo.DeleteExpense(ctx, caller, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "expense_deleted",
		Entity:    "expense",
		EntityID:  &id,
	})
	return nil
}
