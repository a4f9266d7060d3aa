package dashboard

import (
	"context"

	domain "github.com/BruksfildServices01/studio-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

type GetDashboard struct {
	repo  studio.Repository
	clock *usecase.Clock
}

func NewGetDashboard(repo studio.Repository, clock *usecase.Clock) *GetDashboard {
	return &GetDashboard{repo: repo, clock: clock}
}

// Execute reads one consistent snapshot of the account and aggregates it
// as of now in the account's timezone.
func (uc *GetDashboard) Execute(ctx context.Context, caller tenancy.Caller) (*domain.Summary, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		return nil, err
	}

	snap, err := uc.repo.Snapshot(ctx, caller)
	if err != nil {
		return nil, err
	}

	summary := domain.Build(*snap, now)
	return &summary, nil
}
