package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/dto"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

type Stats struct {
	TotalBookings  int     `json:"total_bookings"`
	TotalPaid      float64 `json:"total_paid"`
	TotalCost      float64 `json:"total_cost"`
	PendingBalance float64 `json:"pending_balance"`
}

type Detail struct {
	Client   *models.Client   `json:"client"`
	Events   []dto.EventDTO   `json:"events"`
	Payments []dto.PaymentDTO `json:"payments"`
	Stats    Stats            `json:"stats"`
}

type GetClientDetail struct {
	repo studio.Repository
}

func NewGetClientDetail(repo studio.Repository) *GetClientDetail {
	return &GetClientDetail{repo: repo}
}

func (uc *GetClientDetail) Execute(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) (*Detail, error) {

	if err := caller.Validate(); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	var (
		events   []models.Event
		payments []models.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = uc.repo.ListClientEvents(gctx, caller, id)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = uc.repo.ListClientPayments(gctx, caller, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stats Stats
	stats.TotalBookings = len(events)
	for i := range events {
		stats.TotalCost += events[i].PackageCost
		events[i].Client = client
	}
	for i := range payments {
		stats.TotalPaid += payments[i].Amount
	}
	stats.PendingBalance = stats.TotalCost - stats.TotalPaid

	return &Detail{
		Client:   client,
		Events:   dto.FromEvents(events),
		Payments: dto.FromPayments(payments),
		Stats:    stats,
	}, nil
}
