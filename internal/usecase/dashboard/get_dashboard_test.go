package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/infra/repository"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
	ucEvent "github.com/BruksfildServices01/studio-manager/internal/usecase/event"
	ucFinance "github.com/BruksfildServices01/studio-manager/internal/usecase/finance"
)

var (
	owner = tenancy.Caller{AccountID: 1, Role: tenancy.RoleOwner}
	now   = time.Date(2026, 10, 19, 11, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
)

func TestGetDashboard_EndToEnd(t *testing.T) {
	repo := repository.NewStudioGormRepository(dbtest.Open(t))
	clock := usecase.FixedClock(now)
	ctx := context.Background()

	client := &models.Client{Name: "Asha", Phone: "1"}
	require.NoError(t, repo.CreateClient(ctx, owner, client))

	ev, err := ucEvent.NewCreateEvent(repo, clock, nil, nil).Execute(ctx, owner, ucEvent.CreateInput{
		EventInput: studio.EventInput{
			ClientID: client.ID, EventType: "Wedding", Date: now.AddDate(0, 0, 5),
			Location: "Jaipur", PackageCost: 50000, AdvancePaid: 20000,
		},
	})
	require.NoError(t, err)

	_, err = ucFinance.NewRecordPayment(repo, clock, nil).Execute(ctx, owner, studio.PaymentInput{
		EventID: ev.ID, Amount: 10000,
	})
	require.NoError(t, err)

	_, err = ucFinance.NewRecordExpense(repo, clock, nil).Execute(ctx, owner, studio.ExpenseInput{
		Category: "Travel", Amount: 2500,
	})
	require.NoError(t, err)

	s, err := NewGetDashboard(repo, clock).Execute(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, 50000.0, s.TotalRevenue)
	assert.Equal(t, 30000.0, s.TotalPaid)
	assert.Equal(t, 2500.0, s.TotalExpenses)
	assert.Equal(t, s.TotalRevenue-s.TotalPaid, s.PendingPayments)
	assert.Equal(t, s.TotalPaid-s.TotalExpenses, s.NetProfit)
	assert.EqualValues(t, 1, s.TotalClients)
	assert.Equal(t, 1, s.StatusCounts[workflow.BookingBooked])

	require.Len(t, s.UpcomingEventsList, 1)
	assert.Equal(t, 30000.0, s.UpcomingEventsList[0].PaidAmount)

	require.Len(t, s.PaymentAlerts, 1)
	assert.Equal(t, 20000.0, s.PaymentAlerts[0].Pending)

	current := s.MonthlyRevenue[len(s.MonthlyRevenue)-1]
	assert.Equal(t, "Oct 2026", current.Month)
	assert.Equal(t, 30000.0, current.Income)
	assert.Equal(t, 27500.0, current.Profit)
}

func TestGetDashboard_EmptyAccount(t *testing.T) {
	repo := repository.NewStudioGormRepository(dbtest.Open(t))

	s, err := NewGetDashboard(repo, usecase.FixedClock(now)).Execute(context.Background(), owner)
	require.NoError(t, err)

	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.NetProfit)
	assert.Len(t, s.MonthlyRevenue, 6)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
}

func TestGetDashboard_RequiresCaller(t *testing.T) {
	repo := repository.NewStudioGormRepository(dbtest.Open(t))

	_, err := NewGetDashboard(repo, usecase.FixedClock(now)).Execute(context.Background(), tenancy.Caller{})
	assert.Error(t, err)
}
