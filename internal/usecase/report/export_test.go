package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/db/dbtest"
	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/infra/repository"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

var (
	owner    = tenancy.Caller{AccountID: 4, Role: tenancy.RoleOwner}
	stranger = tenancy.Caller{AccountID: 5, Role: tenancy.RoleOwner}
	now      = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
)

type recordingArchiver struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (a *recordingArchiver) Put(_ context.Context, key, _ string, _ []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys = append(a.keys, key)
	return a.err
}

func seed(t *testing.T) *repository.StudioGormRepository {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewStudioGormRepository(dbtest.Open(t))

	c := &models.Client{Name: "Asha", Phone: "1"}
	require.NoError(t, repo.CreateClient(ctx, owner, c))

	e := &models.Event{
		ClientID: c.ID, EventType: catalog.EventWedding, Location: "Goa",
		Date: time.Date(2026, 10, 25, 10, 0, 0, 0, time.UTC), PackageCost: 40000,
		Status: "Booked", EditingStatus: "Not Started",
	}
	require.NoError(t, repo.CreateEvent(ctx, owner, e))

	for _, d := range []time.Time{
		time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, repo.CreatePayment(ctx, owner, &models.Payment{
			EventID: e.ID, ClientID: c.ID, Amount: 1000, Method: catalog.MethodCash, Date: d,
		}))
	}
	require.NoError(t, repo.CreateExpense(ctx, owner, &models.Expense{
		Category: catalog.ExpenseTravel, Amount: 300, Date: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
	}))
	return repo
}

func TestFinanceReport_MonthAndArchive(t *testing.T) {
	repo := seed(t)
	archiver := &recordingArchiver{}
	uc := NewFinanceReport(repo, usecase.FixedClock(now), archiver, nil, nil)

	file, err := uc.Execute(context.Background(), owner, MonthInput{})
	require.NoError(t, err)
	assert.Equal(t, "finance-report-10-2026.csv", file.Name)

	r := csv.NewReader(bytes.NewReader(file.Body))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Contains(t, records, []string{"Total Income", "2000"})
	assert.Contains(t, records, []string{"Net Profit", "1700"})

	var paymentDates []string
	for _, rec := range records {
		if len(rec) == 5 && rec[4] == "Cash" {
			paymentDates = append(paymentDates, rec[0])
		}
	}
	assert.Equal(t, []string{"02/10/2026", "09/10/2026"}, paymentDates)

	assert.Equal(t, []string{"reports/4/finance-report-10-2026.csv"}, archiver.keys)
}

func TestFinanceReport_ArchiveFailureStillServes(t *testing.T) {
	repo := seed(t)
	archiver := &recordingArchiver{err: errors.New("bucket unreachable")}

	file, err := NewFinanceReport(repo, usecase.FixedClock(now), archiver, nil, nil).
		Execute(context.Background(), owner, MonthInput{Year: 2026, Month: 9, Format: "xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "finance-report-9-2026.xlsx", file.Name)
	assert.Len(t, archiver.keys, 1)
}

func TestReports_RejectBadInput(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	_, err := NewEventsReport(repo, usecase.FixedClock(now), nil, nil, nil).
		Execute(ctx, owner, MonthInput{Year: 2026, Month: 13})
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))

	_, err = NewClientPaymentsReport(repo, usecase.FixedClock(now), nil, nil, nil).
		Execute(ctx, owner, "pdf")
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))
}

func TestEventsAndClientPayments_Scoped(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	events, err := NewEventsReport(repo, usecase.FixedClock(now), nil, nil, nil).
		Execute(ctx, stranger, MonthInput{})
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(events.Body))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	payments, err := NewClientPaymentsReport(repo, usecase.FixedClock(now), nil, nil, nil).
		Execute(ctx, owner, "csv")
	require.NoError(t, err)

	r = csv.NewReader(bytes.NewReader(payments.Body))
	r.FieldsPerRecord = -1
	records, err = r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "09/10/2026", records[1][0])
	assert.Equal(t, "25/10/2026", records[1][4])
}
