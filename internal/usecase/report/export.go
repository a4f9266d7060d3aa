package report

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/report"
	"github.com/BruksfildServices01/studio-manager/internal/storage"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
	"github.com/BruksfildServices01/studio-manager/internal/timezone"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

// ======================================================
// INPUT
// ======================================================

// MonthInput selects a calendar month in the account's timezone. Zero
// values default to the current month.
type MonthInput struct {
	Year   int
	Month  int
	Format string
}

// ======================================================
// SHARED
// ======================================================

// exporter renders a document, archives a copy and hands the file back.
// Archive failures never fail the download.
type exporter struct {
	repo     studio.Repository
	clock    *usecase.Clock
	archiver storage.Archiver
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func newExporter(
	repo studio.Repository,
	clock *usecase.Clock,
	archiver storage.Archiver,
	audit *audit.Dispatcher,
	log *zap.Logger,
) exporter {
	if archiver == nil {
		archiver = storage.NopArchiver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return exporter{repo: repo, clock: clock, archiver: archiver, audit: audit, log: log}
}

func (e exporter) month(ctx context.Context, caller tenancy.Caller, in MonthInput) (*studio.Period, time.Time, error) {
	now, err := e.clock.Now(ctx, caller)
	if err != nil {
		return nil, time.Time{}, err
	}

	year, month := in.Year, in.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, time.Time{}, httperr.Validation("invalid_month", "Month must be between 1 and 12.")
	}
	if year < 1970 || year > 9999 {
		return nil, time.Time{}, httperr.Validation("invalid_year", "Year is out of range.")
	}

	from, to := timezone.MonthOf(year, time.Month(month), now.Location())
	return &studio.Period{From: from, To: to}, now, nil
}

func (e exporter) finish(
	ctx context.Context,
	caller tenancy.Caller,
	doc report.Document,
	format report.Format,
) (*report.File, error) {

	file, err := report.Render(doc, format)
	if err != nil {
		return nil, err
	}

	key := storage.ReportKey(caller.AccountID, file.Name)
	if err := e.archiver.Put(ctx, key, file.ContentType, file.Body); err != nil {
		e.log.Warn("report archive failed",
			zap.String("key", key),
			zap.Uint("account_id", caller.AccountID),
			zap.Error(err),
		)
	}

	e.audit.Dispatch(audit.Event{
		AccountID: caller.AccountID,
		Action:    "report_exported",
		Entity:    "report",
		Metadata:  map[string]any{"file": file.Name},
	})

	return file, nil
}

// ======================================================
// FINANCE
// ======================================================

type FinanceReport struct {
	exporter
}

func NewFinanceReport(
	repo studio.Repository,
	clock *usecase.Clock,
	archiver storage.Archiver,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *FinanceReport {
	return &FinanceReport{newExporter(repo, clock, archiver, audit, log)}
}

func (uc *FinanceReport) Execute(ctx context.Context, caller tenancy.Caller, in MonthInput) (*report.File, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(in.Format)
	if err != nil {
		return nil, err
	}

	period, now, err := uc.month(ctx, caller, in)
	if err != nil {
		return nil, err
	}

	var (
		payments []models.Payment
		expenses []models.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		payments, err = uc.repo.ListPayments(gctx, caller, period)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = uc.repo.ListExpenses(gctx, caller, period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reverse(payments)
	reverse(expenses)

	doc := report.Finance(payments, expenses, period.From.Year(), period.From.Month(), now.Location())
	return uc.finish(ctx, caller, doc, format)
}

// ======================================================
// EVENTS
// ======================================================

type EventsReport struct {
	exporter
}

func NewEventsReport(
	repo studio.Repository,
	clock *usecase.Clock,
	archiver storage.Archiver,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *EventsReport {
	return &EventsReport{newExporter(repo, clock, archiver, audit, log)}
}

func (uc *EventsReport) Execute(ctx context.Context, caller tenancy.Caller, in MonthInput) (*report.File, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(in.Format)
	if err != nil {
		return nil, err
	}

	period, now, err := uc.month(ctx, caller, in)
	if err != nil {
		return nil, err
	}

	events, err := uc.repo.ListEvents(ctx, caller, studio.EventFilter{
		From:      &period.From,
		To:        &period.To,
		Ascending: true,
	})
	if err != nil {
		return nil, err
	}

	doc := report.Events(events, period.From.Year(), period.From.Month(), now.Location())
	return uc.finish(ctx, caller, doc, format)
}

// ======================================================
// CLIENT PAYMENTS
// ======================================================

type ClientPaymentsReport struct {
	exporter
}

func NewClientPaymentsReport(
	repo studio.Repository,
	clock *usecase.Clock,
	archiver storage.Archiver,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ClientPaymentsReport {
	return &ClientPaymentsReport{newExporter(repo, clock, archiver, audit, log)}
}

// Execute lists every payment of the account, newest first.
func (uc *ClientPaymentsReport) Execute(ctx context.Context, caller tenancy.Caller, rawFormat string) (*report.File, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(rawFormat)
	if err != nil {
		return nil, err
	}

	now, err := uc.clock.Now(ctx, caller)
	if err != nil {
		return nil, err
	}

	payments, err := uc.repo.ListPayments(ctx, caller, nil)
	if err != nil {
		return nil, err
	}

	doc := report.ClientPayments(payments, now.Location())
	return uc.finish(ctx, caller, doc, format)
}

// reverse flips a newest-first listing into date order.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
