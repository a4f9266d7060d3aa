package studio

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

// EventFilter narrows an event listing. Zero fields are ignored; From/To
// form a half-open window on the event date. Listings are newest first
// unless Ascending is set.
type EventFilter struct {
	Status    workflow.BookingStatus
	EventType catalog.EventType
	From      *time.Time
	To        *time.Time
	Ascending bool
	Limit     int
}

// Period is a half-open date window. A nil *Period means "all time".
type Period struct {
	From time.Time
	To   time.Time
}

// Repository is the only gateway to tenant data. Every method is scoped
// to the caller; records of other accounts surface as NotFound.
type Repository interface {
	// -------- Clients --------
	ListClients(ctx context.Context, caller tenancy.Caller, search string) ([]models.Client, error)
	GetClient(ctx context.Context, caller tenancy.Caller, id uint) (*models.Client, error)
	CreateClient(ctx context.Context, caller tenancy.Caller, c *models.Client) error
	UpdateClient(ctx context.Context, caller tenancy.Caller, c *models.Client) error
	DeleteClient(ctx context.Context, caller tenancy.Caller, id uint) error

	// -------- Events --------
	ListEvents(ctx context.Context, caller tenancy.Caller, f EventFilter) ([]models.Event, error)
	ListClientEvents(ctx context.Context, caller tenancy.Caller, clientID uint) ([]models.Event, error)
	GetEvent(ctx context.Context, caller tenancy.Caller, id uint) (*models.Event, error)
	CreateEvent(ctx context.Context, caller tenancy.Caller, e *models.Event) error
	SaveEvent(ctx context.Context, caller tenancy.Caller, e *models.Event) error
	DeleteEvent(ctx context.Context, caller tenancy.Caller, id uint) error

	// -------- Payments --------
	ListPayments(ctx context.Context, caller tenancy.Caller, p *Period) ([]models.Payment, error)
	ListClientPayments(ctx context.Context, caller tenancy.Caller, clientID uint) ([]models.Payment, error)
	CreatePayment(ctx context.Context, caller tenancy.Caller, p *models.Payment) error
	DeletePayment(ctx context.Context, caller tenancy.Caller, id uint) error
	// AddAdvancePaid reads the event, adds amount and writes it back.
	// Concurrent calls on one event may lose an increment.
	AddAdvancePaid(ctx context.Context, caller tenancy.Caller, eventID uint, amount float64) (*models.Event, error)

	// -------- Expenses --------
	ListExpenses(ctx context.Context, caller tenancy.Caller, p *Period) ([]models.Expense, error)
	CreateExpense(ctx context.Context, caller tenancy.Caller, e *models.Expense) error
	DeleteExpense(ctx context.Context, caller tenancy.Caller, id uint) error

	// -------- Dashboard --------
	Snapshot(ctx context.Context, caller tenancy.Caller) (*dashboard.Snapshot, error)
}

// AccountRepository manages the accounts themselves. Lookups by id or email
// are global; the managed variants only see an owner and the users that
// owner created.
type AccountRepository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	SaveUser(ctx context.Context, u *models.User) error
	GetManagedUser(ctx context.Context, ownerID, id uint) (*models.User, error)
	ListManagedUsers(ctx context.Context, ownerID uint) ([]models.User, error)
}
