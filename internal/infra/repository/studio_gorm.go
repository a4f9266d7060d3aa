package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

type StudioGormRepository struct {
	db *gorm.DB
}

func NewStudioGormRepository(db *gorm.DB) *StudioGormRepository {
	return &StudioGormRepository{db: db}
}

// immutable columns are never rewritten by an update.
var immutable = []string{"ID", "AccountID", "CreatedAt", clause.Associations}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *StudioGormRepository) ListClients(
	ctx context.Context,
	caller tenancy.Caller,
	search string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Scopes(tenancy.Owned(caller))

	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		q = q.Where(
			"(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(phone) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\')",
			pattern, pattern, pattern,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC, id DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *StudioGormRepository) GetClient(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Scopes(tenancy.OwnedID(caller, id)).
		First(&client).Error
	if err != nil {
		return nil, tenancy.NotFound(err, "client_not_found")
	}
	return &client, nil
}

func (r *StudioGormRepository) CreateClient(
	ctx context.Context,
	caller tenancy.Caller,
	client *models.Client,
) error {
	tenancy.Stamp(caller, &client.AccountID)
	client.ID = 0
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *StudioGormRepository) UpdateClient(
	ctx context.Context,
	caller tenancy.Caller,
	client *models.Client,
) error {
	tenancy.Stamp(caller, &client.AccountID)
	res := r.db.WithContext(ctx).
		Model(client).
		Scopes(tenancy.Owned(caller)).
		Select("*").
		Omit(immutable...).
		Updates(client)
	return tenancy.Affected(res, "client_not_found")
}

func (r *StudioGormRepository) DeleteClient(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) error {
	res := r.db.WithContext(ctx).
		Scopes(tenancy.OwnedID(caller, id)).
		Delete(&models.Client{})
	return tenancy.Affected(res, "client_not_found")
}

// --------------------------------------------------
// Event
// --------------------------------------------------

func (r *StudioGormRepository) ListEvents(
	ctx context.Context,
	caller tenancy.Caller,
	f studio.EventFilter,
) ([]models.Event, error) {

	q := r.db.WithContext(ctx).
		Preload("Client", tenancy.Owned(caller)).
		Scopes(tenancy.Owned(caller))

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}
	if f.From != nil {
		q = q.Where("date >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("date < ?", f.To.UTC())
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	order := "date DESC, id DESC"
	if f.Ascending {
		order = "date ASC, id ASC"
	}

	var events []models.Event
	if err := q.Order(order).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *StudioGormRepository) ListClientEvents(
	ctx context.Context,
	caller tenancy.Caller,
	clientID uint,
) ([]models.Event, error) {

	var events []models.Event
	err := r.db.WithContext(ctx).
		Scopes(tenancy.Owned(caller)).
		Where("client_id = ?", clientID).
		Order("date DESC, id DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *StudioGormRepository) GetEvent(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) (*models.Event, error) {

	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Client", tenancy.Owned(caller)).
		Scopes(tenancy.OwnedID(caller, id)).
		First(&event).Error
	if err != nil {
		return nil, tenancy.NotFound(err, "event_not_found")
	}
	return &event, nil
}

func (r *StudioGormRepository) CreateEvent(
	ctx context.Context,
	caller tenancy.Caller,
	event *models.Event,
) error {
	tenancy.Stamp(caller, &event.AccountID)
	event.ID = 0
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(event).Error
}

func (r *StudioGormRepository) SaveEvent(
	ctx context.Context,
	caller tenancy.Caller,
	event *models.Event,
) error {
	tenancy.Stamp(caller, &event.AccountID)
	res := r.db.WithContext(ctx).
		Model(event).
		Scopes(tenancy.Owned(caller)).
		Select("*").
		Omit(immutable...).
		Updates(event)
	return tenancy.Affected(res, "event_not_found")
}

func (r *StudioGormRepository) DeleteEvent(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) error {
	res := r.db.WithContext(ctx).
		Scopes(tenancy.OwnedID(caller, id)).
		Delete(&models.Event{})
	return tenancy.Affected(res, "event_not_found")
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *StudioGormRepository) ListPayments(
	ctx context.Context,
	caller tenancy.Caller,
	p *studio.Period,
) ([]models.Payment, error) {

	q := r.db.WithContext(ctx).
		Preload("Event", tenancy.Owned(caller)).
		Preload("Client", tenancy.Owned(caller)).
		Scopes(tenancy.Owned(caller), within(p))

	var payments []models.Payment
	if err := q.Order("date DESC, id DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *StudioGormRepository) ListClientPayments(
	ctx context.Context,
	caller tenancy.Caller,
	clientID uint,
) ([]models.Payment, error) {

	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Event", tenancy.Owned(caller)).
		Scopes(tenancy.Owned(caller)).
		Where("client_id = ?", clientID).
		Order("date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *StudioGormRepository) CreatePayment(
	ctx context.Context,
	caller tenancy.Caller,
	payment *models.Payment,
) error {
	tenancy.Stamp(caller, &payment.AccountID)
	payment.ID = 0
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(payment).Error
}

func (r *StudioGormRepository) DeletePayment(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) error {
	res := r.db.WithContext(ctx).
		Scopes(tenancy.OwnedID(caller, id)).
		Delete(&models.Payment{})
	return tenancy.Affected(res, "payment_not_found")
}

func (r *StudioGormRepository) AddAdvancePaid(
	ctx context.Context,
	caller tenancy.Caller,
	eventID uint,
	amount float64,
) (*models.Event, error) {

	event, err := r.GetEvent(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}

	event.AdvancePaid += amount

	res := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Scopes(tenancy.OwnedID(caller, eventID)).
		Updates(map[string]any{
			"advance_paid": event.AdvancePaid,
			"updated_at":   time.Now().UTC(),
		})
	if err := tenancy.Affected(res, "event_not_found"); err != nil {
		return nil, err
	}
	return event, nil
}

// --------------------------------------------------
// Expense
// --------------------------------------------------

func (r *StudioGormRepository) ListExpenses(
	ctx context.Context,
	caller tenancy.Caller,
	p *studio.Period,
) ([]models.Expense, error) {

	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Scopes(tenancy.Owned(caller), within(p)).
		Order("date DESC, id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *StudioGormRepository) CreateExpense(
	ctx context.Context,
	caller tenancy.Caller,
	expense *models.Expense,
) error {
	tenancy.Stamp(caller, &expense.AccountID)
	expense.ID = 0
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *StudioGormRepository) DeleteExpense(
	ctx context.Context,
	caller tenancy.Caller,
	id uint,
) error {
	res := r.db.WithContext(ctx).
		Scopes(tenancy.OwnedID(caller, id)).
		Delete(&models.Expense{})
	return tenancy.Affected(res, "expense_not_found")
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func within(p *studio.Period) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p == nil {
			return db
		}
		return db.Where("date >= ? AND date < ?", p.From.UTC(), p.To.UTC())
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Compile-time check
var _ studio.Repository = (*StudioGormRepository)(nil)
