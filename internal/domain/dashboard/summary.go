package dashboard

import (
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/dto"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

// Snapshot is everything one account's dashboard is computed from. It is
// read once per request; Build never goes back to the store.
type Snapshot struct {
	Events      []models.Event
	Payments    []models.Payment
	Expenses    []models.Expense
	ClientCount int64
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentAdvance PaymentStatus = "advance"
	PaymentPending PaymentStatus = "pending"
)

type ActivityKind string

const (
	ActivityEvent   ActivityKind = "event"
	ActivityPayment ActivityKind = "payment"
	ActivityExpense ActivityKind = "expense"
)

type Summary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalPaid       float64 `json:"total_paid"`
	PendingPayments float64 `json:"pending_payments"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetProfit       float64 `json:"net_profit"`

	TotalBookings  int   `json:"total_bookings"`
	TotalClients   int64 `json:"total_clients"`
	UpcomingEvents int   `json:"upcoming_events"`

	TodayEvents        []dto.EventDTO  `json:"today_events"`
	UpcomingEventsList []UpcomingEvent `json:"upcoming_events_list"`

	MonthlyRevenue []MonthRevenue   `json:"monthly_revenue"`
	ExpenseSummary []CategoryAmount `json:"expense_summary"`
	PaymentAlerts  []PaymentAlert   `json:"payment_alerts"`

	StatusCounts      map[workflow.BookingStatus]int `json:"status_counts"`
	RecentActivity    []Activity                     `json:"recent_activity"`
	EventDistribution []TypeCount                    `json:"event_distribution"`

	MonthlyPerformance Performance     `json:"monthly_performance"`
	DeliveryTracker    DeliveryTracker `json:"delivery_tracker"`
}

type UpcomingEvent struct {
	dto.EventDTO
	PaidAmount    float64       `json:"paid_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

type CategoryAmount struct {
	Category catalog.ExpenseCategory `json:"category"`
	Amount   float64                 `json:"amount"`
}

type PaymentAlert struct {
	ClientID  uint    `json:"client_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	TotalCost float64 `json:"total_cost"`
	TotalPaid float64 `json:"total_paid"`
	Pending   float64 `json:"pending"`
}

type Activity struct {
	Kind        ActivityKind `json:"kind"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

type TypeCount struct {
	Type  catalog.EventType `json:"type"`
	Count int               `json:"count"`
}

type MonthFigures struct {
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type Performance struct {
	ThisMonth MonthFigures `json:"this_month"`
	LastMonth MonthFigures `json:"last_month"`
}

type DeliveryTracker struct {
	InProgress      int `json:"in_progress"`
	PendingDelivery int `json:"pending_delivery"`
	Delivered       int `json:"delivered"`
}
