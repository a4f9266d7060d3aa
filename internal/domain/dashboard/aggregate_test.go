package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

var (
	kolkata, _ = time.LoadLocation("Asia/Kolkata")
	now        = time.Date(2026, time.October, 19, 11, 30, 0, 0, kolkata)
)

func at(month time.Month, day, hour int) time.Time {
	return time.Date(2026, month, day, hour, 0, 0, 0, kolkata)
}

func client(id uint, name string) *models.Client {
	return &models.Client{ID: id, Name: name, Phone: "98765" + name}
}

func event(id uint, c *models.Client, date time.Time, cost float64, status workflow.BookingStatus) models.Event {
	return models.Event{
		ID:          id,
		ClientID:    c.ID,
		Client:      c,
		EventType:   catalog.EventWedding,
		Date:        date,
		PackageCost: cost,
		Status:      status,
		CreatedAt:   date.AddDate(0, -1, 0),
	}
}

func payment(id, eventID uint, c *models.Client, amount float64, date time.Time) models.Payment {
	return models.Payment{
		ID:        id,
		EventID:   eventID,
		ClientID:  c.ID,
		Client:    c,
		Amount:    amount,
		Method:    catalog.MethodUPI,
		Date:      date,
		CreatedAt: date,
	}
}

func expense(id uint, cat catalog.ExpenseCategory, amount float64, date time.Time) models.Expense {
	return models.Expense{ID: id, Category: cat, Amount: amount, Date: date, CreatedAt: date}
}

func sampleSnapshot() Snapshot {
	asha := client(1, "Asha")
	ravi := client(2, "Ravi")

	return Snapshot{
		Events: []models.Event{
			event(1, asha, at(time.October, 19, 18), 50000, workflow.BookingBooked),
			event(2, ravi, at(time.October, 19, 9), 20000, workflow.BookingInProgress),
			event(3, asha, at(time.October, 25, 10), 30000, workflow.BookingBooked),
			event(4, ravi, at(time.September, 2, 10), 15000, workflow.BookingCompleted),
			event(5, ravi, at(time.October, 20, 0), 10000, workflow.BookingDelivered),
		},
		Payments: []models.Payment{
			payment(1, 1, asha, 20000, at(time.October, 1, 12)),
			payment(2, 3, asha, 30000, at(time.October, 2, 12)),
			payment(3, 4, ravi, 15000, at(time.September, 3, 12)),
			payment(4, 5, ravi, 2000, at(time.May, 3, 12)),
		},
		Expenses: []models.Expense{
			expense(1, catalog.ExpensePrint, 4000, at(time.October, 5, 12)),
			expense(2, catalog.ExpenseTravel, 1500, at(time.September, 7, 12)),
			expense(3, catalog.ExpensePrint, 1000, at(time.September, 8, 12)),
		},
		ClientCount: 2,
	}
}

func TestBuild_Totals(t *testing.T) {
	s := Build(sampleSnapshot(), now)

	assert.Equal(t, 125000.0, s.TotalRevenue)
	assert.Equal(t, 67000.0, s.TotalPaid)
	assert.Equal(t, 6500.0, s.TotalExpenses)
	assert.Equal(t, s.TotalRevenue-s.TotalPaid, s.PendingPayments)
	assert.Equal(t, s.TotalPaid-s.TotalExpenses, s.NetProfit)
	assert.Equal(t, 5, s.TotalBookings)
	assert.Equal(t, int64(2), s.TotalClients)
	// events 1, 3 and 5 are at or after now
	assert.Equal(t, 3, s.UpcomingEvents)
}

func TestBuild_PendingPaymentsNotClamped(t *testing.T) {
	c := client(1, "Asha")
	snap := Snapshot{
		Events:   []models.Event{event(1, c, at(time.October, 25, 10), 1000, workflow.BookingBooked)},
		Payments: []models.Payment{payment(1, 1, c, 1500, at(time.October, 1, 10))},
	}

	s := Build(snap, now)
	assert.Equal(t, -500.0, s.PendingPayments)
	assert.Empty(t, s.PaymentAlerts)
}

func TestBuild_TodayAndUpcoming(t *testing.T) {
	s := Build(sampleSnapshot(), now)

	require.Len(t, s.TodayEvents, 2)
	assert.Equal(t, uint(2), s.TodayEvents[0].ID, "ascending by date")
	assert.Equal(t, uint(1), s.TodayEvents[1].ID)

	require.Len(t, s.UpcomingEventsList, 2)
	first := s.UpcomingEventsList[0]
	assert.Equal(t, uint(5), first.ID, "midnight tomorrow is already upcoming")
	assert.Equal(t, 2000.0, first.PaidAmount)
	assert.Equal(t, PaymentAdvance, first.PaymentStatus)

	second := s.UpcomingEventsList[1]
	assert.Equal(t, uint(3), second.ID)
	assert.Equal(t, PaymentPaid, second.PaymentStatus)
}

func TestBuild_UpcomingCappedAtTen(t *testing.T) {
	c := client(1, "Asha")
	var events []models.Event
	for i := 1; i <= 14; i++ {
		events = append(events, event(uint(i), c, at(time.November, i, 10), 100, workflow.BookingBooked))
	}

	s := Build(Snapshot{Events: events}, now)
	require.Len(t, s.UpcomingEventsList, 10)
	assert.Equal(t, uint(1), s.UpcomingEventsList[0].ID)
	assert.Equal(t, uint(10), s.UpcomingEventsList[9].ID)
	assert.Equal(t, PaymentPending, s.UpcomingEventsList[0].PaymentStatus)
}

func TestBuild_MonthlyRevenue(t *testing.T) {
	s := Build(sampleSnapshot(), now)

	require.Len(t, s.MonthlyRevenue, 6)
	assert.Equal(t, "May 2026", s.MonthlyRevenue[0].Month)
	assert.Equal(t, "Oct 2026", s.MonthlyRevenue[5].Month)

	may := s.MonthlyRevenue[0]
	assert.Equal(t, 2000.0, may.Income)

	sep := s.MonthlyRevenue[4]
	assert.Equal(t, 15000.0, sep.Income)
	assert.Equal(t, 2500.0, sep.Expense)
	assert.Equal(t, 12500.0, sep.Profit)

	oct := s.MonthlyRevenue[5]
	assert.Equal(t, 50000.0, oct.Income)
	assert.Equal(t, 4000.0, oct.Expense)
	assert.Equal(t, 46000.0, oct.Profit)
}

func TestBuild_ExpenseSummaryAndDistribution(t *testing.T) {
	s := Build(sampleSnapshot(), now)

	assert.Equal(t, []CategoryAmount{
		{Category: catalog.ExpenseTravel, Amount: 1500},
		{Category: catalog.ExpensePrint, Amount: 5000},
	}, s.ExpenseSummary)

	assert.Equal(t, []TypeCount{{Type: catalog.EventWedding, Count: 5}}, s.EventDistribution)
}

func TestBuild_PaymentAlerts(t *testing.T) {
	s := Build(sampleSnapshot(), now)

	// Asha: 80000 billed, 50000 paid. Ravi: 45000 billed, 17000 paid.
	require.Len(t, s.PaymentAlerts, 2)
	assert.Equal(t, "Asha", s.PaymentAlerts[0].Name)
	assert.Equal(t, 30000.0, s.PaymentAlerts[0].Pending)
	assert.Equal(t, 80000.0, s.PaymentAlerts[0].TotalCost)
	assert.Equal(t, "Ravi", s.PaymentAlerts[1].Name)
	assert.Equal(t, 28000.0, s.PaymentAlerts[1].Pending)
	assert.Equal(t, 17000.0, s.PaymentAlerts[1].TotalPaid)

	for _, a := range s.PaymentAlerts {
		assert.Greater(t, a.Pending, 0.0)
	}
}

func TestBuild_PaymentAlertsSortedDescending(t *testing.T) {
	s := Build(sampleSnapshot(), now)
	for i := 1; i < len(s.PaymentAlerts); i++ {
		assert.GreaterOrEqual(t, s.PaymentAlerts[i-1].Pending, s.PaymentAlerts[i].Pending)
	}
}

func TestBuild_PaymentAlertsSkipDeletedClients(t *testing.T) {
	orphan := event(1, client(7, "Gone"), at(time.November, 1, 10), 9000, workflow.BookingBooked)
	orphan.Client = nil

	s := Build(Snapshot{Events: []models.Event{orphan}}, now)
	assert.Empty(t, s.PaymentAlerts)
	assert.Equal(t, 9000.0, s.PendingPayments)
}

func TestBuild_StatusCountsSumToEvents(t *testing.T) {
	snap := sampleSnapshot()
	s := Build(snap, now)

	require.Len(t, s.StatusCounts, 4)
	total := 0
	for _, n := range s.StatusCounts {
		total += n
	}
	assert.Equal(t, len(snap.Events), total)
	assert.Equal(t, 2, s.StatusCounts[workflow.BookingBooked])
	assert.Equal(t, 0, Build(Snapshot{}, now).StatusCounts[workflow.BookingDelivered])
}

func TestBuild_DeliveryTracker(t *testing.T) {
	s := Build(sampleSnapshot(), now)
	assert.Equal(t, DeliveryTracker{InProgress: 1, PendingDelivery: 1, Delivered: 1}, s.DeliveryTracker)
}

func TestBuild_MonthlyPerformanceUsesOwnDateFields(t *testing.T) {
	s := Build(sampleSnapshot(), now)

	assert.Equal(t, MonthFigures{Bookings: 4, Revenue: 50000, Expenses: 4000, Profit: 46000}, s.MonthlyPerformance.ThisMonth)
	assert.Equal(t, MonthFigures{Bookings: 1, Revenue: 15000, Expenses: 2500, Profit: 12500}, s.MonthlyPerformance.LastMonth)

	// A payment in this month for a booking dated last month counts as
	// this month's revenue.
	snap := sampleSnapshot()
	snap.Payments = append(snap.Payments, payment(9, 4, snap.Events[3].Client, 500, at(time.October, 3, 9)))
	s = Build(snap, now)
	assert.Equal(t, 50500.0, s.MonthlyPerformance.ThisMonth.Revenue)
	assert.Equal(t, 1, s.MonthlyPerformance.LastMonth.Bookings)
}

func TestBuild_RecentActivity(t *testing.T) {
	c := client(1, "Asha")
	var snap Snapshot
	for i := 1; i <= 12; i++ {
		snap.Payments = append(snap.Payments, payment(uint(i), 1, c, float64(i*1000), at(time.August, i, 10)))
	}
	snap.Expenses = []models.Expense{expense(1, catalog.ExpensePrint, 100000, at(time.August, 30, 10))}
	ev := event(1, c, at(time.December, 1, 10), 1000, workflow.BookingBooked)
	ev.CreatedAt = at(time.August, 31, 10)
	snap.Events = []models.Event{ev}

	feed := Build(snap, now).RecentActivity

	require.Len(t, feed, 10)
	assert.Equal(t, ActivityEvent, feed[0].Kind)
	assert.Equal(t, "New booking: Wedding for Asha", feed[0].Description)
	assert.Equal(t, ActivityExpense, feed[1].Kind)
	assert.Equal(t, "Expense ₹1,00,000 - Print", feed[1].Description)
	assert.Equal(t, "Payment ₹12,000 from Asha", feed[2].Description)

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp))
	}
}

func TestBuild_RecentActivityUnknownClient(t *testing.T) {
	p := payment(1, 1, client(1, "x"), 500, at(time.October, 1, 10))
	p.Client = nil

	feed := Build(Snapshot{Payments: []models.Payment{p}}, now).RecentActivity
	require.Len(t, feed, 1)
	assert.Equal(t, "Payment ₹500 from Unknown", feed[0].Description)
}

func TestBuild_EmptyAccount(t *testing.T) {
	s := Build(Snapshot{}, now)

	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TotalPaid)
	assert.Zero(t, s.PendingPayments)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.NetProfit)
	assert.Empty(t, s.TodayEvents)
	assert.Empty(t, s.UpcomingEventsList)
	assert.Empty(t, s.PaymentAlerts)
	assert.Empty(t, s.RecentActivity)
	assert.Empty(t, s.ExpenseSummary)
	assert.Empty(t, s.EventDistribution)
	assert.Len(t, s.MonthlyRevenue, 6)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"today_events":[]`)
	assert.Contains(t, string(raw), `"payment_alerts":[]`)
	assert.NotContains(t, string(raw), "null")
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0", FormatINR(0))
	assert.Equal(t, "₹999", FormatINR(999))
	assert.Equal(t, "₹20,000", FormatINR(20000))
	assert.Equal(t, "₹1,00,000", FormatINR(100000))
	assert.Equal(t, "₹12,34,567.5", FormatINR(1234567.5))
	assert.Equal(t, "₹10.05", FormatINR(10.05))
	assert.Equal(t, "-₹1,500", FormatINR(-1500))
}
