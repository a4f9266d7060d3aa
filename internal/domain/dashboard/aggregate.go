package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/domain/workflow"
	"github.com/BruksfildServices01/studio-manager/internal/dto"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/timezone"
)

const (
	upcomingLimit    = 10
	activityLimit    = 10
	revenueMonths    = 6
	unknownClientTag = "Unknown"
)

// Build computes the dashboard for one account. now carries the account's
// location; every day and month window is evaluated in it.
func Build(s Snapshot, now time.Time) Summary {
	startOfToday := timezone.StartOfDay(now)
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)

	out := Summary{
		TotalBookings: len(s.Events),
		TotalClients:  s.ClientCount,
	}

	for i := range s.Events {
		out.TotalRevenue += s.Events[i].PackageCost
		if !s.Events[i].Date.Before(now) {
			out.UpcomingEvents++
		}
	}
	for i := range s.Payments {
		out.TotalPaid += s.Payments[i].Amount
	}
	for i := range s.Expenses {
		out.TotalExpenses += s.Expenses[i].Amount
	}
	out.PendingPayments = out.TotalRevenue - out.TotalPaid
	out.NetProfit = out.TotalPaid - out.TotalExpenses

	byDate := sortedByDate(s.Events)

	out.TodayEvents = todayEvents(byDate, startOfToday, startOfTomorrow)
	out.UpcomingEventsList = upcomingEvents(byDate, s.Payments, startOfTomorrow)
	out.MonthlyRevenue = monthlyRevenue(s, now)
	out.ExpenseSummary = expenseSummary(s.Expenses)
	out.PaymentAlerts = paymentAlerts(s.Events, s.Payments)
	out.StatusCounts = statusCounts(s.Events)
	out.RecentActivity = recentActivity(s)
	out.EventDistribution = eventDistribution(s.Events)
	out.MonthlyPerformance = Performance{
		ThisMonth: monthFigures(s, now, 0),
		LastMonth: monthFigures(s, now, -1),
	}
	out.DeliveryTracker = deliveryTracker(s.Events)

	return out
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func sortedByDate(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func todayEvents(byDate []models.Event, start, end time.Time) []dto.EventDTO {
	out := make([]dto.EventDTO, 0)
	for i := range byDate {
		if timezone.Within(byDate[i].Date, start, end) {
			out = append(out, dto.FromEvent(&byDate[i]))
		}
	}
	return out
}

func upcomingEvents(byDate []models.Event, payments []models.Payment, from time.Time) []UpcomingEvent {
	paid := make(map[uint]float64, len(byDate))
	for i := range payments {
		paid[payments[i].EventID] += payments[i].Amount
	}

	out := make([]UpcomingEvent, 0, upcomingLimit)
	for i := range byDate {
		if len(out) == upcomingLimit {
			break
		}
		if byDate[i].Date.Before(from) {
			continue
		}
		amount := paid[byDate[i].ID]
		out = append(out, UpcomingEvent{
			EventDTO:      dto.FromEvent(&byDate[i]),
			PaidAmount:    amount,
			PaymentStatus: paymentStatus(amount, byDate[i].PackageCost),
		})
	}
	return out
}

func paymentStatus(paid, cost float64) PaymentStatus {
	switch {
	case paid >= cost:
		return PaymentPaid
	case paid > 0:
		return PaymentAdvance
	default:
		return PaymentPending
	}
}

// --------------------------------------------------
// Money over time
// --------------------------------------------------

func monthlyRevenue(s Snapshot, now time.Time) []MonthRevenue {
	out := make([]MonthRevenue, 0, revenueMonths)
	for offset := -(revenueMonths - 1); offset <= 0; offset++ {
		start, end := timezone.MonthWindow(now, offset)
		income := sumPayments(s.Payments, start, end)
		expense := sumExpenses(s.Expenses, start, end)
		out = append(out, MonthRevenue{
			Month:   start.Format("Jan 2006"),
			Income:  income,
			Expense: expense,
			Profit:  income - expense,
		})
	}
	return out
}

// monthFigures counts bookings by event date but revenue and expenses by
// their own date fields.
func monthFigures(s Snapshot, now time.Time, offset int) MonthFigures {
	start, end := timezone.MonthWindow(now, offset)

	var bookings int
	for i := range s.Events {
		if timezone.Within(s.Events[i].Date, start, end) {
			bookings++
		}
	}

	revenue := sumPayments(s.Payments, start, end)
	expenses := sumExpenses(s.Expenses, start, end)

	return MonthFigures{
		Bookings: bookings,
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue - expenses,
	}
}

func sumPayments(payments []models.Payment, start, end time.Time) float64 {
	var total float64
	for i := range payments {
		if timezone.Within(payments[i].Date, start, end) {
			total += payments[i].Amount
		}
	}
	return total
}

func sumExpenses(expenses []models.Expense, start, end time.Time) float64 {
	var total float64
	for i := range expenses {
		if timezone.Within(expenses[i].Date, start, end) {
			total += expenses[i].Amount
		}
	}
	return total
}

// --------------------------------------------------
// Group-bys
// --------------------------------------------------

func expenseSummary(expenses []models.Expense) []CategoryAmount {
	totals := make(map[catalog.ExpenseCategory]float64)
	for i := range expenses {
		totals[expenses[i].Category] += expenses[i].Amount
	}

	out := make([]CategoryAmount, 0, len(totals))
	for _, c := range catalog.ExpenseCategories {
		if amount, ok := totals[c]; ok {
			out = append(out, CategoryAmount{Category: c, Amount: amount})
			delete(totals, c)
		}
	}
	for _, c := range sortedKeys(totals) {
		out = append(out, CategoryAmount{Category: c, Amount: totals[c]})
	}
	return out
}

func eventDistribution(events []models.Event) []TypeCount {
	counts := make(map[catalog.EventType]int)
	for i := range events {
		counts[events[i].EventType]++
	}

	out := make([]TypeCount, 0, len(counts))
	for _, t := range catalog.EventTypes {
		if n, ok := counts[t]; ok {
			out = append(out, TypeCount{Type: t, Count: n})
			delete(counts, t)
		}
	}
	for _, t := range sortedKeys(counts) {
		out = append(out, TypeCount{Type: t, Count: counts[t]})
	}
	return out
}

func statusCounts(events []models.Event) map[workflow.BookingStatus]int {
	out := make(map[workflow.BookingStatus]int, len(workflow.BookingStatuses))
	for _, s := range workflow.BookingStatuses {
		out[s] = 0
	}
	for i := range events {
		out[events[i].Status]++
	}
	return out
}

func deliveryTracker(events []models.Event) DeliveryTracker {
	var t DeliveryTracker
	for i := range events {
		switch events[i].Status {
		case workflow.BookingInProgress:
			t.InProgress++
		case workflow.BookingCompleted:
			t.PendingDelivery++
		case workflow.BookingDelivered:
			t.Delivered++
		}
	}
	return t
}

// paymentAlerts reconciles what each client was billed against what they
// paid. Events whose client record is gone are skipped, and so are
// payments from clients without a billed event.
func paymentAlerts(events []models.Event, payments []models.Payment) []PaymentAlert {
	balances := make(map[uint]*PaymentAlert)
	order := make([]uint, 0)

	for i := range events {
		c := events[i].Client
		if c == nil || c.ID == 0 {
			continue
		}
		b, ok := balances[c.ID]
		if !ok {
			b = &PaymentAlert{ClientID: c.ID, Name: c.Name, Phone: c.Phone}
			balances[c.ID] = b
			order = append(order, c.ID)
		}
		b.TotalCost += events[i].PackageCost
	}

	for i := range payments {
		if b, ok := balances[payments[i].ClientID]; ok {
			b.TotalPaid += payments[i].Amount
		}
	}

	out := make([]PaymentAlert, 0)
	for _, id := range order {
		b := balances[id]
		b.Pending = b.TotalCost - b.TotalPaid
		if b.Pending > 0 {
			out = append(out, *b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pending > out[j].Pending
	})
	return out
}

// --------------------------------------------------
// Activity feed
// --------------------------------------------------

func recentActivity(s Snapshot) []Activity {
	feed := make([]Activity, 0, 3*activityLimit)

	for _, e := range lastCreated(s.Events, func(e models.Event) time.Time { return e.CreatedAt }) {
		feed = append(feed, Activity{
			Kind:        ActivityEvent,
			Description: fmt.Sprintf("New booking: %s for %s", e.EventType, clientName(e.Client)),
			Timestamp:   e.CreatedAt,
		})
	}
	for _, p := range lastCreated(s.Payments, func(p models.Payment) time.Time { return p.CreatedAt }) {
		feed = append(feed, Activity{
			Kind:        ActivityPayment,
			Description: fmt.Sprintf("Payment %s from %s", FormatINR(p.Amount), clientName(p.Client)),
			Timestamp:   p.CreatedAt,
		})
	}
	for _, e := range lastCreated(s.Expenses, func(e models.Expense) time.Time { return e.CreatedAt }) {
		feed = append(feed, Activity{
			Kind:        ActivityExpense,
			Description: fmt.Sprintf("Expense %s - %s", FormatINR(e.Amount), e.Category),
			Timestamp:   e.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if len(feed) > activityLimit {
		feed = feed[:activityLimit]
	}
	return feed
}

// lastCreated returns the activityLimit most recently created items.
func lastCreated[T any](items []T, createdAt func(T) time.Time) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).Before(createdAt(sorted[j]))
	})
	if len(sorted) > activityLimit {
		sorted = sorted[len(sorted)-activityLimit:]
	}
	return sorted
}

func clientName(c *models.Client) string {
	if c == nil || c.Name == "" {
		return unknownClientTag
	}
	return c.Name
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
