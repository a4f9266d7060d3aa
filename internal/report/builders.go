package report

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/studio-manager/internal/models"
)

const dateLayout = "02/01/2006"

// Finance is the monthly income and expense statement.
func Finance(
	payments []models.Payment,
	expenses []models.Expense,
	year int,
	month time.Month,
	loc *time.Location,
) Document {

	var income, spent float64

	paymentRows := make([][]any, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		income += p.Amount

		var eventType string
		if p.Event != nil {
			eventType = string(p.Event.EventType)
		}

		paymentRows = append(paymentRows, []any{
			day(p.Date, loc),
			clientName(p.Client),
			eventType,
			p.Amount,
			string(p.Method),
		})
	}

	expenseRows := make([][]any, 0, len(expenses))
	for i := range expenses {
		e := &expenses[i]
		spent += e.Amount
		expenseRows = append(expenseRows, []any{
			day(e.Date, loc),
			string(e.Category),
			e.Amount,
			e.Description,
		})
	}

	return Document{
		Title: fmt.Sprintf("MONTHLY FINANCE REPORT - %d/%d", int(month), year),
		Name:  fmt.Sprintf("finance-report-%d-%d", int(month), year),
		Sections: []Section{
			{
				Title:   "Payments",
				Headers: []string{"Date", "Client", "Event Type", "Amount", "Method"},
				Rows:    paymentRows,
				Totals:  []Total{{Label: "Total Income", Amount: income}},
			},
			{
				Title:   "Expenses",
				Headers: []string{"Date", "Category", "Amount", "Description"},
				Rows:    expenseRows,
				Totals:  []Total{{Label: "Total Expenses", Amount: spent}},
			},
		},
		Totals: []Total{
			{Label: "Total Income", Amount: income},
			{Label: "Total Expenses", Amount: spent},
			{Label: "Net Profit", Amount: income - spent},
		},
	}
}

// Events lists one month of bookings with their balances.
func Events(events []models.Event, year int, month time.Month, loc *time.Location) Document {
	rows := make([][]any, 0, len(events))
	for i := range events {
		e := &events[i]

		var phone string
		if e.Client != nil {
			phone = e.Client.Phone
		}

		rows = append(rows, []any{
			day(e.Date, loc),
			clientName(e.Client),
			phone,
			string(e.EventType),
			e.Location,
			e.PackageSelected,
			e.PackageCost,
			e.AdvancePaid,
			e.RemainingBalance(),
			string(e.Status),
		})
	}

	return Document{
		Name: fmt.Sprintf("event-report-%d-%d", int(month), year),
		Sections: []Section{{
			Title: "Events",
			Headers: []string{
				"Date", "Client", "Phone", "Event Type", "Location",
				"Package", "Cost", "Advance", "Balance", "Status",
			},
			Rows: rows,
		}},
	}
}

// ClientPayments lists every payment with the client and event it belongs
// to, in the order given.
func ClientPayments(payments []models.Payment, loc *time.Location) Document {
	rows := make([][]any, 0, len(payments))
	for i := range payments {
		p := &payments[i]

		var phone, eventType, eventDate string
		if p.Client != nil {
			phone = p.Client.Phone
		}
		if p.Event != nil {
			eventType = string(p.Event.EventType)
			eventDate = day(p.Event.Date, loc)
		}

		rows = append(rows, []any{
			day(p.Date, loc),
			clientName(p.Client),
			phone,
			eventType,
			eventDate,
			p.Amount,
			string(p.Method),
		})
	}

	return Document{
		Name: "client-payment-report",
		Sections: []Section{{
			Title:   "Client Payments",
			Headers: []string{"Date", "Client", "Phone", "Event Type", "Event Date", "Amount", "Method"},
			Rows:    rows,
		}},
	}
}

func day(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(dateLayout)
}

func clientName(c *models.Client) string {
	if c == nil {
		return ""
	}
	return c.Name
}
