package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/studio-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/models"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func samplePayments() []models.Payment {
	asha := &models.Client{ID: 1, Name: "Asha", Phone: "98765"}
	wedding := &models.Event{ID: 1, EventType: catalog.EventWedding, Date: time.Date(2026, 11, 2, 4, 0, 0, 0, time.UTC)}

	return []models.Payment{
		{
			ID: 1, EventID: 1, Event: wedding, ClientID: 1, Client: asha,
			Amount: 20000, Method: catalog.MethodUPI,
			Date: time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, EventID: 9, ClientID: 9,
			Amount: 5000.5, Method: catalog.MethodCash,
			Date: time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC),
		},
	}
}

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{ID: 1, Category: catalog.ExpensePrint, Amount: 1500, Description: `Album, "deluxe"`, Date: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))
}

func TestFinance_CSV(t *testing.T) {
	doc := Finance(samplePayments(), sampleExpenses(), 2026, time.October, ist)

	file, err := Render(doc, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "finance-report-10-2026.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	r := csv.NewReader(bytes.NewReader(file.Body))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"MONTHLY FINANCE REPORT - 10/2026"}, records[0])
	assert.Contains(t, records, []string{"02/10/2026", "Asha", "Wedding", "20000", "UPI"})
	assert.Contains(t, records, []string{"05/10/2026", "", "", "5000.5", "Cash"})
	assert.Contains(t, records, []string{"03/10/2026", "Print", "1500", `Album, "deluxe"`})
	assert.Contains(t, records, []string{"Total Income", "25000.5"})
	assert.Contains(t, records, []string{"Total Expenses", "1500"})
	assert.Equal(t, []string{"Net Profit", "23500.5"}, records[len(records)-1])
}

func TestEvents_Balance(t *testing.T) {
	events := []models.Event{{
		ID: 1, EventType: catalog.EventPortrait, Location: "Studio",
		Client:      &models.Client{Name: "Ravi", Phone: "12345"},
		PackageCost: 8000, AdvancePaid: 3000, Status: "Booked",
		Date: time.Date(2026, 10, 20, 5, 0, 0, 0, time.UTC),
	}}

	doc := Events(events, 2026, time.October, ist)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "event-report-10-2026", doc.Name)

	row := doc.Sections[0].Rows[0]
	assert.Equal(t, "Ravi", row[1])
	assert.Equal(t, 5000.0, row[8])
}

func TestClientPayments_XLSX(t *testing.T) {
	file, err := Render(ClientPayments(samplePayments(), ist), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "client-payment-report.xlsx", file.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Body))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Client Payments"}, wb.GetSheetList())

	header, err := wb.GetCellValue("Client Payments", "E1")
	require.NoError(t, err)
	assert.Equal(t, "Event Date", header)

	eventDate, err := wb.GetCellValue("Client Payments", "E2")
	require.NoError(t, err)
	assert.Equal(t, "02/11/2026", eventDate)

	amount, err := wb.GetCellValue("Client Payments", "F2")
	require.NoError(t, err)
	assert.Equal(t, "20000", amount)
}

func TestFinance_XLSXHasSummary(t *testing.T) {
	doc := Finance(samplePayments(), sampleExpenses(), 2026, time.October, ist)

	file, err := Render(doc, FormatXLSX)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Body))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Payments", "Expenses", "Summary"}, wb.GetSheetList())

	label, err := wb.GetCellValue("Summary", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Net Profit", label)
}

func TestEmptyReportsRender(t *testing.T) {
	for _, doc := range []Document{
		Finance(nil, nil, 2026, time.January, time.UTC),
		Events(nil, 2026, time.January, time.UTC),
		ClientPayments(nil, time.UTC),
	} {
		for _, format := range []Format{FormatCSV, FormatXLSX} {
			file, err := Render(doc, format)
			require.NoError(t, err)
			assert.NotEmpty(t, file.Body)
		}
	}
}
