package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/dto"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/httpresp"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
	ucDashboard "github.com/BruksfildServices01/studio-manager/internal/usecase/dashboard"
	ucFinance "github.com/BruksfildServices01/studio-manager/internal/usecase/finance"
)

// ======================================================
// HANDLER
// ======================================================

type FinanceHandler struct {
	dashboard *ucDashboard.GetDashboard

	listPayments  *ucFinance.ListPayments
	recordPayment *ucFinance.RecordPayment
	deletePayment *ucFinance.DeletePayment

	listExpenses  *ucFinance.ListExpenses
	recordExpense *ucFinance.RecordExpense
	deleteExpense *ucFinance.DeleteExpense

	clock *usecase.Clock
	log   *zap.Logger
}

type FinanceUseCases struct {
	Dashboard     *ucDashboard.GetDashboard
	ListPayments  *ucFinance.ListPayments
	RecordPayment *ucFinance.RecordPayment
	DeletePayment *ucFinance.DeletePayment
	ListExpenses  *ucFinance.ListExpenses
	RecordExpense *ucFinance.RecordExpense
	DeleteExpense *ucFinance.DeleteExpense
}

func NewFinanceHandler(uc FinanceUseCases, clock *usecase.Clock, log *zap.Logger) *FinanceHandler {
	return &FinanceHandler{
		dashboard:     uc.Dashboard,
		listPayments:  uc.ListPayments,
		recordPayment: uc.RecordPayment,
		deletePayment: uc.DeletePayment,
		listExpenses:  uc.ListExpenses,
		recordExpense: uc.RecordExpense,
		deleteExpense: uc.DeleteExpense,
		clock:         clock,
		log:           log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PaymentRequest struct {
	EventID  uint    `json:"event_id"`
	ClientID uint    `json:"client_id"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method"`
	Date     *string `json:"date"`
	Notes    string  `json:"notes"`
}

type ExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        *string `json:"date"`
	Description string  `json:"description"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *FinanceHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, summary)
}

// ======================================================
// PAYMENTS
// ======================================================

func (h *FinanceHandler) ListPayments(c *gin.Context) {
	payments, err := h.listPayments.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, dto.FromPayments(payments))
}

func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.Caller(c)
	now, err := h.clock.Now(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}

	date, err := optionalTime(req.Date, now.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid payment date.")
		return
	}

	payment, err := h.recordPayment.Execute(c.Request.Context(), caller, studio.PaymentInput{
		EventID:  req.EventID,
		ClientID: req.ClientID,
		Amount:   req.Amount,
		Method:   req.Method,
		Date:     date,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.Created(c, dto.FromPayment(payment))
}

func (h *FinanceHandler) DeletePayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.deletePayment.Execute(c.Request.Context(), middleware.Caller(c), id); err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Payment deleted."})
}

// ======================================================
// EXPENSES
// ======================================================

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.listExpenses.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, expenses)
}

func (h *FinanceHandler) RecordExpense(c *gin.Context) {
	var req ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	caller := middleware.Caller(c)
	now, err := h.clock.Now(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}

	date, err := optionalTime(req.Date, now.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid expense date.")
		return
	}

	expense, err := h.recordExpense.Execute(c.Request.Context(), caller, studio.ExpenseInput{
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.Created(c, expense)
}

func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.deleteExpense.Execute(c.Request.Context(), middleware.Caller(c), id); err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Expense deleted."})
}
