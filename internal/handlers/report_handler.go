package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/httpresp"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	"github.com/BruksfildServices01/studio-manager/internal/report"
	ucReport "github.com/BruksfildServices01/studio-manager/internal/usecase/report"
)

type ReportHandler struct {
	finance        *ucReport.FinanceReport
	events         *ucReport.EventsReport
	clientPayments *ucReport.ClientPaymentsReport
	log            *zap.Logger
}

func NewReportHandler(
	finance *ucReport.FinanceReport,
	events *ucReport.EventsReport,
	clientPayments *ucReport.ClientPaymentsReport,
	log *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		finance:        finance,
		events:         events,
		clientPayments: clientPayments,
		log:            log,
	}
}

func (h *ReportHandler) monthInput(c *gin.Context) (ucReport.MonthInput, bool) {
	month, ok := queryInt(c, "month")
	if !ok {
		return ucReport.MonthInput{}, false
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return ucReport.MonthInput{}, false
	}
	return ucReport.MonthInput{Year: year, Month: month, Format: c.Query("format")}, true
}

func (h *ReportHandler) send(c *gin.Context, file *report.File, err error) {
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.Attachment(c, file.Name, file.ContentType, file.Body)
}

// ======================================================
// EXPORTS
// ======================================================

func (h *ReportHandler) Finance(c *gin.Context) {
	in, ok := h.monthInput(c)
	if !ok {
		return
	}
	file, err := h.finance.Execute(c.Request.Context(), middleware.Caller(c), in)
	h.send(c, file, err)
}

func (h *ReportHandler) Events(c *gin.Context) {
	in, ok := h.monthInput(c)
	if !ok {
		return
	}
	file, err := h.events.Execute(c.Request.Context(), middleware.Caller(c), in)
	h.send(c, file, err)
}

func (h *ReportHandler) ClientPayments(c *gin.Context) {
	file, err := h.clientPayments.Execute(c.Request.Context(), middleware.Caller(c), c.Query("format"))
	h.send(c, file, err)
}
