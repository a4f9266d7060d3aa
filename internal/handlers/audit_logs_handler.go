package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/httpresp"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs  *audit.Logger
	clock *usecase.Clock
	log   *zap.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, clock *usecase.Clock, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, clock: clock, log: log}
}

// List pages through the caller's audit trail. from and to are calendar
// days in the account's timezone, both inclusive; malformed values are
// ignored.
func (h *AuditLogsHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)
	if err := caller.Validate(); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	now, err := h.clock.Now(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	loc := now.Location()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date range
	// --------------------------------------------------

	if raw := c.Query("from"); raw != "" {
		if from, err := parseTime(raw, loc); err == nil {
			f.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := parseTime(raw, loc); err == nil {
			end := to.AddDate(0, 0, 1)
			f.To = &end
		}
	}

	f.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), caller, f)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}

	httpresp.Page(c, logs, total, f.Page, f.Limit)
}
