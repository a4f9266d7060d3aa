package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/dto"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/httpresp"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	"github.com/BruksfildServices01/studio-manager/internal/usecase"
	ucEvent "github.com/BruksfildServices01/studio-manager/internal/usecase/event"
)

// ======================================================
// HANDLER
// ======================================================

type EventHandler struct {
	list       *ucEvent.ListEvents
	upcoming   *ucEvent.ListUpcoming
	calendar   *ucEvent.Calendar
	get        *ucEvent.GetEvent
	create     *ucEvent.CreateEvent
	update     *ucEvent.UpdateEvent
	setStatus  *ucEvent.SetStatus
	setEditing *ucEvent.SetEditingStatus
	remove     *ucEvent.DeleteEvent
	clock      *usecase.Clock
	log        *zap.Logger
}

type EventUseCases struct {
	List       *ucEvent.ListEvents
	Upcoming   *ucEvent.ListUpcoming
	Calendar   *ucEvent.Calendar
	Get        *ucEvent.GetEvent
	Create     *ucEvent.CreateEvent
	Update     *ucEvent.UpdateEvent
	SetStatus  *ucEvent.SetStatus
	SetEditing *ucEvent.SetEditingStatus
	Delete     *ucEvent.DeleteEvent
}

func NewEventHandler(uc EventUseCases, clock *usecase.Clock, log *zap.Logger) *EventHandler {
	return &EventHandler{
		list:       uc.List,
		upcoming:   uc.Upcoming,
		calendar:   uc.Calendar,
		get:        uc.Get,
		create:     uc.Create,
		update:     uc.Update,
		setStatus:  uc.SetStatus,
		setEditing: uc.SetEditing,
		remove:     uc.Delete,
		clock:      clock,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EventRequest struct {
	ClientID        uint    `json:"client_id"`
	EventType       string  `json:"event_type"`
	Date            string  `json:"date"`
	EndDate         *string `json:"end_date"`
	Location        string  `json:"location"`
	PackageSelected string  `json:"package_selected"`
	PackageCost     float64 `json:"package_cost"`
	AdvancePaid     float64 `json:"advance_paid"`
	AdvanceMethod   string  `json:"advance_method"`
	Photographer    string  `json:"photographer"`
	BackupLocation  string  `json:"backup_location"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
	EditingStatus   string  `json:"editing_status"`
}

// EventPatchRequest mirrors EventRequest for updates. Omitted fields keep
// their stored value; an empty end_date clears it.
type EventPatchRequest struct {
	ClientID        *uint    `json:"client_id"`
	EventType       *string  `json:"event_type"`
	Date            *string  `json:"date"`
	EndDate         *string  `json:"end_date"`
	Location        *string  `json:"location"`
	PackageSelected *string  `json:"package_selected"`
	PackageCost     *float64 `json:"package_cost"`
	AdvancePaid     *float64 `json:"advance_paid"`
	Photographer    *string  `json:"photographer"`
	BackupLocation  *string  `json:"backup_location"`
	Notes           *string  `json:"notes"`
	Status          *string  `json:"status"`
	EditingStatus   *string  `json:"editing_status"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EditingStatusRequest struct {
	EditingStatus string `json:"editing_status" binding:"required"`
}

func (r EventRequest) input(loc *time.Location) (studio.EventInput, error) {
	in := studio.EventInput{
		ClientID:        r.ClientID,
		EventType:       r.EventType,
		Location:        r.Location,
		PackageSelected: r.PackageSelected,
		PackageCost:     r.PackageCost,
		AdvancePaid:     r.AdvancePaid,
		Photographer:    r.Photographer,
		BackupLocation:  r.BackupLocation,
		Notes:           r.Notes,
		Status:          r.Status,
		EditingStatus:   r.EditingStatus,
	}

	if r.Date != "" {
		date, err := parseTime(r.Date, loc)
		if err != nil {
			return in, httperr.Validation("invalid_date", "Invalid event date.")
		}
		in.Date = date
	}

	end, err := optionalTime(r.EndDate, loc)
	if err != nil {
		return in, httperr.Validation("invalid_end_date", "Invalid end date.")
	}
	in.EndDate = end

	return in, nil
}

func (r EventPatchRequest) patch(loc *time.Location) (studio.EventPatch, error) {
	p := studio.EventPatch{
		ClientID:        r.ClientID,
		EventType:       r.EventType,
		Location:        r.Location,
		PackageSelected: r.PackageSelected,
		PackageCost:     r.PackageCost,
		AdvancePaid:     r.AdvancePaid,
		Photographer:    r.Photographer,
		BackupLocation:  r.BackupLocation,
		Notes:           r.Notes,
		Status:          r.Status,
		EditingStatus:   r.EditingStatus,
	}

	if r.Date != nil {
		date, err := parseTime(*r.Date, loc)
		if err != nil {
			return p, httperr.Validation("invalid_date", "Invalid event date.")
		}
		p.Date = &date
	}

	if r.EndDate != nil {
		end, err := optionalTime(r.EndDate, loc)
		if err != nil {
			return p, httperr.Validation("invalid_end_date", "Invalid end date.")
		}
		p.EndDate = end
		p.ClearEndDate = end == nil
	}

	return p, nil
}

// location resolves the caller's timezone for date parsing.
func (h *EventHandler) location(c *gin.Context) (*time.Location, bool) {
	now, err := h.clock.Now(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return nil, false
	}
	return now.Location(), true
}

// bindEvent decodes the body and resolves its dates in the caller's
// timezone.
func (h *EventHandler) bindEvent(c *gin.Context) (EventRequest, studio.EventInput, bool) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return req, studio.EventInput{}, false
	}

	loc, ok := h.location(c)
	if !ok {
		return req, studio.EventInput{}, false
	}

	in, err := req.input(loc)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return req, studio.EventInput{}, false
	}
	return req, in, true
}

// ======================================================
// QUERIES
// ======================================================

func (h *EventHandler) List(c *gin.Context) {
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	events, err := h.list.Execute(c.Request.Context(), middleware.Caller(c), ucEvent.ListInput{
		Status:    c.Query("status"),
		EventType: c.Query("event_type"),
		Month:     month,
		Year:      year,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, dto.FromEvents(events))
}

func (h *EventHandler) Upcoming(c *gin.Context) {
	events, err := h.upcoming.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, dto.FromEvents(events))
}

func (h *EventHandler) Calendar(c *gin.Context) {
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	events, err := h.calendar.Execute(c.Request.Context(), middleware.Caller(c), year, month)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, dto.FromEvents(events))
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	event, err := h.get.Execute(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, dto.FromEvent(event))
}

// ======================================================
// COMMANDS
// ======================================================

func (h *EventHandler) Create(c *gin.Context) {
	req, in, ok := h.bindEvent(c)
	if !ok {
		return
	}

	event, err := h.create.Execute(c.Request.Context(), middleware.Caller(c), ucEvent.CreateInput{
		EventInput:    in,
		AdvanceMethod: req.AdvanceMethod,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.Created(c, dto.FromEvent(event))
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req EventPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	loc, ok := h.location(c)
	if !ok {
		return
	}

	patch, err := req.patch(loc)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	event, err := h.update.Execute(c.Request.Context(), middleware.Caller(c), id, patch)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, dto.FromEvent(event))
}

func (h *EventHandler) SetStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.setStatus.Execute(c.Request.Context(), middleware.Caller(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, dto.FromEvent(event))
}

func (h *EventHandler) SetEditingStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req EditingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.setEditing.Execute(c.Request.Context(), middleware.Caller(c), id, req.EditingStatus)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, dto.FromEvent(event))
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Caller(c), id); err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Event deleted."})
}
