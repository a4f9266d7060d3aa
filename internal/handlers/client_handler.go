package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/httpresp"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	ucClient "github.com/BruksfildServices01/studio-manager/internal/usecase/client"
)

type ClientHandler struct {
	list   *ucClient.ListClients
	detail *ucClient.GetClientDetail
	create *ucClient.CreateClient
	update *ucClient.UpdateClient
	remove *ucClient.DeleteClient
	log    *zap.Logger
}

func NewClientHandler(
	list *ucClient.ListClients,
	detail *ucClient.GetClientDetail,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	remove *ucClient.DeleteClient,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{
		list:   list,
		detail: detail,
		create: create,
		update: update,
		remove: remove,
		log:    log,
	}
}

type ClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (r ClientRequest) input() studio.ClientInput {
	return studio.ClientInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), middleware.Caller(c), c.Query("search"))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// GET (client + history + stats)
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	detail, err := h.detail.Execute(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, detail)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), middleware.Caller(c), req.input())
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), middleware.Caller(c), id, req.input())
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Caller(c), id); err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Client deleted."})
}
