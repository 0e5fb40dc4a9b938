package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/chemstock/backend/internal/application/partner"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	CompanyName string `json:"company_name" binding:"required,min=1,max=200"`
	Address     string `json:"address" binding:"required,min=1,max=500"`
	Phone       string `json:"phone" binding:"required,min=1,max=50"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	CompanyName string `json:"company_name" binding:"required,min=1,max=200"`
	Address     string `json:"address" binding:"required,min=1,max=500"`
	Phone       string `json:"phone" binding:"required,min=1,max=50"`
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), partnerapp.CreateClientRequest{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID retrieves a client by ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// List retrieves clients with pagination
func (h *ClientHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update replaces a client's details
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, partnerapp.UpdateClientRequest{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete removes a client. Sales history rows that reference it keep their
// client ID.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
