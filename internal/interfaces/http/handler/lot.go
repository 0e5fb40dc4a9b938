package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	stockapp "github.com/chemstock/backend/internal/application/stock"
)

// LotHandler handles raw-material stock endpoints
type LotHandler struct {
	BaseHandler
	lotService *stockapp.LotService
}

// NewLotHandler creates a new LotHandler
func NewLotHandler(lotService *stockapp.LotService) *LotHandler {
	return &LotHandler{lotService: lotService}
}

// CreateLotRequest represents a request to register a raw-material lot entry
type CreateLotRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=200"`
	MassKg     float64 `json:"mass_kg" binding:"required,gt=0"`
	DensityKgL float64 `json:"density_kg_l" binding:"required,gt=0"`
	UnitCost   float64 `json:"unit_cost" binding:"gte=0"`
	EntryDate  string  `json:"entry_date" binding:"required"`
}

// UpdateLotRequest represents a request to update a lot
type UpdateLotRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=200"`
	MassKg     float64 `json:"mass_kg" binding:"required,gt=0"`
	DensityKgL float64 `json:"density_kg_l" binding:"required,gt=0"`
	UnitCost   float64 `json:"unit_cost" binding:"gte=0"`
	EntryDate  string  `json:"entry_date" binding:"required"`
}

// Create registers a new lot entry
func (h *LotHandler) Create(c *gin.Context) {
	var req CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lot, err := h.lotService.Create(c.Request.Context(), stockapp.CreateLotRequest{
		Name:       req.Name,
		MassKg:     decimal.NewFromFloat(req.MassKg),
		DensityKgL: decimal.NewFromFloat(req.DensityKgL),
		UnitCost:   decimal.NewFromFloat(req.UnitCost),
		EntryDate:  req.EntryDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lot)
}

// GetByID retrieves a lot by ID
func (h *LotHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lot ID format")
		return
	}

	lot, err := h.lotService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lot)
}

// List retrieves lots with pagination
func (h *LotHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.lotService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update replaces a lot's fields
func (h *LotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lot ID format")
		return
	}

	var req UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lot, err := h.lotService.Update(c.Request.Context(), id, stockapp.UpdateLotRequest{
		Name:       req.Name,
		MassKg:     decimal.NewFromFloat(req.MassKg),
		DensityKgL: decimal.NewFromFloat(req.DensityKgL),
		UnitCost:   decimal.NewFromFloat(req.UnitCost),
		EntryDate:  req.EntryDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lot)
}

// Delete removes a lot
func (h *LotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lot ID format")
		return
	}

	if err := h.lotService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
