package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	salesapp "github.com/chemstock/backend/internal/application/sales"
)

// SaleHandler handles sales endpoints
type SaleHandler struct {
	BaseHandler
	salesService *salesapp.SalesService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(salesService *salesapp.SalesService) *SaleHandler {
	return &SaleHandler{salesService: salesService}
}

// SellRequest represents a request to record a sale
type SellRequest struct {
	ClientID   string  `json:"client_id" binding:"required,uuid"`
	BatchID    string  `json:"batch_id" binding:"required,uuid"`
	QuantityKg float64 `json:"quantity_kg" binding:"required,gt=0"`
	SaleValue  float64 `json:"sale_value" binding:"omitempty,gte=0"`
}

// Sell records a sale and debits the referenced batch
func (h *SaleHandler) Sell(c *gin.Context) {
	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	sale, err := h.salesService.Sell(c.Request.Context(), salesapp.SellRequest{
		ClientID:   clientID,
		BatchID:    batchID,
		QuantityKg: decimal.NewFromFloat(req.QuantityKg),
		SaleValue:  decimal.NewFromFloat(req.SaleValue),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// List retrieves the sales history with client and product names
func (h *SaleHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.salesService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
