package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	productionapp "github.com/chemstock/backend/internal/application/production"
)

// ProductionHandler handles production endpoints
type ProductionHandler struct {
	BaseHandler
	productionService *productionapp.ProductionService
}

// NewProductionHandler creates a new ProductionHandler
func NewProductionHandler(productionService *productionapp.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: productionService}
}

// IngredientRequest is one raw-material contribution to a mix
type IngredientRequest struct {
	LotID   string  `json:"lot_id" binding:"required,uuid"`
	VolumeL float64 `json:"volume_l" binding:"required,gt=0"`
}

// ProduceRequest represents a request to mix lots into a finished batch
type ProduceRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=200"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// Produce mixes the requested ingredients into a finished batch
func (h *ProductionHandler) Produce(c *gin.Context) {
	var req ProduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	appReq := productionapp.ProduceRequest{Name: req.Name}
	for _, ing := range req.Ingredients {
		lotID, err := uuid.Parse(ing.LotID)
		if err != nil {
			h.BadRequest(c, "Invalid lot ID format")
			return
		}
		appReq.Ingredients = append(appReq.Ingredients, productionapp.IngredientRequest{
			LotID:   lotID,
			VolumeL: decimal.NewFromFloat(ing.VolumeL),
		})
	}

	batch, err := h.productionService.Produce(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batch)
}

// GetByID retrieves a finished batch by ID
func (h *ProductionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	batch, err := h.productionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}

// List retrieves finished batches. ?in_stock=true narrows to batches with
// mass on hand.
func (h *ProductionHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	inStock := c.Query("in_stock") == "true"

	result, err := h.productionService.List(c.Request.Context(), filter, inStock)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete removes a finished batch record
func (h *ProductionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	if err := h.productionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
