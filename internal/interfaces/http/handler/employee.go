package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	hrapp "github.com/chemstock/backend/internal/application/hr"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *hrapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *hrapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest represents a request to register an employee
type CreateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=200"`
	Role     string  `json:"role" binding:"required,min=1,max=100"`
	Salary   float64 `json:"salary" binding:"required,gt=0"`
	HireDate string  `json:"hire_date" binding:"required"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=200"`
	Role     string  `json:"role" binding:"required,min=1,max=100"`
	Salary   float64 `json:"salary" binding:"required,gt=0"`
	HireDate string  `json:"hire_date" binding:"required"`
	Active   *bool   `json:"active" binding:"required"`
}

// Create registers a new active employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), hrapp.CreateEmployeeRequest{
		Name:     req.Name,
		Role:     req.Role,
		Salary:   decimal.NewFromFloat(req.Salary),
		HireDate: req.HireDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, employee)
}

// GetByID retrieves an employee by ID
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// List retrieves employees with pagination
func (h *EmployeeHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update replaces an employee's details, including the active flag
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, hrapp.UpdateEmployeeRequest{
		Name:     req.Name,
		Role:     req.Role,
		Salary:   decimal.NewFromFloat(req.Salary),
		HireDate: req.HireDate,
		Active:   *req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Delete removes an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
