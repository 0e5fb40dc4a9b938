package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	hrapp "github.com/chemstock/backend/internal/application/hr"
	"github.com/chemstock/backend/internal/domain/hr"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/chemstock/backend/internal/interfaces/http/dto"
)

// MockEmployeeRepository is a mock implementation of hr.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newEmployeeTestRouter(repo *MockEmployeeRepository) *gin.Engine {
	h := NewEmployeeHandler(hrapp.NewEmployeeService(repo))

	router := gin.New()
	router.POST("/employees", h.Create)
	router.GET("/employees/:id", h.GetByID)
	router.GET("/employees", h.List)
	router.PUT("/employees/:id", h.Update)
	router.DELETE("/employees/:id", h.Delete)
	return router
}

func newStoredEmployee(t *testing.T) *hr.Employee {
	t.Helper()
	hireDate, err := valueobject.NewEntryDate("2024-06-01")
	require.NoError(t, err)
	employee, err := hr.NewEmployee("Maria Santos", "Plant Operator", decimal.NewFromInt(3200), hireDate)
	require.NoError(t, err)
	return employee
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("registers active employee", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*hr.Employee")).Return(nil)

		router := newEmployeeTestRouter(repo)

		w := postJSON(router, "/employees", map[string]interface{}{
			"name":      "Maria Santos",
			"role":      "Plant Operator",
			"salary":    3200,
			"hire_date": "2024-06-01",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Maria Santos", data["name"])
		assert.Equal(t, "Plant Operator", data["role"])
		assert.Equal(t, "3200", data["salary"])
		assert.Equal(t, "2024-06-01", data["hire_date"])
		assert.Equal(t, true, data["active"])
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing hire date", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		router := newEmployeeTestRouter(repo)

		w := postJSON(router, "/employees", map[string]interface{}{
			"name":   "Maria Santos",
			"role":   "Plant Operator",
			"salary": 3200,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed hire date", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		router := newEmployeeTestRouter(repo)

		w := postJSON(router, "/employees", map[string]interface{}{
			"name":      "Maria Santos",
			"role":      "Plant Operator",
			"salary":    3200,
			"hire_date": "06/01/2024",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("deactivates employee", func(t *testing.T) {
		employee := newStoredEmployee(t)

		repo := new(MockEmployeeRepository)
		repo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*hr.Employee")).Return(nil)

		router := newEmployeeTestRouter(repo)

		payload, err := json.Marshal(map[string]interface{}{
			"name":      "Maria Santos",
			"role":      "Shift Supervisor",
			"salary":    3600,
			"hire_date": "2024-06-01",
			"active":    false,
		})
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodPut, "/employees/"+employee.ID.String(), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Shift Supervisor", data["role"])
		assert.Equal(t, "3600", data["salary"])
		assert.Equal(t, false, data["active"])
		assert.False(t, employee.Active)
		repo.AssertExpectations(t)
	})

	t.Run("requires explicit active flag", func(t *testing.T) {
		employee := newStoredEmployee(t)

		repo := new(MockEmployeeRepository)
		router := newEmployeeTestRouter(repo)

		payload, err := json.Marshal(map[string]interface{}{
			"name":      "Maria Santos",
			"role":      "Plant Operator",
			"salary":    3200,
			"hire_date": "2024-06-01",
		})
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodPut, "/employees/"+employee.ID.String(), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("deletes existing employee", func(t *testing.T) {
		employee := newStoredEmployee(t)

		repo := new(MockEmployeeRepository)
		repo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
		repo.On("Delete", mock.Anything, employee.ID).Return(nil)

		router := newEmployeeTestRouter(repo)

		req, _ := http.NewRequest(http.MethodDelete, "/employees/"+employee.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("returns 404 for unknown employee", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		repo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil, shared.ErrNotFound)

		router := newEmployeeTestRouter(repo)

		req, _ := http.NewRequest(http.MethodDelete, "/employees/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
