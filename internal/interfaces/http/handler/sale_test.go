package handler

import (
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

	salesapp "github.com/chemstock/backend/internal/application/sales"
	"github.com/chemstock/backend/internal/domain/partner"
	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/sales"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/interfaces/http/dto"
)

// MockSaleRepository implements sales.SaleRepository for testing
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAllWithNames(ctx context.Context, filter shared.Filter) ([]sales.SaleWithNames, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.SaleWithNames), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockClientRepository implements partner.ClientRepository for testing
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newSaleTestRouter(saleRepo *MockSaleRepository, clientRepo *MockClientRepository, batchRepo *MockBatchRepository) *gin.Engine {
	scope := salesapp.NewNoOpTransactionScope(saleRepo, batchRepo)
	h := NewSaleHandler(salesapp.NewSalesService(saleRepo, clientRepo, scope))

	router := gin.New()
	router.POST("/sales", h.Sell)
	router.GET("/sales", h.List)
	return router
}

func TestSaleHandler_Sell(t *testing.T) {
	newClient := func(t *testing.T) *partner.Client {
		client, err := partner.NewClient("Acme Chemicals", "1 Industrial Way", "+1 555 0101")
		require.NoError(t, err)
		return client
	}

	t.Run("records sale and debits batch", func(t *testing.T) {
		client := newClient(t)
		batch, err := production.NewBatch("Cleaner X", decimal.NewFromInt(16), decimal.NewFromInt(15))
		require.NoError(t, err)

		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		batchRepo := new(MockBatchRepository)
		batchRepo.On("FindByID", mock.Anything, batch.ID).Return(batch, nil)
		batchRepo.On("Save", mock.Anything, mock.AnythingOfType("*production.Batch")).Return(nil)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

		router := newSaleTestRouter(saleRepo, clientRepo, batchRepo)

		rec := postJSON(router, "/sales", map[string]interface{}{
			"client_id":   client.ID.String(),
			"batch_id":    batch.ID.String(),
			"quantity_kg": 3,
			"sale_value":  150,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "3", data["quantity_kg"])
		assert.Equal(t, "150", data["sale_value"])
		assert.True(t, batch.MassTotalKg.Equal(decimal.NewFromInt(13)), "got %s", batch.MassTotalKg)
		saleRepo.AssertExpectations(t)
	})

	t.Run("records sale without a value", func(t *testing.T) {
		client := newClient(t)
		batch, err := production.NewBatch("Cleaner X", decimal.NewFromInt(16), decimal.NewFromInt(15))
		require.NoError(t, err)

		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		batchRepo := new(MockBatchRepository)
		batchRepo.On("FindByID", mock.Anything, batch.ID).Return(batch, nil)
		batchRepo.On("Save", mock.Anything, mock.AnythingOfType("*production.Batch")).Return(nil)

		saleRepo := new(MockSaleRepository)
		saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

		router := newSaleTestRouter(saleRepo, clientRepo, batchRepo)

		rec := postJSON(router, "/sales", map[string]interface{}{
			"client_id":   client.ID.String(),
			"batch_id":    batch.ID.String(),
			"quantity_kg": 3,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "0", data["sale_value"])
		saleRepo.AssertExpectations(t)
	})

	t.Run("rejects a negative value", func(t *testing.T) {
		router := newSaleTestRouter(new(MockSaleRepository), new(MockClientRepository), new(MockBatchRepository))

		rec := postJSON(router, "/sales", map[string]interface{}{
			"client_id":   uuid.New().String(),
			"batch_id":    uuid.New().String(),
			"quantity_kg": 1,
			"sale_value":  -10,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("over-sell maps to 422", func(t *testing.T) {
		client := newClient(t)
		batch, err := production.NewBatch("Cleaner X", decimal.NewFromInt(5), decimal.NewFromInt(4))
		require.NoError(t, err)

		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		batchRepo := new(MockBatchRepository)
		batchRepo.On("FindByID", mock.Anything, batch.ID).Return(batch, nil)

		saleRepo := new(MockSaleRepository)

		router := newSaleTestRouter(saleRepo, clientRepo, batchRepo)

		rec := postJSON(router, "/sales", map[string]interface{}{
			"client_id":   client.ID.String(),
			"batch_id":    batch.ID.String(),
			"quantity_kg": 50,
			"sale_value":  100,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInsufficientStock, resp.Error.Code)
		saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown client maps to 404", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		clientRepo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil, shared.ErrNotFound)

		router := newSaleTestRouter(new(MockSaleRepository), clientRepo, new(MockBatchRepository))

		rec := postJSON(router, "/sales", map[string]interface{}{
			"client_id":   uuid.New().String(),
			"batch_id":    uuid.New().String(),
			"quantity_kg": 1,
			"sale_value":  10,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		router := newSaleTestRouter(new(MockSaleRepository), new(MockClientRepository), new(MockBatchRepository))

		rec := postJSON(router, "/sales", map[string]interface{}{
			"client_id":   uuid.New().String(),
			"batch_id":    uuid.New().String(),
			"quantity_kg": 0,
			"sale_value":  10,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSaleHandler_List(t *testing.T) {
	sale, err := sales.NewSale(uuid.New(), uuid.New(), decimal.NewFromInt(3), decimal.NewFromInt(150))
	require.NoError(t, err)

	saleRepo := new(MockSaleRepository)
	saleRepo.On("FindAllWithNames", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]sales.SaleWithNames{
		{Sale: *sale, ClientName: "Acme Chemicals", BatchName: "Cleaner X"},
	}, nil)
	saleRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	router := newSaleTestRouter(saleRepo, new(MockClientRepository), new(MockBatchRepository))

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items := resp.Data.([]interface{})
	require.Len(t, items, 1)

	row := items[0].(map[string]interface{})
	assert.Equal(t, "Acme Chemicals", row["client_name"])
	assert.Equal(t, "Cleaner X", row["batch_name"])
}
