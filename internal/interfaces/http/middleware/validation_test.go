package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemstock/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type lotInput struct {
		Name    string  `json:"name" binding:"required,min=1"`
		Density float64 `json:"density" binding:"required,gt=0"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/lots", func(c *gin.Context) {
		var req lotInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns per-field details for invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"density": -1}`)
		req := httptest.NewRequest("POST", "/lots", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		require.Len(t, resp.Error.Details, 2)

		fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "density")
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"name": "Caustic Soda 50%", "density": 1.52}`)
		req := httptest.NewRequest("POST", "/lots", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Required string `validate:"required"`
		Email    string `validate:"omitempty,email"`
		Min      string `validate:"omitempty,min=5"`
		UUID     string `validate:"omitempty,uuid"`
		GT       int    `validate:"omitempty,gt=0"`
	}

	v := validator.New()

	tests := []struct {
		name     string
		obj      input
		field    string
		expected string
	}{
		{"required", input{}, "Required", "This field is required"},
		{"email", input{Required: "x", Email: "invalid"}, "Email", "Invalid email format"},
		{"min", input{Required: "x", Min: "ab"}, "Min", "Must be at least 5 characters"},
		{"uuid", input{Required: "x", UUID: "invalid"}, "UUID", "Invalid UUID format"},
		{"gt", input{Required: "x", GT: -1}, "GT", "Must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.obj)
			require.Error(t, err)

			validationErrs := err.(validator.ValidationErrors)
			for _, e := range validationErrs {
				if e.Field() == tt.field {
					assert.Equal(t, tt.expected, getValidationMessage(e))
					return
				}
			}
			t.Fatalf("no validation error for field %s", tt.field)
		})
	}
}
