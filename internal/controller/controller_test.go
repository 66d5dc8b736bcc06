package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &service.ValidationError{Fields: map[string]string{"type": "unknown"}}, http.StatusBadRequest, "Validation failed"},
		{"not found", fmt.Errorf("find course: %w", service.ErrNotFound), http.StatusNotFound, "Resource not found"},
		{"conflict", service.ErrConflict, http.StatusConflict, "Resource already exists"},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized, "Invalid email or password"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Operation not permitted"},
		{"timeout", fmt.Errorf("list: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Request timed out"},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestParseIDParam(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc", "99999999999"} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := ParseIDParam(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseIDParam(c, "id")
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)
}

func TestBindErrorMalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	BindError(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}
