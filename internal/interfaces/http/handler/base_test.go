package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser returns middleware that simulates an authenticated request
// without a real JWT token
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Next()
	}
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name: "from context",
			setup: func(c *gin.Context) {
				c.Set("request_id", "ctx-request-id")
			},
			expectedID: "ctx-request-id",
		},
		{
			name: "from header when context empty",
			setup: func(c *gin.Context) {
				c.Request.Header.Set("X-Request-ID", "header-request-id")
			},
			expectedID: "header-request-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set("request_id", "ctx-id")
				c.Request.Header.Set("X-Request-ID", "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			tt.setup(c)

			assert.Equal(t, tt.expectedID, getRequestID(c))
		})
	}
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.JWTUserIDKey, userID.String())

	got, err := getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserIDMissing(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	_, err := getUserID(c)
	assert.Error(t, err)
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.SuccessWithMeta(c, []string{"a", "b"}, 100, 1, 10)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(100), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.TotalPages)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Created(c, map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.NoContent(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestHandleErrorDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found maps to 404",
			err:            shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PROJECT_NOT_FOUND",
		},
		{
			name:           "forbidden maps to 403",
			err:            shared.ErrForbidden,
			expectedStatus: http.StatusForbidden,
			expectedCode:   "FORBIDDEN",
		},
		{
			name:           "already member maps to 409",
			err:            shared.NewDomainError("ALREADY_MEMBER", "User is already a member of this project"),
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_MEMBER",
		},
		{
			name:           "boardless project maps to 400",
			err:            shared.ErrNoBoardFound,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "NO_BOARD_FOUND",
		},
		{
			name:           "unknown code maps to 500",
			err:            shared.NewDomainError("SOMETHING_ODD", "odd"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "SOMETHING_ODD",
		},
	}

	h := &BaseHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.Response
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorOpaqueError(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	h.HandleError(c, errors.New("driver: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	// Raw error detail must not leak to clients
	assert.NotContains(t, resp.Error.Message, "connection refused")
}
