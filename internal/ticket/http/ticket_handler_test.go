package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	authHTTP "github.com/allisson/tickets/internal/auth/http"
	"github.com/allisson/tickets/internal/httputil"
	"github.com/allisson/tickets/internal/ticket/domain"
	"github.com/allisson/tickets/internal/ticket/http/dto"
	"github.com/allisson/tickets/internal/ticket/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testCtx = authDomain.NewCtx(1)

func setupTestHandler(t *testing.T) (*TicketHandler, *mocks.MockTicketUseCase) {
	t.Helper()

	mockUseCase := &mocks.MockTicketUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTicketHandler(mockUseCase, logger), mockUseCase
}

// setupRouter mounts the handlers behind a fixed resolved Ctx and a minimal
// renderer for carried errors.
func setupRouter(handler *TicketHandler) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Next()
		if err := c.Errors.Last(); err != nil {
			status, clientError := httputil.MapError(err.Err)
			c.JSON(status, gin.H{"type": clientError})
		}
	})
	router.Use(func(c *gin.Context) {
		ctx := authHTTP.WithAuthResult(c.Request.Context(), authDomain.Resolved(testCtx))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.POST("/api/tickets", authHTTP.WithCtx(handler.CreateHandler))
	router.GET("/api/tickets", authHTTP.WithCtx(handler.ListHandler))
	router.DELETE("/api/tickets/:id", authHTTP.WithCtx(handler.DeleteHandler))
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorType(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["type"]
}

func TestTicketHandler_CreateHandler(t *testing.T) {
	t.Run("Success_Created", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		ticket := &domain.Ticket{ID: 0, OwnerID: 1, Title: "TicketAAA"}
		mockUseCase.On("Create", mock.Anything, testCtx, domain.TicketForCreate{Title: "TicketAAA"}).
			Return(ticket, nil)

		w := serve(setupRouter(handler), http.MethodPost, "/api/tickets", `{"title":"TicketAAA"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.TicketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.TicketResponse{ID: 0, OwnerID: 1, Title: "TicketAAA"}, resp)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		w := serve(setupRouter(handler), http.MethodPost, "/api/tickets", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PARAMS", errorType(t, w))
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success_EmptyTitle", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		ticket := &domain.Ticket{ID: 0, OwnerID: 1, Title: ""}
		mockUseCase.On("Create", mock.Anything, testCtx, domain.TicketForCreate{Title: ""}).
			Return(ticket, nil)

		w := serve(setupRouter(handler), http.MethodPost, "/api/tickets", `{"title":""}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NonStringTitle", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		w := serve(setupRouter(handler), http.MethodPost, "/api/tickets", `{"title":42}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PARAMS", errorType(t, w))
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_MissingTitle", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		w := serve(setupRouter(handler), http.MethodPost, "/api/tickets", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PARAMS", errorType(t, w))
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Create", mock.Anything, testCtx, mock.Anything).
			Return(nil, errors.New("boom"))

		w := serve(setupRouter(handler), http.MethodPost, "/api/tickets", `{"title":"TicketAAA"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "SERVICE_ERROR", errorType(t, w))
	})
}

func TestTicketHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		tickets := []*domain.Ticket{
			{ID: 0, OwnerID: 1, Title: "TicketAAA"},
			{ID: 1, OwnerID: 1, Title: "TicketBBB"},
		}
		mockUseCase.On("List", mock.Anything, testCtx).Return(tickets, nil)

		w := serve(setupRouter(handler), http.MethodGet, "/api/tickets", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.TicketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "TicketAAA", resp[0].Title)
		assert.Equal(t, uint64(1), resp[1].ID)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("List", mock.Anything, testCtx).Return([]*domain.Ticket{}, nil)

		w := serve(setupRouter(handler), http.MethodGet, "/api/tickets", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestTicketHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		ticket := &domain.Ticket{ID: 0, OwnerID: 1, Title: "TicketAAA"}
		mockUseCase.On("Delete", mock.Anything, testCtx, uint64(0)).Return(ticket, nil)

		w := serve(setupRouter(handler), http.MethodDelete, "/api/tickets/0", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.TicketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "TicketAAA", resp.Title)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Delete", mock.Anything, testCtx, uint64(1)).
			Return(nil, &domain.NotFoundError{ID: 1})

		w := serve(setupRouter(handler), http.MethodDelete, "/api/tickets/1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "TICKET_DELETE_FAIL_ID_NOT_FOUND", errorType(t, w))
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		for _, id := range []string{"abc", "-1", "1.5"} {
			t.Run(id, func(t *testing.T) {
				handler, mockUseCase := setupTestHandler(t)

				w := serve(setupRouter(handler), http.MethodDelete, "/api/tickets/"+id, "")

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, "INVALID_PARAMS", errorType(t, w))
				mockUseCase.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}
