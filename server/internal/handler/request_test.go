package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	md "github.com/Astemirdum/shareit-service/pkg/middleware"
	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func TestHandler_CreateRequest(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, _, _, _, requestSvc := newTestRouter(t)
		requestSvc.EXPECT().
			CreateRequest(context.Background(), int64(3), model.NewItemRequest{Description: "need a drill"}).
			Return(model.ItemRequest{ID: 4, Description: "need a drill", RequesterID: 3, Created: created}, nil)

		r := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"description":"need a drill"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.Header.Set(md.XSharerUserID, "3")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"id":4,"description":"need a drill","created":"2024-05-01T12:00:00Z"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. description required", func(t *testing.T) {
		t.Parallel()
		e, _, _, _, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.Header.Set(md.XSharerUserID, "3")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t,
			`{"message":"Key: 'NewItemRequest.Description' Error:Field validation for 'Description' failed on the 'required' tag"}`,
			strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_GetRequest(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	requestID := int64(4)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, _, _, _, requestSvc := newTestRouter(t)
		requestSvc.EXPECT().
			GetRequest(context.Background(), requestID, int64(3)).
			Return(model.ItemRequestDetails{
				ItemRequest: model.ItemRequest{ID: 4, Description: "need a drill", RequesterID: 3, Created: created},
				Items: []model.Item{
					{ID: 2, Name: "drill", Description: "600W drill", Available: true, OwnerID: 1, RequestID: &requestID},
				},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/requests/4", http.NoBody)
		r.Header.Set(md.XSharerUserID, "3")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"id":4,"description":"need a drill","created":"2024-05-01T12:00:00Z","items":[{"id":2,"name":"drill","description":"600W drill","available":true,"requestId":4}]}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. not found", func(t *testing.T) {
		t.Parallel()
		e, _, _, _, requestSvc := newTestRouter(t)
		requestSvc.EXPECT().
			GetRequest(context.Background(), int64(99), int64(3)).
			Return(model.ItemRequestDetails{}, errors.Wrap(errs.ErrNotFound, "request with id 99"))

		r := httptest.NewRequest(http.MethodGet, "/requests/99", http.NoBody)
		r.Header.Set(md.XSharerUserID, "3")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"message":"request with id 99: not found"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_ListOtherRequests(t *testing.T) {
	t.Parallel()
	e, _, _, _, requestSvc := newTestRouter(t)
	requestSvc.EXPECT().
		ListOtherRequests(context.Background(), int64(3), 0, 20).
		Return([]model.ItemRequestDetails{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/requests/all?size=20", http.NoBody)
	r.Header.Set(md.XSharerUserID, "3")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
}
