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
	service_mocks "github.com/Astemirdum/shareit-service/server/internal/handler/mocks"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestHandler_CreateItem(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockItemService)

	var tests = []struct {
		name         string
		userID       string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			userID: "1",
			body:   `{"name":"drill","description":"600W drill","available":true}`,
			mockBehavior: func(r *service_mocks.MockItemService) {
				r.EXPECT().
					CreateItem(context.Background(), int64(1), model.CreateItemRequest{
						Name:        "drill",
						Description: "600W drill",
						Available:   boolPtr(true),
					}).
					Return(model.Item{ID: 2, Name: "drill", Description: "600W drill", Available: true, OwnerID: 1}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":2,"name":"drill","description":"600W drill","available":true}`,
			},
		},
		{
			name:         "err. available required",
			userID:       "1",
			body:         `{"name":"drill","description":"600W drill"}`,
			mockBehavior: func(r *service_mocks.MockItemService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateItemRequest.Available' Error:Field validation for 'Available' failed on the 'required' tag"}`,
			},
		},
		{
			name:         "err. missing user header",
			userID:       "",
			body:         `{"name":"drill","description":"600W drill","available":true}`,
			mockBehavior: func(r *service_mocks.MockItemService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid X-Sharer-User-Id header"}`,
			},
		},
		{
			name:   "err. unknown user",
			userID: "42",
			body:   `{"name":"drill","description":"600W drill","available":true}`,
			mockBehavior: func(r *service_mocks.MockItemService) {
				r.EXPECT().
					CreateItem(context.Background(), int64(42), model.CreateItemRequest{
						Name:        "drill",
						Description: "600W drill",
						Available:   boolPtr(true),
					}).
					Return(model.Item{}, errors.Wrap(errs.ErrNotFound, "user with id 42"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"user with id 42: not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _, itemSvc, _, _ := newTestRouter(t)
			tt.mockBehavior(itemSvc)

			r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.userID != "" {
				r.Header.Set(md.XSharerUserID, tt.userID)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetItem(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	e, _, itemSvc, _, _ := newTestRouter(t)
	itemSvc.EXPECT().
		GetItem(context.Background(), int64(2), int64(1)).
		Return(model.ItemDetails{
			Item:        model.Item{ID: 2, Name: "drill", Description: "600W drill", Available: true, OwnerID: 1},
			LastBooking: &model.BookingShort{ID: 5, BookerID: 3, ItemID: 2},
			NextBooking: nil,
			Comments: []model.Comment{
				{ID: 1, Text: "works great", ItemID: 2, AuthorName: "alice", Created: created},
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/items/2", http.NoBody)
	r.Header.Set(md.XSharerUserID, "1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"id":2,"name":"drill","description":"600W drill","available":true,"lastBooking":{"id":5,"bookerId":3},"nextBooking":null,"comments":[{"id":1,"text":"works great","authorName":"alice","created":"2024-04-01T10:00:00Z"}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_SearchItems(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockItemService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "?text=drill",
			mockBehavior: func(r *service_mocks.MockItemService) {
				r.EXPECT().
					SearchItems(context.Background(), "drill", 0, 10).
					Return([]model.Item{{ID: 2, Name: "drill", Description: "600W drill", Available: true}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":2,"name":"drill","description":"600W drill","available":true}]`,
			},
		},
		{
			name:  "ok. blank text",
			query: "?text=",
			mockBehavior: func(r *service_mocks.MockItemService) {
				r.EXPECT().
					SearchItems(context.Background(), "", 0, 10).
					Return([]model.Item{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _, itemSvc, _, _ := newTestRouter(t)
			tt.mockBehavior(itemSvc)

			r := httptest.NewRequest(http.MethodGet, "/items/search"+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateComment(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, _, itemSvc, _, _ := newTestRouter(t)
		itemSvc.EXPECT().
			CreateComment(context.Background(), int64(2), int64(3), model.CreateCommentRequest{Text: "works great"}).
			Return(model.Comment{ID: 1, Text: "works great", ItemID: 2, AuthorName: "alice", Created: created}, nil)

		r := httptest.NewRequest(http.MethodPost, "/items/2/comment", strings.NewReader(`{"text":"works great"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.Header.Set(md.XSharerUserID, "3")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"id":1,"text":"works great","authorName":"alice","created":"2024-05-01T12:00:00Z"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. rental not finished", func(t *testing.T) {
		t.Parallel()
		e, _, itemSvc, _, _ := newTestRouter(t)
		itemSvc.EXPECT().
			CreateComment(context.Background(), int64(2), int64(3), model.CreateCommentRequest{Text: "works great"}).
			Return(model.Comment{}, errors.Wrap(errs.ErrValidation,
				"item has not been rented by the user or the rental has not yet been completed"))

		r := httptest.NewRequest(http.MethodPost, "/items/2/comment", strings.NewReader(`{"text":"works great"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.Header.Set(md.XSharerUserID, "3")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t,
			`{"message":"item has not been rented by the user or the rental has not yet been completed: validation error"}`,
			strings.Trim(w.Body.String(), "\n"))
	})
}
