package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/gateway/internal/handler"
	cb "github.com/Astemirdum/shareit-service/pkg/circuit_breaker"
	md "github.com/Astemirdum/shareit-service/pkg/middleware"
	"github.com/Astemirdum/shareit-service/pkg/validate"
)

type passCB struct{}

func (passCB) Call(service func() error) error { return service() }
func (passCB) Reset()                          {}

type openCB struct{}

func (openCB) Call(func() error) error { return cb.ErrOpenCB }
func (openCB) Reset()                  {}

// stubProxy relays a canned core server response.
type stubProxy struct {
	body   string
	status int
	err    error
	cb     cb.CircuitBreaker
}

func (p *stubProxy) Do(echo.Context) ([]byte, int, error) {
	return []byte(p.body), p.status, p.err
}

func (p *stubProxy) DoWithBody(echo.Context, any) ([]byte, int, error) {
	return []byte(p.body), p.status, p.err
}

func (p *stubProxy) CB() cb.CircuitBreaker {
	if p.cb != nil {
		return p.cb
	}
	return passCB{}
}

func newTestRouter(t *testing.T, p *stubProxy) *echo.Echo {
	t.Helper()
	h := handler.New(p, p, p, p, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/users", h.CreateUser)
	e.GET("/users/:id", h.GetUser)
	e.GET("/items", h.ListItems)
	e.POST("/bookings", h.CreateBooking)
	e.GET("/bookings", h.ListBookingsByBooker)
	e.PATCH("/bookings/:id", h.ApproveBooking)
	return e
}

func TestGateway_ForwardsResponseVerbatim(t *testing.T) {
	t.Parallel()
	p := &stubProxy{body: `{"id":1,"name":"alice","email":"alice@example.com"}`, status: http.StatusOK}
	e := newTestRouter(t, p)

	r := httptest.NewRequest(http.MethodGet, "/users/1", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, p.body, strings.Trim(w.Body.String(), "\n"))
}

func TestGateway_CreateBooking(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}

	var tests = []struct {
		name     string
		userID   string
		body     string
		response response
	}{
		{
			name:   "ok",
			userID: "3",
			body:   `{"itemId":2,"start":"2030-05-10T12:00:00Z","end":"2030-05-11T12:00:00Z"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"status":"WAITING"}`,
			},
		},
		{
			name:   "err. missing user header",
			userID: "",
			body:   `{"itemId":2,"start":"2030-05-10T12:00:00Z","end":"2030-05-11T12:00:00Z"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid X-Sharer-User-Id header"}`,
			},
		},
		{
			name:   "err. end before start",
			userID: "3",
			body:   `{"itemId":2,"start":"2030-05-11T12:00:00Z","end":"2030-05-10T12:00:00Z"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"booking end must be after start"}`,
			},
		},
		{
			name:   "err. start in the past",
			userID: "3",
			body:   `{"itemId":2,"start":"2020-05-10T12:00:00Z","end":"2030-05-11T12:00:00Z"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"booking start must not be in the past"}`,
			},
		},
		{
			name:   "err. itemId required",
			userID: "3",
			body:   `{"start":"2030-05-10T12:00:00Z","end":"2030-05-11T12:00:00Z"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateBookingRequest.ItemID' Error:Field validation for 'ItemID' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &stubProxy{body: `{"id":7,"status":"WAITING"}`, status: http.StatusOK}
			e := newTestRouter(t, p)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
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

func TestGateway_ListBookings_UnsupportedState(t *testing.T) {
	t.Parallel()
	p := &stubProxy{body: `[]`, status: http.StatusOK}
	e := newTestRouter(t, p)

	r := httptest.NewRequest(http.MethodGet, "/bookings?state=SOMEDAY", http.NoBody)
	r.Header.Set(md.XSharerUserID, "3")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"Unknown state: UNSUPPORTED_STATUS"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestGateway_ApproveBooking_InvalidParam(t *testing.T) {
	t.Parallel()
	p := &stubProxy{body: `{}`, status: http.StatusOK}
	e := newTestRouter(t, p)

	r := httptest.NewRequest(http.MethodPatch, "/bookings/7?approved=maybe", http.NoBody)
	r.Header.Set(md.XSharerUserID, "1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"approved is invalid"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestGateway_CircuitOpen(t *testing.T) {
	t.Parallel()
	p := &stubProxy{cb: openCB{}}
	e := newTestRouter(t, p)

	r := httptest.NewRequest(http.MethodGet, "/items", http.NoBody)
	r.Header.Set(md.XSharerUserID, "1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, `{"message":"service unavailable"}`, strings.Trim(w.Body.String(), "\n"))
}
