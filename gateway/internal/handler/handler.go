package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	cb "github.com/Astemirdum/shareit-service/pkg/circuit_breaker"
	md "github.com/Astemirdum/shareit-service/pkg/middleware"
	"github.com/Astemirdum/shareit-service/pkg/validate"
)

// Proxy forwards a request to the core server. Do is for requests whose body
// was not consumed; DoWithBody re-encodes the validated DTO.
type Proxy interface {
	Do(c echo.Context) ([]byte, int, error)
	DoWithBody(c echo.Context, body any) ([]byte, int, error)
	CB() cb.CircuitBreaker
}

type Handler struct {
	users    Proxy
	items    Proxy
	bookings Proxy
	requests Proxy
	log      *zap.Logger
}

func New(users, items, bookings, requests Proxy, log *zap.Logger) *Handler {
	return &Handler{
		users:    users,
		items:    items,
		bookings: bookings,
		requests: requests,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("/manage", md.NewRateLimiter(baseRPS))
	base.GET("/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.PATCH("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.POST("/items", h.CreateItem)
	api.GET("/items", h.ListItems)
	api.GET("/items/search", h.SearchItems)
	api.GET("/items/:id", h.GetItem)
	api.PATCH("/items/:id", h.UpdateItem)
	api.DELETE("/items/:id", h.DeleteItem)
	api.POST("/items/:id/comment", h.CreateComment)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.ListBookingsByBooker)
	api.GET("/bookings/owner", h.ListBookingsByOwner)
	api.GET("/bookings/:id", h.GetBooking)
	api.PATCH("/bookings/:id", h.ApproveBooking)

	api.POST("/requests", h.CreateRequest)
	api.GET("/requests", h.ListOwnRequests)
	api.GET("/requests/all", h.ListOtherRequests)
	api.GET("/requests/:id", h.GetRequest)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// proxy runs the forward through the downstream's circuit breaker and relays
// the core server's response verbatim. A nil body means forward as-is.
func (h *Handler) proxy(c echo.Context, p Proxy, body any) error {
	var (
		data   []byte
		status int
	)
	err := p.CB().Call(func() error {
		var err error
		if body != nil {
			data, status, err = p.DoWithBody(c, body)
		} else {
			data, status, err = p.Do(c)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, cb.ErrOpenCB) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
		}
		h.log.Error("proxy", zap.String("path", c.Path()), zap.Error(err))
		if status == 0 {
			status = http.StatusBadGateway
		}
		return echo.NewHTTPError(status, err.Error())
	}
	return c.JSONBlob(status, data)
}

func callerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Request().Header.Get(md.XSharerUserID), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+md.XSharerUserID+" header")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func validatePagination(c echo.Context) error {
	if fromParam := c.QueryParam("from"); fromParam != "" {
		if from, err := strconv.Atoi(fromParam); err != nil || from < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err := strconv.Atoi(sizeParam); err != nil || size <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return nil
}
