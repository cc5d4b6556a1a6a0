package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/Astemirdum/shareit-service/pkg/middleware"
	"github.com/Astemirdum/shareit-service/pkg/validate"
	"github.com/Astemirdum/shareit-service/server/internal/errs"
)

type Handler struct {
	userSvc    UserService
	itemSvc    ItemService
	bookingSvc BookingService
	requestSvc RequestService
	log        *zap.Logger
}

func New(userSvc UserService, itemSvc ItemService, bookingSvc BookingService, requestSvc RequestService, log *zap.Logger) *Handler {
	return &Handler{
		userSvc:    userSvc,
		itemSvc:    itemSvc,
		bookingSvc: bookingSvc,
		requestSvc: requestSvc,
		log:        log,
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

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrEmailExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
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

func pagination(c echo.Context) (from, size int, err error) {
	from, size = 0, 10
	if fromParam := c.QueryParam("from"); fromParam != "" {
		if from, err = strconv.Atoi(fromParam); err != nil || from < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size <= 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return from, size, nil
}
