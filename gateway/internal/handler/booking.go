package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit-service/gateway/internal/model"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := req.Validate(time.Now()); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.proxy(c, h.bookings, req)
}

func (h *Handler) GetBooking(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	return h.proxy(c, h.bookings, nil)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
	}
	return h.proxy(c, h.bookings, nil)
}

func (h *Handler) ListBookingsByBooker(c echo.Context) error {
	return h.listBookings(c)
}

func (h *Handler) ListBookingsByOwner(c echo.Context) error {
	return h.listBookings(c)
}

func (h *Handler) listBookings(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if err := model.ValidateBookingState(c.QueryParam("state")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validatePagination(c); err != nil {
		return err
	}
	return h.proxy(c, h.bookings, nil)
}
