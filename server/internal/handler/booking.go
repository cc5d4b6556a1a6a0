package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	bookerID, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	booking, err := h.bookingSvc.CreateBooking(c.Request().Context(), bookerID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
	}
	booking, err := h.bookingSvc.ApproveBooking(c.Request().Context(), bookingID, ownerID, model.DecisionFromBool(approved))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookingSvc.GetBooking(c.Request().Context(), bookingID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookingsByBooker(c echo.Context) error {
	bookerID, err := callerID(c)
	if err != nil {
		return err
	}
	state, err := model.ParseBookingState(c.QueryParam("state"))
	if err != nil {
		return httpError(err)
	}
	from, size, err := pagination(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookingSvc.ListBookingsByBooker(c.Request().Context(), bookerID, state, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListBookingsByOwner(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	state, err := model.ParseBookingState(c.QueryParam("state"))
	if err != nil {
		return httpError(err)
	}
	from, size, err := pagination(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookingSvc.ListBookingsByOwner(c.Request().Context(), ownerID, state, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}
