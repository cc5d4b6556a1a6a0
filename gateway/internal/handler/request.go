package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit-service/gateway/internal/model"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	var req model.NewItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.proxy(c, h.requests, req)
}

func (h *Handler) GetRequest(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	return h.proxy(c, h.requests, nil)
}

func (h *Handler) ListOwnRequests(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	return h.proxy(c, h.requests, nil)
}

func (h *Handler) ListOtherRequests(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if err := validatePagination(c); err != nil {
		return err
	}
	return h.proxy(c, h.requests, nil)
}
