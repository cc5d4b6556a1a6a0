package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit-service/gateway/internal/model"
)

func (h *Handler) CreateItem(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	var req model.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.proxy(c, h.items, req)
}

func (h *Handler) GetItem(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	return h.proxy(c, h.items, nil)
}

func (h *Handler) ListItems(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if err := validatePagination(c); err != nil {
		return err
	}
	return h.proxy(c, h.items, nil)
}

func (h *Handler) SearchItems(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if err := validatePagination(c); err != nil {
		return err
	}
	return h.proxy(c, h.items, nil)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.proxy(c, h.items, req)
}

func (h *Handler) DeleteItem(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	return h.proxy(c, h.items, nil)
}

func (h *Handler) CreateComment(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.proxy(c, h.items, req)
}
