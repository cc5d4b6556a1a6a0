package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit-service/gateway/internal/model"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.proxy(c, h.users, req)
}

func (h *Handler) GetUser(c echo.Context) error {
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	return h.proxy(c, h.users, nil)
}

func (h *Handler) ListUsers(c echo.Context) error {
	return h.proxy(c, h.users, nil)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	var req model.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.proxy(c, h.users, req)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if _, err := pathID(c, "id"); err != nil {
		return err
	}
	return h.proxy(c, h.users, nil)
}
