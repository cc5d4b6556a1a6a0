package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (h *Handler) CreateItem(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	item, err := h.itemSvc.CreateItem(c.Request().Context(), ownerID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.itemSvc.UpdateItem(c.Request().Context(), itemID, userID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) GetItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.itemSvc.GetItem(c.Request().Context(), itemID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) ListItems(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	from, size, err := pagination(c)
	if err != nil {
		return err
	}
	items, err := h.itemSvc.ListItems(c.Request().Context(), ownerID, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SearchItems(c echo.Context) error {
	from, size, err := pagination(c)
	if err != nil {
		return err
	}
	items, err := h.itemSvc.SearchItems(c.Request().Context(), c.QueryParam("text"), from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteItem(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.itemSvc.DeleteItem(c.Request().Context(), itemID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) CreateComment(c echo.Context) error {
	authorID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	comment, err := h.itemSvc.CreateComment(c.Request().Context(), itemID, authorID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}
