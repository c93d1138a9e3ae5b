package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/item-reviews/internal/core/ports"
)

// ItemHandler serves the read-only catalog.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /api/items.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Success      200  {array}   itemResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

// Get handles GET /api/items/:itemId.
//
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        itemId  path      string  true  "Item ID"
// @Success      200     {object}  itemResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/items/{itemId} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("itemId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}
