package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"scent-store-api/internal/dto"
	"scent-store-api/internal/middleware"
	"scent-store-api/internal/model"
	"scent-store-api/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.cartService.GetCart(ctx, middleware.OwnerKeyFrom(c))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	kind := model.ItemKind(req.ItemKind)
	if kind == "" {
		kind = model.ItemKindProduct
	}

	view, err := h.cartService.AddItem(ctx, middleware.OwnerKeyFrom(c), kind, req.ItemID, req.Quantity, req.Size)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, dto.NewCartResponse(view))
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	view, err := h.cartService.UpdateItem(ctx, middleware.OwnerKeyFrom(c), uint(lineID), req.Quantity)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	view, err := h.cartService.RemoveItem(ctx, middleware.OwnerKeyFrom(c), uint(lineID))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.cartService.Clear(ctx, middleware.OwnerKeyFrom(c))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

func (h *CartHandler) ApplyPromo(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ApplyPromoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	view, err := h.cartService.ApplyPromo(ctx, middleware.OwnerKeyFrom(c), req.Code)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

// PreviewPromo reports the discount a code would yield for the caller's cart
// without attaching it.
func (h *CartHandler) PreviewPromo(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ApplyPromoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	preview, err := h.cartService.PreviewPromo(ctx, middleware.OwnerKeyFrom(c), req.Code)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewPromoPreviewResponse(preview))
}

func (h *CartHandler) RemovePromo(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.cartService.RemovePromo(ctx, middleware.OwnerKeyFrom(c))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(view))
}
