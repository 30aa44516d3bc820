package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scent-store-api/internal/dto"
	"scent-store-api/internal/middleware"
	"scent-store-api/internal/repository"
	"scent-store-api/internal/service"
)

type OrderHandler struct {
	checkoutService service.CheckoutService
	orderRepo       repository.OrderRepository
}

func NewOrderHandler(checkoutService service.CheckoutService, orderRepo repository.OrderRepository) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderRepo:       orderRepo,
	}
}

// Checkout converts the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Email == "" || req.FullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and full_name are required")
	}

	order, err := h.checkoutService.Checkout(ctx, middleware.OwnerKeyFrom(c), service.ContactInfo{
		Email:           req.Email,
		FullName:        req.FullName,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// GetOrder looks an order up by its order number. Anyone holding the number
// may view it, matching guest checkout semantics.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderRepo.FindByOrderNumber(ctx, c.Param("orderNumber"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// ListOrders returns the authenticated customer's order history.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderRepo.ListByOwner(ctx, middleware.OwnerKeyFrom(c))
	if err != nil {
		return mapDomainError(err)
	}

	resp := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = dto.NewOrderResponse(order)
	}
	return c.JSON(http.StatusOK, resp)
}
