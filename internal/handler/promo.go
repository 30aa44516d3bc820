package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"scent-store-api/internal/dto"
	"scent-store-api/internal/model"
	"scent-store-api/internal/service"
)

type PromoHandler struct {
	promoService service.PromoService
}

func NewPromoHandler(promoService service.PromoService) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

// CreatePromo is the operator endpoint for minting discount codes.
func (h *PromoHandler) CreatePromo(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePromoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	discountValue, err := decimal.NewFromString(req.DiscountValue)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid discount_value")
	}

	minimum := decimal.Zero
	if req.MinimumOrderAmount != "" {
		minimum, err = decimal.NewFromString(req.MinimumOrderAmount)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid minimum_order_amount")
		}
	}

	var maximum *decimal.Decimal
	if req.MaximumDiscountAmount != nil {
		m, err := decimal.NewFromString(*req.MaximumDiscountAmount)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid maximum_discount_amount")
		}
		maximum = &m
	}

	now := time.Now()
	validFrom := now
	if req.ValidFrom != nil {
		validFrom = *req.ValidFrom
	}
	validUntil := now.AddDate(0, 1, 0)
	if req.ValidUntil != nil {
		validUntil = *req.ValidUntil
	}

	promo := &model.PromoCode{
		Code:                  req.Code,
		Description:           req.Description,
		DiscountType:          model.DiscountType(req.DiscountType),
		DiscountValue:         discountValue,
		MinimumOrderAmount:    minimum,
		MaximumDiscountAmount: maximum,
		UsageLimit:            req.UsageLimit,
		IsActive:              true,
		ValidFrom:             validFrom,
		ValidUntil:            validUntil,
	}
	if err := h.promoService.CreatePromo(ctx, promo); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":   promo.ID,
		"code": promo.Code,
	})
}
