package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"scent-store-api/internal/model"
	"scent-store-api/internal/service"
)

// mapDomainError converts core errors into the HTTP taxonomy: validation
// failures are 400, lookups 404, credentials 401. Anything unrecognized
// bubbles up for echo's error handler to report as 500.
func mapDomainError(err error) error {
	var stockErr *model.InsufficientStockError
	var minErr *model.PromoMinimumNotMetError

	switch {
	case errors.As(err, &stockErr):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
			"error":     stockErr.Error(),
			"item":      stockErr.ItemName,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.As(err, &minErr):
		return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
			"error":    minErr.Error(),
			"required": minErr.Required.StringFixed(2),
		})
	case errors.Is(err, model.ErrEmptyCart),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidPromoCode),
		errors.Is(err, model.ErrPromoNotActive),
		errors.Is(err, model.ErrPromoNotYetValid),
		errors.Is(err, model.ErrPromoExpired),
		errors.Is(err, model.ErrPromoUsageLimitReached):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrCartItemNotFound),
		errors.Is(err, model.ErrItemNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return err
}
