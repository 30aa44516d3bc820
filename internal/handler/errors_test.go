package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"scent-store-api/internal/model"
	"scent-store-api/internal/service"
)

func httpStatus(t *testing.T, err error) int {
	t.Helper()

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr.Code
}

func TestMapDomainError(t *testing.T) {
	t.Run("validation failures are 400", func(t *testing.T) {
		for _, err := range []error{
			model.ErrEmptyCart,
			model.ErrInvalidQuantity,
			model.ErrInvalidPromoCode,
			model.ErrPromoExpired,
			model.ErrPromoUsageLimitReached,
			&model.InsufficientStockError{ItemName: "noir", Available: 1, Requested: 2},
		} {
			assert.Equal(t, http.StatusBadRequest, httpStatus(t, mapDomainError(err)))
		}
	})

	t.Run("lookups are 404", func(t *testing.T) {
		for _, err := range []error{
			model.ErrCartItemNotFound,
			model.ErrItemNotFound,
			model.ErrOrderNotFound,
			gorm.ErrRecordNotFound,
		} {
			assert.Equal(t, http.StatusNotFound, httpStatus(t, mapDomainError(err)))
		}
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, httpStatus(t, mapDomainError(service.ErrBadCredentials)))
	})

	// an unrecognized failure must surface as-is, not hide behind a 404
	t.Run("unknown errors pass through", func(t *testing.T) {
		dbErr := errors.New("database is on fire")
		assert.Same(t, dbErr, mapDomainError(dbErr))
	})
}
