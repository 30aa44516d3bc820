package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// All failures below are expected and recoverable: they surface to the HTTP
// layer unchanged and must leave persistent state untouched.
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrItemNotFound     = errors.New("catalog item not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidPromoCode       = errors.New("invalid promo code")
	ErrPromoNotActive         = errors.New("promo code is not active")
	ErrPromoNotYetValid       = errors.New("promo code is not yet valid")
	ErrPromoExpired           = errors.New("promo code has expired")
	ErrPromoUsageLimitReached = errors.New("promo code usage limit reached")
)

// InsufficientStockError reports a stock shortfall for one catalog item.
type InsufficientStockError struct {
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ItemName, e.Available, e.Requested)
}

// PromoMinimumNotMetError reports that the cart subtotal is below a promo
// code's minimum order amount.
type PromoMinimumNotMetError struct {
	Required decimal.Decimal
}

func (e *PromoMinimumNotMetError) Error() string {
	return fmt.Sprintf("order subtotal below promo minimum of %s", e.Required.StringFixed(2))
}
