// Package pricing computes cart totals. It is pure: callers supply the lines
// (with authoritative unit prices) and the attached promo, and get back a
// quote. All arithmetic is exact decimal, rounded to two places.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"scent-store-api/internal/model"
)

// Line is one cart line as seen by the pricing engine.
type Line struct {
	ItemKind  model.ItemKind
	ItemID    uint
	Name      string
	Size      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal is quantity times unit price for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Quote is the priced view of a cart at one instant.
type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal

	// PromoApplied is the promo that actually contributed to Discount;
	// nil when no promo is attached, the attached promo is invalid at
	// evaluation time, or it yields a zero discount (subtotal below its
	// minimum). An invalid promo is silently ignored, never an error.
	PromoApplied *model.PromoCode
}

// Compute prices the given lines under an optional promo. The identity
// Total = Subtotal - Discount always holds, and Total is never negative
// because the promo discount is clamped to the subtotal.
func Compute(lines []Line, promo *model.PromoCode, now time.Time) Quote {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	subtotal = subtotal.Round(2)

	q := Quote{
		Subtotal: subtotal,
		Discount: decimal.Zero,
		Total:    subtotal,
	}

	if promo == nil || promo.ValidateAt(now) != nil {
		return q
	}

	q.Discount = promo.DiscountFor(subtotal)
	q.Total = subtotal.Sub(q.Discount)
	if q.Discount.IsPositive() {
		q.PromoApplied = promo
	}
	return q
}
