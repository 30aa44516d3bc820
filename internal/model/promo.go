package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type PromoCode struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:50;uniqueIndex;not null"` // stored uppercase
	Description string `gorm:"size:200"`

	DiscountType  DiscountType    `gorm:"size:20;not null"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	MinimumOrderAmount    decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	MaximumDiscountAmount *decimal.Decimal `gorm:"type:decimal(10,2)"`

	UsageLimit *int
	UsedCount  int `gorm:"not null;default:0"`

	IsActive   bool      `gorm:"not null;default:true"`
	ValidFrom  time.Time `gorm:"not null"`
	ValidUntil time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateAt reports whether the code may be applied at the given instant.
// The first failing check wins: active, window start, window end, usage limit.
func (p *PromoCode) ValidateAt(now time.Time) error {
	if !p.IsActive {
		return ErrPromoNotActive
	}
	if now.Before(p.ValidFrom) {
		return ErrPromoNotYetValid
	}
	if now.After(p.ValidUntil) {
		return ErrPromoExpired
	}
	if p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit {
		return ErrPromoUsageLimitReached
	}
	return nil
}

// DiscountFor computes the discount this code yields for a given subtotal.
// Returns zero when the subtotal is below the minimum order amount. The
// result is capped at MaximumDiscountAmount when set, and never exceeds the
// subtotal itself. Rounded to two decimal places.
func (p *PromoCode) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThan(p.MinimumOrderAmount) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch p.DiscountType {
	case DiscountPercentage:
		discount = subtotal.Mul(p.DiscountValue).Div(decimal.NewFromInt(100))
	case DiscountFixed:
		discount = p.DiscountValue
	default:
		return decimal.Zero
	}

	if p.MaximumDiscountAmount != nil && discount.GreaterThan(*p.MaximumDiscountAmount) {
		discount = *p.MaximumDiscountAmount
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return discount.Round(2)
}
