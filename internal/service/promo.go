package service

import (
	"context"
	"fmt"

	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
)

// PromoService covers operator-side promo administration. Application of a
// code to a cart lives on CartService; usage accounting on CheckoutService.
type PromoService interface {
	CreatePromo(ctx context.Context, promo *model.PromoCode) error
}

type promoServiceImpl struct {
	promoRepo repository.PromoRepository
}

func NewPromoService(promoRepo repository.PromoRepository) PromoService {
	return &promoServiceImpl{
		promoRepo: promoRepo,
	}
}

func (s *promoServiceImpl) CreatePromo(ctx context.Context, promo *model.PromoCode) error {
	if promo.Code == "" {
		return fmt.Errorf("promo code is required")
	}
	if promo.DiscountType != model.DiscountPercentage && promo.DiscountType != model.DiscountFixed {
		return fmt.Errorf("discount type must be percentage or fixed")
	}
	if !promo.DiscountValue.IsPositive() {
		return fmt.Errorf("discount value must be positive")
	}
	if promo.UsageLimit != nil && *promo.UsageLimit <= 0 {
		return fmt.Errorf("usage limit must be positive when set")
	}
	if !promo.ValidUntil.After(promo.ValidFrom) {
		return fmt.Errorf("valid_until must be after valid_from")
	}

	return s.promoRepo.Create(ctx, promo)
}
