package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"scent-store-api/internal/model"
	"scent-store-api/internal/pricing"
	"scent-store-api/internal/repository"
)

// ContactInfo is the buyer detail captured on the order.
type ContactInfo struct {
	Email           string
	FullName        string
	ShippingAddress string
	Phone           string
}

// CheckoutService converts a cart into an immutable order. Stock decrement,
// promo usage increment, order creation and cart clearing happen in one
// database transaction: a failure at any step leaves no visible effect.
type CheckoutService interface {
	Checkout(ctx context.Context, ownerKey string, contact ContactInfo) (*model.Order, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	promoRepo   repository.PromoRepository
	orderRepo   repository.OrderRepository
	now         func() time.Time
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	promoRepo repository.PromoRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		promoRepo:   promoRepo,
		orderRepo:   orderRepo,
		now:         time.Now,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, ownerKey string, contact ContactInfo) (*model.Order, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	now := s.now()
	var order *model.Order

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-resolve every line inside the transaction: cached cart
		// snapshots are never trusted for money-moving decisions.
		lines := make([]pricing.Line, 0, len(cart.Items))
		for _, item := range cart.Items {
			purchasable, err := s.catalogRepo.ResolveTx(ctx, tx, item.ItemKind, item.ItemID)
			if err != nil {
				return err
			}
			if purchasable.StockQuantity() < item.Quantity {
				return &model.InsufficientStockError{
					ItemName:  purchasable.DisplayName(),
					Available: purchasable.StockQuantity(),
					Requested: item.Quantity,
				}
			}
			lines = append(lines, pricing.Line{
				ItemKind:  item.ItemKind,
				ItemID:    item.ItemID,
				Name:      purchasable.DisplayName(),
				Size:      item.Size,
				UnitPrice: purchasable.UnitPrice(),
				Quantity:  item.Quantity,
			})
		}

		// Promo state is taken at this instant; a promo that went invalid
		// since attachment silently contributes nothing.
		quote := pricing.Compute(lines, cart.PromoCode, now)

		order = &model.Order{
			OrderNumber:     model.NewOrderNumber(now),
			OwnerKey:        ownerKey,
			Email:           contact.Email,
			FullName:        contact.FullName,
			ShippingAddress: contact.ShippingAddress,
			Phone:           contact.Phone,
			Status:          model.OrderStatusPending,
			SubtotalAmount:  quote.Subtotal,
			DiscountAmount:  quote.Discount,
			TotalAmount:     quote.Total,
		}
		if quote.PromoApplied != nil {
			order.PromoCodeUsed = quote.PromoApplied.Code
			order.PromoDiscountType = quote.PromoApplied.DiscountType
			order.PromoDiscountValue = quote.PromoApplied.DiscountValue
		}

		order.Items = make([]model.OrderItem, len(lines))
		for i, line := range lines {
			order.Items[i] = model.OrderItem{
				ItemKind:     line.ItemKind,
				ItemID:       line.ItemID,
				ProductName:  line.Name,
				ProductPrice: line.UnitPrice,
				Quantity:     line.Quantity,
				Size:         line.Size,
			}
		}

		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		for _, line := range lines {
			if err := s.catalogRepo.DecrementStock(ctx, tx, line.ItemKind, line.ItemID, line.Quantity); err != nil {
				return err
			}
		}

		// Usage is counted only after the order row exists, and the guarded
		// increment makes the last slot go to exactly one checkout.
		if quote.PromoApplied != nil {
			if err := s.promoRepo.IncrementUsage(ctx, tx, quote.PromoApplied.ID); err != nil {
				return err
			}
		}

		return s.cartRepo.Clear(ctx, tx, cart.ID)
	})

	if err != nil {
		return nil, err
	}
	return order, nil
}
