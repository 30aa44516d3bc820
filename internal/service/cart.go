package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"scent-store-api/internal/model"
	"scent-store-api/internal/pricing"
	"scent-store-api/internal/repository"
)

// CartService maintains the owner's cart lines and derives its priced view.
// Line prices shown in summaries are re-read from the catalog on every call;
// the snapshot stored on a line is display-only.
type CartService interface {
	GetCart(ctx context.Context, ownerKey string) (*CartView, error)
	AddItem(ctx context.Context, ownerKey string, kind model.ItemKind, itemID uint, quantity int, size string) (*CartView, error)
	UpdateItem(ctx context.Context, ownerKey string, lineID uint, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, ownerKey string, lineID uint) (*CartView, error)
	ApplyPromo(ctx context.Context, ownerKey, code string) (*CartView, error)
	PreviewPromo(ctx context.Context, ownerKey, code string) (*PromoPreview, error)
	RemovePromo(ctx context.Context, ownerKey string) (*CartView, error)
	Clear(ctx context.Context, ownerKey string) (*CartView, error)
}

// PromoPreview reports what a code would yield for the cart as priced right
// now, without attaching it. A subtotal below the code's minimum previews as
// a zero discount rather than an error.
type PromoPreview struct {
	Code               string
	DiscountType       model.DiscountType
	MinimumOrderAmount decimal.Decimal
	Subtotal           decimal.Decimal
	Discount           decimal.Decimal
	Total              decimal.Decimal
}

// CartView is a cart priced at one instant.
type CartView struct {
	Cart  *model.Cart
	Lines []pricing.Line
	Quote pricing.Quote
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	promoRepo   repository.PromoRepository
	now         func() time.Time
}

func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	promoRepo repository.PromoRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		promoRepo:   promoRepo,
		now:         time.Now,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, ownerKey string) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// view prices the cart with live catalog prices. Lines whose catalog entry
// has disappeared are skipped rather than failing the whole read.
func (s *cartServiceImpl) view(ctx context.Context, cart *model.Cart) (*CartView, error) {
	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		purchasable, err := s.catalogRepo.Resolve(ctx, item.ItemKind, item.ItemID)
		if err != nil {
			if errors.Is(err, model.ErrItemNotFound) {
				continue
			}
			return nil, err
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

	return &CartView{
		Cart:  cart,
		Lines: lines,
		Quote: pricing.Compute(lines, cart.PromoCode, s.now()),
	}, nil
}

// AddItem appends quantity to the (item, size) line, creating it with a
// name/price snapshot on first add. The cumulative quantity is checked
// against current stock; on failure the cart is unchanged.
func (s *cartServiceImpl) AddItem(ctx context.Context, ownerKey string, kind model.ItemKind, itemID uint, quantity int, size string) (*CartView, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	purchasable, err := s.catalogRepo.Resolve(ctx, kind, itemID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	if size == "" {
		size = "50ml"
	}

	existing, err := s.cartRepo.FindItem(ctx, cart.ID, kind, itemID, size)
	switch err {
	case nil:
		cumulative := existing.Quantity + quantity
		if purchasable.StockQuantity() < cumulative {
			return nil, &model.InsufficientStockError{
				ItemName:  purchasable.DisplayName(),
				Available: purchasable.StockQuantity(),
				Requested: cumulative,
			}
		}
		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, cumulative); err != nil {
			return nil, err
		}
	case model.ErrCartItemNotFound:
		if purchasable.StockQuantity() < quantity {
			return nil, &model.InsufficientStockError{
				ItemName:  purchasable.DisplayName(),
				Available: purchasable.StockQuantity(),
				Requested: quantity,
			}
		}
		item := &model.CartItem{
			CartID:        cart.ID,
			ItemKind:      kind,
			ItemID:        itemID,
			Size:          size,
			Quantity:      quantity,
			NameSnapshot:  purchasable.DisplayName(),
			PriceSnapshot: purchasable.UnitPrice(),
		}
		if err := s.cartRepo.CreateItem(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.reload(ctx, ownerKey)
}

// UpdateItem sets a line's quantity. Zero or negative deletes the line;
// positive values are re-validated against current stock.
func (s *cartServiceImpl) UpdateItem(ctx context.Context, ownerKey string, lineID uint, quantity int) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItemByID(ctx, cart.ID, lineID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return nil, err
		}
		return s.reload(ctx, ownerKey)
	}

	purchasable, err := s.catalogRepo.Resolve(ctx, item.ItemKind, item.ItemID)
	if err != nil {
		return nil, err
	}
	if purchasable.StockQuantity() < quantity {
		return nil, &model.InsufficientStockError{
			ItemName:  purchasable.DisplayName(),
			Available: purchasable.StockQuantity(),
			Requested: quantity,
		}
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return s.reload(ctx, ownerKey)
}

// RemoveItem deletes a line. Removing an id that is not in the cart returns
// ErrCartItemNotFound; nothing is mutated in that case.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, ownerKey string, lineID uint) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItemByID(ctx, cart.ID, lineID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}
	return s.reload(ctx, ownerKey)
}

// ApplyPromo validates and attaches a code, replacing any previous one.
// Validation order: code exists, ledger validity, cart minimum.
func (s *cartServiceImpl) ApplyPromo(ctx context.Context, ownerKey, code string) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	promo, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := promo.ValidateAt(s.now()); err != nil {
		return nil, err
	}

	view, err := s.view(ctx, cart)
	if err != nil {
		return nil, err
	}
	if view.Quote.Subtotal.LessThan(promo.MinimumOrderAmount) {
		return nil, &model.PromoMinimumNotMetError{Required: promo.MinimumOrderAmount}
	}

	if err := s.cartRepo.AttachPromo(ctx, cart.ID, promo.ID); err != nil {
		return nil, err
	}
	return s.reload(ctx, ownerKey)
}

// PreviewPromo runs the same code lookup and ledger validation as ApplyPromo
// but leaves the cart untouched.
func (s *cartServiceImpl) PreviewPromo(ctx context.Context, ownerKey, code string) (*PromoPreview, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	promo, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := promo.ValidateAt(s.now()); err != nil {
		return nil, err
	}

	view, err := s.view(ctx, cart)
	if err != nil {
		return nil, err
	}

	discount := promo.DiscountFor(view.Quote.Subtotal)
	return &PromoPreview{
		Code:               promo.Code,
		DiscountType:       promo.DiscountType,
		MinimumOrderAmount: promo.MinimumOrderAmount,
		Subtotal:           view.Quote.Subtotal,
		Discount:           discount,
		Total:              view.Quote.Subtotal.Sub(discount),
	}, nil
}

func (s *cartServiceImpl) RemovePromo(ctx context.Context, ownerKey string) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DetachPromo(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.reload(ctx, ownerKey)
}

func (s *cartServiceImpl) Clear(ctx context.Context, ownerKey string) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Clear(ctx, nil, cart.ID); err != nil {
		return nil, err
	}
	return s.reload(ctx, ownerKey)
}

func (s *cartServiceImpl) reload(ctx context.Context, ownerKey string) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}
