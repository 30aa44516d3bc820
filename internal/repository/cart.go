package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scent-store-api/internal/model"
)

// CartRepository stores one cart per owner key. Mutations that participate in
// checkout take an explicit tx so the service layer controls atomicity.
type CartRepository interface {
	GetOrCreate(ctx context.Context, ownerKey string) (*model.Cart, error)
	Get(ctx context.Context, ownerKey string) (*model.Cart, error)

	FindItem(ctx context.Context, cartID uint, kind model.ItemKind, itemID uint, size string) (*model.CartItem, error)
	FindItemByID(ctx context.Context, cartID, itemID uint) (*model.CartItem, error)
	CreateItem(ctx context.Context, item *model.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, itemID uint) error

	AttachPromo(ctx context.Context, cartID, promoID uint) error
	DetachPromo(ctx context.Context, cartID uint) error

	Clear(ctx context.Context, tx *gorm.DB, cartID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// GetOrCreate lazily creates the owner's cart on first interaction. Items and
// the attached promo are preloaded.
func (r *cartRepoImpl) GetOrCreate(ctx context.Context, ownerKey string) (*model.Cart, error) {
	cart, err := r.Get(ctx, ownerKey)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &model.Cart{OwnerKey: ownerKey}
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepoImpl) Get(ctx context.Context, ownerKey string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("PromoCode").
		Where("owner_key = ?", ownerKey).
		First(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) FindItem(ctx context.Context, cartID uint, kind model.ItemKind, itemID uint, size string) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND item_kind = ? AND item_id = ? AND size = ?", cartID, kind, itemID, size).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCartItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) FindItemByID(ctx context.Context, cartID, itemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCartItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) CreateItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity", quantity).Error
}

func (r *cartRepoImpl) DeleteItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, itemID).Error
}

func (r *cartRepoImpl) AttachPromo(ctx context.Context, cartID, promoID uint) error {
	return r.db.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		UpdateColumn("promo_code_id", promoID).Error
}

func (r *cartRepoImpl) DetachPromo(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		UpdateColumn("promo_code_id", nil).Error
}

// Clear empties the cart and detaches its promo. Runs inside the checkout
// transaction when tx is non-nil.
func (r *cartRepoImpl) Clear(ctx context.Context, tx *gorm.DB, cartID uint) error {
	db := tx
	if db == nil {
		db = r.db
	}

	if err := db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&model.Cart{}).
		Where("id = ?", cartID).
		UpdateColumn("promo_code_id", nil).Error
}
