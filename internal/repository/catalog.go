package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"scent-store-api/internal/model"
)

// CatalogRepository resolves purchasable items across both catalog tables and
// owns the stock mutation at checkout.
type CatalogRepository interface {
	Resolve(ctx context.Context, kind model.ItemKind, id uint) (model.Purchasable, error)
	ResolveTx(ctx context.Context, tx *gorm.DB, kind model.ItemKind, id uint) (model.Purchasable, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, kind model.ItemKind, id uint, qty int) error

	ListProducts(ctx context.Context, category string) ([]*model.Product, error)
	FindProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListDupes(ctx context.Context) ([]*model.DupeProduct, error)
	FindDupeBySlug(ctx context.Context, slug string) (*model.DupeProduct, error)
}

type catalogRepoImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepoImpl{
		db: db,
	}
}

func (r *catalogRepoImpl) Resolve(ctx context.Context, kind model.ItemKind, id uint) (model.Purchasable, error) {
	return resolve(r.db.WithContext(ctx), kind, id)
}

// ResolveTx re-reads the item inside the checkout transaction. The read alone
// does not close the stock race; DecrementStock's guarded update does.
func (r *catalogRepoImpl) ResolveTx(ctx context.Context, tx *gorm.DB, kind model.ItemKind, id uint) (model.Purchasable, error) {
	return resolve(tx.WithContext(ctx), kind, id)
}

func resolve(db *gorm.DB, kind model.ItemKind, id uint) (model.Purchasable, error) {
	switch kind {
	case model.ItemKindProduct:
		var product model.Product
		if err := db.Where("id = ?", id).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, model.ErrItemNotFound
			}
			return nil, err
		}
		return &product, nil
	case model.ItemKindDupe:
		var dupe model.DupeProduct
		if err := db.Where("id = ?", id).First(&dupe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, model.ErrItemNotFound
			}
			return nil, err
		}
		return &dupe, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}

// DecrementStock performs a guarded decrement: the WHERE clause re-checks the
// available quantity so two concurrent checkouts can never both take the last
// unit. RowsAffected == 0 means the stock check failed.
func (r *catalogRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, kind model.ItemKind, id uint, qty int) error {
	var result *gorm.DB
	switch kind {
	case model.ItemKindProduct:
		result = tx.WithContext(ctx).Model(&model.Product{}).
			Where("id = ? AND stock >= ?", id, qty).
			UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	case model.ItemKindDupe:
		result = tx.WithContext(ctx).Model(&model.DupeProduct{}).
			Where("id = ? AND stock >= ?", id, qty).
			UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	default:
		return fmt.Errorf("unknown item kind %q", kind)
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		item, err := resolve(tx.WithContext(ctx), kind, id)
		if err != nil {
			return err
		}
		return &model.InsufficientStockError{
			ItemName:  item.DisplayName(),
			Available: item.StockQuantity(),
			Requested: qty,
		}
	}
	return nil
}

func (r *catalogRepoImpl) ListProducts(ctx context.Context, category string) ([]*model.Product, error) {
	var products []*model.Product
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepoImpl) FindProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&product).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrItemNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *catalogRepoImpl) ListDupes(ctx context.Context) ([]*model.DupeProduct, error) {
	var dupes []*model.DupeProduct
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_featured DESC, created_at DESC").
		Find(&dupes).Error

	if err != nil {
		return nil, err
	}

	return dupes, nil
}

func (r *catalogRepoImpl) FindDupeBySlug(ctx context.Context, slug string) (*model.DupeProduct, error) {
	var dupe model.DupeProduct
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&dupe).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrItemNotFound
		}
		return nil, err
	}

	return &dupe, nil
}
