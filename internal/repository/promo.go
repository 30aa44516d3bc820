package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"scent-store-api/internal/model"
)

// PromoRepository is the persistence side of the promo-code ledger. Usage
// accounting goes through IncrementUsage so the limit check and the increment
// are one atomic statement.
type PromoRepository interface {
	Create(ctx context.Context, promo *model.PromoCode) error
	FindByCode(ctx context.Context, code string) (*model.PromoCode, error)
	IncrementUsage(ctx context.Context, tx *gorm.DB, promoID uint) error
}

type promoRepoImpl struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepoImpl{
		db: db,
	}
}

func (r *promoRepoImpl) Create(ctx context.Context, promo *model.PromoCode) error {
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))
	return r.db.WithContext(ctx).Create(promo).Error
}

// FindByCode matches case-insensitively: codes are stored uppercase and the
// lookup normalizes its input the same way.
func (r *promoRepoImpl) FindByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&promo).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInvalidPromoCode
		}
		return nil, err
	}

	return &promo, nil
}

// IncrementUsage bumps used_count by one, guarded by the usage limit in the
// WHERE clause. Two concurrent checkouts cannot both take the last slot:
// the loser sees RowsAffected == 0 and gets ErrPromoUsageLimitReached.
func (r *promoRepoImpl) IncrementUsage(ctx context.Context, tx *gorm.DB, promoID uint) error {
	result := tx.WithContext(ctx).Model(&model.PromoCode{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", promoID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrPromoUsageLimitReached
	}
	return nil
}
