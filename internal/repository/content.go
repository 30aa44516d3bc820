package repository

import (
	"context"
	"math"

	"gorm.io/gorm"

	"scent-store-api/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProduct(ctx context.Context, productID uint) ([]*model.Review, error)
	AverageByProduct(ctx context.Context, productID uint) (float64, int64, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepoImpl) ListByProduct(ctx context.Context, productID uint) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// AverageByProduct aggregates a product's rating, rounded to one decimal
// place. A product with no reviews averages 0.
func (r *reviewRepoImpl) AverageByProduct(ctx context.Context, productID uint) (float64, int64, error) {
	var agg struct {
		Average float64
		Total   int64
	}
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Scan(&agg).Error

	if err != nil {
		return 0, 0, err
	}

	return math.Round(agg.Average*10) / 10, agg.Total, nil
}

type BlogRepository interface {
	ListPublished(ctx context.Context) ([]*model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepoImpl{
		db: db,
	}
}

func (r *blogRepoImpl) ListPublished(ctx context.Context) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *blogRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error

	if err != nil {
		return nil, err
	}

	return &post, nil
}
