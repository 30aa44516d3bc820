package service

import (
	"context"
	"fmt"

	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
)

type ContentService interface {
	CreateReview(ctx context.Context, productSlug string, review *model.Review) error
	ListReviews(ctx context.Context, productSlug string) (*ReviewList, error)
	ListBlogPosts(ctx context.Context) ([]*model.BlogPost, error)
	GetBlogPost(ctx context.Context, slug string) (*model.BlogPost, error)
}

// ReviewList is a product's reviews together with their rating aggregate.
type ReviewList struct {
	AverageRating float64
	ReviewCount   int64
	Reviews       []*model.Review
}

type contentServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	blogRepo    repository.BlogRepository
	catalogRepo repository.CatalogRepository
}

func NewContentService(
	reviewRepo repository.ReviewRepository,
	blogRepo repository.BlogRepository,
	catalogRepo repository.CatalogRepository,
) ContentService {
	return &contentServiceImpl{
		reviewRepo:  reviewRepo,
		blogRepo:    blogRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *contentServiceImpl) CreateReview(ctx context.Context, productSlug string, review *model.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	product, err := s.catalogRepo.FindProductBySlug(ctx, productSlug)
	if err != nil {
		return err
	}

	review.ProductID = product.ID
	return s.reviewRepo.Create(ctx, review)
}

func (s *contentServiceImpl) ListReviews(ctx context.Context, productSlug string) (*ReviewList, error) {
	product, err := s.catalogRepo.FindProductBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	average, count, err := s.reviewRepo.AverageByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	return &ReviewList{
		AverageRating: average,
		ReviewCount:   count,
		Reviews:       reviews,
	}, nil
}

func (s *contentServiceImpl) ListBlogPosts(ctx context.Context) ([]*model.BlogPost, error) {
	return s.blogRepo.ListPublished(ctx)
}

func (s *contentServiceImpl) GetBlogPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.blogRepo.FindBySlug(ctx, slug)
}
