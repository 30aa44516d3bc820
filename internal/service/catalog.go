package service

import (
	"context"

	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
)

type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]*model.Product, error)
	GetProduct(ctx context.Context, slug string) (*model.Product, error)
	ListDupes(ctx context.Context) ([]*model.DupeProduct, error)
	GetDupe(ctx context.Context, slug string) (*model.DupeProduct, error)
}

type catalogServiceImpl struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, category string) ([]*model.Product, error) {
	return s.catalogRepo.ListProducts(ctx, category)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	return s.catalogRepo.FindProductBySlug(ctx, slug)
}

func (s *catalogServiceImpl) ListDupes(ctx context.Context) ([]*model.DupeProduct, error) {
	return s.catalogRepo.ListDupes(ctx)
}

func (s *catalogServiceImpl) GetDupe(ctx context.Context, slug string) (*model.DupeProduct, error) {
	return s.catalogRepo.FindDupeBySlug(ctx, slug)
}
