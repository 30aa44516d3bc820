package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
	"scent-store-api/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	reviewRepo     repository.ReviewRepository
}

func NewCatalogHandler(catalogService service.CatalogService, reviewRepo repository.ReviewRepository) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		reviewRepo:     reviewRepo,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListProducts(ctx, c.QueryParam("category"))
	if err != nil {
		return mapDomainError(err)
	}

	resp := make([]map[string]interface{}, len(products))
	for i, p := range products {
		resp[i] = productJSON(p)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProduct(ctx, c.Param("slug"))
	if err != nil {
		return mapDomainError(err)
	}

	average, count, err := h.reviewRepo.AverageByProduct(ctx, product.ID)
	if err != nil {
		return mapDomainError(err)
	}

	resp := productJSON(product)
	resp["average_rating"] = average
	resp["review_count"] = count
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListDupes(c echo.Context) error {
	ctx := c.Request().Context()

	dupes, err := h.catalogService.ListDupes(ctx)
	if err != nil {
		return mapDomainError(err)
	}

	resp := make([]map[string]interface{}, len(dupes))
	for i, d := range dupes {
		resp[i] = dupeJSON(d)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetDupe(c echo.Context) error {
	ctx := c.Request().Context()

	dupe, err := h.catalogService.GetDupe(ctx, c.Param("slug"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dupeJSON(dupe))
}

func productJSON(p *model.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":           p.ID,
		"name":         p.Name,
		"slug":         p.Slug,
		"description":  p.Description,
		"price":        p.Price.StringFixed(2),
		"category":     p.Category,
		"product_type": p.ProductType,
		"scent_family": p.ScentFamily,
		"scent_notes":  p.ScentNotes,
		"size_options": p.SizeOptions,
		"stock":        p.Stock,
		"tag":          p.Tag(),
	}
}

func dupeJSON(d *model.DupeProduct) map[string]interface{} {
	return map[string]interface{}{
		"id":                    d.ID,
		"name":                  d.Name,
		"slug":                  d.Slug,
		"description":           d.Description,
		"price":                 d.Price.StringFixed(2),
		"designer_brand":        d.DesignerBrand,
		"designer_fragrance":    d.DesignerFragrance,
		"designer_price":        d.DesignerPrice.StringFixed(2),
		"similarity_percentage": d.SimilarityPercentage,
		"scent_notes":           d.ScentNotes,
		"longevity":             d.Longevity,
		"stock":                 d.Stock,
		"savings":               d.Savings().StringFixed(2),
	}
}
