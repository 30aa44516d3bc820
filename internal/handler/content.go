package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scent-store-api/internal/dto"
	"scent-store-api/internal/model"
	"scent-store-api/internal/service"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

func (h *ContentHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := h.contentService.ListReviews(ctx, c.Param("slug"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"average_rating": list.AverageRating,
		"review_count":   list.ReviewCount,
		"reviews":        list.Reviews,
	})
}

func (h *ContentHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ReviewerName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reviewer_name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := &model.Review{
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := h.contentService.CreateReview(ctx, c.Param("slug"), review); err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, review)
}

func (h *ContentHandler) ListBlogPosts(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.contentService.ListBlogPosts(ctx)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

func (h *ContentHandler) GetBlogPost(c echo.Context) error {
	ctx := c.Request().Context()

	post, err := h.contentService.GetBlogPost(ctx, c.Param("slug"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, post)
}
