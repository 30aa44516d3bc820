package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
)

func newContentService(env *testEnv) ContentService {
	return NewContentService(
		repository.NewReviewRepository(env.db),
		repository.NewBlogRepository(env.db),
		env.catalogRepo,
	)
}

func TestReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("average rating over two reviews", func(t *testing.T) {
		env := newTestEnv(t)
		content := newContentService(env)
		env.createProduct(t, "noir", 50.00, 10)

		require.NoError(t, content.CreateReview(ctx, "noir", &model.Review{
			ReviewerName: "User 1", Rating: 5, Comment: "Excellent",
		}))
		require.NoError(t, content.CreateReview(ctx, "noir", &model.Review{
			ReviewerName: "User 2", Rating: 3, Comment: "Average",
		}))

		list, err := content.ListReviews(ctx, "noir")
		require.NoError(t, err)

		assert.Equal(t, 4.0, list.AverageRating)
		assert.Equal(t, int64(2), list.ReviewCount)
		assert.Len(t, list.Reviews, 2)
	})

	t.Run("average rounds to one decimal", func(t *testing.T) {
		env := newTestEnv(t)
		content := newContentService(env)
		env.createProduct(t, "noir", 50.00, 10)

		for _, rating := range []int{5, 4, 4} {
			require.NoError(t, content.CreateReview(ctx, "noir", &model.Review{
				ReviewerName: "User", Rating: rating,
			}))
		}

		list, err := content.ListReviews(ctx, "noir")
		require.NoError(t, err)
		assert.Equal(t, 4.3, list.AverageRating)
	})

	t.Run("no reviews averages zero", func(t *testing.T) {
		env := newTestEnv(t)
		content := newContentService(env)
		env.createProduct(t, "noir", 50.00, 10)

		list, err := content.ListReviews(ctx, "noir")
		require.NoError(t, err)

		assert.Equal(t, 0.0, list.AverageRating)
		assert.Equal(t, int64(0), list.ReviewCount)
		assert.Empty(t, list.Reviews)
	})

	t.Run("reviews are scoped to their product", func(t *testing.T) {
		env := newTestEnv(t)
		content := newContentService(env)
		env.createProduct(t, "noir", 50.00, 10)
		env.createProduct(t, "bloom", 40.00, 10)

		require.NoError(t, content.CreateReview(ctx, "noir", &model.Review{
			ReviewerName: "User 1", Rating: 5,
		}))
		require.NoError(t, content.CreateReview(ctx, "bloom", &model.Review{
			ReviewerName: "User 2", Rating: 1,
		}))

		list, err := content.ListReviews(ctx, "noir")
		require.NoError(t, err)
		assert.Equal(t, 5.0, list.AverageRating)
		assert.Equal(t, int64(1), list.ReviewCount)
	})

	t.Run("rating outside 1-5 is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		content := newContentService(env)
		env.createProduct(t, "noir", 50.00, 10)

		err := content.CreateReview(ctx, "noir", &model.Review{
			ReviewerName: "User", Rating: 6,
		})
		assert.Error(t, err)
	})

	t.Run("unknown product", func(t *testing.T) {
		env := newTestEnv(t)
		content := newContentService(env)

		_, err := content.ListReviews(ctx, "ghost")
		assert.ErrorIs(t, err, model.ErrItemNotFound)
	})
}
