package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scent-store-api/internal/model"
)

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line with snapshot", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)

		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)

		require.Len(t, view.Cart.Items, 1)
		assert.Equal(t, 2, view.Cart.Items[0].Quantity)
		assert.Equal(t, "noir", view.Cart.Items[0].NameSnapshot)
		assert.Equal(t, "100.00", view.Quote.Subtotal.StringFixed(2))
	})

	t.Run("re-adding same item and size increments quantity", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)
		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 3, "50ml")
		require.NoError(t, err)

		require.Len(t, view.Cart.Items, 1)
		assert.Equal(t, 5, view.Cart.Items[0].Quantity)
	})

	t.Run("same item in a different size is a separate line", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 1, "50ml")
		require.NoError(t, err)
		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 1, "100ml")
		require.NoError(t, err)

		assert.Len(t, view.Cart.Items, 2)
	})

	t.Run("dupe products share cart semantics", func(t *testing.T) {
		env := newTestEnv(t)
		dupe := env.createDupe(t, "heir", 25.00, 5)

		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindDupe, dupe.ID, 2, "50ml")
		require.NoError(t, err)

		assert.Equal(t, "50.00", view.Quote.Subtotal.StringFixed(2))
	})

	t.Run("insufficient stock leaves cart unchanged", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 3)

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 20, "50ml")
		var stockErr *model.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.Available)
		assert.Equal(t, 20, stockErr.Requested)

		view, err := env.cart.GetCart(ctx, "session:a")
		require.NoError(t, err)
		assert.Empty(t, view.Cart.Items)
	})

	t.Run("cumulative quantity is checked against stock", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 3)

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)
		_, err = env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		var stockErr *model.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 4, stockErr.Requested)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 3)

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 0, "50ml")
		assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	})

	t.Run("unknown item", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, 999, 1, "50ml")
		assert.ErrorIs(t, err, model.ErrItemNotFound)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("zero quantity removes the line", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)

		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)
		lineID := view.Cart.Items[0].ID

		view, err = env.cart.UpdateItem(ctx, "session:a", lineID, 0)
		require.NoError(t, err)
		assert.Empty(t, view.Cart.Items)
		assert.Equal(t, 0, view.Cart.ItemCount())
	})

	t.Run("positive quantity re-validates stock", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 3)

		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)
		lineID := view.Cart.Items[0].ID

		_, err = env.cart.UpdateItem(ctx, "session:a", lineID, 10)
		var stockErr *model.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)

		view, err = env.cart.GetCart(ctx, "session:a")
		require.NoError(t, err)
		assert.Equal(t, 2, view.Cart.Items[0].Quantity)
	})

	t.Run("unknown line", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.cart.UpdateItem(ctx, "session:a", 42, 1)
		assert.ErrorIs(t, err, model.ErrCartItemNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	product := env.createProduct(t, "noir", 50.00, 10)

	view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
	require.NoError(t, err)
	lineID := view.Cart.Items[0].ID

	view, err = env.cart.RemoveItem(ctx, "session:a", lineID)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)

	// removing the same line again reports not found
	_, err = env.cart.RemoveItem(ctx, "session:a", lineID)
	assert.ErrorIs(t, err, model.ErrCartItemNotFound)
}

func TestApplyPromo(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches a valid code case-insensitively", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)
		env.createPromo(t, &model.PromoCode{
			Code: "SAVE20", DiscountType: model.DiscountFixed,
			DiscountValue:      decimal.NewFromInt(20),
			MinimumOrderAmount: decimal.NewFromInt(50),
			IsActive:           true,
		})

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)

		view, err := env.cart.ApplyPromo(ctx, "session:a", "save20")
		require.NoError(t, err)

		assert.Equal(t, "SAVE20", view.Cart.PromoCode.Code)
		assert.Equal(t, "20.00", view.Quote.Discount.StringFixed(2))
		assert.Equal(t, "80.00", view.Quote.Total.StringFixed(2))
	})

	t.Run("unknown code", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.cart.ApplyPromo(ctx, "session:a", "NOPE")
		assert.ErrorIs(t, err, model.ErrInvalidPromoCode)
	})

	t.Run("expired code", func(t *testing.T) {
		env := newTestEnv(t)
		env.createPromo(t, &model.PromoCode{
			Code: "OLD", DiscountType: model.DiscountFixed,
			DiscountValue: decimal.NewFromInt(5),
			IsActive:      true,
			ValidFrom:     time.Now().Add(-48 * time.Hour),
			ValidUntil:    time.Now().Add(-24 * time.Hour),
		})

		_, err := env.cart.ApplyPromo(ctx, "session:a", "OLD")
		assert.ErrorIs(t, err, model.ErrPromoExpired)
	})

	t.Run("minimum not met", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 30.00, 10)
		env.createPromo(t, &model.PromoCode{
			Code: "BIG", DiscountType: model.DiscountFixed,
			DiscountValue:      decimal.NewFromInt(20),
			MinimumOrderAmount: decimal.NewFromInt(50),
			IsActive:           true,
		})

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 1, "50ml")
		require.NoError(t, err)

		_, err = env.cart.ApplyPromo(ctx, "session:a", "BIG")
		var minErr *model.PromoMinimumNotMetError
		require.ErrorAs(t, err, &minErr)
		assert.Equal(t, "50.00", minErr.Required.StringFixed(2))
	})

	t.Run("applying a second code replaces the first", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)
		env.createPromo(t, &model.PromoCode{
			Code: "FIRST", DiscountType: model.DiscountFixed,
			DiscountValue: decimal.NewFromInt(5), IsActive: true,
		})
		env.createPromo(t, &model.PromoCode{
			Code: "SECOND", DiscountType: model.DiscountFixed,
			DiscountValue: decimal.NewFromInt(10), IsActive: true,
		})

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 1, "50ml")
		require.NoError(t, err)
		_, err = env.cart.ApplyPromo(ctx, "session:a", "FIRST")
		require.NoError(t, err)
		view, err := env.cart.ApplyPromo(ctx, "session:a", "SECOND")
		require.NoError(t, err)

		assert.Equal(t, "SECOND", view.Cart.PromoCode.Code)
		assert.Equal(t, "10.00", view.Quote.Discount.StringFixed(2))
	})

	t.Run("promo expiring after attachment silently stops discounting", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)
		promo := env.createPromo(t, &model.PromoCode{
			Code: "SOON", DiscountType: model.DiscountFixed,
			DiscountValue: decimal.NewFromInt(10), IsActive: true,
		})

		view, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)
		require.NoError(t, env.cartRepo.AttachPromo(ctx, view.Cart.ID, promo.ID))

		// expire it behind the cart's back
		require.NoError(t, env.db.Model(promo).
			UpdateColumn("valid_until", time.Now().Add(-time.Minute)).Error)

		view, err = env.cart.GetCart(ctx, "session:a")
		require.NoError(t, err)
		assert.Equal(t, "0.00", view.Quote.Discount.StringFixed(2))
		assert.Equal(t, "100.00", view.Quote.Total.StringFixed(2))
	})
}

func TestPreviewPromo(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the discount without attaching the code", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 50.00, 10)
		env.createPromo(t, &model.PromoCode{
			Code: "SAVE20", DiscountType: model.DiscountFixed,
			DiscountValue:      decimal.NewFromInt(20),
			MinimumOrderAmount: decimal.NewFromInt(50),
			IsActive:           true,
		})

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
		require.NoError(t, err)

		preview, err := env.cart.PreviewPromo(ctx, "session:a", "save20")
		require.NoError(t, err)

		assert.Equal(t, "SAVE20", preview.Code)
		assert.Equal(t, "100.00", preview.Subtotal.StringFixed(2))
		assert.Equal(t, "20.00", preview.Discount.StringFixed(2))
		assert.Equal(t, "80.00", preview.Total.StringFixed(2))

		view, err := env.cart.GetCart(ctx, "session:a")
		require.NoError(t, err)
		assert.Nil(t, view.Cart.PromoCode)
		assert.Equal(t, "0.00", view.Quote.Discount.StringFixed(2))
	})

	t.Run("below minimum previews a zero discount", func(t *testing.T) {
		env := newTestEnv(t)
		product := env.createProduct(t, "noir", 30.00, 10)
		env.createPromo(t, &model.PromoCode{
			Code: "BIG", DiscountType: model.DiscountFixed,
			DiscountValue:      decimal.NewFromInt(20),
			MinimumOrderAmount: decimal.NewFromInt(50),
			IsActive:           true,
		})

		_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 1, "50ml")
		require.NoError(t, err)

		preview, err := env.cart.PreviewPromo(ctx, "session:a", "BIG")
		require.NoError(t, err)

		assert.Equal(t, "0.00", preview.Discount.StringFixed(2))
		assert.Equal(t, "30.00", preview.Total.StringFixed(2))
		assert.Equal(t, "50.00", preview.MinimumOrderAmount.StringFixed(2))
	})

	t.Run("invalid codes still error", func(t *testing.T) {
		env := newTestEnv(t)
		env.createPromo(t, &model.PromoCode{
			Code: "OLD", DiscountType: model.DiscountFixed,
			DiscountValue: decimal.NewFromInt(5),
			IsActive:      true,
			ValidFrom:     time.Now().Add(-48 * time.Hour),
			ValidUntil:    time.Now().Add(-24 * time.Hour),
		})

		_, err := env.cart.PreviewPromo(ctx, "session:a", "OLD")
		assert.ErrorIs(t, err, model.ErrPromoExpired)

		_, err = env.cart.PreviewPromo(ctx, "session:a", "NOPE")
		assert.ErrorIs(t, err, model.ErrInvalidPromoCode)
	})
}

func TestRemovePromoAndClear(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	product := env.createProduct(t, "noir", 50.00, 10)
	env.createPromo(t, &model.PromoCode{
		Code: "TEN", DiscountType: model.DiscountFixed,
		DiscountValue: decimal.NewFromInt(10), IsActive: true,
	})

	_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 2, "50ml")
	require.NoError(t, err)
	_, err = env.cart.ApplyPromo(ctx, "session:a", "TEN")
	require.NoError(t, err)

	view, err := env.cart.RemovePromo(ctx, "session:a")
	require.NoError(t, err)
	assert.Nil(t, view.Cart.PromoCode)
	assert.Equal(t, "0.00", view.Quote.Discount.StringFixed(2))

	view, err = env.cart.Clear(ctx, "session:a")
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
}

func TestGetTotalIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	product := env.createProduct(t, "noir", 19.99, 10)

	_, err := env.cart.AddItem(ctx, "session:a", model.ItemKindProduct, product.ID, 3, "50ml")
	require.NoError(t, err)

	first, err := env.cart.GetCart(ctx, "session:a")
	require.NoError(t, err)
	second, err := env.cart.GetCart(ctx, "session:a")
	require.NoError(t, err)

	assert.True(t, first.Quote.Total.Equal(second.Quote.Total))
}
