package service

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"scent-store-api/internal/client"
	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
)

// newTestDB opens a throwaway sqlite database. _txlock=immediate makes
// concurrent checkout transactions queue on the write lock instead of
// deadlocking on a read-to-write upgrade.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))
	return db
}

type testEnv struct {
	db       *gorm.DB
	cart     CartService
	checkout CheckoutService

	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	promoRepo   repository.PromoRepository
	orderRepo   repository.OrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	return &testEnv{
		db:          db,
		cart:        NewCartService(cartRepo, catalogRepo, promoRepo),
		checkout:    NewCheckoutService(db, cartRepo, catalogRepo, promoRepo, orderRepo),
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		promoRepo:   promoRepo,
		orderRepo:   orderRepo,
	}
}

func (e *testEnv) createProduct(t *testing.T, name string, price float64, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:  name,
		Slug:  name,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) createDupe(t *testing.T, name string, price float64, stock int) *model.DupeProduct {
	t.Helper()

	dupe := &model.DupeProduct{
		Name:     name,
		Slug:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, e.db.Create(dupe).Error)
	return dupe
}

func (e *testEnv) createPromo(t *testing.T, promo *model.PromoCode) *model.PromoCode {
	t.Helper()

	if promo.ValidFrom.IsZero() {
		promo.ValidFrom = time.Now().Add(-time.Hour)
	}
	if promo.ValidUntil.IsZero() {
		promo.ValidUntil = time.Now().Add(24 * time.Hour)
	}
	require.NoError(t, e.db.Create(promo).Error)
	return promo
}

func (e *testEnv) productStock(t *testing.T, id uint) int {
	t.Helper()

	var product model.Product
	require.NoError(t, e.db.First(&product, id).Error)
	return product.Stock
}

func (e *testEnv) promoUsedCount(t *testing.T, id uint) int {
	t.Helper()

	var promo model.PromoCode
	require.NoError(t, e.db.First(&promo, id).Error)
	return promo.UsedCount
}
