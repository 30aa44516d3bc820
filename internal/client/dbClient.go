package client

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"scent-store-api/internal/config"
	"scent-store-api/internal/model"
)

// InitDBClient opens MySQL when a database URL is configured, otherwise a
// local sqlite file, and migrates the schema.
func InitDBClient(cfg config.Database) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.URL != "" {
		db, err = gorm.Open(mysql.Open(cfg.URL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

// Migrate creates or updates the schema for every stored model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.DupeProduct{},
		&model.PromoCode{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.BlogPost{},
		&model.Customer{},
	)
}
