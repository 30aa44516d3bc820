package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scent-store-api/internal/model"
)

// SeedSampleData loads a development catalog and a couple of promo codes.
// Inserts are idempotent: existing rows are left alone.
func SeedSampleData(db *gorm.DB) error {
	products := []model.Product{
		{
			Name: "Midnight Oud", Slug: "midnight-oud",
			Description: "Deep woody oud with amber undertones",
			Price:       decimal.NewFromFloat(85.00), Category: "perfume",
			ProductType: "perfume", ScentFamily: "woody",
			ScentNotes: "Top: bergamot. Heart: oud, rose. Base: amber, musk",
			Stock:      25, IsFeatured: true,
		},
		{
			Name: "Citrus Bloom", Slug: "citrus-bloom",
			Description: "Bright citrus opening over white florals",
			Price:       decimal.NewFromFloat(50.00), Category: "perfume",
			ProductType: "perfume", ScentFamily: "citrus",
			ScentNotes: "Top: grapefruit, mandarin. Heart: neroli. Base: cedar",
			Stock:      40, IsNew: true,
		},
		{
			Name: "Velvet Santal", Slug: "velvet-santal",
			Description: "Creamy sandalwood perfume oil",
			Price:       decimal.NewFromFloat(35.00), Category: "perfume_oil",
			ProductType: "perfume_oil", ScentFamily: "woody",
			Stock: 60, IsBestSeller: true,
		},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
		return err
	}

	dupes := []model.DupeProduct{
		{
			Name: "Mademoiselle No. 9", Slug: "mademoiselle-no-9",
			Description:   "Our take on a modern chypre icon",
			Price:         decimal.NewFromFloat(28.00),
			DesignerBrand: "Chanel", DesignerFragrance: "Coco Mademoiselle",
			DesignerPrice:        decimal.NewFromFloat(150.00),
			SimilarityPercentage: 92,
			ScentNotes:           "Top: orange. Heart: jasmine, rose. Base: patchouli",
			Stock:                30, IsFeatured: true, IsActive: true,
		},
		{
			Name: "Sauvage Heir", Slug: "sauvage-heir",
			Description:   "Fresh spicy alternative with ambroxan drydown",
			Price:         decimal.NewFromFloat(25.00),
			DesignerBrand: "Dior", DesignerFragrance: "Sauvage",
			DesignerPrice:        decimal.NewFromFloat(115.00),
			SimilarityPercentage: 90,
			Stock:                45, IsActive: true,
		},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dupes).Error; err != nil {
		return err
	}

	now := time.Now()
	welcomeLimit := 100
	welcomeMax := decimal.NewFromFloat(20.00)
	save20Limit := 50
	save20Max := decimal.NewFromFloat(50.00)
	promos := []model.PromoCode{
		{
			Code: "WELCOME10", Description: "Welcome discount - 10% off your first order",
			DiscountType: model.DiscountPercentage, DiscountValue: decimal.NewFromInt(10),
			MinimumOrderAmount:    decimal.NewFromInt(50),
			MaximumDiscountAmount: &welcomeMax,
			UsageLimit:            &welcomeLimit,
			IsActive:              true,
			ValidFrom:             now, ValidUntil: now.AddDate(0, 1, 0),
		},
		{
			Code: "SAVE20", Description: "20% off orders over 100",
			DiscountType: model.DiscountPercentage, DiscountValue: decimal.NewFromInt(20),
			MinimumOrderAmount:    decimal.NewFromInt(100),
			MaximumDiscountAmount: &save20Max,
			UsageLimit:            &save20Limit,
			IsActive:              true,
			ValidFrom:             now, ValidUntil: now.AddDate(0, 2, 0),
		},
		{
			Code: "FLAT15", Description: "15 off any order over 30",
			DiscountType: model.DiscountFixed, DiscountValue: decimal.NewFromInt(15),
			MinimumOrderAmount: decimal.NewFromInt(30),
			IsActive:           true,
			ValidFrom:          now, ValidUntil: now.AddDate(0, 3, 0),
		},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&promos).Error
}
