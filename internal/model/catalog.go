package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind tags which catalog table a cart or order line refers to.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindDupe    ItemKind = "dupe"
)

// Purchasable is the capability every sellable catalog entry exposes to the
// cart and checkout flow. Product and DupeProduct both implement it.
type Purchasable interface {
	ItemRef() (ItemKind, uint)
	DisplayName() string
	UnitPrice() decimal.Decimal
	StockQuantity() int
}

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Slug        string          `gorm:"size:200;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"size:100;index"`

	// perfume, perfume_oil, air_ambience
	ProductType string `gorm:"size:20;index"`
	ScentFamily string `gorm:"size:20"`
	ScentNotes  string `gorm:"type:text"`
	SizeOptions string `gorm:"size:100;default:'50ml'"`

	Stock            int  `gorm:"not null;default:0"`
	IsFeatured       bool `gorm:"default:false"`
	IsNew            bool `gorm:"default:false"`
	IsBestSeller     bool `gorm:"default:false"`
	IsLimitedEdition bool `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) ItemRef() (ItemKind, uint)  { return ItemKindProduct, p.ID }
func (p *Product) DisplayName() string        { return p.Name }
func (p *Product) UnitPrice() decimal.Decimal { return p.Price }
func (p *Product) StockQuantity() int         { return p.Stock }

// Tag returns the display badge for a product, mirroring the storefront's
// precedence: limited edition > new > best seller > featured.
func (p *Product) Tag() string {
	switch {
	case p.IsLimitedEdition:
		return "Limited Edition"
	case p.IsNew:
		return "New"
	case p.IsBestSeller:
		return "Best Seller"
	case p.IsFeatured:
		return "Featured"
	}
	return ""
}

// DupeProduct is an in-house alternative to a designer fragrance. It shares
// cart and checkout semantics with Product but lives in its own table.
type DupeProduct struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Slug        string          `gorm:"size:200;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	DesignerBrand     string          `gorm:"size:100"`
	DesignerFragrance string          `gorm:"size:200"`
	DesignerPrice     decimal.Decimal `gorm:"type:decimal(10,2)"`

	SimilarityPercentage int    `gorm:"default:90"`
	ScentNotes           string `gorm:"type:text"`
	Longevity            string `gorm:"size:100;default:'6-8 hours'"`

	Stock      int  `gorm:"not null;default:0"`
	IsFeatured bool `gorm:"default:false"`
	IsActive   bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *DupeProduct) ItemRef() (ItemKind, uint)  { return ItemKindDupe, d.ID }
func (d *DupeProduct) DisplayName() string        { return d.Name }
func (d *DupeProduct) UnitPrice() decimal.Decimal { return d.Price }
func (d *DupeProduct) StockQuantity() int         { return d.Stock }

// Savings is the gap between the designer price and ours.
func (d *DupeProduct) Savings() decimal.Decimal {
	return d.DesignerPrice.Sub(d.Price)
}
