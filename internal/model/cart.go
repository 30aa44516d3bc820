package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the mutable pre-purchase collection for one owner key. An owner key
// is opaque to this package: authenticated identities and guest session tokens
// both map to exactly one cart.
type Cart struct {
	ID       uint   `gorm:"primaryKey"`
	OwnerKey string `gorm:"size:80;uniqueIndex;not null"`

	PromoCodeID *uint
	PromoCode   *PromoCode `gorm:"foreignKey:PromoCodeID"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one (item, size) line. The name and price columns are display
// snapshots taken when the line was created; checkout always re-reads the
// catalog for authoritative values.
type CartItem struct {
	ID     uint `gorm:"primaryKey"`
	CartID uint `gorm:"index;uniqueIndex:idx_cart_line,priority:1;not null"`

	ItemKind ItemKind `gorm:"size:10;uniqueIndex:idx_cart_line,priority:2;not null"`
	ItemID   uint     `gorm:"uniqueIndex:idx_cart_line,priority:3;not null"`
	Size     string   `gorm:"size:20;uniqueIndex:idx_cart_line,priority:4;default:'50ml'"`

	Quantity      int             `gorm:"not null"`
	NameSnapshot  string          `gorm:"size:200"`
	PriceSnapshot decimal.Decimal `gorm:"type:decimal(10,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
