package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is an immutable purchase snapshot. Every monetary and promo field is
// copied at creation time; later catalog or promo edits never change it.
// Only Status is mutated after creation.
type Order struct {
	ID          uint   `gorm:"primaryKey"`
	OrderNumber string `gorm:"size:30;uniqueIndex;not null"`
	OwnerKey    string `gorm:"size:80;index"`

	Email           string `gorm:"size:254;not null"`
	FullName        string `gorm:"size:200;not null"`
	ShippingAddress string `gorm:"type:text"`
	Phone           string `gorm:"size:20"`

	Status OrderStatus `gorm:"size:20;not null;default:'pending'"`

	SubtotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	PromoCodeUsed      string          `gorm:"size:50"` // blank when no promo applied
	PromoDiscountType  DiscountType    `gorm:"size:20"`
	PromoDiscountValue decimal.Decimal `gorm:"type:decimal(10,2)"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a snapshot of a purchased line; name and price are copied from
// the catalog at checkout, not live-linked.
type OrderItem struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"index;not null"`

	ItemKind ItemKind `gorm:"size:10"`
	ItemID   uint

	ProductName  string          `gorm:"size:200;not null"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity     int             `gorm:"not null"`
	Size         string          `gorm:"size:20"`

	CreatedAt time.Time
}

// Subtotal is quantity times the snapshotted unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrderNumber generates a human-readable unique order identifier, e.g.
// ORD-20260829153004-7F3A1C. Uniqueness is enforced by the database index;
// the uuid-derived suffix makes collisions within one second negligible.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102150405"), suffix)
}
