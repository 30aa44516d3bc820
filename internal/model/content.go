package model

import "time"

// Review is a customer rating for a product (1-5).
type Review struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null"`

	ReviewerName string `gorm:"size:100;not null"`
	Rating       int    `gorm:"not null"`
	Comment      string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BlogPost struct {
	ID      uint   `gorm:"primaryKey"`
	Title   string `gorm:"size:200;not null"`
	Slug    string `gorm:"size:200;uniqueIndex;not null"`
	Content string `gorm:"type:text"`
	Excerpt string `gorm:"type:text"`
	Author  string `gorm:"size:100"`

	FeaturedImageURL string `gorm:"size:500"`

	IsPublished bool `gorm:"default:false"`
	PublishedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Customer is a registered storefront account. Guest shoppers never get one;
// their carts are keyed by a session token instead.
type Customer struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	FullName     string `gorm:"size:200"`
	PasswordHash string `gorm:"size:100;not null"`

	Phone                  string `gorm:"size:20"`
	DefaultShippingAddress string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
