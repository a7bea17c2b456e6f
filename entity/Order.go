package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// snapshot of the food at order time
	ProductID   uint            `gorm:"index;not null" json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	ExtrasTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"extrasTotal"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Extras []OrderExtra `json:"extras"`
}
