package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `gorm:"index" json:"category"`

	// preloaded on detail
	Extras []Extra `json:"extras"`

	Favorites []Favorite `json:"-"`
	Orders    []Order    `gorm:"foreignKey:ProductID" json:"-"`
}
