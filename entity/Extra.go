package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Extra is an optional add-on of a food, priced per unit.
type Extra struct {
	gorm.Model
	Name  string          `gorm:"not null" json:"name"`
	Value decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"value"`

	FoodID uint `gorm:"index" json:"foodId"`
	Food   Food `json:"-"`
}
