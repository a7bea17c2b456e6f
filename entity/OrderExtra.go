package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderExtra struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"` // avoid a serialization loop

	ExtraID  uint            `json:"extraId"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
}
