package entity

import (
	"gorm.io/gorm"
)

// Favorite bookmarks a food for one user. (user_id, food_id) is unique.
type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_favorite_user_food;not null" json:"userId"`
	User   User `json:"-"`

	FoodID uint `gorm:"uniqueIndex:idx_favorite_user_food;not null" json:"foodId"`
	Food   Food `json:"-"` // preload when listing
}
