package repository

import (
	"gofood/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]entity.Favorite, error) {
	var favs []entity.Favorite
	err := r.DB.
		Preload("Food").
		Preload("Food.Extras", orderByID).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) Find(userID, foodID uint) (*entity.Favorite, error) {
	var fav entity.Favorite
	err := r.DB.
		Preload("Food").
		Preload("Food.Extras", orderByID).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		First(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Create is a no-op when the pair already exists.
func (r *FavoriteRepository) Create(fav *entity.Favorite) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error
}

// Delete removes the row for good so it can be favorited again.
func (r *FavoriteRepository) Delete(userID, foodID uint) (int64, error) {
	res := r.DB.Unscoped().
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Delete(&entity.Favorite{})
	return res.RowsAffected, res.Error
}
