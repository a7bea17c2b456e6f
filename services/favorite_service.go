package services

import (
	"errors"

	"gofood/entity"
	"gofood/repository"

	"gorm.io/gorm"
)

// FavoriteService keeps per-user bookmarks. A favorite is rendered as the food it points to.
type FavoriteService struct {
	Repo     *repository.FavoriteRepository
	FoodRepo *repository.FoodRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, foodRepo *repository.FoodRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, FoodRepo: foodRepo}
}

func (s *FavoriteService) List(userID uint) ([]FoodView, error) {
	favs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]FoodView, 0, len(favs))
	for i := range favs {
		out = append(out, NewFoodView(&favs[i].Food))
	}
	return out, nil
}

func (s *FavoriteService) Get(userID, foodID uint) (*FoodView, error) {
	fav, err := s.Repo.Find(userID, foodID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}
	v := NewFoodView(&fav.Food)
	return &v, nil
}

// Add is idempotent: favoriting twice keeps one row.
func (s *FavoriteService) Add(userID, foodID uint) (*FoodView, error) {
	ok, err := s.FoodRepo.Exists(foodID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFoodNotFound
	}

	if err := s.Repo.Create(&entity.Favorite{UserID: userID, FoodID: foodID}); err != nil {
		return nil, err
	}
	return s.Get(userID, foodID)
}

// Remove does not fail when the favorite is already gone.
func (s *FavoriteService) Remove(userID, foodID uint) error {
	_, err := s.Repo.Delete(userID, foodID)
	return err
}
