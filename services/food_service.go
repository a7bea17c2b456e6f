package services

import (
	"errors"

	"gofood/entity"
	"gofood/repository"
	"gofood/utils"

	"gorm.io/gorm"
)

type ExtraView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FoodView is the wire shape of a food.
type FoodView struct {
	ID             uint        `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Price          float64     `json:"price"`
	ImageURL       string      `json:"image_url"`
	FormattedPrice string      `json:"formattedPrice"`
	Category       string      `json:"category"`
	Extras         []ExtraView `json:"extras"`
}

func NewFoodView(f *entity.Food) FoodView {
	v := FoodView{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.Description,
		Price:          f.Price.InexactFloat64(),
		ImageURL:       f.ImageURL,
		FormattedPrice: utils.FormatValue(f.Price),
		Category:       f.Category,
		Extras:         make([]ExtraView, 0, len(f.Extras)),
	}
	for _, x := range f.Extras {
		v.Extras = append(v.Extras, ExtraView{ID: x.ID, Name: x.Name, Value: x.Value.InexactFloat64()})
	}
	return v
}

type FoodService struct {
	Repo *repository.FoodRepository
}

func NewFoodService(repo *repository.FoodRepository) *FoodService {
	return &FoodService{Repo: repo}
}

func (s *FoodService) List(f repository.FoodFilter) ([]FoodView, error) {
	foods, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]FoodView, 0, len(foods))
	for i := range foods {
		out = append(out, NewFoodView(&foods[i]))
	}
	return out, nil
}

func (s *FoodService) Get(id uint) (*FoodView, error) {
	f, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	v := NewFoodView(f)
	return &v, nil
}
