package repository

import (
	"strings"

	"gofood/entity"

	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

type FoodFilter struct {
	NameLike string
	Category string
}

// List returns foods with their extras, ordered by id.
func (r *FoodRepository) List(f FoodFilter) ([]entity.Food, error) {
	q := r.DB.Preload("Extras", orderByID)
	if f.NameLike != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(toLowerASCII(f.NameLike))+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var foods []entity.Food
	err := q.Order("id").Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByID(id uint) (*entity.Food, error) {
	var food entity.Food
	if err := r.DB.Preload("Extras", orderByID).First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Food{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes name_like a plain substring, not a pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// sqlite LOWER() only folds ASCII
func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
