package repository

import (
	"gofood/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create stores the order with its extras in one transaction.
func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepository) ListByUser(userID uint, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Extras", orderByID).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByCode(userID uint, code string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Extras", orderByID).
		Where("user_id = ? AND code = ?", userID, code).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
