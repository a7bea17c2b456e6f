package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gofood/entity"
	"gofood/repository"
	"gofood/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const listOrdersLimit = 50

type OrderService struct {
	Repo     *repository.OrderRepository
	FoodRepo *repository.FoodRepository
}

func NewOrderService(repo *repository.OrderRepository, foodRepo *repository.FoodRepository) *OrderService {
	return &OrderService{Repo: repo, FoodRepo: foodRepo}
}

// ----- DTOs from Controller -----

type OrderExtraIn struct {
	ID       uint    `json:"id" binding:"required"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity int     `json:"quantity"`
}

// CreateOrderIn is the food as the client saw it, minus its id, plus productId and quantities.
type CreateOrderIn struct {
	ProductID      uint           `json:"productId" binding:"required"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	ImageURL       string         `json:"image_url"`
	FormattedPrice string         `json:"formattedPrice"`
	Category       string         `json:"category"`
	Quantity       int            `json:"quantity"`
	Extras         []OrderExtraIn `json:"extras"`
	Total          float64        `json:"total"`
}

type OrderExtraView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity int     `json:"quantity"`
}

type OrderView struct {
	Code           string           `json:"code"`
	ProductID      uint             `json:"productId"`
	Name           string           `json:"name"`
	Price          float64          `json:"price"`
	Quantity       int              `json:"quantity"`
	Extras         []OrderExtraView `json:"extras"`
	Subtotal       float64          `json:"subtotal"`
	ExtrasTotal    float64          `json:"extrasTotal"`
	Total          float64          `json:"total"`
	FormattedTotal string           `json:"formattedTotal"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func NewOrderView(o *entity.Order) OrderView {
	v := OrderView{
		Code:           o.Code,
		ProductID:      o.ProductID,
		Name:           o.Name,
		Price:          o.Price.InexactFloat64(),
		Quantity:       o.Quantity,
		Extras:         make([]OrderExtraView, 0, len(o.Extras)),
		Subtotal:       o.Subtotal.InexactFloat64(),
		ExtrasTotal:    o.ExtrasTotal.InexactFloat64(),
		Total:          o.Total.InexactFloat64(),
		FormattedTotal: utils.FormatValue(o.Total),
		CreatedAt:      o.CreatedAt,
	}
	for _, x := range o.Extras {
		v.Extras = append(v.Extras, OrderExtraView{
			ID: x.ExtraID, Name: x.Name, Value: x.Value.InexactFloat64(), Quantity: x.Quantity,
		})
	}
	return v
}

// ----- Create -----

// Create prices the order from the catalogue, never from the client payload.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*OrderView, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: food quantity must be at least 1", ErrInvalidQuantity)
	}

	food, err := s.FoodRepo.FindByID(in.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}

	known := make(map[uint]entity.Extra, len(food.Extras))
	for _, x := range food.Extras {
		known[x.ID] = x
	}

	subtotal := food.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
	extrasTotal := decimal.Zero
	rows := make([]entity.OrderExtra, 0, len(in.Extras))

	for _, it := range in.Extras {
		if it.Quantity < 0 {
			return nil, fmt.Errorf("%w: extra %d has negative quantity", ErrInvalidQuantity, it.ID)
		}
		x, ok := known[it.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownExtra, it.ID)
		}
		if it.Quantity == 0 {
			continue
		}
		line := x.Value.Mul(decimal.NewFromInt(int64(it.Quantity)))
		extrasTotal = extrasTotal.Add(line)
		rows = append(rows, entity.OrderExtra{
			ExtraID: x.ID, Name: x.Name, Value: x.Value, Quantity: it.Quantity, Total: line,
		})
	}

	total := subtotal.Add(extrasTotal)
	if in.Total != 0 && !decimal.NewFromFloat(in.Total).Equal(total) {
		log.Printf("order for food %d: client total %v differs from %s", food.ID, in.Total, total)
	}

	order := entity.Order{
		Code:        uuid.NewString(),
		UserID:      userID,
		ProductID:   food.ID,
		Name:        food.Name,
		Description: food.Description,
		ImageURL:    food.ImageURL,
		Price:       food.Price,
		Quantity:    in.Quantity,
		Subtotal:    subtotal,
		ExtrasTotal: extrasTotal,
		Total:       total,
		Extras:      rows,
	}
	if err := s.Repo.Create(&order); err != nil {
		return nil, err
	}

	v := NewOrderView(&order)
	return &v, nil
}

// ----- My Orders -----

func (s *OrderService) ListForUser(userID uint) ([]OrderView, error) {
	orders, err := s.Repo.ListByUser(userID, listOrdersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderView(&orders[i]))
	}
	return out, nil
}

func (s *OrderService) Get(userID uint, code string) (*OrderView, error) {
	o, err := s.Repo.FindByCode(userID, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	v := NewOrderView(o)
	return &v, nil
}
