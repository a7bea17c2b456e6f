package screen

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"gofood/pkg/api"
)

type fakeAPI struct {
	mu sync.Mutex

	food     *api.Food
	foodErr  error
	favorite *api.Food
	favErr   error

	addErr    error
	removeErr error
	orderErr  error

	calls     []string
	favorited []api.Food
	orders    []api.OrderRequest
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAPI) GetFood(ctx context.Context, id uint) (*api.Food, error) {
	f.record(fmt.Sprintf("get food %d", id))
	if f.foodErr != nil {
		return nil, f.foodErr
	}
	food := *f.food
	return &food, nil
}

func (f *fakeAPI) GetFavorite(ctx context.Context, id uint) (*api.Food, error) {
	f.record(fmt.Sprintf("get favorite %d", id))
	return f.favorite, f.favErr
}

func (f *fakeAPI) AddFavorite(ctx context.Context, food *api.Food) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf("add favorite %d", food.ID))
	f.favorited = append(f.favorited, *food)
	return f.addErr
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, id uint) error {
	f.record(fmt.Sprintf("remove favorite %d", id))
	return f.removeErr
}

func (f *fakeAPI) CreateOrder(ctx context.Context, order *api.OrderRequest) (*api.OrderReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf("create order %d", order.ProductID))
	f.orders = append(f.orders, *order)
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return &api.OrderReceipt{Code: "test", ProductID: order.ProductID, Quantity: order.Quantity}, nil
}

// writes returns the calls made after loading, in order.
func (f *fakeAPI) writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, c := range f.calls {
		if len(c) > 4 && c[:4] == "get " {
			continue
		}
		out = append(out, c)
	}
	return out
}

var errNotFound = &api.Error{StatusCode: http.StatusNotFound, Message: "favorite not found"}

func testFood() *api.Food {
	return &api.Food{
		ID:             1,
		Name:           "Ao molho",
		Description:    "Macarrão ao molho branco",
		Price:          10.00,
		ImageURL:       "https://example.com/ao_molho.png",
		FormattedPrice: "R$ 10,00",
		Extras: []api.Extra{
			{ID: 1, Name: "Bacon", Value: 2.50},
			{ID: 2, Name: "Frango", Value: 1.75},
		},
	}
}
