// Package screen holds the food details screen: it loads a food and the
// user's favorite flag, keeps the extra/food counters, derives the order total,
// toggles the favorite and submits the order.
//
// A FoodDetails is safe for concurrent use. Favorite and order requests are
// fire-and-forget: they go through an ordered outbox and are never awaited by
// the screen state.
package screen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"gofood/pkg/api"

	"github.com/shopspring/decimal"
)

var (
	ErrNotLoaded  = errors.New("food not loaded yet")
	ErrClosed     = errors.New("screen closed")
	ErrLoadFailed = errors.New("cannot load food")
)

// API is the part of the remote service the screen needs. *api.Client implements it.
type API interface {
	GetFood(ctx context.Context, id uint) (*api.Food, error)
	GetFavorite(ctx context.Context, foodID uint) (*api.Food, error)
	AddFavorite(ctx context.Context, food *api.Food) error
	RemoveFavorite(ctx context.Context, foodID uint) error
	CreateOrder(ctx context.Context, order *api.OrderRequest) (*api.OrderReceipt, error)
}

// Extra is an add-on with its local quantity. Quantity never leaves the screen
// except inside an order.
type Extra struct {
	ID       uint
	Name     string
	Value    decimal.Decimal
	Quantity int
}

type FoodDetails struct {
	client API
	foodID uint
	outbox *outbox

	mu       sync.Mutex
	food     *api.Food // nil while loading
	price    decimal.Decimal
	extras   []Extra
	quantity int
	favorite bool
	closed   bool
}

// New returns a screen for the food with quantity 1. It starts the request
// worker, so callers must Close the screen when done with it.
func New(client API, foodID uint) *FoodDetails {
	return &FoodDetails{
		client:   client,
		foodID:   foodID,
		outbox:   newOutbox(),
		quantity: 1,
	}
}

// Load fetches the food and its favorite status concurrently. Only the food is
// required: a failed or empty favorite lookup leaves the flag false.
func (s *FoodDetails) Load(ctx context.Context) error {
	var (
		wg      sync.WaitGroup
		food    *api.Food
		foodErr error
		fav     bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		food, foodErr = s.client.GetFood(ctx, s.foodID)
	}()
	go func() {
		defer wg.Done()
		rec, err := s.client.GetFavorite(ctx, s.foodID)
		switch {
		case api.IsNotFound(err):
			log.Printf("ℹ️ food %d is not a favorite", s.foodID)
		case err != nil:
			log.Printf("⚠️ favorite lookup for food %d: %v", s.foodID, err)
		case rec == nil:
			log.Printf("ℹ️ favorite lookup for food %d returned no record", s.foodID)
		default:
			fav = true
		}
	}()
	wg.Wait()

	if foodErr != nil {
		return fmt.Errorf("%w %d: %w", ErrLoadFailed, s.foodID, foodErr)
	}
	if food == nil {
		return fmt.Errorf("%w %d: empty response", ErrLoadFailed, s.foodID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// dismissed while loading
	if s.closed {
		return ErrClosed
	}

	f := *food
	f.Extras = append([]api.Extra(nil), food.Extras...)
	s.food = &f
	s.price = decimal.NewFromFloat(f.Price)
	s.extras = make([]Extra, 0, len(f.Extras))
	for _, x := range f.Extras {
		s.extras = append(s.extras, Extra{ID: x.ID, Name: x.Name, Value: decimal.NewFromFloat(x.Value)})
	}
	s.favorite = fav
	return nil
}

// Close dismisses the screen. Queued requests still run; new ones are refused
// and late load results are dropped.
func (s *FoodDetails) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.outbox.close()
}

// Wait blocks until every queued request has been issued and answered.
func (s *FoodDetails) Wait() {
	s.outbox.wait()
}

func (s *FoodDetails) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.food != nil
}

func (s *FoodDetails) Quantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantity
}

func (s *FoodDetails) IsFavorite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorite
}

// Extras returns a copy of the extras with their current quantities.
func (s *FoodDetails) Extras() []Extra {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Extra(nil), s.extras...)
}

// View is a consistent snapshot for rendering.
type View struct {
	Loaded         bool
	Food           api.Food
	Extras         []Extra
	Quantity       int
	Favorite       bool
	Total          decimal.Decimal
	FormattedTotal string
}

func (s *FoodDetails) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Loaded:   s.food != nil,
		Extras:   append([]Extra(nil), s.extras...),
		Quantity: s.quantity,
		Favorite: s.favorite,
	}
	if s.food != nil {
		v.Food = *s.food
		v.Food.Extras = append([]api.Extra(nil), s.food.Extras...)
	}
	v.Total = s.totalLocked()
	v.FormattedTotal = formatTotal(v.Total)
	return v
}

func (s *FoodDetails) readyLocked() error {
	if s.closed {
		return ErrClosed
	}
	if s.food == nil {
		return ErrNotLoaded
	}
	return nil
}
