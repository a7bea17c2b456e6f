package screen

import (
	"context"
	"fmt"

	"gofood/pkg/api"
)

// OrderRequest builds the order payload from the current state. The loaded
// food is copied, never modified, so every call carries the same ProductID.
func (s *FoodDetails) OrderRequest() (*api.OrderRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return nil, err
	}
	return s.orderRequestLocked(), nil
}

// FinishOrder queues the order and returns without waiting for the answer.
func (s *FoodDetails) FinishOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return err
	}

	req := s.orderRequestLocked()
	s.outbox.push(job{
		name: fmt.Sprintf("create order for food %d", req.ProductID),
		run: func(ctx context.Context) error {
			_, err := s.client.CreateOrder(ctx, req)
			return err
		},
	})
	return nil
}

// SubmitOrder sends the order and waits for the receipt.
func (s *FoodDetails) SubmitOrder(ctx context.Context) (*api.OrderReceipt, error) {
	req, err := s.OrderRequest()
	if err != nil {
		return nil, err
	}
	return s.client.CreateOrder(ctx, req)
}

func (s *FoodDetails) orderRequestLocked() *api.OrderRequest {
	f := s.food
	req := &api.OrderRequest{
		ProductID:      f.ID,
		Name:           f.Name,
		Description:    f.Description,
		Price:          f.Price,
		ImageURL:       f.ImageURL,
		FormattedPrice: f.FormattedPrice,
		Category:       f.Category,
		Quantity:       s.quantity,
		Extras:         make([]api.OrderExtra, 0, len(s.extras)),
		Total:          s.totalLocked().InexactFloat64(),
	}
	for _, x := range s.extras {
		req.Extras = append(req.Extras, api.OrderExtra{
			ID:       x.ID,
			Name:     x.Name,
			Value:    x.Value.InexactFloat64(),
			Quantity: x.Quantity,
		})
	}
	return req
}
