package screen

import (
	"context"
	"fmt"

	"gofood/pkg/api"
)

// ToggleFavorite flips the flag right away and queues the matching request.
// The flag is not rolled back when the request fails.
func (s *FoodDetails) ToggleFavorite() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return err
	}

	s.favorite = !s.favorite
	id := s.food.ID

	if s.favorite {
		food := *s.food
		food.Extras = append([]api.Extra(nil), s.food.Extras...)
		s.outbox.push(job{
			name: fmt.Sprintf("add favorite %d", id),
			run: func(ctx context.Context) error {
				return s.client.AddFavorite(ctx, &food)
			},
		})
		return nil
	}

	s.outbox.push(job{
		name: fmt.Sprintf("remove favorite %d", id),
		run: func(ctx context.Context) error {
			return s.client.RemoveFavorite(ctx, id)
		},
	})
	return nil
}
