package api

import (
	"context"
	"fmt"
	"net/http"
)

// GetFavorite returns the favorite record of a food. A missing favorite is a 404 *Error;
// a success without data returns (nil, nil).
func (c *Client) GetFavorite(ctx context.Context, foodID uint) (*Food, error) {
	var f *Food
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/favorites/%d", foodID), nil, &f); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *Client) ListFavorites(ctx context.Context) ([]Food, error) {
	var foods []Food
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// AddFavorite posts the whole food; the service keys on its id.
func (c *Client) AddFavorite(ctx context.Context, food *Food) error {
	return c.do(ctx, http.MethodPost, "/favorites", food, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, foodID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", foodID), nil, nil)
}
