package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetFood returns nil without error when the service answers with no data.
func (c *Client) GetFood(ctx context.Context, id uint) (*Food, error) {
	var f *Food
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/foods/%d", id), nil, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// ListFoods filters by a name substring and/or category; empty means no filter.
func (c *Client) ListFoods(ctx context.Context, nameLike, category string) ([]Food, error) {
	q := url.Values{}
	if nameLike != "" {
		q.Set("name_like", nameLike)
	}
	if category != "" {
		q.Set("category", category)
	}
	path := "/foods"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var foods []Food
	if err := c.do(ctx, http.MethodGet, path, nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}
