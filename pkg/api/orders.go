package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateOrder(ctx context.Context, order *OrderRequest) (*OrderReceipt, error) {
	var r OrderReceipt
	if err := c.do(ctx, http.MethodPost, "/orders", order, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]OrderReceipt, error) {
	var out []OrderReceipt
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, code string) (*OrderReceipt, error) {
	var r OrderReceipt
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(code), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
