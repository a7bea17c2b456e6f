package api

import (
	"context"
	"net/http"
)

// Login stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	in := map[string]string{"email": email, "password": password}

	var s Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &s); err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

func (c *Client) Register(ctx context.Context, r *Registration) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/auth/register", r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
