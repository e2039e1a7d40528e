package api

import (
	"context"
	"net/http"
)

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	resp := &AuthResponse{}
	if err := c.do(ctx, "auth", http.MethodPost, "/auth/register", nil, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp := &AuthResponse{}
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, "auth", http.MethodPost, "/auth/login", nil, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
