package api

import (
	"context"
	"net/http"
)

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	profile := &Profile{}
	if err := c.do(ctx, "profile", http.MethodGet, "/profile", nil, nil, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, profile Profile) (*Profile, error) {
	updated := &Profile{}
	if err := c.do(ctx, "profile", http.MethodPut, "/profile", nil, profile, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
