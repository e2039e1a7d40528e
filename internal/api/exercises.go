package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetExercises lists exercises, filtered by category when not empty.
func (c *Client) GetExercises(ctx context.Context, category string) ([]Exercise, error) {
	var exercises []Exercise
	query := url.Values{"category": {category}}
	if err := c.do(ctx, "exercises", http.MethodGet, "/exercises", query, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) CreateExercise(ctx context.Context, name, category string) (*Exercise, error) {
	exercise := &Exercise{}
	req := Exercise{Name: name, Category: category}
	if err := c.do(ctx, "exercises", http.MethodPost, "/exercises", nil, req, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	return c.do(ctx, "exercises", http.MethodDelete, "/exercises/"+url.PathEscape(id), nil, nil, nil)
}
