package api

import (
	"context"
	"net/http"
)

func (c *Client) GetAISuggestions(ctx context.Context, req AISuggestionRequest) (*AISuggestionResponse, error) {
	resp := &AISuggestionResponse{}
	if err := c.do(ctx, "ai", http.MethodPost, "/ai/suggestions", nil, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
