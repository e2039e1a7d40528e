package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetLogEssential returns nil, nil when nothing was logged for the date.
func (c *Client) GetLogEssential(ctx context.Context, date string) (*LogEssential, error) {
	var essential *LogEssential
	query := url.Values{"date": {date}}
	if err := c.do(ctx, "log_essentials", http.MethodGet, "/log-essentials", query, nil, &essential); err != nil {
		return nil, err
	}
	return essential, nil
}

func (c *Client) GetAllLogEssentials(ctx context.Context) ([]LogEssential, error) {
	var essentials []LogEssential
	if err := c.do(ctx, "log_essentials", http.MethodGet, "/log-essentials/all", nil, nil, &essentials); err != nil {
		return nil, err
	}
	return essentials, nil
}

// CreateOrUpdateLogEssential upserts the non nil fields of update for update.Date.
func (c *Client) CreateOrUpdateLogEssential(ctx context.Context, update LogEssentialUpdate) (*LogEssential, error) {
	essential := &LogEssential{}
	if err := c.do(ctx, "log_essentials", http.MethodPost, "/log-essentials", nil, update, essential); err != nil {
		return nil, err
	}
	return essential, nil
}

func (c *Client) UpdateLogEssential(ctx context.Context, update LogEssentialUpdate) (*LogEssential, error) {
	essential := &LogEssential{}
	if err := c.do(ctx, "log_essentials", http.MethodPut, "/log-essentials", nil, update, essential); err != nil {
		return nil, err
	}
	return essential, nil
}

func (c *Client) DeleteLogEssential(ctx context.Context, id string) error {
	return c.do(ctx, "log_essentials", http.MethodDelete, "/log-essentials/"+url.PathEscape(id), nil, nil, nil)
}
