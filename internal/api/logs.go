package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) GetLogs(ctx context.Context, filter LogsFilter) ([]Log, error) {
	var logs []Log
	query := url.Values{
		"date":       {filter.Date},
		"category":   {filter.Category},
		"categoryId": {filter.CategoryID},
	}
	if err := c.do(ctx, "logs", http.MethodGet, "/logs", query, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) CreateLog(ctx context.Context, newLog Log) (*Log, error) {
	created := &Log{}
	if err := c.do(ctx, "logs", http.MethodPost, "/logs", nil, newLog, created); err != nil {
		return nil, err
	}
	c.invalidateStats()
	return created, nil
}

func (c *Client) UpdateLog(ctx context.Context, id string, update LogUpdate) (*Log, error) {
	updated := &Log{}
	if err := c.do(ctx, "logs", http.MethodPut, "/logs/"+url.PathEscape(id), nil, update, updated); err != nil {
		return nil, err
	}
	c.invalidateStats()
	return updated, nil
}

func (c *Client) DeleteLog(ctx context.Context, id string) error {
	if err := c.do(ctx, "logs", http.MethodDelete, "/logs/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return err
	}
	c.invalidateStats()
	return nil
}
