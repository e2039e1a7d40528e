package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"
)

func (c *Client) GetStats(ctx context.Context, params StatsParams) (*EnhancedStatsResponse, error) {
	query := url.Values{
		"days":       {strconv.Itoa(params.Days)},
		"category":   {params.Category},
		"categoryId": {params.CategoryID},
	}

	cacheKey := []byte("stats::" + encodeQuery(query))
	if c.statsCache != nil {
		if cached, err := c.statsCache.Get(cacheKey); err == nil {
			stats := &EnhancedStatsResponse{}
			if err := json.Unmarshal(cached, stats); err == nil {
				log.Tracef("stats for [%s] found in cache", cacheKey)
				if c.metrics != nil {
					c.metrics.CounterStatsCacheHits.Inc()
				}
				return stats, nil
			}
		}
	}

	respBytes, err := c.send(ctx, "stats", http.MethodGet, "/stats", query, nil)
	if err != nil {
		return nil, err
	}

	stats := &EnhancedStatsResponse{}
	if err := json.Unmarshal(respBytes, stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats response: %w", err)
	}

	if c.statsCache != nil {
		if err := c.statsCache.Set(cacheKey, respBytes, c.statsCacheTTL); err != nil {
			log.Errorf("failed to cache stats for [%s]: %s", cacheKey, err)
		}
	}

	return stats, nil
}

// invalidateStats drops cached stats after a confirmed log write.
func (c *Client) invalidateStats() {
	if c.statsCache != nil {
		c.statsCache.Clear()
	}
}
