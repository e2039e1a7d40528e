package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service        contextService
	metricsManager *metrics.Manager
}

// NewHandler builds a handler with the given service. metricsManager may be nil.
func NewHandler(service contextService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) errorResult(tool, text string) *mcp.CallToolResult {
	log.Debugf("mcp tool %s failed: %s", tool, text)
	h.count(tool, resultError)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func (h *Handler) textResult(tool, text string) *mcp.CallToolResult {
	h.count(tool, resultOK)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func (h *Handler) jsonResult(tool string, v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return h.errorResult(tool, "Error encoding response: "+err.Error())
	}
	return h.textResult(tool, string(raw))
}

func (h *Handler) count(tool, result string) {
	if h.metricsManager == nil {
		return
	}
	h.metricsManager.CounterMCPToolCalls.WithLabelValues(tool, result).Inc()
}

// GetExerciseGroupsTool returns the MCP tool handler for get_exercise_groups.
func (h *Handler) GetExerciseGroupsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetExerciseGroups(ctx)
		if err != nil {
			return h.errorResult(ToolGetExerciseGroups, "Error fetching exercise groups: "+err.Error()), nil, nil
		}
		return h.textResult(ToolGetExerciseGroups, text), nil, nil
	}
}

// LogsInput is the input for get_logs.
type LogsInput struct {
	Date       string `json:"date,omitempty" jsonschema:"Day of the logs (YYYY-MM-DD), defaults to all days"`
	Category   string `json:"category,omitempty" jsonschema:"Filter by category name (e.g. arms, core)"`
	CategoryID string `json:"category_id,omitempty" jsonschema:"Filter by category id"`
}

// GetLogsTool returns the MCP tool handler for get_logs.
func (h *Handler) GetLogsTool() func(context.Context, *mcp.CallToolRequest, LogsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LogsInput) (*mcp.CallToolResult, any, error) {
		logs, err := h.service.GetLogs(ctx, api.LogsFilter{
			Date:       in.Date,
			Category:   in.Category,
			CategoryID: in.CategoryID,
		})
		if err != nil {
			return h.errorResult(ToolGetLogs, "Error listing logs: "+err.Error()), nil, nil
		}
		return h.jsonResult(ToolGetLogs, logs), nil, nil
	}
}

// StatsInput is the input for get_stats.
type StatsInput struct {
	Days       int    `json:"days" jsonschema:"Number of days of the period (e.g. 7, 15, 30, 180)"`
	Category   string `json:"category,omitempty" jsonschema:"Category name (e.g. arms, core, thighs, back)"`
	CategoryID string `json:"category_id,omitempty" jsonschema:"Category id, instead of category name"`
}

// GetStatsTool returns the MCP tool handler for get_stats.
func (h *Handler) GetStatsTool() func(context.Context, *mcp.CallToolRequest, StatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in StatsInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.service.GetStats(ctx, api.StatsParams{
			Days:       in.Days,
			Category:   in.Category,
			CategoryID: in.CategoryID,
		})
		if err != nil {
			return h.errorResult(ToolGetStats, "Error fetching stats: "+err.Error()), nil, nil
		}
		return h.jsonResult(ToolGetStats, resp), nil, nil
	}
}

// DailyEssentialsInput is the input for get_daily_essentials.
type DailyEssentialsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD); when empty all logged days are returned"`
}

// GetDailyEssentialsTool returns the MCP tool handler for get_daily_essentials.
func (h *Handler) GetDailyEssentialsTool() func(context.Context, *mcp.CallToolRequest, DailyEssentialsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DailyEssentialsInput) (*mcp.CallToolResult, any, error) {
		records, err := h.service.GetDailyEssentials(ctx, in.Date)
		if err != nil {
			return h.errorResult(ToolGetDailyEssentials, "Error fetching daily essentials: "+err.Error()), nil, nil
		}
		return h.jsonResult(ToolGetDailyEssentials, records), nil, nil
	}
}

// GetProfileTool returns the MCP tool handler for get_profile.
func (h *Handler) GetProfileTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		p, err := h.service.GetProfile(ctx)
		if err != nil {
			return h.errorResult(ToolGetProfile, "Error fetching profile: "+err.Error()), nil, nil
		}
		return h.jsonResult(ToolGetProfile, p), nil, nil
	}
}
