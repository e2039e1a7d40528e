package mcp

import (
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolGetExerciseGroups  = "get_exercise_groups"
	ToolGetLogs            = "get_logs"
	ToolGetStats           = "get_stats"
	ToolGetDailyEssentials = "get_daily_essentials"
	ToolGetProfile         = "get_profile"
)

// NewServer builds an MCP server with read-only fittrack tools backed by the resource client.
// Served over stdio or mounted at /mcp by internal.Server.
func NewServer(client backendClient, metricsManager *metrics.Manager) *mcp.Server {
	h := NewHandler(NewContextService(client), metricsManager)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolGetExerciseGroups,
		Description: "Returns the exercise groups of the user as markdown: categories and their exercises with descriptions. Use when you need to know which exercises the user tracks.",
	}, h.GetExerciseGroupsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolGetLogs,
		Description: "Returns exercise logs (reps and count per exercise). Optional filters: date (YYYY-MM-DD), category or category_id. Use when you need to see what was logged on a day.",
	}, h.GetLogsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolGetStats,
		Description: "Returns server computed stats for the last N days of a category: per exercise daily data, totals, lifetime averages and expected values, plus streaks. Args: days; optional: category or category_id.",
	}, h.GetStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolGetDailyEssentials,
		Description: "Returns daily wellness records (water, steps, calories, sleep, weight, mood, energy, body measurements, supplements, habits). Optional arg: date (YYYY-MM-DD); without it every logged day is returned.",
	}, h.GetDailyEssentialsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolGetProfile,
		Description: "Returns the user profile: personal data, fitness level, free text goals, numeric daily goals and tracking preferences.",
	}, h.GetProfileTool())

	return s
}
