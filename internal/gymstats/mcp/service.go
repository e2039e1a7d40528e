package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

// backendClient is the part of the resource client the MCP tools read from.
type backendClient interface {
	GetExerciseGroupsByUser(ctx context.Context) (*api.ExerciseGroupsDoc, error)
	GetLogs(ctx context.Context, filter api.LogsFilter) ([]api.Log, error)
	GetStats(ctx context.Context, params api.StatsParams) (*api.EnhancedStatsResponse, error)
	GetLogEssential(ctx context.Context, date string) (*api.LogEssential, error)
	GetAllLogEssentials(ctx context.Context) ([]api.LogEssential, error)
	GetProfile(ctx context.Context) (*api.Profile, error)
}

// contextService provides fitness data for the tools.
// Used by Handler for testability.
type contextService interface {
	GetExerciseGroups(ctx context.Context) (string, error)
	GetLogs(ctx context.Context, filter api.LogsFilter) ([]api.Log, error)
	GetStats(ctx context.Context, params api.StatsParams) (*api.EnhancedStatsResponse, error)
	GetDailyEssentials(ctx context.Context, date string) ([]api.LogEssential, error)
	GetProfile(ctx context.Context) (*api.Profile, error)
}

// ContextService validates tool arguments and reads through the backend client.
type ContextService struct {
	client backendClient
}

func NewContextService(client backendClient) *ContextService {
	return &ContextService{
		client: client,
	}
}

// GetExerciseGroups returns the exercise groups of the user as markdown.
func (s *ContextService) GetExerciseGroups(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mcp.service.getExerciseGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := s.client.GetExerciseGroupsByUser(ctx)
	if err != nil {
		return "", err
	}
	return formatExerciseGroups(doc), nil
}

func formatExerciseGroups(doc *api.ExerciseGroupsDoc) string {
	if doc == nil || len(doc.Categories) == 0 {
		return "# Exercise groups\n\nNo exercise groups defined yet.\n"
	}

	var b strings.Builder
	b.WriteString("# Exercise groups\n\n")
	fmt.Fprintf(&b, "%d categories, %d exercises.\n\n", len(doc.Categories), doc.ExercisesCount())

	for _, c := range doc.Categories {
		b.WriteString("## ")
		b.WriteString(c.CategoryName)
		b.WriteString("\n\n| Exercise | Description |\n|----------|-------------|\n")
		for _, ex := range c.Exercises {
			desc := "-"
			if ex.Description != "" {
				desc = ex.Description
			}
			fmt.Fprintf(&b, "| %s | %s |\n", ex.ExerciseName, desc)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// GetLogs returns the exercise logs of a day, optionally filtered by category.
func (s *ContextService) GetLogs(ctx context.Context, filter api.LogsFilter) ([]api.Log, error) {
	if filter.Date != "" {
		if err := pkg.ValidateDate(filter.Date); err != nil {
			return nil, err
		}
	}
	return s.client.GetLogs(ctx, filter)
}

func (s *ContextService) GetStats(ctx context.Context, params api.StatsParams) (*api.EnhancedStatsResponse, error) {
	if params.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", params.Days)
	}
	return s.client.GetStats(ctx, params)
}

// GetDailyEssentials returns the record of date, or every record when date is empty.
func (s *ContextService) GetDailyEssentials(ctx context.Context, date string) ([]api.LogEssential, error) {
	if date == "" {
		return s.client.GetAllLogEssentials(ctx)
	}
	if err := pkg.ValidateDate(date); err != nil {
		return nil, err
	}
	record, err := s.client.GetLogEssential(ctx, date)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return []api.LogEssential{}, nil
	}
	return []api.LogEssential{*record}, nil
}

func (s *ContextService) GetProfile(ctx context.Context) (*api.Profile, error) {
	return s.client.GetProfile(ctx)
}
