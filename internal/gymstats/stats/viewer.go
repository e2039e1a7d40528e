package stats

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultDays          = 7
	noSelectionLabel     = "Select Period"
	defaultCategoryIndex = 0
)

// DefaultCategories are the category tabs of the stats view.
var DefaultCategories = []string{"arms", "core", "thighs", "back"}

type DateRange struct {
	Label string
	Days  int
}

var DateRanges = []DateRange{
	{Label: "7 Days", Days: 7},
	{Label: "15 Days", Days: 15},
	{Label: "1 Month", Days: 30},
	{Label: "6 Months", Days: 180},
}

//go:generate mockgen -source=$GOFILE -destination=viewer_mocks_test.go -package=stats_test

type statsClient interface {
	GetStats(ctx context.Context, params api.StatsParams) (*api.EnhancedStatsResponse, error)
}

// Viewer renders server computed stats for the selected (days, category) pair.
type Viewer struct {
	viewstate.Notifier

	client     statsClient
	categories []string

	mu        sync.RWMutex
	days      int
	category  string
	exercises []api.ExerciseStats
	overall   *api.OverallStats
}

func NewViewer(client statsClient, categories []string) *Viewer {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Viewer{
		client:     client,
		categories: categories,
		days:       DefaultDays,
		category:   categories[defaultCategoryIndex],
	}
}

func (v *Viewer) Categories() []string {
	return append([]string(nil), v.categories...)
}

func (v *Viewer) Days() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.days
}

func (v *Viewer) Category() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.category
}

// SelectedLabel returns the label of the selected range, or a placeholder
// when the selected days match none of the ranges.
func (v *Viewer) SelectedLabel() string {
	days := v.Days()
	for _, r := range DateRanges {
		if r.Days == days {
			return r.Label
		}
	}
	return noSelectionLabel
}

func (v *Viewer) Exercises() []api.ExerciseStats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]api.ExerciseStats(nil), v.exercises...)
}

func (v *Viewer) Overall() *api.OverallStats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.overall
}

// Response returns the currently shown stats as a response value.
func (v *Viewer) Response() *api.EnhancedStatsResponse {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return &api.EnhancedStatsResponse{
		Exercises: append([]api.ExerciseStats(nil), v.exercises...),
		Overall:   v.overall,
	}
}

func (v *Viewer) SelectCategory(ctx context.Context, category string) error {
	v.mu.Lock()
	v.category = category
	v.mu.Unlock()
	return v.Load(ctx)
}

func (v *Viewer) SelectDateRange(ctx context.Context, days int) error {
	if days <= 0 {
		return fmt.Errorf("invalid days: %d", days)
	}
	v.mu.Lock()
	v.days = days
	v.mu.Unlock()
	return v.Load(ctx)
}

// Load fetches stats for the current selection. A failure is logged and keeps the
// previously shown stats. A response for a selection that changed meanwhile is ignored.
func (v *Viewer) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsViewer.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	v.mu.RLock()
	days, category := v.days, v.category
	v.mu.RUnlock()
	span.SetAttributes(
		attribute.Int("days", days),
		attribute.String("category", category),
	)

	resp, err := v.client.GetStats(ctx, api.StatsParams{Days: days, Category: category})
	if err != nil {
		log.Errorf("failed to load stats [%d days, %s]: %s", days, category, err)
		return fmt.Errorf("load stats: %w", err)
	}

	v.mu.Lock()
	if v.days != days || v.category != category {
		v.mu.Unlock()
		log.Debugf("dropping stats for old selection [%d days, %s]", days, category)
		return nil
	}
	if resp == nil {
		resp = &api.EnhancedStatsResponse{}
	}
	v.exercises = resp.Exercises
	v.overall = resp.Overall
	v.mu.Unlock()

	v.Notify()
	return nil
}
