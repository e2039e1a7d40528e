package dailylog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrLogNotFound      = errors.New("log not found")
)

//go:generate mockgen -source=$GOFILE -destination=logger_mocks_test.go -package=dailylog_test

type logsClient interface {
	GetExerciseGroupsByUser(ctx context.Context) (*api.ExerciseGroupsDoc, error)
	GetLogs(ctx context.Context, filter api.LogsFilter) ([]api.Log, error)
	CreateLog(ctx context.Context, newLog api.Log) (*api.Log, error)
	UpdateLog(ctx context.Context, id string, update api.LogUpdate) (*api.Log, error)
	DeleteLog(ctx context.Context, id string) error
}

// Logger holds the logged exercises of one (date, category) pair.
type Logger struct {
	viewstate.Notifier

	client logsClient

	mu       sync.RWMutex
	date     string
	category string
	groups   *api.ExerciseGroupsDoc
	logs     []api.Log
}

// NewLogger starts at date, today when empty.
func NewLogger(client logsClient, date string) *Logger {
	if date == "" {
		date = pkg.Today()
	}
	return &Logger{
		client: client,
		date:   date,
		groups: &api.ExerciseGroupsDoc{},
	}
}

// Load fetches the exercise groups, then the logs of the current date and category.
func (l *Logger) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dailylog.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := l.client.GetExerciseGroupsByUser(ctx)
	if err != nil {
		log.Errorf("failed to load exercise groups: %s", err)
		return fmt.Errorf("load exercise groups: %w", err)
	}
	if doc == nil {
		doc = &api.ExerciseGroupsDoc{}
	}

	l.mu.Lock()
	l.groups = doc
	if doc.Category(l.category) == nil {
		l.category = ""
		if len(doc.Categories) > 0 {
			l.category = doc.Categories[0].CategoryName
		}
	}
	l.mu.Unlock()
	l.Notify()

	return l.loadLogs(ctx)
}

func (l *Logger) loadLogs(ctx context.Context) error {
	date, category := l.Key()
	if category == "" {
		l.mu.Lock()
		l.logs = nil
		l.mu.Unlock()
		l.Notify()
		return nil
	}

	logs, err := l.client.GetLogs(ctx, api.LogsFilter{Date: date, Category: category})
	if err != nil {
		log.Errorf("failed to load logs for [%s/%s]: %s", date, category, err)
		logs = nil
	}

	l.mu.Lock()
	// the key may have moved on while the request was in flight
	if l.date == date && l.category == category {
		l.logs = logs
	}
	l.mu.Unlock()
	l.Notify()

	if err != nil {
		return fmt.Errorf("load logs: %w", err)
	}
	return nil
}

// Key returns the selected date and category.
func (l *Logger) Key() (date, category string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.date, l.category
}

func (l *Logger) SetDate(ctx context.Context, date string) error {
	if err := pkg.ValidateDate(date); err != nil {
		return err
	}
	l.mu.Lock()
	l.date = date
	l.mu.Unlock()
	return l.loadLogs(ctx)
}

func (l *Logger) SetCategory(ctx context.Context, category string) error {
	l.mu.Lock()
	if l.groups.Category(category) == nil {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}
	l.category = category
	l.mu.Unlock()
	return l.loadLogs(ctx)
}

func (l *Logger) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.groups.Categories))
	for _, c := range l.groups.Categories {
		names = append(names, c.CategoryName)
	}
	return names
}

func (l *Logger) Logs() []api.Log {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]api.Log(nil), l.logs...)
}

// AvailableExercises are the selected category's exercises not yet logged for the date.
func (l *Logger) AvailableExercises() []api.GroupExercise {
	l.mu.RLock()
	defer l.mu.RUnlock()

	category := l.groups.Category(l.category)
	if category == nil {
		return nil
	}

	logged := l.loggedKeys()
	available := make([]api.GroupExercise, 0, len(category.Exercises))
	for _, ex := range category.Exercises {
		if _, ok := logged[ex.Key()]; !ok {
			available = append(available, ex)
		}
	}
	return available
}

func (l *Logger) loggedKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(l.logs))
	for _, lg := range l.logs {
		keys[lg.ExerciseID] = struct{}{}
	}
	return keys
}

// SelectExercise logs exercise for the selected date with zero reps and count.
// An exercise already logged for the date returns its existing row.
func (l *Logger) SelectExercise(ctx context.Context, exercise api.GroupExercise) (*api.Log, error) {
	l.mu.RLock()
	date, category := l.date, l.category
	for _, lg := range l.logs {
		if lg.ExerciseID == exercise.Key() {
			existing := lg
			l.mu.RUnlock()
			return &existing, nil
		}
	}
	l.mu.RUnlock()

	if category == "" {
		return nil, ErrCategoryNotFound
	}

	created, err := l.client.CreateLog(ctx, api.Log{
		ExerciseID:   exercise.Key(),
		ExerciseName: exercise.ExerciseName,
		Category:     category,
		Date:         date,
		Reps:         0,
		Count:        0,
	})
	if err != nil {
		log.Errorf("failed to create log for [%s]: %s", exercise.ExerciseName, err)
		return nil, fmt.Errorf("create log: %w", err)
	}

	l.mu.Lock()
	if l.date == date && l.category == category {
		l.logs = append(l.logs, *created)
	}
	l.mu.Unlock()
	l.Notify()

	return created, nil
}

// UpdateLog sends the partial update and replaces the local row with the response.
func (l *Logger) UpdateLog(ctx context.Context, id string, update api.LogUpdate) (*api.Log, error) {
	updated, err := l.client.UpdateLog(ctx, id, update)
	if err != nil {
		log.Errorf("failed to update log [%s]: %s", id, err)
		return nil, fmt.Errorf("update log: %w", err)
	}

	l.mu.Lock()
	for i := range l.logs {
		if l.logs[i].ID == id {
			l.logs[i] = *updated
			break
		}
	}
	l.mu.Unlock()
	l.Notify()

	return updated, nil
}

func (l *Logger) DeleteLog(ctx context.Context, id string) error {
	if err := l.client.DeleteLog(ctx, id); err != nil {
		log.Errorf("failed to delete log [%s]: %s", id, err)
		return fmt.Errorf("delete log: %w", err)
	}

	l.mu.Lock()
	kept := l.logs[:0:0]
	for _, lg := range l.logs {
		if lg.ID != id {
			kept = append(kept, lg)
		}
	}
	l.logs = kept
	l.mu.Unlock()
	l.Notify()

	return nil
}

// FindLog returns the local row logging the exercise with the given key, id or name.
func (l *Logger) FindLog(exercise string) (*api.Log, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, lg := range l.logs {
		if lg.ID == exercise || lg.ExerciseID == exercise || lg.ExerciseName == exercise {
			found := lg
			return &found, nil
		}
	}
	return nil, ErrLogNotFound
}

// FindExercise returns the selected category's exercise with the given key or name.
func (l *Logger) FindExercise(exercise string) (*api.GroupExercise, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	category := l.groups.Category(l.category)
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	for _, ex := range category.Exercises {
		if ex.Key() == exercise || ex.ExerciseName == exercise {
			found := ex
			return &found, nil
		}
	}
	return nil, fmt.Errorf("exercise [%s] not found in [%s]", exercise, l.category)
}
