package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"

	log "github.com/sirupsen/logrus"
)

// DefaultCategories are the fixed categories of the flat exercises list.
var DefaultCategories = []string{"arms", "core", "thighs", "back"}

var ErrUnknownCategory = errors.New("unknown category")

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=exercises_test

type exercisesClient interface {
	GetExercises(ctx context.Context, category string) ([]api.Exercise, error)
	CreateExercise(ctx context.Context, name, category string) (*api.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
}

// Manager keeps the flat exercise list of the user, grouped by fixed categories.
type Manager struct {
	viewstate.Notifier

	client     exercisesClient
	categories []string

	mu        sync.RWMutex
	exercises []api.Exercise
	selected  string
}

func NewManager(client exercisesClient, categories []string) *Manager {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Manager{
		client:     client,
		categories: categories,
		selected:   categories[0],
	}
}

func (m *Manager) Categories() []string {
	return append([]string(nil), m.categories...)
}

// Load fetches all exercises. Failures are logged and leave the list empty.
func (m *Manager) Load(ctx context.Context) error {
	list, err := m.client.GetExercises(ctx, "")
	if err != nil {
		log.Errorf("failed to load exercises: %s", err)
		m.set(nil)
		return fmt.Errorf("load exercises: %w", err)
	}
	m.set(list)
	return nil
}

func (m *Manager) set(list []api.Exercise) {
	m.mu.Lock()
	m.exercises = list
	m.mu.Unlock()
	m.Notify()
}

func (m *Manager) SelectCategory(category string) error {
	if !m.knownCategory(category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	m.mu.Lock()
	m.selected = category
	m.mu.Unlock()
	m.Notify()
	return nil
}

func (m *Manager) SelectedCategory() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selected
}

func (m *Manager) ByCategory(category string) []api.Exercise {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var filtered []api.Exercise
	for _, ex := range m.exercises {
		if ex.Category == category {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

// Add creates an exercise in the selected category. Blank names are ignored.
func (m *Manager) Add(ctx context.Context, name string) (*api.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	created, err := m.client.CreateExercise(ctx, name, m.SelectedCategory())
	if err != nil {
		log.Errorf("failed to create exercise: %s", err)
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	m.mu.Lock()
	m.exercises = append(m.exercises, *created)
	m.mu.Unlock()
	m.Notify()

	return created, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.client.DeleteExercise(ctx, id); err != nil {
		log.Errorf("failed to delete exercise: %s", err)
		return fmt.Errorf("delete exercise: %w", err)
	}

	m.mu.Lock()
	kept := m.exercises[:0:0]
	for _, ex := range m.exercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	m.exercises = kept
	m.mu.Unlock()
	m.Notify()

	return nil
}

func (m *Manager) knownCategory(category string) bool {
	for _, c := range m.categories {
		if c == category {
			return true
		}
	}
	return false
}
