package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrEmptyInput        = errors.New("describe what you would like to train")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryExists    = errors.New("category already exists")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrExerciseExists    = errors.New("exercise already exists in category")
	ErrSaveInProgress    = errors.New("save already in progress")
	ErrSuggestInProgress = errors.New("suggestions already requested")
)

//go:generate mockgen -source=$GOFILE -destination=editor_mocks_test.go -package=groups_test

type groupsClient interface {
	GetExerciseGroupsByUser(ctx context.Context) (*api.ExerciseGroupsDoc, error)
	UpsertExerciseGroups(ctx context.Context, doc *api.ExerciseGroupsDoc) (*api.ExerciseGroupsDoc, error)
	GetAISuggestions(ctx context.Context, req api.AISuggestionRequest) (*api.AISuggestionResponse, error)
}

// Editor edits the exercise groups document of the current user. Every local
// mutation replaces the held snapshot with a fresh copy, persistence is explicit.
type Editor struct {
	viewstate.Notifier

	client       groupsClient
	toaster      viewstate.Toaster
	descriptions map[string]string

	mu           sync.RWMutex
	doc          *api.ExerciseGroupsDoc
	selected     string
	saving       bool
	revision     int
	aiPanelShown bool
	aiLoading    bool
	aiSummary    string
}

type Option func(e *Editor)

// WithDescriptions replaces the default exercise description table.
func WithDescriptions(descriptions map[string]string) Option {
	return func(e *Editor) {
		e.descriptions = descriptions
	}
}

func NewEditor(client groupsClient, toaster viewstate.Toaster, opts ...Option) *Editor {
	e := &Editor{
		client:       client,
		toaster:      toaster,
		descriptions: DefaultExerciseDescriptions,
		doc:          emptyDoc(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func emptyDoc() *api.ExerciseGroupsDoc {
	return &api.ExerciseGroupsDoc{Categories: []api.GroupCategory{}}
}

// Load fetches the user's document. A missing document loads as empty.
// On failure the editor keeps an empty document.
func (e *Editor) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "groups.editor.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := e.client.GetExerciseGroupsByUser(ctx)
	if err != nil {
		log.Errorf("failed to load exercise groups: %s", err)
		e.mu.Lock()
		e.doc = emptyDoc()
		e.revision++
		e.selected = ""
		e.mu.Unlock()
		e.Notify()
		return fmt.Errorf("load exercise groups: %w", err)
	}
	if doc == nil {
		doc = emptyDoc()
	}
	if doc.Categories == nil {
		doc.Categories = []api.GroupCategory{}
	}

	e.mu.Lock()
	e.doc = doc
	e.revision++
	if doc.Category(e.selected) == nil {
		e.selected = firstCategoryName(doc)
	}
	e.mu.Unlock()

	e.Notify()
	return nil
}

// Document returns a copy of the current snapshot.
func (e *Editor) Document() *api.ExerciseGroupsDoc {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

func (e *Editor) Categories() []api.GroupCategory {
	return e.Document().Categories
}

func (e *Editor) SelectCategory(name string) error {
	e.mu.Lock()
	if e.doc.Category(name) == nil {
		e.mu.Unlock()
		return ErrCategoryNotFound
	}
	e.selected = name
	e.mu.Unlock()

	e.Notify()
	return nil
}

// SelectedCategory returns the selected category name, empty when none.
func (e *Editor) SelectedCategory() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selected
}

func (e *Editor) Saving() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.saving
}

// mutate applies fn to a copy of the snapshot and swaps it in when fn reports a change.
func (e *Editor) mutate(fn func(doc *api.ExerciseGroupsDoc) (changed bool, err error)) error {
	e.mu.Lock()
	next := e.doc.Clone()
	changed, err := fn(next)
	if err != nil || !changed {
		e.mu.Unlock()
		return err
	}
	e.doc = next
	e.revision++
	e.mu.Unlock()

	e.Notify()
	return nil
}

func (e *Editor) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	return e.mutate(func(doc *api.ExerciseGroupsDoc) (bool, error) {
		if doc.Category(name) != nil {
			return false, ErrCategoryExists
		}
		doc.Categories = append(doc.Categories, api.GroupCategory{
			CategoryName: name,
			Exercises:    []api.GroupExercise{},
		})
		if e.selected == "" {
			e.selected = name
		}
		return true, nil
	})
}

// RenameCategory is a no-op when newName equals the current name.
func (e *Editor) RenameCategory(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	return e.mutate(func(doc *api.ExerciseGroupsDoc) (bool, error) {
		category := doc.Category(oldName)
		if category == nil {
			return false, ErrCategoryNotFound
		}
		if newName == oldName {
			return false, nil
		}
		if doc.Category(newName) != nil {
			return false, ErrCategoryExists
		}
		category.CategoryName = newName
		if e.selected == oldName {
			e.selected = newName
		}
		return true, nil
	})
}

// DeleteCategory removes the category, clearing the selection if it was selected.
func (e *Editor) DeleteCategory(name string) error {
	return e.mutate(func(doc *api.ExerciseGroupsDoc) (bool, error) {
		idx := categoryIndex(doc, name)
		if idx < 0 {
			return false, ErrCategoryNotFound
		}
		doc.Categories = append(doc.Categories[:idx], doc.Categories[idx+1:]...)
		if e.selected == name {
			e.selected = ""
		}
		return true, nil
	})
}

func (e *Editor) AddExercise(categoryName, exerciseName, description string) error {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return ErrEmptyName
	}
	return e.mutate(func(doc *api.ExerciseGroupsDoc) (bool, error) {
		category := doc.Category(categoryName)
		if category == nil {
			return false, ErrCategoryNotFound
		}
		for _, ex := range category.Exercises {
			if ex.ExerciseName == exerciseName {
				return false, ErrExerciseExists
			}
		}
		category.Exercises = append(category.Exercises, api.GroupExercise{
			ExerciseName: exerciseName,
			Description:  strings.TrimSpace(description),
		})
		return true, nil
	})
}

// RenameExercise renames the exercise identified by exerciseKey (id, or name before persistence).
func (e *Editor) RenameExercise(categoryName, exerciseKey, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	return e.mutate(func(doc *api.ExerciseGroupsDoc) (bool, error) {
		category := doc.Category(categoryName)
		if category == nil {
			return false, ErrCategoryNotFound
		}
		idx := exerciseIndex(category, exerciseKey)
		if idx < 0 {
			return false, ErrExerciseNotFound
		}
		if category.Exercises[idx].ExerciseName == newName {
			return false, nil
		}
		category.Exercises[idx].ExerciseName = newName
		return true, nil
	})
}

func (e *Editor) DeleteExercise(categoryName, exerciseKey string) error {
	return e.mutate(func(doc *api.ExerciseGroupsDoc) (bool, error) {
		category := doc.Category(categoryName)
		if category == nil {
			return false, ErrCategoryNotFound
		}
		idx := exerciseIndex(category, exerciseKey)
		if idx < 0 {
			return false, ErrExerciseNotFound
		}
		category.Exercises = append(category.Exercises[:idx], category.Exercises[idx+1:]...)
		return true, nil
	})
}

// SaveAll upserts the whole document and replaces the snapshot with the saved one.
// Edits made while the save is in flight are kept instead.
func (e *Editor) SaveAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "groups.editor.saveAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInProgress
	}
	doc, revision := e.beginSaveLocked()
	e.mu.Unlock()
	e.Notify()

	return e.save(ctx, doc, revision)
}

func (e *Editor) beginSaveLocked() (*api.ExerciseGroupsDoc, int) {
	e.saving = true
	return e.doc.Clone(), e.revision
}

func (e *Editor) save(ctx context.Context, doc *api.ExerciseGroupsDoc, revision int) error {
	saved, err := e.client.UpsertExerciseGroups(ctx, doc)

	e.mu.Lock()
	e.saving = false
	switch {
	case err != nil || saved == nil:
	case e.revision != revision:
		log.Debugf("exercise groups edited while saving, keeping local edits")
	default:
		if saved.Categories == nil {
			saved.Categories = []api.GroupCategory{}
		}
		e.doc = saved
		if e.selected != "" && saved.Category(e.selected) == nil {
			e.selected = firstCategoryName(saved)
		}
	}
	e.mu.Unlock()
	e.Notify()

	if err != nil {
		log.Errorf("failed to save exercise groups: %s", err)
		e.toaster.Error("Error", api.ErrorMessage(err, "Failed to save exercise groups. Please try again."))
		return fmt.Errorf("save exercise groups: %w", err)
	}

	e.toaster.Success("Success", "Exercise groups saved successfully!")
	return nil
}

func (e *Editor) ToggleAIPanel() {
	e.mu.Lock()
	e.aiPanelShown = !e.aiPanelShown
	e.mu.Unlock()
	e.Notify()
}

func (e *Editor) AIPanelShown() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.aiPanelShown
}

func (e *Editor) AILoading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.aiLoading
}

// AISummary is the summary of the last applied suggestion.
func (e *Editor) AISummary() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.aiSummary
}

// ApplyAISuggestions sends userInput with the current document to the suggestion
// endpoint and merges the answer: an empty category list clears everything, a non
// empty one replaces all categories. The merged document is saved right away.
// Suggestions are rejected while a save is in flight.
func (e *Editor) ApplyAISuggestions(ctx context.Context, userInput string) (summary string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "groups.editor.applyAISuggestions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return "", ErrEmptyInput
	}

	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return "", ErrSaveInProgress
	}
	if e.aiLoading {
		e.mu.Unlock()
		return "", ErrSuggestInProgress
	}
	e.aiLoading = true
	existing := e.doc.Clone()
	e.mu.Unlock()
	e.Notify()

	resp, err := e.client.GetAISuggestions(ctx, api.AISuggestionRequest{
		UserInput:      userInput,
		ExistingGroups: existing,
	})
	if err != nil {
		e.mu.Lock()
		e.aiLoading = false
		e.mu.Unlock()
		e.Notify()

		log.Errorf("failed to get ai suggestions: %s", err)
		e.toaster.Error("Error", api.ErrorMessage(err, "Failed to get AI suggestions. Please try again."))
		return "", fmt.Errorf("ai suggestions: %w", err)
	}

	e.mu.Lock()
	e.aiLoading = false
	if e.saving {
		e.mu.Unlock()
		e.Notify()
		e.toaster.Error("Error", "Exercise groups are being saved, suggestions were not applied.")
		return "", ErrSaveInProgress
	}
	summary = e.mergeSuggestionsLocked(resp)
	doc, revision := e.beginSaveLocked()
	e.mu.Unlock()
	e.Notify()

	if err := e.save(ctx, doc, revision); err != nil {
		return summary, err
	}
	return summary, nil
}

func (e *Editor) mergeSuggestionsLocked(resp *api.AISuggestionResponse) string {
	next := e.doc.Clone()

	var summary string
	if len(resp.Categories) == 0 {
		next.Categories = []api.GroupCategory{}
		e.selected = ""
		summary = "Cleared all categories. Start fresh by adding new ones."
	} else {
		suggested := (&api.ExerciseGroupsDoc{Categories: resp.Categories}).Clone()
		next.Categories = suggested.Categories
		if next.Category(e.selected) == nil {
			e.selected = firstCategoryName(next)
		}
		summary = fmt.Sprintf("Created %d categories with %d exercises.", len(next.Categories), next.ExercisesCount())
	}
	if strings.TrimSpace(resp.Summary) != "" {
		summary = resp.Summary
	}

	e.doc = next
	e.revision++
	e.aiSummary = summary
	return summary
}

// ExerciseDescription returns the explicit description of the named exercise,
// falling back to the default table, then to empty.
func (e *Editor) ExerciseDescription(exerciseName string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, c := range e.doc.Categories {
		for _, ex := range c.Exercises {
			if ex.ExerciseName == exerciseName && ex.Description != "" {
				return ex.Description
			}
		}
	}
	return lookupDescription(e.descriptions, exerciseName)
}

func categoryIndex(doc *api.ExerciseGroupsDoc, name string) int {
	for i := range doc.Categories {
		if doc.Categories[i].CategoryName == name {
			return i
		}
	}
	return -1
}

func exerciseIndex(category *api.GroupCategory, key string) int {
	for i := range category.Exercises {
		if category.Exercises[i].Key() == key {
			return i
		}
	}
	// unsaved exercises are addressed by name
	for i := range category.Exercises {
		if category.Exercises[i].ExerciseName == key {
			return i
		}
	}
	return -1
}

func firstCategoryName(doc *api.ExerciseGroupsDoc) string {
	if doc == nil || len(doc.Categories) == 0 {
		return ""
	}
	return doc.Categories[0].CategoryName
}
