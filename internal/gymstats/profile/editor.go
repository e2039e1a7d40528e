package profile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	SectionPersonal = "personal"
	SectionBody     = "body"
	SectionFitness  = "fitness"
	SectionGoals    = "goals"
)

var (
	ErrSaveInProgress = errors.New("profile save already in progress")
	ErrGoalOutOfRange = errors.New("goal index out of range")
	ErrNoBMI          = errors.New("bmi needs positive weight and height")
	defaultExpanded   = []string{SectionPersonal}
)

//go:generate mockgen -source=$GOFILE -destination=editor_mocks_test.go -package=profile_test

type profileClient interface {
	GetProfile(ctx context.Context) (*api.Profile, error)
	UpdateProfile(ctx context.Context, profile api.Profile) (*api.Profile, error)
}

// Editor is a local edit buffer for the user profile. Save always sends the whole buffer.
type Editor struct {
	viewstate.Notifier

	client  profileClient
	toaster viewstate.Toaster

	mu       sync.RWMutex
	profile  api.Profile
	saving   bool
	expanded map[string]bool
}

func NewEditor(client profileClient, toaster viewstate.Toaster) *Editor {
	if toaster == nil {
		toaster = viewstate.LogToaster{}
	}
	expanded := map[string]bool{}
	for _, s := range defaultExpanded {
		expanded[s] = true
	}
	return &Editor{
		client:   client,
		toaster:  toaster,
		profile:  api.Profile{Goals: []string{}},
		expanded: expanded,
	}
}

func (e *Editor) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.editor.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := e.client.GetProfile(ctx)
	if err != nil {
		log.Errorf("failed to load profile: %s", err)
		e.toaster.Error("Error", "Failed to load profile data.")
		return fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		p = &api.Profile{}
	}

	e.mu.Lock()
	e.profile = Clone(*p)
	e.mu.Unlock()
	e.Notify()
	return nil
}

// Profile returns a copy of the edit buffer.
func (e *Editor) Profile() api.Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Clone(e.profile)
}

// Update applies fn to the edit buffer.
func (e *Editor) Update(fn func(p *api.Profile)) {
	e.mu.Lock()
	p := Clone(e.profile)
	fn(&p)
	e.profile = p
	e.mu.Unlock()
	e.Notify()
}

func (e *Editor) Saving() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.saving
}

// BMI is weight(kg) / height(m)^2 rounded to one decimal.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrNoBMI
	}
	heightM := heightCm / 100
	return pkg.RoundTo(weightKg/(heightM*heightM), 1), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMI of the edit buffer; ok is false while weight or height is missing.
func (e *Editor) BMI() (bmi float64, ok bool) {
	p := e.Profile()
	if p.Weight == nil || p.Height == nil {
		return 0, false
	}
	bmi, err := BMI(*p.Weight, *p.Height)
	if err != nil {
		return 0, false
	}
	return bmi, true
}

func (e *Editor) BMICategory() (string, bool) {
	bmi, ok := e.BMI()
	if !ok {
		return "", false
	}
	return BMICategory(bmi), true
}

func (e *Editor) AddGoal() {
	e.Update(func(p *api.Profile) {
		p.Goals = append(p.Goals, "")
	})
}

func (e *Editor) RemoveGoal(i int) error {
	return e.updateGoals(i, func(goals []string) []string {
		return append(goals[:i], goals[i+1:]...)
	})
}

func (e *Editor) UpdateGoal(i int, value string) error {
	return e.updateGoals(i, func(goals []string) []string {
		goals[i] = value
		return goals
	})
}

func (e *Editor) updateGoals(i int, fn func(goals []string) []string) error {
	e.mu.Lock()
	if i < 0 || i >= len(e.profile.Goals) {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrGoalOutOfRange, i)
	}
	p := Clone(e.profile)
	p.Goals = fn(p.Goals)
	e.profile = p
	e.mu.Unlock()
	e.Notify()
	return nil
}

// Save sends the whole profile with blank goals filtered out.
func (e *Editor) Save(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.editor.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInProgress
	}
	e.saving = true
	p := Clone(e.profile)
	e.mu.Unlock()
	e.Notify()

	p.Goals = nonBlank(p.Goals)
	_, err = e.client.UpdateProfile(ctx, p)

	e.mu.Lock()
	e.saving = false
	e.mu.Unlock()
	e.Notify()

	if err != nil {
		log.Errorf("failed to update profile: %s", err)
		e.toaster.Error("Error", "Failed to update profile. Please try again.")
		return fmt.Errorf("update profile: %w", err)
	}

	e.toaster.Success("Success", "Profile updated successfully!")
	return nil
}

func (e *Editor) ToggleSection(section string) {
	e.mu.Lock()
	e.expanded[section] = !e.expanded[section]
	e.mu.Unlock()
	e.Notify()
}

func (e *Editor) IsExpanded(section string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.expanded[section]
}

func nonBlank(goals []string) []string {
	filtered := make([]string, 0, len(goals))
	for _, g := range goals {
		if strings.TrimSpace(g) != "" {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// Clone returns a deep copy of p.
func Clone(p api.Profile) api.Profile {
	c := p
	if p.Goals != nil {
		c.Goals = append([]string{}, p.Goals...)
	}
	if p.TrackingPreferences != nil {
		c.TrackingPreferences = maps.Clone(p.TrackingPreferences)
	}
	c.Weight = clonePtr(p.Weight)
	c.Height = clonePtr(p.Height)
	c.Age = clonePtr(p.Age)
	for _, g := range []**float64{
		&c.WaterGoal, &c.StepsGoal, &c.CalorieGoal, &c.SleepGoal, &c.BodyFatGoal,
		&c.MuscleMassGoal, &c.WaistGoal, &c.MeditationGoal, &c.ReadingGoal, &c.ScreenTimeGoal,
	} {
		*g = clonePtr(*g)
	}
	return c
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
