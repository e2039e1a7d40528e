package essentials

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=essentials_test

type essentialsClient interface {
	GetLogEssential(ctx context.Context, date string) (*api.LogEssential, error)
	CreateOrUpdateLogEssential(ctx context.Context, update api.LogEssentialUpdate) (*api.LogEssential, error)
	GetProfile(ctx context.Context) (*api.Profile, error)
}

// Progress is current/goal as a percentage capped at 100, 0 when goal is 0.
func Progress(current, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return math.Min(100, current/goal*100)
}

// Tracker holds the daily essentials record of the selected date.
//
// Updates are upserts of a single field. When several are in flight, the
// response of the latest request wins: a response older than one already
// applied is dropped. Increments build on the last requested value so rapid
// taps accumulate.
type Tracker struct {
	viewstate.Notifier

	client   essentialsClient
	goals    map[Metric]float64
	sections map[string]bool

	mu      sync.RWMutex
	date    string
	record  *api.LogEssential
	profile *api.Profile

	seq      uint64 // last issued update
	applied  uint64 // last applied update
	inflight int

	requestedWater *float64
	requestedSteps *int
}

type Option func(t *Tracker)

func WithDefaultGoals(goals map[Metric]float64) Option {
	return func(t *Tracker) {
		t.goals = goals
	}
}

func WithDefaultSections(sections map[string]bool) Option {
	return func(t *Tracker) {
		t.sections = sections
	}
}

// NewTracker starts at date, today when empty.
func NewTracker(client essentialsClient, date string, opts ...Option) *Tracker {
	if date == "" {
		date = pkg.Today()
	}
	t := &Tracker{
		client:   client,
		date:     date,
		goals:    DefaultGoals,
		sections: DefaultSectionVisibility,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load fetches the profile (goals, tracking preferences) and the record of the date.
// A failed profile fetch is logged only, default goals and sections stay in place.
func (t *Tracker) Load(ctx context.Context) error {
	profile, err := t.client.GetProfile(ctx)
	if err != nil {
		log.Errorf("failed to load user profile, using default goals: %s", err)
	} else {
		t.mu.Lock()
		t.profile = profile
		t.mu.Unlock()
		t.Notify()
	}

	return t.loadRecord(ctx)
}

func (t *Tracker) loadRecord(ctx context.Context) error {
	date := t.Date()
	record, err := t.client.GetLogEssential(ctx, date)
	if err != nil {
		log.Errorf("failed to load log essential for [%s]: %s", date, err)
		return fmt.Errorf("load log essential: %w", err)
	}

	t.mu.Lock()
	if t.date == date {
		t.record = record
	}
	t.mu.Unlock()
	t.Notify()
	return nil
}

func (t *Tracker) Date() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.date
}

func (t *Tracker) SetDate(ctx context.Context, date string) error {
	if err := pkg.ValidateDate(date); err != nil {
		return err
	}

	t.mu.Lock()
	t.date = date
	t.record = nil
	t.requestedWater = nil
	t.requestedSteps = nil
	t.mu.Unlock()
	t.Notify()

	return t.loadRecord(ctx)
}

// Record returns a copy of the current record, nil when nothing is logged for the date.
func (t *Tracker) Record() *api.LogEssential {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.record == nil {
		return nil
	}
	record := *t.record
	return &record
}

func (t *Tracker) Profile() *api.Profile {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.profile
}

// update upserts fields for the selected date and, unless a newer response was
// already applied, replaces the whole local record with the response.
func (t *Tracker) update(ctx context.Context, field string, fields api.EssentialFields) (_ *api.LogEssential, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "essentials.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("field", field))

	t.mu.Lock()
	t.seq++
	seq := t.seq
	date := t.date
	t.inflight++
	if fields.WaterIntake != nil {
		v := *fields.WaterIntake
		t.requestedWater = &v
	}
	if fields.Steps != nil {
		v := *fields.Steps
		t.requestedSteps = &v
	}
	t.mu.Unlock()

	record, err := t.client.CreateOrUpdateLogEssential(ctx, api.LogEssentialUpdate{
		Date:            date,
		EssentialFields: fields,
	})

	t.mu.Lock()
	t.inflight--
	if t.inflight == 0 {
		t.requestedWater = nil
		t.requestedSteps = nil
	}
	applied := false
	if err == nil && seq > t.applied && t.date == date {
		t.record = record
		t.applied = seq
		applied = true
	}
	t.mu.Unlock()

	if err != nil {
		log.Errorf("failed to update %s: %s", field, err)
		return nil, fmt.Errorf("update %s: %w", field, err)
	}
	if !applied {
		log.Debugf("dropping stale %s response [seq %d]", field, seq)
		return record, nil
	}

	t.Notify()
	return record, nil
}

func (t *Tracker) UpdateWaterIntake(ctx context.Context, liters float64) (*api.LogEssential, error) {
	return t.update(ctx, "water intake", api.EssentialFields{WaterIntake: &liters})
}

func (t *Tracker) UpdateSteps(ctx context.Context, steps int) (*api.LogEssential, error) {
	return t.update(ctx, "steps", api.EssentialFields{Steps: &steps})
}

func (t *Tracker) UpdateCaloriesConsumed(ctx context.Context, calories int) (*api.LogEssential, error) {
	return t.update(ctx, "calories consumed", api.EssentialFields{CaloriesConsumed: &calories})
}

func (t *Tracker) UpdateCaloriesBurned(ctx context.Context, calories int) (*api.LogEssential, error) {
	return t.update(ctx, "calories burned", api.EssentialFields{CaloriesBurned: &calories})
}

func (t *Tracker) UpdateSleepHours(ctx context.Context, hours float64) (*api.LogEssential, error) {
	return t.update(ctx, "sleep hours", api.EssentialFields{SleepHours: &hours})
}

func (t *Tracker) UpdateSleepQuality(ctx context.Context, quality int) (*api.LogEssential, error) {
	return t.update(ctx, "sleep quality", api.EssentialFields{SleepQuality: &quality})
}

func (t *Tracker) UpdateWeight(ctx context.Context, weight float64) (*api.LogEssential, error) {
	return t.update(ctx, "weight", api.EssentialFields{Weight: &weight})
}

func (t *Tracker) UpdateMood(ctx context.Context, mood int) (*api.LogEssential, error) {
	return t.update(ctx, "mood", api.EssentialFields{Mood: &mood})
}

func (t *Tracker) UpdateEnergy(ctx context.Context, energy int) (*api.LogEssential, error) {
	return t.update(ctx, "energy", api.EssentialFields{Energy: &energy})
}

func (t *Tracker) UpdateBodyFatPercentage(ctx context.Context, percentage float64) (*api.LogEssential, error) {
	return t.update(ctx, "body fat percentage", api.EssentialFields{BodyFatPercentage: &percentage})
}

func (t *Tracker) UpdateMuscleMass(ctx context.Context, mass float64) (*api.LogEssential, error) {
	return t.update(ctx, "muscle mass", api.EssentialFields{MuscleMass: &mass})
}

func (t *Tracker) UpdateWaistCircumference(ctx context.Context, cm float64) (*api.LogEssential, error) {
	return t.update(ctx, "waist circumference", api.EssentialFields{WaistCircumference: &cm})
}

func (t *Tracker) UpdateSupplements(ctx context.Context, supplements api.Supplements) (*api.LogEssential, error) {
	return t.update(ctx, "supplements", api.EssentialFields{Supplements: &supplements})
}

func (t *Tracker) UpdateHabits(ctx context.Context, habits api.Habits) (*api.LogEssential, error) {
	return t.update(ctx, "habits", api.EssentialFields{Habits: &habits})
}

func (t *Tracker) ToggleMultivitamin(ctx context.Context, checked bool) (*api.LogEssential, error) {
	s := t.Supplements()
	s.Multivitamin = checked
	return t.UpdateSupplements(ctx, s)
}

func (t *Tracker) ToggleVitaminD(ctx context.Context, checked bool) (*api.LogEssential, error) {
	s := t.Supplements()
	s.VitaminD = checked
	return t.UpdateSupplements(ctx, s)
}

func (t *Tracker) ToggleOmega3(ctx context.Context, checked bool) (*api.LogEssential, error) {
	s := t.Supplements()
	s.Omega3 = checked
	return t.UpdateSupplements(ctx, s)
}

func (t *Tracker) UpdateProteinPowder(ctx context.Context, grams float64) (*api.LogEssential, error) {
	s := t.Supplements()
	s.ProteinPowder = grams
	return t.UpdateSupplements(ctx, s)
}

func (t *Tracker) UpdateOtherSupplements(ctx context.Context, other string) (*api.LogEssential, error) {
	s := t.Supplements()
	s.Other = other
	return t.UpdateSupplements(ctx, s)
}

func (t *Tracker) UpdateMeditation(ctx context.Context, minutes float64) (*api.LogEssential, error) {
	h := t.Habits()
	h.Meditation = minutes
	return t.UpdateHabits(ctx, h)
}

func (t *Tracker) UpdateReading(ctx context.Context, minutes float64) (*api.LogEssential, error) {
	h := t.Habits()
	h.Reading = minutes
	return t.UpdateHabits(ctx, h)
}

func (t *Tracker) UpdateScreenTime(ctx context.Context, hours float64) (*api.LogEssential, error) {
	h := t.Habits()
	h.ScreenTime = hours
	return t.UpdateHabits(ctx, h)
}

func (t *Tracker) UpdateStressLevel(ctx context.Context, level int) (*api.LogEssential, error) {
	h := t.Habits()
	h.StressLevel = level
	return t.UpdateHabits(ctx, h)
}

// waterBase is the last requested water value while updates are in flight, else the record value.
func (t *Tracker) waterBase() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.requestedWater != nil {
		return *t.requestedWater
	}
	if t.record != nil && t.record.WaterIntake != nil {
		return *t.record.WaterIntake
	}
	return 0
}

func (t *Tracker) stepsBase() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.requestedSteps != nil {
		return *t.requestedSteps
	}
	if t.record != nil && t.record.Steps != nil {
		return *t.record.Steps
	}
	return 0
}

func (t *Tracker) IncrementWater(ctx context.Context) (*api.LogEssential, error) {
	return t.UpdateWaterIntake(ctx, pkg.RoundTo(t.waterBase()+WaterStep, 1))
}

// DecrementWater does nothing at 0 and never goes below it.
func (t *Tracker) DecrementWater(ctx context.Context) (*api.LogEssential, error) {
	current := t.waterBase()
	if current <= 0 {
		return nil, nil
	}
	return t.UpdateWaterIntake(ctx, math.Max(0, pkg.RoundTo(current-WaterStep, 1)))
}

func (t *Tracker) IncrementSteps(ctx context.Context) (*api.LogEssential, error) {
	return t.UpdateSteps(ctx, t.stepsBase()+StepsStep)
}

// DecrementSteps does nothing at 0 and never goes below it.
func (t *Tracker) DecrementSteps(ctx context.Context) (*api.LogEssential, error) {
	current := t.stepsBase()
	if current <= 0 {
		return nil, nil
	}
	next := current - StepsStep
	if next < 0 {
		next = 0
	}
	return t.UpdateSteps(ctx, next)
}
