package essentials

import "github.com/2beens/fittrack/internal/api"

func (t *Tracker) fields() api.EssentialFields {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.record == nil {
		return api.EssentialFields{}
	}
	return t.record.EssentialFields
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// ratingOr treats unset and 0 ratings alike, ratings start at 1.
func ratingOr(v *int, def int) int {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

func (t *Tracker) WaterIntake() float64 {
	return floatOr(t.fields().WaterIntake, 0)
}

func (t *Tracker) Steps() int {
	return intOr(t.fields().Steps, 0)
}

func (t *Tracker) CaloriesConsumed() int {
	return intOr(t.fields().CaloriesConsumed, 0)
}

func (t *Tracker) CaloriesBurned() int {
	return intOr(t.fields().CaloriesBurned, 0)
}

func (t *Tracker) NetCalories() int {
	return t.CaloriesConsumed() - t.CaloriesBurned()
}

func (t *Tracker) SleepHours() float64 {
	return floatOr(t.fields().SleepHours, 0)
}

func (t *Tracker) SleepQuality() int {
	return ratingOr(t.fields().SleepQuality, defaultSleepQuality)
}

func (t *Tracker) Weight() float64 {
	return floatOr(t.fields().Weight, 0)
}

func (t *Tracker) Mood() int {
	return ratingOr(t.fields().Mood, defaultMood)
}

func (t *Tracker) Energy() int {
	return ratingOr(t.fields().Energy, defaultEnergy)
}

func (t *Tracker) BodyFatPercentage() float64 {
	return floatOr(t.fields().BodyFatPercentage, 0)
}

func (t *Tracker) MuscleMass() float64 {
	return floatOr(t.fields().MuscleMass, 0)
}

func (t *Tracker) WaistCircumference() float64 {
	return floatOr(t.fields().WaistCircumference, 0)
}

// Supplements returns the logged supplements, or the all-unchecked default.
func (t *Tracker) Supplements() api.Supplements {
	if s := t.fields().Supplements; s != nil {
		return *s
	}
	return api.Supplements{}
}

// Habits returns the logged habits, or the default with a medium stress level.
func (t *Tracker) Habits() api.Habits {
	if h := t.fields().Habits; h != nil {
		return *h
	}
	return api.Habits{StressLevel: defaultStressLevel}
}

// Current returns the logged value of metric, 0 when unset.
func (t *Tracker) Current(metric Metric) float64 {
	switch metric {
	case MetricWater:
		return t.WaterIntake()
	case MetricSteps:
		return float64(t.Steps())
	case MetricCalories:
		return float64(t.CaloriesConsumed())
	case MetricSleep:
		return t.SleepHours()
	case MetricBodyFat:
		return t.BodyFatPercentage()
	case MetricMuscleMass:
		return t.MuscleMass()
	case MetricWaist:
		return t.WaistCircumference()
	case MetricMeditation:
		return t.Habits().Meditation
	case MetricReading:
		return t.Habits().Reading
	case MetricScreenTime:
		return t.Habits().ScreenTime
	default:
		return 0
	}
}

// Goal returns the profile goal of metric when set, otherwise the default goal.
func (t *Tracker) Goal(metric Metric) float64 {
	t.mu.RLock()
	profile := t.profile
	t.mu.RUnlock()

	if profile != nil {
		if g := profileGoal(profile, metric); g != nil {
			return *g
		}
	}
	return t.goals[metric]
}

func profileGoal(p *api.Profile, metric Metric) *float64 {
	switch metric {
	case MetricWater:
		return p.WaterGoal
	case MetricSteps:
		return p.StepsGoal
	case MetricCalories:
		return p.CalorieGoal
	case MetricSleep:
		return p.SleepGoal
	case MetricBodyFat:
		return p.BodyFatGoal
	case MetricMuscleMass:
		return p.MuscleMassGoal
	case MetricWaist:
		return p.WaistGoal
	case MetricMeditation:
		return p.MeditationGoal
	case MetricReading:
		return p.ReadingGoal
	case MetricScreenTime:
		return p.ScreenTimeGoal
	default:
		return nil
	}
}

func (t *Tracker) MetricProgress(metric Metric) float64 {
	return Progress(t.Current(metric), t.Goal(metric))
}

// ShouldShowSection follows the profile tracking preferences, or the default
// visibility table when the profile has none. Unknown sections are hidden.
func (t *Tracker) ShouldShowSection(section string) bool {
	t.mu.RLock()
	profile := t.profile
	t.mu.RUnlock()

	if profile != nil && profile.TrackingPreferences != nil {
		return profile.TrackingPreferences[section]
	}
	return t.sections[section]
}
