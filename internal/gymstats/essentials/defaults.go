package essentials

type Metric string

const (
	MetricWater      Metric = "water"
	MetricSteps      Metric = "steps"
	MetricCalories   Metric = "calories"
	MetricSleep      Metric = "sleep"
	MetricBodyFat    Metric = "bodyFat"
	MetricMuscleMass Metric = "muscleMass"
	MetricWaist      Metric = "waist"
	MetricMeditation Metric = "meditation"
	MetricReading    Metric = "reading"
	MetricScreenTime Metric = "screenTime"
)

// AllMetrics lists the metrics that have a goal, in display order.
var AllMetrics = []Metric{
	MetricWater,
	MetricSteps,
	MetricCalories,
	MetricSleep,
	MetricBodyFat,
	MetricMuscleMass,
	MetricWaist,
	MetricMeditation,
	MetricReading,
	MetricScreenTime,
}

// DefaultGoals apply when the profile has no explicit goal for a metric.
var DefaultGoals = map[Metric]float64{
	MetricWater:      3,
	MetricSteps:      10000,
	MetricCalories:   2000,
	MetricSleep:      8,
	MetricBodyFat:    15,
	MetricMuscleMass: 30,
	MetricWaist:      80,
	MetricMeditation: 10,
	MetricReading:    30,
	MetricScreenTime: 8,
}

const (
	SectionWaterIntake      = "waterIntake"
	SectionSteps            = "steps"
	SectionCalories         = "calories"
	SectionSleep            = "sleep"
	SectionWeight           = "weight"
	SectionMood             = "mood"
	SectionEnergy           = "energy"
	SectionBodyMeasurements = "bodyMeasurements"
	SectionSupplements      = "supplements"
	SectionHabits           = "habits"
)

var AllSections = []string{
	SectionWaterIntake,
	SectionSteps,
	SectionCalories,
	SectionSleep,
	SectionWeight,
	SectionMood,
	SectionEnergy,
	SectionBodyMeasurements,
	SectionSupplements,
	SectionHabits,
}

// DefaultSectionVisibility applies when the profile has no tracking preferences.
var DefaultSectionVisibility = map[string]bool{
	SectionWaterIntake:      true,
	SectionSteps:            true,
	SectionCalories:         false,
	SectionSleep:            false,
	SectionWeight:           false,
	SectionMood:             false,
	SectionEnergy:           false,
	SectionBodyMeasurements: false,
	SectionSupplements:      false,
	SectionHabits:           false,
}

const (
	WaterStep = 0.1
	StepsStep = 500

	defaultSleepQuality = 3
	defaultMood         = 5
	defaultEnergy       = 5
	defaultStressLevel  = 5
)
