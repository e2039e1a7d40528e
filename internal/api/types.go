package api

type User struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

func (u User) FullName() string {
	if u.Lastname == "" {
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Exercise struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Log struct {
	ID           string `json:"_id,omitempty"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	Reps         int    `json:"reps"`
	Count        int    `json:"count"`
}

type LogsFilter struct {
	Date       string
	Category   string
	CategoryID string
}

// LogUpdate is a partial update, nil fields are left untouched by the backend.
type LogUpdate struct {
	Reps  *int `json:"reps,omitempty"`
	Count *int `json:"count,omitempty"`
}

type GroupExercise struct {
	ID           string `json:"_id,omitempty"`
	ExerciseName string `json:"exerciseName"`
	Description  string `json:"description,omitempty"`
}

// Key identifies the exercise within its category: the persisted id when
// assigned, the name otherwise.
func (e GroupExercise) Key() string {
	if e.ID != "" {
		return e.ID
	}
	return e.ExerciseName
}

type GroupCategory struct {
	ID           string          `json:"_id,omitempty"`
	CategoryName string          `json:"categoryName"`
	Exercises    []GroupExercise `json:"exercises"`
}

type ExerciseGroupsDoc struct {
	ID         string          `json:"_id,omitempty"`
	UserID     string          `json:"userId,omitempty"`
	Categories []GroupCategory `json:"categories"`
}

// Clone returns a deep copy of the document.
func (d *ExerciseGroupsDoc) Clone() *ExerciseGroupsDoc {
	if d == nil {
		return nil
	}
	clone := &ExerciseGroupsDoc{
		ID:         d.ID,
		UserID:     d.UserID,
		Categories: make([]GroupCategory, 0, len(d.Categories)),
	}
	for _, c := range d.Categories {
		exercises := make([]GroupExercise, len(c.Exercises))
		copy(exercises, c.Exercises)
		clone.Categories = append(clone.Categories, GroupCategory{
			ID:           c.ID,
			CategoryName: c.CategoryName,
			Exercises:    exercises,
		})
	}
	return clone
}

// Category returns the category with the given name, or nil.
func (d *ExerciseGroupsDoc) Category(name string) *GroupCategory {
	if d == nil {
		return nil
	}
	for i := range d.Categories {
		if d.Categories[i].CategoryName == name {
			return &d.Categories[i]
		}
	}
	return nil
}

func (d *ExerciseGroupsDoc) ExercisesCount() int {
	if d == nil {
		return 0
	}
	count := 0
	for _, c := range d.Categories {
		count += len(c.Exercises)
	}
	return count
}

type Profile struct {
	Firstname    string   `json:"firstname"`
	Lastname     string   `json:"lastname"`
	Email        string   `json:"email"`
	Weight       *float64 `json:"weight,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	FitnessLevel string   `json:"fitnessLevel,omitempty"`
	Goals        []string `json:"goals"`

	WaterGoal      *float64 `json:"waterGoal,omitempty"`
	StepsGoal      *float64 `json:"stepsGoal,omitempty"`
	CalorieGoal    *float64 `json:"calorieGoal,omitempty"`
	SleepGoal      *float64 `json:"sleepGoal,omitempty"`
	BodyFatGoal    *float64 `json:"bodyFatGoal,omitempty"`
	MuscleMassGoal *float64 `json:"muscleMassGoal,omitempty"`
	WaistGoal      *float64 `json:"waistGoal,omitempty"`
	MeditationGoal *float64 `json:"meditationGoal,omitempty"`
	ReadingGoal    *float64 `json:"readingGoal,omitempty"`
	ScreenTimeGoal *float64 `json:"screenTimeGoal,omitempty"`

	TrackingPreferences map[string]bool `json:"trackingPreferences,omitempty"`
}

type Supplements struct {
	Multivitamin  bool    `json:"multivitamin"`
	ProteinPowder float64 `json:"proteinPowder"`
	VitaminD      bool    `json:"vitaminD"`
	Omega3        bool    `json:"omega3"`
	Other         string  `json:"other"`
}

type Habits struct {
	Meditation  float64 `json:"meditation"`
	Reading     float64 `json:"reading"`
	ScreenTime  float64 `json:"screenTime"`
	StressLevel int     `json:"stressLevel"`
}

// EssentialFields are the independently upsertable wellness metrics of one day.
type EssentialFields struct {
	WaterIntake        *float64     `json:"waterIntake,omitempty"`
	Steps              *int         `json:"steps,omitempty"`
	CaloriesConsumed   *int         `json:"caloriesConsumed,omitempty"`
	CaloriesBurned     *int         `json:"caloriesBurned,omitempty"`
	SleepHours         *float64     `json:"sleepHours,omitempty"`
	SleepQuality       *int         `json:"sleepQuality,omitempty"`
	Weight             *float64     `json:"weight,omitempty"`
	Mood               *int         `json:"mood,omitempty"`
	Energy             *int         `json:"energy,omitempty"`
	BodyFatPercentage  *float64     `json:"bodyFatPercentage,omitempty"`
	MuscleMass         *float64     `json:"muscleMass,omitempty"`
	WaistCircumference *float64     `json:"waistCircumference,omitempty"`
	Supplements        *Supplements `json:"supplements,omitempty"`
	Habits             *Habits      `json:"habits,omitempty"`
}

type LogEssential struct {
	ID     string `json:"_id,omitempty"`
	UserID string `json:"userId,omitempty"`
	Date   string `json:"date"`
	EssentialFields
}

type LogEssentialUpdate struct {
	Date string `json:"date"`
	EssentialFields
}

type DailyStats struct {
	Reps  float64 `json:"reps"`
	Count float64 `json:"count"`
}

type ExerciseStats struct {
	ExerciseName        string                `json:"exerciseName"`
	DailyData           map[string]DailyStats `json:"dailyData"`
	Totals              DailyStats            `json:"totals"`
	LifetimeAverage     DailyStats            `json:"lifetimeAverage"`
	DaysInPeriod        int                   `json:"daysInPeriod"`
	ExpectedFromAverage DailyStats            `json:"expectedFromAverage"`
}

type OverallStats struct {
	CurrentStreak     int        `json:"currentStreak"`
	LongestStreak     int        `json:"longestStreak"`
	TotalWorkoutDays  int        `json:"totalWorkoutDays"`
	TotalExercises    int        `json:"totalExercises"`
	PeriodTotal       DailyStats `json:"periodTotal"`
	LifetimeAverage   DailyStats `json:"lifetimeAverage"`
	ComparisonPercent float64    `json:"comparisonPercent"`
}

type EnhancedStatsResponse struct {
	Exercises []ExerciseStats `json:"exercises"`
	Overall   *OverallStats   `json:"overall"`
}

type StatsParams struct {
	Days       int
	Category   string
	CategoryID string
}

type AISuggestionRequest struct {
	UserInput      string             `json:"userInput"`
	ExistingGroups *ExerciseGroupsDoc `json:"existingGroups,omitempty"`
}

type AISuggestionResponse struct {
	Categories []GroupCategory `json:"categories"`
	Summary    string          `json:"summary,omitempty"`
}
