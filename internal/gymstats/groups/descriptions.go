package groups

import "strings"

// DefaultExerciseDescriptions is used for exercises without an explicit description.
// Keys are lower case exercise names.
var DefaultExerciseDescriptions = map[string]string{
	"push-ups":          "Chest, shoulders and triceps. Keep the body in a straight line from head to heels.",
	"pull-ups":          "Back and biceps. Pull until the chin clears the bar, lower with control.",
	"squats":            "Quads, glutes and hamstrings. Push the hips back and keep the chest up.",
	"lunges":            "Legs and glutes. Step forward and lower until both knees are at 90 degrees.",
	"plank":             "Core stability. Hold a straight line and keep the hips from sagging.",
	"crunches":          "Upper abs. Curl the shoulders off the floor without pulling on the neck.",
	"bicep curls":       "Biceps. Keep the elbows close to the torso through the whole movement.",
	"tricep dips":       "Triceps and chest. Lower until the elbows reach 90 degrees.",
	"deadlift":          "Posterior chain. Hinge at the hips and keep the bar close to the legs.",
	"bench press":       "Chest, shoulders and triceps. Lower the bar to mid chest and press up.",
	"burpees":           "Full body conditioning. Squat, kick back to a plank, return and jump.",
	"mountain climbers": "Core and cardio. Drive the knees to the chest in a plank position.",
	"leg raises":        "Lower abs. Keep the lower back pressed to the floor while raising the legs.",
	"russian twists":    "Obliques. Rotate the torso side to side with the feet off the floor.",
	"glute bridges":     "Glutes and hamstrings. Drive through the heels and squeeze at the top.",
	"rows":              "Upper back. Pull the elbows back and squeeze the shoulder blades together.",
	"shoulder press":    "Shoulders and triceps. Press overhead without arching the lower back.",
	"calf raises":       "Calves. Rise onto the toes, pause, lower slowly.",
	"wall sit":          "Quads endurance. Hold with the thighs parallel to the floor.",
	"superman":          "Lower back. Lift arms and legs off the floor and hold briefly.",
}

func lookupDescription(table map[string]string, exerciseName string) string {
	return table[strings.ToLower(strings.TrimSpace(exerciseName))]
}
