package content

import "strings"

// gymMachineKeywords mark exercises that need commercial gym machines.
var gymMachineKeywords = []string{
	"cable",
	"machine",
	"smith",
	"leg press",
	"lat pulldown",
	"seated row",
	"chest press machine",
	"leg extension",
	"leg curl",
	"hack squat",
	"cable fly",
}

var homeFriendly = map[string]bool{
	"dumbbells":  true,
	"bands":      true,
	"bodyweight": true,
}

var exercisePools = map[string][]string{
	"Full Body A":         {"Goblet Squat", "Push-Up", "Dumbbell Row", "Glute Bridge", "Plank", "Leg Press", "Lat Pulldown"},
	"Full Body B":         {"Reverse Lunge", "Dumbbell Shoulder Press", "Band Pull-Apart", "Dumbbell Romanian Deadlift", "Dead Bug", "Seated Row", "Chest Press Machine"},
	"Full Body C":         {"Bodyweight Squat", "Incline Push-Up", "Inverted Row", "Step-Up", "Mountain Climber", "Cable Woodchop", "Leg Extension"},
	"Upper Body":          {"Push-Up", "Dumbbell Bench Press", "Dumbbell Row", "Dumbbell Shoulder Press", "Band Face Pull", "Lat Pulldown", "Seated Row", "Cable Fly"},
	"Lower Body":          {"Goblet Squat", "Bulgarian Split Squat", "Glute Bridge", "Calf Raise", "Leg Press", "Leg Curl", "Smith Machine Squat"},
	"Push Day":            {"Push-Up", "Dumbbell Bench Press", "Incline Dumbbell Press", "Dumbbell Shoulder Press", "Lateral Raise", "Bench Dips", "Cable Fly", "Chest Press Machine"},
	"Pull Day":            {"Pull-Up", "Dumbbell Row", "Band Pull-Apart", "Hammer Curl", "Superman Hold", "Lat Pulldown", "Seated Row", "Cable Face Pull"},
	"Leg Day":             {"Goblet Squat", "Walking Lunge", "Dumbbell Romanian Deadlift", "Glute Bridge", "Calf Raise", "Leg Press", "Hack Squat", "Leg Extension", "Leg Curl"},
	"Chest":               {"Push-Up", "Dumbbell Bench Press", "Incline Dumbbell Press", "Dumbbell Fly", "Cable Fly", "Chest Press Machine"},
	"Back":                {"Pull-Up", "Dumbbell Row", "Band Pull-Apart", "Superman Hold", "Lat Pulldown", "Seated Row"},
	"Legs":                {"Goblet Squat", "Bulgarian Split Squat", "Glute Bridge", "Calf Raise", "Leg Press", "Hack Squat", "Leg Curl"},
	"Shoulders":           {"Dumbbell Shoulder Press", "Lateral Raise", "Band Face Pull", "Pike Push-Up", "Cable Lateral Raise", "Shoulder Press Machine"},
	"Arms":                {"Dumbbell Curl", "Hammer Curl", "Bench Dips", "Overhead Dumbbell Extension", "Band Curl", "Cable Tricep Pushdown"},
	"Core & Conditioning": {"Plank", "Dead Bug", "Mountain Climber", "Burpee", "Bicycle Crunch", "Cable Crunch"},
}

const defaultWorkout = "Full Body A"

// AvailableEquipment returns the equipment usable at location. Gym training
// keeps the list as given; home training drops anything not home-friendly.
func AvailableEquipment(location string, equipment []string) []string {
	out := make([]string, 0, len(equipment))
	for _, e := range equipment {
		if location == LocationHome && !homeFriendly[e] {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ExerciseSuggestions returns the exercise pool for a workout name. Home
// training removes every exercise that needs a gym machine and, when the
// owned equipment is known, every exercise that needs a home tool not in it.
// Unknown workouts use the first full-body pool.
func ExerciseSuggestions(workout, location string, equipment []string) []string {
	pool, ok := exercisePools[workout]
	if !ok {
		pool = exercisePools[defaultWorkout]
	}

	var owned map[string]bool
	if location == LocationHome && len(equipment) > 0 {
		owned = make(map[string]bool, len(equipment))
		for _, e := range AvailableEquipment(location, equipment) {
			owned[e] = true
		}
	}

	out := make([]string, 0, len(pool))
	for _, name := range pool {
		if location == LocationHome && needsMachine(name) {
			continue
		}
		if owned != nil && !hasTool(owned, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// homeTools maps a home-friendly equipment tag to the word naming it in
// exercise names.
var homeTools = map[string]string{
	"dumbbells": "dumbbell",
	"bands":     "band",
}

func hasTool(owned map[string]bool, exercise string) bool {
	lower := strings.ToLower(exercise)
	for tag, word := range homeTools {
		if strings.Contains(lower, word) && !owned[tag] {
			return false
		}
	}
	return true
}

// Workouts lists every workout name with an exercise pool.
func Workouts() []string {
	var names []string
	for _, rotation := range []SplitType{SplitFullBody, SplitUpperLower, SplitPushPullLegs, SplitBodyPartSplit} {
		names = append(names, rotations[rotation]...)
	}
	return names
}

func needsMachine(exercise string) bool {
	lower := strings.ToLower(exercise)
	for _, kw := range gymMachineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
