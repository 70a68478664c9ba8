// Package content maps questionnaire answers to display labels, workout
// splits, schedules and exercise suggestions. Everything here is a pure
// lookup: no state, no I/O.
package content

// Enumerated answer values, in the order the questionnaire presents them.
var (
	Genders        = []string{"male", "female"}
	Goals          = []string{"fat_loss", "muscle_building", "body_toning", "mobility", "strength", "general_fitness"}
	ActivityLevels = []string{"beginner", "intermediate", "advanced"}
	DayBuckets     = []string{"2-3", "3-4", "4-5", "5-6"}
	Methods        = []string{"home_workouts", "gym_training", "calisthenics"}
	Locations      = []string{LocationHome, LocationGym}
	Commitments    = []string{"low", "medium", "high"}
	Programs       = []string{"21_day_abs", "12_week_muscle", "strength_training"}
	HomeEquipment  = []string{"dumbbells", "bands", "bodyweight"}
)

const (
	LocationHome = "home"
	LocationGym  = "gym"
)

var genderLabels = map[string]string{
	"male":   "Male",
	"female": "Female",
}

var goalLabels = map[string]string{
	"fat_loss":        "Fat Loss",
	"muscle_building": "Muscle Building",
	"body_toning":     "Body Toning",
	"mobility":        "Mobility",
	"strength":        "Strength",
	"general_fitness": "General Fitness",
}

var programLabels = map[string]string{
	"21_day_abs":        "21 Days Abs Challenge",
	"12_week_muscle":    "12 Week Muscle Building Program",
	"strength_training": "Strength Training Workout",
}

// Audience shown under each program in the selection list.
var programLevels = map[string]string{
	"21_day_abs":        "Beginner Friendly",
	"12_week_muscle":    "Intermediate",
	"strength_training": "Advanced",
}

var activityLabels = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

var daysLabels = map[string]string{
	"2-3": "2-3 days",
	"3-4": "3-4 days",
	"4-5": "4-5 days",
	"5-6": "5-6 days",
}

var methodLabels = map[string]string{
	"home_workouts": "Home Workouts",
	"gym_training":  "Gym Training",
	"calisthenics":  "Calisthenics",
}

var commitmentLabels = map[string]string{
	"low":    "Just Curious",
	"medium": "Ready to Start",
	"high":   "I will do whatever it takes",
}

var locationLabels = map[string]string{
	LocationHome: "Home Workout",
	LocationGym:  "Gym Training",
}

var equipmentLabels = map[string]string{
	"dumbbells":  "Dumbbells",
	"bands":      "Resistance Bands",
	"bodyweight": "Bodyweight Only",
}

func GenderLabel(v string) string     { return label(genderLabels, v) }
func GoalLabel(v string) string       { return label(goalLabels, v) }
func ProgramLabel(v string) string    { return label(programLabels, v) }
func ProgramLevel(v string) string    { return label(programLevels, v) }
func ActivityLabel(v string) string   { return label(activityLabels, v) }
func DaysLabel(v string) string       { return label(daysLabels, v) }
func MethodLabel(v string) string     { return label(methodLabels, v) }
func CommitmentLabel(v string) string { return label(commitmentLabels, v) }
func LocationLabel(v string) string   { return label(locationLabels, v) }
func EquipmentLabel(v string) string  { return label(equipmentLabels, v) }

// label falls back to the raw value so an unmapped key still renders.
func label(labels map[string]string, v string) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return v
}
