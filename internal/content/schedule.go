package content

// SplitType classifies how training days are divided between muscle groups.
type SplitType string

const (
	SplitFullBody      SplitType = "full_body"
	SplitUpperLower    SplitType = "upper_lower"
	SplitPushPullLegs  SplitType = "push_pull_legs"
	SplitBodyPartSplit SplitType = "body_part_split"
)

// Split describes one workout-scheduling strategy.
type Split struct {
	Type        SplitType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

const defaultDays = "2-3"

var scheduleDays = map[string][]string{
	"2-3": {"Monday", "Wednesday", "Friday"},
	"3-4": {"Monday", "Wednesday", "Friday", "Saturday"},
	"4-5": {"Monday", "Tuesday", "Thursday", "Friday"},
	"5-6": {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
}

var splits = map[SplitType]Split{
	SplitFullBody: {
		Type:        SplitFullBody,
		Name:        "Full Body",
		Description: "Train every major muscle group each session with a rest day in between.",
	},
	SplitUpperLower: {
		Type:        SplitUpperLower,
		Name:        "Upper / Lower",
		Description: "Alternate upper-body and lower-body sessions so each half gets trained twice a week.",
	},
	SplitPushPullLegs: {
		Type:        SplitPushPullLegs,
		Name:        "Push / Pull / Legs",
		Description: "Rotate pushing muscles, pulling muscles and legs for more volume per group.",
	},
	SplitBodyPartSplit: {
		Type:        SplitBodyPartSplit,
		Name:        "Body Part Split",
		Description: "Give each muscle group its own day for maximum focus and recovery.",
	},
}

var splitForDays = map[string]SplitType{
	"2-3": SplitFullBody,
	"3-4": SplitUpperLower,
	"4-5": SplitPushPullLegs,
	"5-6": SplitBodyPartSplit,
}

// Ordered rotation of workout names per split.
var rotations = map[SplitType][]string{
	SplitFullBody:      {"Full Body A", "Full Body B", "Full Body C"},
	SplitUpperLower:    {"Upper Body", "Lower Body"},
	SplitPushPullLegs:  {"Push Day", "Pull Day", "Leg Day"},
	SplitBodyPartSplit: {"Chest", "Back", "Legs", "Shoulders", "Arms", "Core & Conditioning"},
}

// ScheduleDays returns the weekdays to train on for a days-available bucket.
// Unknown buckets get the 3-day schedule.
func ScheduleDays(daysAvailable string) []string {
	days, ok := scheduleDays[daysAvailable]
	if !ok {
		days = scheduleDays[defaultDays]
	}
	out := make([]string, len(days))
	copy(out, days)
	return out
}

// WorkoutSplit picks the split strategy for a days-available bucket.
func WorkoutSplit(daysAvailable string) Split {
	t, ok := splitForDays[daysAvailable]
	if !ok {
		t = splitForDays[defaultDays]
	}
	return splits[t]
}

// WorkoutForDay names the workout for the dayIndex-th training day. An empty
// split is derived from daysAvailable.
func WorkoutForDay(dayIndex int, daysAvailable string, split SplitType) string {
	if split == "" {
		split = WorkoutSplit(daysAvailable).Type
	}
	rotation, ok := rotations[split]
	if !ok {
		rotation = rotations[SplitFullBody]
	}
	n := len(rotation)
	return rotation[((dayIndex%n)+n)%n]
}
