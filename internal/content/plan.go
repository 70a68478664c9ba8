package content

import "fmt"

var goalTitles = map[string]string{
	"fat_loss":        "Fat Loss Protocol",
	"muscle_building": "Muscle Building Program",
	"body_toning":     "Body Toning Transformation",
	"mobility":        "Mobility & Flexibility",
	"strength":        "Strength Training Program",
	"general_fitness": "General Fitness Plan",
}

// PlanContent is the headline of a personalised plan.
type PlanContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PlanInput is the subset of answers a plan is derived from.
type PlanInput struct {
	Goal          string
	ActivityLevel string
	DaysAvailable string
	Location      string
	Equipment     []string
}

// DayPlan is one training day in a plan.
type DayPlan struct {
	Day       string   `json:"day"`
	Workout   string   `json:"workout"`
	Exercises []string `json:"exercises"`
}

// Plan is the full results-page payload.
type Plan struct {
	PlanContent
	Goal      string    `json:"goal"`
	Level     string    `json:"level"`
	Days      string    `json:"days"`
	Location  string    `json:"location"`
	Equipment []string  `json:"equipment"`
	Split     Split     `json:"split"`
	Schedule  []DayPlan `json:"schedule"`
}

// PlanFor builds the plan headline for a goal at a location.
func PlanFor(goal, location string) PlanContent {
	title := label(goalTitles, goal)

	where := "gym workouts"
	if location == LocationHome {
		where = "home training"
	}

	return PlanContent{
		Title:       fmt.Sprintf("%s - %s", title, LocationLabel(location)),
		Description: fmt.Sprintf("Your personalized %s designed for %s.", title, where),
	}
}

// BuildPlan assembles the whole plan from answers.
func BuildPlan(in PlanInput) Plan {
	split := WorkoutSplit(in.DaysAvailable)
	days := ScheduleDays(in.DaysAvailable)

	schedule := make([]DayPlan, 0, len(days))
	for i, day := range days {
		workout := WorkoutForDay(i, in.DaysAvailable, split.Type)
		schedule = append(schedule, DayPlan{
			Day:       day,
			Workout:   workout,
			Exercises: ExerciseSuggestions(workout, in.Location, in.Equipment),
		})
	}

	equipment := AvailableEquipment(in.Location, in.Equipment)
	labels := make([]string, 0, len(equipment))
	for _, e := range equipment {
		labels = append(labels, EquipmentLabel(e))
	}

	return Plan{
		PlanContent: PlanFor(in.Goal, in.Location),
		Goal:        GoalLabel(in.Goal),
		Level:       ActivityLabel(in.ActivityLevel),
		Days:        DaysLabel(in.DaysAvailable),
		Location:    LocationLabel(in.Location),
		Equipment:   labels,
		Split:       split,
		Schedule:    schedule,
	}
}
