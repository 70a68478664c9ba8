package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_CoverEveryEnumValue(t *testing.T) {
	checks := []struct {
		values []string
		fn     func(string) string
	}{
		{Genders, GenderLabel},
		{Goals, GoalLabel},
		{ActivityLevels, ActivityLabel},
		{DayBuckets, DaysLabel},
		{Methods, MethodLabel},
		{Locations, LocationLabel},
		{Commitments, CommitmentLabel},
		{Programs, ProgramLabel},
		{Programs, ProgramLevel},
		{HomeEquipment, EquipmentLabel},
	}

	for _, c := range checks {
		for _, v := range c.values {
			got := c.fn(v)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, v, got, "value %q has no label", v)
		}
	}
}

func TestLabels_FallBackToRawValue(t *testing.T) {
	assert.Equal(t, "yoga", GoalLabel("yoga"))
	assert.Equal(t, "", ProgramLabel(""))
	assert.Equal(t, "Just Curious", CommitmentLabel("low"))
	assert.Equal(t, "21 Days Abs Challenge", ProgramLabel("21_day_abs"))
}

func TestScheduleDays(t *testing.T) {
	cases := map[string][]string{
		"2-3":     {"Monday", "Wednesday", "Friday"},
		"3-4":     {"Monday", "Wednesday", "Friday", "Saturday"},
		"4-5":     {"Monday", "Tuesday", "Thursday", "Friday"},
		"5-6":     {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		"":        {"Monday", "Wednesday", "Friday"},
		"7 days!": {"Monday", "Wednesday", "Friday"},
	}
	for in, want := range cases {
		if diff := cmp.Diff(want, ScheduleDays(in)); diff != "" {
			t.Errorf("ScheduleDays(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestScheduleDays_ReturnsCopy(t *testing.T) {
	days := ScheduleDays("2-3")
	days[0] = "Sunday"
	assert.Equal(t, "Monday", ScheduleDays("2-3")[0])
}

func TestWorkoutSplit(t *testing.T) {
	assert.Equal(t, SplitFullBody, WorkoutSplit("2-3").Type)
	assert.Equal(t, SplitUpperLower, WorkoutSplit("3-4").Type)
	assert.Equal(t, SplitPushPullLegs, WorkoutSplit("4-5").Type)
	assert.Equal(t, SplitBodyPartSplit, WorkoutSplit("5-6").Type)
	assert.Equal(t, SplitFullBody, WorkoutSplit("unknown").Type)

	for _, d := range DayBuckets {
		s := WorkoutSplit(d)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
	}
}

func TestWorkoutForDay(t *testing.T) {
	assert.Equal(t, "Push Day", WorkoutForDay(0, "4-5", ""))
	assert.Equal(t, "Pull Day", WorkoutForDay(1, "4-5", ""))
	assert.Equal(t, "Leg Day", WorkoutForDay(2, "4-5", ""))
	assert.Equal(t, "Push Day", WorkoutForDay(3, "4-5", ""))

	assert.Equal(t, "Upper Body", WorkoutForDay(0, "2-3", SplitUpperLower))
	assert.Equal(t, "Lower Body", WorkoutForDay(1, "2-3", SplitUpperLower))
	assert.Equal(t, "Upper Body", WorkoutForDay(2, "2-3", SplitUpperLower))

	assert.Equal(t, "Full Body C", WorkoutForDay(2, "2-3", ""))
	assert.Equal(t, "Full Body A", WorkoutForDay(3, "2-3", ""))

	assert.Equal(t, "Chest", WorkoutForDay(6, "5-6", ""))
	assert.Equal(t, "Core & Conditioning", WorkoutForDay(5, "5-6", ""))

	assert.Equal(t, "Full Body A", WorkoutForDay(0, "4-5", SplitType("bogus")))
	assert.Equal(t, "Leg Day", WorkoutForDay(-1, "4-5", ""))
}

func TestAvailableEquipment(t *testing.T) {
	in := []string{"dumbbells", "barbell", "bands", "cable_machine", "bodyweight"}

	assert.Equal(t, in, AvailableEquipment(LocationGym, in))
	assert.Equal(t, []string{"dumbbells", "bands", "bodyweight"}, AvailableEquipment(LocationHome, in))
	assert.Empty(t, AvailableEquipment(LocationHome, nil))
}

func TestExerciseSuggestions_HomeNeverSuggestsMachines(t *testing.T) {
	for _, w := range append(Workouts(), "Something Else") {
		for _, name := range ExerciseSuggestions(w, LocationHome, nil) {
			lower := strings.ToLower(name)
			for _, kw := range gymMachineKeywords {
				assert.NotContains(t, lower, kw, "workout %q suggested %q", w, name)
			}
		}
	}
}

func TestExerciseSuggestions_GymKeepsFullPool(t *testing.T) {
	for _, w := range Workouts() {
		assert.Equal(t, exercisePools[w], ExerciseSuggestions(w, LocationGym, nil))
		assert.NotEmpty(t, ExerciseSuggestions(w, LocationHome, nil), "home pool for %q is empty", w)
	}
}

func TestExerciseSuggestions_HomeFollowsOwnedEquipment(t *testing.T) {
	bodyweight := ExerciseSuggestions("Arms", LocationHome, []string{"bodyweight"})
	if diff := cmp.Diff([]string{"Hammer Curl", "Bench Dips"}, bodyweight); diff != "" {
		t.Errorf("bodyweight arms mismatch (-want +got):\n%s", diff)
	}

	withBands := ExerciseSuggestions("Arms", LocationHome, []string{"bands", "cable_machine"})
	assert.Contains(t, withBands, "Band Curl")
	assert.NotContains(t, withBands, "Dumbbell Curl")

	// Owned equipment never narrows a gym pool.
	assert.Equal(t, exercisePools["Arms"], ExerciseSuggestions("Arms", LocationGym, []string{"bodyweight"}))
	for _, w := range Workouts() {
		assert.NotEmpty(t, ExerciseSuggestions(w, LocationHome, []string{"bodyweight"}), "bodyweight pool for %q is empty", w)
	}
}

func TestExerciseSuggestions_UnknownWorkout(t *testing.T) {
	assert.Equal(t, exercisePools[defaultWorkout], ExerciseSuggestions("Mystery", LocationGym, nil))
}

func TestPlanFor(t *testing.T) {
	got := PlanFor("fat_loss", LocationHome)
	want := PlanContent{
		Title:       "Fat Loss Protocol - Home Workout",
		Description: "Your personalized Fat Loss Protocol designed for home training.",
	}
	assert.Equal(t, want, got)

	gym := PlanFor("strength", LocationGym)
	assert.Equal(t, "Strength Training Program - Gym Training", gym.Title)
	assert.Contains(t, gym.Description, "gym workouts")
}

func TestBuildPlan_PushPullLegsAtGym(t *testing.T) {
	plan := BuildPlan(PlanInput{
		Goal:          "muscle_building",
		ActivityLevel: "intermediate",
		DaysAvailable: "4-5",
		Location:      LocationGym,
	})

	assert.Equal(t, SplitPushPullLegs, plan.Split.Type)
	require.Len(t, plan.Schedule, 4)

	var workouts []string
	for _, d := range plan.Schedule {
		workouts = append(workouts, d.Workout)
	}
	if diff := cmp.Diff([]string{"Push Day", "Pull Day", "Leg Day", "Push Day"}, workouts); diff != "" {
		t.Errorf("workouts mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Monday", plan.Schedule[0].Day)
	assert.Contains(t, plan.Schedule[0].Exercises, "Chest Press Machine")
	assert.Equal(t, "Muscle Building", plan.Goal)
	assert.Equal(t, "Intermediate", plan.Level)
	assert.Equal(t, "4-5 days", plan.Days)
}

func TestBuildPlan_HomeFiltersEquipmentAndMachines(t *testing.T) {
	plan := BuildPlan(PlanInput{
		Goal:          "fat_loss",
		DaysAvailable: "2-3",
		Location:      LocationHome,
		Equipment:     []string{"dumbbells", "smith_machine"},
	})

	assert.Equal(t, []string{"Dumbbells"}, plan.Equipment)
	assert.Equal(t, "Home Workout", plan.Location)
	for _, d := range plan.Schedule {
		assert.NotContains(t, d.Exercises, "Leg Press")
		assert.NotContains(t, d.Exercises, "Lat Pulldown")
	}
}
