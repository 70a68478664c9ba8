package wizard

import (
	"bura/internal/content"
)

const (
	FlowCoach = "coach"
	FlowPlan  = "plan"
)

var (
	bodyStatsStep = Step{
		ID:    StepBodyStats,
		Title: "What's your body profile?",
		Fields: []Field{
			{Key: FieldGender, Label: "Gender", Kind: KindChoice, Options: options(content.Genders, content.GenderLabel)},
			{Key: FieldAge, Label: "Age", Kind: KindNumber, Placeholder: "Enter your age"},
			{Key: FieldHeight, Label: "Height (cm)", Kind: KindNumber, Placeholder: "Enter height in cm"},
			{Key: FieldWeight, Label: "Weight (kg)", Kind: KindNumber, Placeholder: "Enter weight in kg"},
		},
	}

	goalStep = Step{
		ID:     StepGoal,
		Title:  "What's your primary goal?",
		Fields: []Field{{Key: FieldGoal, Label: "Goal", Kind: KindChoice, Options: options(content.Goals, content.GoalLabel)}},
	}

	activityStep = Step{
		ID:     StepActivity,
		Title:  "Current activity level?",
		Fields: []Field{{Key: FieldActivityLevel, Label: "Activity level", Kind: KindChoice, Options: options(content.ActivityLevels, content.ActivityLabel)}},
	}

	availabilityStep = Step{
		ID:     StepAvailability,
		Title:  "Days per week available?",
		Fields: []Field{{Key: FieldDaysAvailable, Label: "Days", Kind: KindChoice, Options: options(content.DayBuckets, content.DaysLabel)}},
	}

	medicalStep = Step{
		ID:     StepMedical,
		Title:  "Any medical conditions/injuries?",
		Fields: []Field{{Key: FieldHasInjuries, Label: "Injuries", Kind: KindBool, Options: yesNo}},
	}

	contactStep = Step{
		ID:    StepContact,
		Title: "Almost there! Share your details",
		Fields: []Field{
			{Key: FieldName, Label: "Name", Kind: KindText, Placeholder: "Enter your name"},
			{Key: FieldPhone, Label: "Phone Number", Kind: KindPhone, Placeholder: "0712 345 678"},
		},
	}
)

// CoachFlow is the live questionnaire that ends in a WhatsApp chat with the
// coach.
var CoachFlow = &Flow{
	Name: FlowCoach,
	Steps: []Step{
		bodyStatsStep,
		goalStep,
		activityStep,
		availabilityStep,
		{
			ID:     StepHistory,
			Title:  "Have you had a personal trainer before?",
			Fields: []Field{{Key: FieldHasUsedTrainer, Label: "Trainer before", Kind: KindBool, Options: yesNo}},
		},
		{
			ID:     StepMethod,
			Title:  "Preferred training method?",
			Fields: []Field{{Key: FieldPreferredMethod, Label: "Method", Kind: KindChoice, Options: options(content.Methods, content.MethodLabel)}},
		},
		medicalStep,
		{
			ID:     StepEquipment,
			Title:  "Do you have training equipment?",
			Fields: []Field{{Key: FieldHasEquipment, Label: "Equipment", Kind: KindBool, Options: yesNo}},
		},
		{
			ID:     StepCommitment,
			Title:  "How serious are you?",
			Fields: []Field{{Key: FieldCommitmentLevel, Label: "Commitment", Kind: KindChoice, Options: options(content.Commitments, content.CommitmentLabel)}},
		},
		{
			ID:     StepProgram,
			Title:  "Choose your program",
			Fields: []Field{{Key: FieldSelectedProgram, Label: "Program", Kind: KindChoice, Options: programOptions()}},
		},
		contactStep,
	},
}

// PlanFlow is the results-page questionnaire. The equipment step only shows
// for home training.
var PlanFlow = &Flow{
	Name: FlowPlan,
	Steps: []Step{
		bodyStatsStep,
		goalStep,
		activityStep,
		availabilityStep,
		{
			ID:     StepLocation,
			Title:  "Where will you train?",
			Fields: []Field{{Key: FieldTrainingLocation, Label: "Location", Kind: KindChoice, Options: options(content.Locations, content.LocationLabel)}},
		},
		{
			ID:     StepEquipment,
			Title:  "What equipment do you have?",
			Fields: []Field{{Key: FieldEquipment, Label: "Equipment", Kind: KindMulti, Options: options(content.HomeEquipment, content.EquipmentLabel)}},
			Skip: func(a *Answers) bool {
				return a.TrainingLocation != content.LocationHome
			},
		},
		medicalStep,
		contactStep,
	},
}

var flows = []*Flow{CoachFlow, PlanFlow}

// Flows returns every configured flow.
func Flows() []*Flow {
	return flows
}

// Lookup finds a flow by name.
func Lookup(name string) (*Flow, bool) {
	for _, f := range flows {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

func programOptions() []Option {
	opts := options(content.Programs, content.ProgramLabel)
	for i := range opts {
		opts[i].Hint = content.ProgramLevel(opts[i].Value)
	}
	return opts
}
