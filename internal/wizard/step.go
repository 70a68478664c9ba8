// Package wizard drives the multi-step questionnaire. A Flow is an ordered
// table of steps; navigation is a pure function of (position, answers), so
// skipping a step never needs separate bookkeeping.
package wizard

import "slices"

// FieldKind selects how a field is answered and validated.
type FieldKind string

const (
	KindChoice FieldKind = "choice"
	KindNumber FieldKind = "number"
	KindText   FieldKind = "text"
	KindPhone  FieldKind = "phone"
	KindBool   FieldKind = "bool"
	KindMulti  FieldKind = "multi"
)

type StepID string

const (
	StepBodyStats    StepID = "body_stats"
	StepGoal         StepID = "goal"
	StepActivity     StepID = "activity"
	StepAvailability StepID = "availability"
	StepHistory      StepID = "history"
	StepMethod       StepID = "method"
	StepLocation     StepID = "location"
	StepEquipment    StepID = "equipment"
	StepMedical      StepID = "medical"
	StepCommitment   StepID = "commitment"
	StepProgram      StepID = "program"
	StepContact      StepID = "contact"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Hint  string `json:"hint,omitempty"`
}

type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Options     []Option  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Step is one screen of the questionnaire. Every field is required; Skip,
// when set, hides the step for the current answers.
type Step struct {
	ID     StepID  `json:"id"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`

	Skip func(a *Answers) bool `json:"-"`
}

// Complete reports whether every field of the step is answered and no
// inline phone error is pending.
func (s Step) Complete(a *Answers) bool {
	for _, f := range s.Fields {
		if !a.Has(f.Key) {
			return false
		}
		if f.Kind == KindPhone && a.PhoneError != "" {
			return false
		}
	}
	return true
}

// Field looks up a field of the step by key.
func (s Step) Field(key string) (Field, bool) {
	i := slices.IndexFunc(s.Fields, func(f Field) bool { return f.Key == key })
	if i < 0 {
		return Field{}, false
	}
	return s.Fields[i], true
}

// Allows reports whether value is acceptable for a choice-style field.
func (f Field) Allows(value string) bool {
	if len(f.Options) == 0 {
		return true
	}
	return slices.ContainsFunc(f.Options, func(o Option) bool { return o.Value == value })
}

func options(values []string, label func(string) string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: label(v)})
	}
	return out
}

var yesNo = []Option{
	{Value: "true", Label: "Yes"},
	{Value: "false", Label: "No"},
}
