package wizard

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"bura/internal/content"
)

// Answer keys. They double as the JSON names sent in formData.
const (
	FieldGender           = "gender"
	FieldAge              = "age"
	FieldHeight           = "height"
	FieldWeight           = "weight"
	FieldGoal             = "goal"
	FieldActivityLevel    = "activityLevel"
	FieldDaysAvailable    = "daysAvailable"
	FieldHasUsedTrainer   = "hasUsedTrainer"
	FieldPreferredMethod  = "preferredMethod"
	FieldTrainingLocation = "trainingLocation"
	FieldEquipment        = "equipment"
	FieldHasInjuries      = "hasInjuries"
	FieldHasEquipment     = "hasEquipment"
	FieldCommitmentLevel  = "commitmentLevel"
	FieldSelectedProgram  = "selectedProgram"
	FieldName             = "name"
	FieldPhone            = "phone"
)

// Answers holds one value per question. Nil pointers and empty strings mean
// "not answered yet", so a false boolean is distinguishable from no answer.
type Answers struct {
	Gender           string   `json:"gender,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Height           *int     `json:"height,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Goal             string   `json:"goal,omitempty"`
	ActivityLevel    string   `json:"activityLevel,omitempty"`
	DaysAvailable    string   `json:"daysAvailable,omitempty"`
	HasUsedTrainer   *bool    `json:"hasUsedTrainer,omitempty"`
	PreferredMethod  string   `json:"preferredMethod,omitempty"`
	TrainingLocation string   `json:"trainingLocation,omitempty"`
	Equipment        []string `json:"equipment,omitempty"`
	HasInjuries      *bool    `json:"hasInjuries,omitempty"`
	HasEquipment     *bool    `json:"hasEquipment,omitempty"`
	CommitmentLevel  string   `json:"commitmentLevel,omitempty"`
	SelectedProgram  string   `json:"selectedProgram,omitempty"`
	Name             string   `json:"name,omitempty"`
	Phone            string   `json:"phone,omitempty"`

	// PhoneError is the inline message from the last failed phone blur.
	PhoneError string `json:"-"`
}

// Has reports whether key has a usable answer.
func (a *Answers) Has(key string) bool {
	switch key {
	case FieldAge:
		return a.Age != nil
	case FieldHeight:
		return a.Height != nil
	case FieldWeight:
		return a.Weight != nil
	case FieldHasUsedTrainer:
		return a.HasUsedTrainer != nil
	case FieldHasInjuries:
		return a.HasInjuries != nil
	case FieldHasEquipment:
		return a.HasEquipment != nil
	case FieldEquipment:
		return len(a.Equipment) > 0
	}
	if p := a.text(key); p != nil {
		return strings.TrimSpace(*p) != ""
	}
	return false
}

// Set stores value under key. An empty value clears the answer.
func (a *Answers) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case FieldAge, FieldHeight:
		n, err := parseInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == FieldAge {
			a.Age = n
		} else {
			a.Height = n
		}
		return nil
	case FieldWeight:
		if value == "" {
			a.Weight = nil
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s: %w", key, ErrInvalidNumber)
		}
		if f <= 0 {
			return fmt.Errorf("%s: %w", key, ErrNotPositive)
		}
		a.Weight = &f
		return nil
	case FieldHasUsedTrainer, FieldHasInjuries, FieldHasEquipment:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case FieldHasUsedTrainer:
			a.HasUsedTrainer = b
		case FieldHasInjuries:
			a.HasInjuries = b
		default:
			a.HasEquipment = b
		}
		return nil
	case FieldEquipment:
		a.Equipment = splitList(value)
		return nil
	case FieldPhone:
		a.Phone = value
		a.PhoneError = ""
		return nil
	}

	p := a.text(key)
	if p == nil {
		return fmt.Errorf("%q: %w", key, ErrUnknownField)
	}
	*p = value
	return nil
}

// Toggle adds value to a multi-select answer, or removes it if present.
func (a *Answers) Toggle(key, value string) error {
	if key != FieldEquipment {
		return fmt.Errorf("%q: %w", key, ErrNotMultiSelect)
	}
	if i := slices.Index(a.Equipment, value); i >= 0 {
		a.Equipment = slices.Delete(a.Equipment, i, i+1)
		return nil
	}
	a.Equipment = append(a.Equipment, value)
	return nil
}

// Value renders the answer under key as a string, "" when unanswered.
func (a *Answers) Value(key string) string {
	switch key {
	case FieldAge:
		return formatInt(a.Age)
	case FieldHeight:
		return formatInt(a.Height)
	case FieldWeight:
		if a.Weight == nil {
			return ""
		}
		return strconv.FormatFloat(*a.Weight, 'f', -1, 64)
	case FieldHasUsedTrainer:
		return formatBool(a.HasUsedTrainer)
	case FieldHasInjuries:
		return formatBool(a.HasInjuries)
	case FieldHasEquipment:
		return formatBool(a.HasEquipment)
	case FieldEquipment:
		return strings.Join(a.Equipment, ",")
	}
	if p := a.text(key); p != nil {
		return *p
	}
	return ""
}

// Location is where the user trains. The coach flow asks for a preferred
// method instead, so the location is derived from it when missing.
func (a *Answers) Location() string {
	if a.TrainingLocation != "" {
		return a.TrainingLocation
	}
	if a.PreferredMethod == "gym_training" {
		return content.LocationGym
	}
	return content.LocationHome
}

// OwnedEquipment lists equipment tags, falling back to the yes/no question.
func (a *Answers) OwnedEquipment() []string {
	if len(a.Equipment) > 0 {
		return slices.Clone(a.Equipment)
	}
	if a.HasEquipment != nil && *a.HasEquipment {
		return slices.Clone(content.HomeEquipment)
	}
	return []string{"bodyweight"}
}

// PlanInput extracts what the content mapper needs.
func (a *Answers) PlanInput() content.PlanInput {
	return content.PlanInput{
		Goal:          a.Goal,
		ActivityLevel: a.ActivityLevel,
		DaysAvailable: a.DaysAvailable,
		Location:      a.Location(),
		Equipment:     a.OwnedEquipment(),
	}
}

// FormData is every answer except name and phone, keyed by JSON name.
func (a *Answers) FormData() (map[string]any, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	delete(out, FieldName)
	delete(out, FieldPhone)
	return out, nil
}

// FromForm rebuilds answers from a stored formData object. Keys it does not
// know and values that do not parse are dropped.
func FromForm(form map[string]any) Answers {
	var a Answers
	for key, raw := range form {
		var value string
		switch v := raw.(type) {
		case string:
			value = v
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			value = strconv.FormatBool(v)
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			value = strings.Join(parts, ",")
		default:
			continue
		}
		_ = a.Set(key, value)
	}
	return a
}

func (a *Answers) text(key string) *string {
	switch key {
	case FieldGender:
		return &a.Gender
	case FieldGoal:
		return &a.Goal
	case FieldActivityLevel:
		return &a.ActivityLevel
	case FieldDaysAvailable:
		return &a.DaysAvailable
	case FieldPreferredMethod:
		return &a.PreferredMethod
	case FieldTrainingLocation:
		return &a.TrainingLocation
	case FieldCommitmentLevel:
		return &a.CommitmentLevel
	case FieldSelectedProgram:
		return &a.SelectedProgram
	case FieldName:
		return &a.Name
	case FieldPhone:
		return &a.Phone
	}
	return nil
}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	if n <= 0 {
		return nil, ErrNotPositive
	}
	return &n, nil
}

// splitList splits a comma-separated multi-select answer, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseBool(s string) (*bool, error) {
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case "true", "yes", "y", "1":
		b := true
		return &b, nil
	case "false", "no", "n", "0":
		b := false
		return &b, nil
	}
	return nil, ErrInvalidBool
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
