// Package messaging builds the pre-filled WhatsApp message a finished
// questionnaire hands off with, and holds it briefly for the redirect page.
package messaging

import (
	"net/url"
	"strings"

	"bura/internal/content"
	"bura/internal/wizard"
)

const notSpecified = "Not specified"

// CoachMessage is the body sent to the coach after the live questionnaire.
func CoachMessage(a *wizard.Answers) string {
	var b strings.Builder
	b.WriteString("Hi Coach! I just finished the quiz.\n")
	line(&b, "Name", a.Name)
	line(&b, "Goal", label(a.Goal, content.GoalLabel))
	line(&b, "Program Interest", label(a.SelectedProgram, content.ProgramLabel))
	line(&b, "Injured", yesNo(a.HasInjuries))
	b.WriteString("I'm ready to start.")
	return b.String()
}

// PlanMessage is the results-page variant; it also names where, how often
// and at what level the user trains.
func PlanMessage(a *wizard.Answers) string {
	var b strings.Builder
	b.WriteString("Hi Coach! I just finished the quiz.\n")
	line(&b, "Name", a.Name)
	line(&b, "Goal", label(a.Goal, content.GoalLabel))
	line(&b, "Training", label(a.TrainingLocation, content.LocationLabel))
	line(&b, "Days", label(a.DaysAvailable, content.DaysLabel))
	line(&b, "Level", label(a.ActivityLevel, content.ActivityLabel))
	line(&b, "Injured", yesNo(a.HasInjuries))
	b.WriteString("I'm ready to start.")
	return b.String()
}

// MessageFor picks the body for the named flow; unknown flows get the coach
// message.
func MessageFor(flow string, a *wizard.Answers) string {
	if flow == wizard.FlowPlan {
		return PlanMessage(a)
	}
	return CoachMessage(a)
}

// DeepLink returns <baseURL>/<recipient>?text=<message>, with the message
// escaped the way encodeURIComponent does it.
func DeepLink(baseURL, recipient, text string) string {
	return strings.TrimRight(baseURL, "/") + "/" + recipient + "?text=" + componentEscaper.Replace(url.QueryEscape(text))
}

// QueryEscape output differs from encodeURIComponent only in these.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func line(b *strings.Builder, name, value string) {
	if strings.TrimSpace(value) == "" {
		value = notSpecified
	}
	b.WriteString("• ")
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

func label(value string, fn func(string) string) string {
	if value == "" {
		return ""
	}
	return fn(value)
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return notSpecified
	case *b:
		return "Yes"
	default:
		return "No"
	}
}
