// Package phone validates Kenyan mobile numbers and rewrites them into the
// canonical +254 form used for storage and messaging.
package phone

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	CountryCode         = "254"
	InternationalPrefix = "+" + CountryCode
	TrunkPrefix         = "0"

	// CanonicalLength is len("+254712345678").
	CanonicalLength = 13

	// Message is shown next to the phone field when validation fails.
	Message = "Please enter a valid Kenyan phone number (e.g., 0712...)."
)

// Prefix, then a Safaricom/Airtel leading digit (7 or 1), then 8 digits.
var numberingPlan = regexp.MustCompile(`^(\+254|254|0)([71])\d{8}$`)

// ErrInvalid is the errors.Is target for every ValidationError.
var ErrInvalid = errors.New("invalid phone number")

// ValidationError reports input that does not match the numbering plan.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Normalize strips whitespace from raw and returns it in +254XXXXXXXXX form.
// Normalizing an already canonical number returns it unchanged.
func Normalize(raw string) (string, error) {
	cleaned := stripSpace(raw)

	m := numberingPlan.FindStringSubmatch(cleaned)
	if m == nil {
		return "", &ValidationError{Input: raw}
	}

	// m[1] is one of "+254", "254" or the trunk "0"; all collapse to +254.
	return InternationalPrefix + cleaned[len(m[1]):], nil
}

// Valid reports whether raw normalizes without error.
func Valid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
