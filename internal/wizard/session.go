package wizard

import (
	"fmt"

	"bura/internal/phone"
)

// Direction only drives the transition animation.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Outcome of a Next call.
type Outcome int

const (
	Stayed Outcome = iota
	Moved
	Submit
)

// Session is one user's pass through a flow.
type Session struct {
	flow      *Flow
	Position  int
	Direction Direction
	Answers   Answers
}

func NewSession(flow *Flow) *Session {
	return &Session{flow: flow, Direction: Forward}
}

func (s *Session) Flow() *Flow {
	return s.flow
}

// Step is the step at the current position.
func (s *Session) Step() Step {
	return s.flow.Steps[s.flow.clamp(s.Position)]
}

// Answer records value for key, rejecting values outside a field's options.
func (s *Session) Answer(key, value string) error {
	field, ok := s.flow.FieldFor(key)
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrUnknownField)
	}
	switch field.Kind {
	case KindChoice, KindBool:
		if !field.Allows(value) {
			return fmt.Errorf("%s=%q: %w", key, value, ErrInvalidOption)
		}
	case KindMulti:
		for _, item := range splitList(value) {
			if !field.Allows(item) {
				return fmt.Errorf("%s=%q: %w", key, item, ErrInvalidOption)
			}
		}
	}
	return s.Answers.Set(key, value)
}

// Toggle flips one option of a multi-select field.
func (s *Session) Toggle(key, value string) error {
	field, ok := s.flow.FieldFor(key)
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrUnknownField)
	}
	if field.Kind != KindMulti {
		return fmt.Errorf("%q: %w", key, ErrNotMultiSelect)
	}
	if !field.Allows(value) {
		return fmt.Errorf("%s=%q: %w", key, value, ErrInvalidOption)
	}
	return s.Answers.Toggle(key, value)
}

// BlurPhone normalizes the phone answer as soon as the field loses focus,
// or records the inline error.
func (s *Session) BlurPhone() {
	if s.Answers.Phone == "" {
		return
	}
	normalized, err := phone.Normalize(s.Answers.Phone)
	if err != nil {
		s.Answers.PhoneError = err.Error()
		return
	}
	s.Answers.Phone = normalized
	s.Answers.PhoneError = ""
}

func (s *Session) CanAdvance() bool {
	return s.flow.CanAdvance(s.Position, &s.Answers)
}

// Next advances one visible step. On the final step it reports Submit and
// leaves the position unchanged.
func (s *Session) Next() Outcome {
	if !s.CanAdvance() {
		return Stayed
	}
	s.Direction = Forward
	next, submit := s.flow.Advance(s.Position, &s.Answers)
	if submit {
		return Submit
	}
	s.Position = next
	return Moved
}

// Back retreats one visible step; false when already at the start.
func (s *Session) Back() bool {
	prev := s.flow.Retreat(s.Position, &s.Answers)
	if prev == s.Position {
		return false
	}
	s.Direction = Backward
	s.Position = prev
	return true
}

// Progress is the "Step X of Y" pair.
func (s *Session) Progress() (current, total int) {
	return s.flow.Display(s.Position, &s.Answers)
}

// Finalize normalizes the phone once more, in case it was never blurred, and
// returns the answers ready for submission.
func (s *Session) Finalize() (Answers, error) {
	normalized, err := phone.Normalize(s.Answers.Phone)
	if err != nil {
		s.Answers.PhoneError = err.Error()
		return Answers{}, err
	}
	s.Answers.Phone = normalized
	s.Answers.PhoneError = ""

	if !s.flow.Complete(&s.Answers) {
		return Answers{}, ErrIncomplete
	}
	return s.Answers, nil
}
