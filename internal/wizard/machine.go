package wizard

// Flow is an ordered step table. Methods never mutate the flow or the
// answers; skip rules are evaluated on every call.
type Flow struct {
	Name  string
	Steps []Step
}

func (f *Flow) Len() int {
	return len(f.Steps)
}

// Last is the index of the final step.
func (f *Flow) Last() int {
	return len(f.Steps) - 1
}

// Visible reports whether step i applies to the answers.
func (f *Flow) Visible(i int, a *Answers) bool {
	if i < 0 || i >= len(f.Steps) {
		return false
	}
	s := f.Steps[i]
	return s.Skip == nil || !s.Skip(a)
}

// CanAdvance reports whether the step at pos is satisfied. A hidden step has
// nothing to answer and is always satisfied.
func (f *Flow) CanAdvance(pos int, a *Answers) bool {
	if pos < 0 || pos >= len(f.Steps) {
		return false
	}
	if !f.Visible(pos, a) {
		return true
	}
	return f.Steps[pos].Complete(a)
}

// Advance moves past pos, hopping over hidden steps. When pos is the last
// visible step, it stays put and reports submit=true. An unsatisfied step is
// a no-op.
func (f *Flow) Advance(pos int, a *Answers) (next int, submit bool) {
	pos = f.clamp(pos)
	if !f.CanAdvance(pos, a) {
		return pos, false
	}
	for i := pos + 1; i < len(f.Steps); i++ {
		if f.Visible(i, a) {
			return i, false
		}
	}
	return pos, true
}

// Retreat moves back to the nearest visible step before pos. With nothing
// visible behind pos it stays put.
func (f *Flow) Retreat(pos int, a *Answers) int {
	pos = f.clamp(pos)
	for i := pos - 1; i >= 0; i-- {
		if f.Visible(i, a) {
			return i
		}
	}
	return pos
}

// Display returns the 1-based step number and the total, both counting only
// visible steps. Always 1 <= current <= total.
func (f *Flow) Display(pos int, a *Answers) (current, total int) {
	pos = f.clamp(pos)
	for i := range f.Steps {
		if !f.Visible(i, a) {
			continue
		}
		total++
		if i <= pos {
			current++
		}
	}
	if total == 0 {
		total = 1
	}
	current = max(1, min(current, total))
	return current, total
}

// Complete reports whether every visible step is satisfied.
func (f *Flow) Complete(a *Answers) bool {
	for i := range f.Steps {
		if f.Visible(i, a) && !f.Steps[i].Complete(a) {
			return false
		}
	}
	return true
}

// FieldFor finds the field for key in any step of the flow.
func (f *Flow) FieldFor(key string) (Field, bool) {
	for _, s := range f.Steps {
		if field, ok := s.Field(key); ok {
			return field, true
		}
	}
	return Field{}, false
}

func (f *Flow) clamp(pos int) int {
	return max(0, min(pos, len(f.Steps)-1))
}
