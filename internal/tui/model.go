// Package tui runs the questionnaire in a terminal.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bura/internal/messaging"
	"bura/internal/submission"
	"bura/internal/wizard"
)

// Submitter sends a finished questionnaire. *submission.Client is one.
type Submitter interface {
	Submit(ctx context.Context, req submission.Request) (submission.Result, error)
}

type Options struct {
	Flow      *wizard.Flow
	Submitter Submitter
	// Policy decides what an answer set that cannot be encoded means.
	// Empty is FailOpen.
	Policy    submission.Policy
	BaseURL   string
	Recipient string
	Timeout   time.Duration
}

type state int

const (
	stateAsking state = iota
	stateSubmitting
	stateFailed
	stateDone
)

const (
	msgNeedAnswer = "Please answer this question to continue."
	msgNeedAll    = "Please answer every question on this step."
	msgSaveFailed = "We couldn't save your details. Press enter to try again or esc to go back."
)

type submitResultMsg struct {
	result submission.Result
	err    error
}

type Model struct {
	session   *wizard.Session
	submitter Submitter
	policy    submission.Policy
	baseURL   string
	recipient string
	timeout   time.Duration

	state  state
	field  int
	cursor int
	input  textinput.Model

	feedback string
	final    wizard.Answers
	result   submission.Result
	link     string
	quitting bool
}

func NewModel(opts Options) *Model {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	m := &Model{
		session:   wizard.NewSession(opts.Flow),
		submitter: opts.Submitter,
		policy:    opts.Policy,
		baseURL:   opts.BaseURL,
		recipient: opts.Recipient,
		timeout:   timeout,
		input:     textinput.New(),
	}
	m.loadField()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Link is the deep link shown after a finished run, empty before that.
func (m *Model) Link() string {
	return m.link
}

// Session exposes the underlying wizard session.
func (m *Model) Session() *wizard.Session {
	return m.session
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case stateAsking:
			return m.updateAsking(msg)
		case stateFailed:
			return m.updateFailed(msg)
		}
	}
	return m, nil
}

func (m *Model) updateAsking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.currentField()

	if msg.String() == "esc" {
		m.back()
		return m, nil
	}

	switch f.Kind {
	case wizard.KindChoice, wizard.KindBool, wizard.KindMulti:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(f.Options)-1 {
				m.cursor++
			}
		case " ":
			if f.Kind == wizard.KindMulti {
				m.feedback = ""
				_ = m.session.Toggle(f.Key, f.Options[m.cursor].Value)
			}
		case "enter":
			if f.Kind != wizard.KindMulti {
				if err := m.session.Answer(f.Key, f.Options[m.cursor].Value); err != nil {
					m.feedback = err.Error()
					return m, nil
				}
			} else if !m.session.Answers.Has(f.Key) {
				m.feedback = msgNeedAnswer
				return m, nil
			}
			return m.nextField()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		if err := m.session.Answer(f.Key, m.input.Value()); err != nil {
			m.feedback = err.Error()
			return m, nil
		}
		if f.Kind == wizard.KindPhone {
			m.session.BlurPhone()
			if m.session.Answers.PhoneError != "" {
				m.feedback = m.session.Answers.PhoneError
				return m, nil
			}
		}
		if !m.session.Answers.Has(f.Key) {
			m.feedback = msgNeedAnswer
			return m, nil
		}
		return m.nextField()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.submit()
	case "esc":
		m.state = stateAsking
		m.feedback = ""
		m.loadField()
	}
	return m, nil
}

func (m *Model) nextField() (tea.Model, tea.Cmd) {
	m.feedback = ""
	step := m.session.Step()
	if m.field < len(step.Fields)-1 {
		m.field++
		m.loadField()
		return m, nil
	}

	switch m.session.Next() {
	case wizard.Moved:
		m.field = 0
		m.loadField()
		return m, nil
	case wizard.Submit:
		return m, m.finalize()
	default:
		m.feedback = msgNeedAll
		return m, nil
	}
}

func (m *Model) back() {
	m.feedback = ""
	if m.field > 0 {
		m.field--
		m.loadField()
		return
	}
	if m.session.Back() {
		m.field = len(m.session.Step().Fields) - 1
		m.loadField()
	}
}

func (m *Model) finalize() tea.Cmd {
	final, err := m.session.Finalize()
	if err != nil {
		m.feedback = err.Error()
		return nil
	}
	m.final = final
	return m.submit()
}

// submit runs one attempt. Retrying is always the user's choice.
func (m *Model) submit() tea.Cmd {
	m.state = stateSubmitting
	m.feedback = ""

	form, err := m.final.FormData()
	if err != nil {
		err = fmt.Errorf("%w: %w", submission.ErrSubmissionFailed, err)
		if m.policy == submission.FailClosed {
			m.state = stateFailed
			m.feedback = msgSaveFailed
			return nil
		}
		return func() tea.Msg {
			return submitResultMsg{result: submission.Result{Err: err}}
		}
	}
	req := submission.Request{
		Name:     m.final.Name,
		Phone:    m.final.Phone,
		FormData: form,
		Flow:     m.session.Flow().Name,
	}
	submitter, timeout := m.submitter, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := submitter.Submit(ctx, req)
		return submitResultMsg{result: res, err: err}
	}
}

func (m *Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = stateFailed
		m.feedback = msgSaveFailed
		return m, nil
	}
	m.result = msg.result
	m.state = stateDone
	message := messaging.MessageFor(m.session.Flow().Name, &m.final)
	m.link = messaging.DeepLink(m.baseURL, m.recipient, message)
	return m, tea.Quit
}

func (m *Model) currentField() wizard.Field {
	fields := m.session.Step().Fields
	return fields[max(0, min(m.field, len(fields)-1))]
}

// loadField points the cursor or text input at the current answer.
func (m *Model) loadField() {
	f := m.currentField()
	value := m.session.Answers.Value(f.Key)

	m.cursor = 0
	if i := slices.IndexFunc(f.Options, func(o wizard.Option) bool { return o.Value == value }); i >= 0 && f.Kind != wizard.KindMulti {
		m.cursor = i
	}

	m.input.Reset()
	m.input.Placeholder = f.Placeholder
	m.input.SetValue(value)
	m.input.Focus()
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye! Come back when you're ready.\n"
	}
	if m.state == stateDone {
		return m.doneView()
	}

	current, total := m.session.Progress()
	step := m.session.Step()

	var b strings.Builder
	b.WriteString(progressStyle.Render(fmt.Sprintf("Step %d of %d", current, total)))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(step.Title))
	b.WriteString("\n")

	for i, f := range step.Fields {
		b.WriteString(labelStyle.Render(f.Label))
		b.WriteString("\n")
		if i == m.field {
			b.WriteString(m.fieldView(f))
		} else if v := m.session.Answers.Value(f.Key); v != "" {
			b.WriteString(optionStyle.Render(v))
			b.WriteString("\n")
		} else {
			b.WriteString("\n")
		}
	}

	switch m.state {
	case stateSubmitting:
		b.WriteString("\nSaving your details...\n")
	case stateFailed:
		b.WriteString("\n" + errorStyle.Render(m.feedback) + "\n")
	default:
		if m.feedback != "" {
			b.WriteString("\n" + errorStyle.Render(m.feedback) + "\n")
		}
	}

	b.WriteString(helpStyle.Render(m.help()))
	return formStyle.Render(b.String()) + "\n"
}

func (m *Model) fieldView(f wizard.Field) string {
	var b strings.Builder
	switch f.Kind {
	case wizard.KindChoice, wizard.KindBool, wizard.KindMulti:
		for i, o := range f.Options {
			text := o.Label
			if f.Kind == wizard.KindMulti {
				mark := "[ ]"
				if slices.Contains(m.session.Answers.Equipment, o.Value) {
					mark = "[x]"
				}
				text = mark + " " + text
			}
			style := optionStyle
			if i == m.cursor {
				style = selectedOptionStyle
			}
			b.WriteString(style.Render(text))
			if o.Hint != "" {
				b.WriteString(" " + hintStyle.Render(o.Hint))
			}
			b.WriteString("\n")
		}
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) help() string {
	if m.state == stateFailed {
		return "enter: retry • esc: back • ctrl+c: quit"
	}
	f := m.currentField()
	switch f.Kind {
	case wizard.KindMulti:
		return "↑/↓: move • space: toggle • enter: next • esc: back • ctrl+c: quit"
	case wizard.KindChoice, wizard.KindBool:
		return "↑/↓: move • enter: select • esc: back • ctrl+c: quit"
	}
	return "enter: next • esc: back • ctrl+c: quit"
}

func (m *Model) doneView() string {
	var b strings.Builder
	if m.result.Saved {
		b.WriteString(successStyle.Render("Your details are saved."))
	} else {
		b.WriteString(successStyle.Render("All done."))
	}
	b.WriteString("\n\nContinue on WhatsApp:\n")
	b.WriteString(m.link)
	b.WriteString("\n")
	return b.String()
}
