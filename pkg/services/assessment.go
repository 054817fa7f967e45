package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"clinic-site/pkg/models"
)

// QuestionCount is the fixed length of the assessment.
const QuestionCount = 4

const (
	summaryIntro  = "Hello, I completed the assessment:\n\n"
	summaryBullet = "🔹 "
	summaryOutro  = "\nI need a consultation."
)

var (
	ErrWizardClosed      = errors.New("assessment is closed")
	ErrWizardFinished    = errors.New("assessment is already finished")
	ErrWizardNotFinished = errors.New("assessment is not finished")
	ErrInvalidOption     = errors.New("option is not offered for this question")
	ErrInvalidWizard     = errors.New("invalid assessment state")
)

type WizardState string

const (
	StateClosed   WizardState = "closed"
	StateAsking   WizardState = "asking"
	StateFinished WizardState = "finished"
)

// Wizard is the assessment state machine: closed, asking(step), finished.
// Answers always has QuestionCount slots.
type Wizard struct {
	State   WizardState `json:"state"`
	Step    int         `json:"step"`
	Answers []string    `json:"answers"`
}

func NewWizard() *Wizard {
	return &Wizard{State: StateClosed, Answers: make([]string, QuestionCount)}
}

// Open starts the assessment from a closed wizard. Open on a running wizard does nothing.
func (w *Wizard) Open() {
	if w.State != StateClosed {
		return
	}
	w.reset()
}

// Select records option for the current step and advances.
func (w *Wizard) Select(option string) error {
	switch w.State {
	case StateClosed:
		return ErrWizardClosed
	case StateFinished:
		return ErrWizardFinished
	}

	w.Answers[w.Step] = option
	if w.Step < QuestionCount-1 {
		w.Step++
		return nil
	}
	w.State = StateFinished
	return nil
}

func (w *Wizard) Restart() error {
	if w.State == StateClosed {
		return ErrWizardClosed
	}
	w.reset()
	return nil
}

// Close discards every answer.
func (w *Wizard) Close() {
	w.State = StateClosed
	w.Step = 0
	w.Answers = make([]string, QuestionCount)
}

func (w *Wizard) reset() {
	w.State = StateAsking
	w.Step = 0
	w.Answers = make([]string, QuestionCount)
}

// Progress is the completion percentage shown in the progress bar.
func (w *Wizard) Progress() int {
	done := w.Step
	if w.State == StateFinished {
		done = QuestionCount
	}
	return done * 100 / QuestionCount
}

// SelectFrom checks option against the current question before selecting it.
func (w *Wizard) SelectFrom(questions []models.Question, option string) error {
	if w.State == StateAsking {
		if w.Step >= len(questions) || !questions[w.Step].HasOption(option) {
			return ErrInvalidOption
		}
	}
	return w.Select(option)
}

type SummaryLine struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (w *Wizard) Lines(questions []models.Question) []SummaryLine {
	lines := make([]SummaryLine, 0, len(questions))
	for i, q := range questions {
		answer := ""
		if i < len(w.Answers) {
			answer = w.Answers[i]
		}
		lines = append(lines, SummaryLine{Question: q.Question, Answer: answer})
	}
	return lines
}

// Summary formats the finished assessment as the outbound chat message.
func (w *Wizard) Summary(questions []models.Question) (string, error) {
	if w.State != StateFinished {
		return "", ErrWizardNotFinished
	}
	var b strings.Builder
	b.WriteString(summaryIntro)
	for _, line := range w.Lines(questions) {
		fmt.Fprintf(&b, "%s%s: %s\n", summaryBullet, line.Question, line.Answer)
	}
	b.WriteString(summaryOutro)
	return b.String(), nil
}

// Encode serializes the wizard for the session cookie.
func (w *Wizard) Encode() (string, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeWizard(raw string) (*Wizard, error) {
	var w Wizard
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWizard, err)
	}
	if len(w.Answers) != QuestionCount || w.Step < 0 || w.Step >= QuestionCount {
		return nil, ErrInvalidWizard
	}
	switch w.State {
	case StateClosed, StateAsking, StateFinished:
	default:
		return nil, ErrInvalidWizard
	}
	return &w, nil
}
