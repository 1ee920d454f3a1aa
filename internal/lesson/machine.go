package lesson

import (
	"errors"

	"finlearn_backend/internal/curriculum"
)

type Phase string

const (
	PhaseContent    Phase = "content"
	PhaseCalculator Phase = "calculator"
	PhaseQuiz       Phase = "quiz"
	PhaseSimulation Phase = "simulation"
	PhaseComplete   Phase = "complete"
)

var (
	ErrLessonComplete = errors.New("lesson already complete")
	ErrQuizInFlight   = errors.New("quiz not finished")
	ErrBadTransition  = errors.New("transition not allowed in this phase")
)

// Machine tracks one attempt at one lesson. Each attempt starts at the
// first content section; reaching the complete phase shows the summary,
// and the score is emitted exactly once when the learner acknowledges it
// via MarkComplete. Retaking a lesson means a new Machine.
type Machine struct {
	lesson     curriculum.Lesson
	phase      Phase
	section    int
	quiz       *Quiz
	score      int
	emitted    bool
	onComplete func(score int)
}

// NewMachine starts a fresh attempt. onComplete may be nil; when set it
// receives the quiz score on the MarkComplete acknowledgment.
func NewMachine(l curriculum.Lesson, onComplete func(score int)) *Machine {
	return &Machine{
		lesson:     l,
		phase:      PhaseContent,
		onComplete: onComplete,
	}
}

func (m *Machine) Phase() Phase { return m.phase }

// Section returns the active content section and its index. Only
// meaningful during the content phase.
func (m *Machine) Section() (curriculum.Section, int) {
	if m.section >= len(m.lesson.Sections) {
		return curriculum.Section{}, m.section
	}
	return m.lesson.Sections[m.section], m.section
}

// Quiz returns the active quiz instance, nil outside the quiz phase.
func (m *Machine) Quiz() *Quiz { return m.quiz }

// Score returns the final quiz score; valid once the machine reaches
// the simulation or complete phase.
func (m *Machine) Score() int { return m.score }

// Next advances the attempt: through content sections, then into the
// calculator, quiz, simulation and complete phases in order. Leaving
// the quiz phase requires the quiz to be finished.
func (m *Machine) Next() error {
	switch m.phase {
	case PhaseContent:
		if m.section < len(m.lesson.Sections)-1 {
			m.section++
			return nil
		}
		m.phase = PhaseCalculator
		return nil
	case PhaseCalculator:
		m.quiz = NewQuiz(m.lesson.Quiz)
		m.phase = PhaseQuiz
		return nil
	case PhaseQuiz:
		if !m.quiz.Done() {
			return ErrQuizInFlight
		}
		m.score = m.quiz.Score()
		m.phase = PhaseSimulation
		return nil
	case PhaseSimulation:
		m.phase = PhaseComplete
		return nil
	default:
		return ErrLessonComplete
	}
}

// MarkComplete acknowledges the summary screen and emits the completion
// score. Only valid in the complete phase, and only once per attempt.
func (m *Machine) MarkComplete() error {
	if m.phase != PhaseComplete {
		return ErrBadTransition
	}
	if m.emitted {
		return ErrLessonComplete
	}
	m.emitted = true
	if m.onComplete != nil {
		m.onComplete(m.score)
	}
	return nil
}

// Back steps to the previous content section. It only applies within
// the content phase; at the first section it is a no-op.
func (m *Machine) Back() error {
	if m.phase != PhaseContent {
		return ErrBadTransition
	}
	if m.section > 0 {
		m.section--
	}
	return nil
}

// Review steps one phase backward along the review edges: calculator
// back to the first content section, quiz back to the calculator. The
// simulation and complete phases have no way back; the score is already
// locked in.
func (m *Machine) Review() error {
	switch m.phase {
	case PhaseCalculator:
		m.phase = PhaseContent
		m.section = 0
		return nil
	case PhaseQuiz:
		m.phase = PhaseCalculator
		m.quiz = nil
		return nil
	default:
		return ErrBadTransition
	}
}
