// Package lesson drives a learner through one lesson: the phase state
// machine, the quiz engine and the printable cheat sheet.
package lesson

import (
	"errors"
	"math"

	"finlearn_backend/internal/curriculum"
)

var (
	ErrOptionOutOfRange = errors.New("option out of range")
	ErrUnanswered       = errors.New("current question not answered")
	ErrQuizDone         = errors.New("quiz already finished")
)

const unanswered = -1

// Quiz walks a question list one at a time. Answers lock on first
// selection; repeat selections on the same question are ignored.
type Quiz struct {
	questions []curriculum.QuizQuestion
	current   int
	answers   []int
	done      bool
}

func NewQuiz(questions []curriculum.QuizQuestion) *Quiz {
	q := &Quiz{
		questions: questions,
		answers:   make([]int, len(questions)),
	}
	for i := range q.answers {
		q.answers[i] = unanswered
	}
	if len(questions) == 0 {
		q.done = true
	}
	return q
}

// Current returns the active question and its index.
func (q *Quiz) Current() (curriculum.QuizQuestion, int) {
	if q.done || q.current >= len(q.questions) {
		return curriculum.QuizQuestion{}, q.current
	}
	return q.questions[q.current], q.current
}

// Select records an answer for the current question. Once a question is
// answered the choice is final.
func (q *Quiz) Select(option int) error {
	if q.done {
		return ErrQuizDone
	}
	if option < 0 || option >= len(q.questions[q.current].Options) {
		return ErrOptionOutOfRange
	}
	if q.answers[q.current] != unanswered {
		return nil
	}
	q.answers[q.current] = option
	return nil
}

// Answered reports whether the current question has a locked answer.
func (q *Quiz) Answered() bool {
	if q.done {
		return true
	}
	return q.answers[q.current] != unanswered
}

// Next advances past an answered question; after the last question the
// quiz is done and the score is final.
func (q *Quiz) Next() error {
	if q.done {
		return ErrQuizDone
	}
	if q.answers[q.current] == unanswered {
		return ErrUnanswered
	}
	q.current++
	if q.current >= len(q.questions) {
		q.done = true
	}
	return nil
}

func (q *Quiz) Done() bool {
	return q.done
}

func (q *Quiz) CorrectCount() int {
	count := 0
	for i, ans := range q.answers {
		if ans != unanswered && ans == q.questions[i].CorrectAnswer {
			count++
		}
	}
	return count
}

// Score is the percentage of correct answers, rounded to the nearest
// integer. An empty quiz scores 0.
func (q *Quiz) Score() int {
	if len(q.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(q.CorrectCount()) / float64(len(q.questions)) * 100))
}

func (q *Quiz) Total() int {
	return len(q.questions)
}
