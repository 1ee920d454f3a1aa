// Package curriculum defines the static learning catalog: modules,
// lessons, embedded calculators, quizzes and simulations. The catalog
// is plain data; all behavior lives in the lesson and finmath packages.
package curriculum

import (
	"fmt"
	"strconv"
	"strings"

	"finlearn_backend/internal/finmath"
)

type SimulationType string

const (
	SimBudget     SimulationType = "budget"
	SimSavings    SimulationType = "savings"
	SimInvestment SimulationType = "investment"
	SimCredit     SimulationType = "credit"
	SimLoan       SimulationType = "loan"
	SimCompound   SimulationType = "compound"
)

func (s SimulationType) Valid() bool {
	switch s {
	case SimBudget, SimSavings, SimInvestment, SimCredit, SimLoan, SimCompound:
		return true
	}
	return false
}

// Section is one page of lesson content.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// CalculatorInput describes one slider of a lesson calculator.
type CalculatorInput struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Calculator binds a lesson to a formula in the registry. The input
// order must match the formula's declared arity.
type Calculator struct {
	FormulaID string            `json:"formulaId"`
	Inputs    []CalculatorInput `json:"inputs"`
}

type QuizQuestion struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type CheatSheet struct {
	Title    string   `json:"title"`
	Points   []string `json:"points"`
	DailyTip string   `json:"dailyTip"`
}

type Lesson struct {
	Title      string         `json:"title"`
	Sections   []Section      `json:"sections"`
	Calculator Calculator     `json:"calculator"`
	Quiz       []QuizQuestion `json:"quiz"`
	Simulation SimulationType `json:"simulation"`
	CheatSheet CheatSheet     `json:"cheatSheet"`
}

type Module struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Lessons     []Lesson `json:"lessons"`
}

// LessonKey identifies a lesson as "{module}-{lesson}" with zero-based
// indexes. Progress records store these keys.
func LessonKey(moduleIdx, lessonIdx int) string {
	return fmt.Sprintf("%d-%d", moduleIdx, lessonIdx)
}

// ParseLessonKey inverts LessonKey.
func ParseLessonKey(key string) (moduleIdx, lessonIdx int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed lesson key %q", key)
	}
	moduleIdx, err = strconv.Atoi(parts[0])
	if err != nil || moduleIdx < 0 {
		return 0, 0, fmt.Errorf("malformed lesson key %q", key)
	}
	lessonIdx, err = strconv.Atoi(parts[1])
	if err != nil || lessonIdx < 0 {
		return 0, 0, fmt.Errorf("malformed lesson key %q", key)
	}
	return moduleIdx, lessonIdx, nil
}

// Validate checks the catalog's internal consistency against the
// formula registry. Run at startup so a bad catalog edit fails fast.
func Validate(modules []Module, registry *finmath.Registry) error {
	if len(modules) == 0 {
		return fmt.Errorf("catalog has no modules")
	}
	for mi, m := range modules {
		if len(m.Lessons) == 0 {
			return fmt.Errorf("module %d (%s) has no lessons", mi, m.Title)
		}
		for li, l := range m.Lessons {
			key := LessonKey(mi, li)
			if len(l.Sections) == 0 {
				return fmt.Errorf("lesson %s has no content sections", key)
			}
			if !l.Simulation.Valid() {
				return fmt.Errorf("lesson %s has unknown simulation type %q", key, l.Simulation)
			}
			formula, err := registry.Lookup(l.Calculator.FormulaID)
			if err != nil {
				return fmt.Errorf("lesson %s: %w", key, err)
			}
			if len(l.Calculator.Inputs) != formula.Arity {
				return fmt.Errorf("lesson %s calculator has %d inputs, formula %s wants %d",
					key, len(l.Calculator.Inputs), formula.ID, formula.Arity)
			}
			for _, in := range l.Calculator.Inputs {
				if in.Min > in.Max {
					return fmt.Errorf("lesson %s input %s has min > max", key, in.Name)
				}
				if in.Default < in.Min || in.Default > in.Max {
					return fmt.Errorf("lesson %s input %s default out of range", key, in.Name)
				}
			}
			for qi, q := range l.Quiz {
				if len(q.Options) == 0 {
					return fmt.Errorf("lesson %s question %d has no options", key, qi)
				}
				if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
					return fmt.Errorf("lesson %s question %d correct answer out of range", key, qi)
				}
			}
		}
	}
	return nil
}

// ModuleUnlocked reports whether a learner may enter the module.
// Module 0 is always open; every later module requires the full
// completion of the one before it.
func ModuleUnlocked(modules []Module, completed map[string]bool, moduleIdx int) bool {
	if moduleIdx < 0 || moduleIdx >= len(modules) {
		return false
	}
	if moduleIdx == 0 {
		return true
	}
	prev := moduleIdx - 1
	for li := range modules[prev].Lessons {
		if !completed[LessonKey(prev, li)] {
			return false
		}
	}
	return true
}
