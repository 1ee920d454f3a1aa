package lesson

import (
	"errors"
	"testing"

	"finlearn_backend/internal/curriculum"
)

func testLesson() curriculum.Lesson {
	return curriculum.Lesson{
		Title: "Cash Flow",
		Sections: []curriculum.Section{
			{Heading: "One", Body: "first"},
			{Heading: "Two", Body: "second"},
			{Heading: "Three", Body: "third"},
		},
		Quiz: questions(2),
		CheatSheet: curriculum.CheatSheet{
			Title:    "Cash Flow",
			Points:   []string{"track income", "track expenses"},
			DailyTip: "check your balance",
		},
	}
}

func finishQuiz(t *testing.T, q *Quiz, answers []int) {
	t.Helper()
	for _, a := range answers {
		if err := q.Select(a); err != nil {
			t.Fatal(err)
		}
		if err := q.Next(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMachine_HappyPath(t *testing.T) {
	var emitted []int
	m := NewMachine(testLesson(), func(score int) { emitted = append(emitted, score) })

	if m.Phase() != PhaseContent {
		t.Fatalf("phase = %s, want content", m.Phase())
	}

	// three sections: two advances stay in content, the third leaves it
	for i := 0; i < 2; i++ {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
		if m.Phase() != PhaseContent {
			t.Fatalf("phase = %s after section advance, want content", m.Phase())
		}
	}
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != PhaseCalculator {
		t.Fatalf("phase = %s, want calculator", m.Phase())
	}

	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != PhaseQuiz || m.Quiz() == nil {
		t.Fatalf("phase = %s, want quiz with an active quiz", m.Phase())
	}

	finishQuiz(t, m.Quiz(), []int{1, 0}) // 1 of 2 correct
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != PhaseSimulation {
		t.Fatalf("phase = %s, want simulation", m.Phase())
	}
	if m.Score() != 50 {
		t.Errorf("score = %d, want 50", m.Score())
	}
	if len(emitted) != 0 {
		t.Error("completion must not be emitted before the simulation finishes")
	}

	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != PhaseComplete {
		t.Fatalf("phase = %s, want complete", m.Phase())
	}
	// the summary screen alone records nothing
	if len(emitted) != 0 {
		t.Errorf("emitted = %v, reaching the summary must not emit", emitted)
	}

	if err := m.MarkComplete(); err != nil {
		t.Fatal(err)
	}
	if len(emitted) != 1 || emitted[0] != 50 {
		t.Errorf("emitted = %v, want exactly one emission of 50", emitted)
	}

	if err := m.Next(); !errors.Is(err, ErrLessonComplete) {
		t.Errorf("Next() after complete error = %v, want ErrLessonComplete", err)
	}
	if err := m.MarkComplete(); !errors.Is(err, ErrLessonComplete) {
		t.Errorf("repeat MarkComplete() error = %v, want ErrLessonComplete", err)
	}
	if len(emitted) != 1 {
		t.Errorf("emitted = %v, completion must fire exactly once", emitted)
	}
}

func TestMachine_MarkCompleteBeforeSummary(t *testing.T) {
	var emitted []int
	m := NewMachine(testLesson(), func(score int) { emitted = append(emitted, score) })
	for m.Phase() != PhaseQuiz {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
	}
	finishQuiz(t, m.Quiz(), []int{1, 1})
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}

	// still in the simulation: the acknowledgment is not available yet
	if err := m.MarkComplete(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("MarkComplete() in simulation error = %v, want ErrBadTransition", err)
	}
	if len(emitted) != 0 {
		t.Errorf("emitted = %v, want none before the summary is acknowledged", emitted)
	}
}

func TestMachine_BackWithinContent(t *testing.T) {
	m := NewMachine(testLesson(), nil)

	// back at the first section stays put
	if err := m.Back(); err != nil {
		t.Fatalf("Back() at first section error = %v", err)
	}
	if _, idx := m.Section(); idx != 0 {
		t.Errorf("section = %d, want 0", idx)
	}

	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if err := m.Back(); err != nil {
		t.Fatal(err)
	}
	if _, idx := m.Section(); idx != 0 {
		t.Errorf("section = %d after back, want 0", idx)
	}
}

func TestMachine_BackOutsideContent(t *testing.T) {
	m := NewMachine(testLesson(), nil)
	for m.Phase() == PhaseContent {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Back(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("Back() in calculator error = %v, want ErrBadTransition", err)
	}
}

func TestMachine_QuizGate(t *testing.T) {
	m := NewMachine(testLesson(), nil)
	for m.Phase() != PhaseQuiz {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Next(); !errors.Is(err, ErrQuizInFlight) {
		t.Errorf("Next() with unfinished quiz error = %v, want ErrQuizInFlight", err)
	}
}

func TestMachine_ReviewEdges(t *testing.T) {
	m := NewMachine(testLesson(), nil)
	for m.Phase() != PhaseCalculator {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
	}

	// calculator review returns to the first content section
	if err := m.Review(); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != PhaseContent {
		t.Fatalf("phase = %s, want content", m.Phase())
	}
	if _, idx := m.Section(); idx != 0 {
		t.Errorf("section = %d after review, want 0", idx)
	}

	for m.Phase() != PhaseQuiz {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
	}
	first := m.Quiz()
	if err := first.Select(1); err != nil {
		t.Fatal(err)
	}

	// quiz review drops the attempt and returns to the calculator
	if err := m.Review(); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != PhaseCalculator {
		t.Fatalf("phase = %s, want calculator", m.Phase())
	}
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if m.Quiz() == first {
		t.Error("re-entering the quiz must create a fresh attempt")
	}
	if m.Quiz().Answered() {
		t.Error("fresh quiz attempt must start unanswered")
	}
}

func TestMachine_ReviewNotAllowedLate(t *testing.T) {
	m := NewMachine(testLesson(), nil)
	for m.Phase() != PhaseQuiz {
		if err := m.Next(); err != nil {
			t.Fatal(err)
		}
	}
	finishQuiz(t, m.Quiz(), []int{1, 1})
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if err := m.Review(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("Review() in simulation error = %v, want ErrBadTransition", err)
	}
}

func TestRenderCheatSheet(t *testing.T) {
	got := RenderCheatSheet(testLesson().CheatSheet)
	want := "Cash Flow\n\n1. track income\n\n2. track expenses\n\nDaily Tip: check your balance"
	if got != want {
		t.Errorf("RenderCheatSheet() = %q, want %q", got, want)
	}
}

func TestCheatSheetFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Cash Flow", "cash-flow-cheatsheet.txt"},
		{"The 50/30/20 Rule", "the-503020-rule-cheatsheet.txt"},
		{"", "cheatsheet-cheatsheet.txt"},
	}
	for _, c := range cases {
		if got := CheatSheetFilename(c.in); got != c.want {
			t.Errorf("CheatSheetFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
