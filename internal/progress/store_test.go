package progress

import "testing"

func TestRecordCompletion_Idempotent(t *testing.T) {
	s := NewStore()

	s.RecordCompletion("0-0", 80)
	s.RecordCompletion("0-0", 80)
	rec := s.Snapshot()
	if len(rec.CompletedLessons) != 1 {
		t.Errorf("completed = %v, repeat completion must not duplicate", rec.CompletedLessons)
	}
}

func TestRecordCompletion_ScoreLastWriteWins(t *testing.T) {
	s := NewStore()
	s.RecordCompletion("0-0", 60)
	s.RecordCompletion("0-0", 90)

	rec := s.Snapshot()
	if rec.QuizScores["0-0"] != 90 {
		t.Errorf("score = %d, want the retake's 90", rec.QuizScores["0-0"])
	}
	if len(rec.CompletedLessons) != 1 {
		t.Errorf("completed = %v, want one entry", rec.CompletedLessons)
	}
}

func TestTotalScore_RoundedMean(t *testing.T) {
	s := NewStore()
	if s.Snapshot().TotalScore != 0 {
		t.Error("empty record must have total score 0")
	}

	s.RecordCompletion("0-0", 80)
	s.RecordCompletion("1-0", 71)
	// mean 75.5 rounds to 76
	if got := s.Snapshot().TotalScore; got != 76 {
		t.Errorf("total = %d, want 76", got)
	}

	s.RecordCompletion("2-0", 100)
	// mean of 80, 71, 100 is 83.67
	if got := s.Snapshot().TotalScore; got != 84 {
		t.Errorf("total = %d, want 84", got)
	}
}

func TestSetPosition(t *testing.T) {
	s := NewStore()
	s.SetPosition(3, 1)
	rec := s.Snapshot()
	if rec.CurrentModule != 3 || rec.CurrentLesson != 1 {
		t.Errorf("position = (%d,%d), want (3,1)", rec.CurrentModule, rec.CurrentLesson)
	}
}

func TestReplace_NormalizesNilCollections(t *testing.T) {
	s := NewStore()
	s.Replace(Record{CurrentModule: 2})

	rec := s.Snapshot()
	if rec.CompletedLessons == nil || rec.QuizScores == nil {
		t.Error("replaced record must have non-nil collections")
	}
	if rec.CurrentModule != 2 {
		t.Errorf("currentModule = %d, want 2", rec.CurrentModule)
	}

	// replacing must not panic later mutations
	s.RecordCompletion("0-0", 50)
	if s.Snapshot().TotalScore != 50 {
		t.Errorf("total = %d, want 50", s.Snapshot().TotalScore)
	}
}

func TestSnapshot_Isolated(t *testing.T) {
	s := NewStore()
	s.RecordCompletion("0-0", 80)

	snap := s.Snapshot()
	snap.CompletedLessons[0] = "tampered"
	snap.QuizScores["0-0"] = 1

	rec := s.Snapshot()
	if rec.CompletedLessons[0] != "0-0" || rec.QuizScores["0-0"] != 80 {
		t.Error("snapshot mutations must not reach the store")
	}
}

func TestCompletedSet(t *testing.T) {
	s := NewStore()
	s.RecordCompletion("0-0", 80)
	s.RecordCompletion("1-0", 90)

	snap := s.Snapshot()
	set := snap.CompletedSet()
	if !set["0-0"] || !set["1-0"] || set["2-0"] {
		t.Errorf("set = %v, want exactly 0-0 and 1-0", set)
	}
}

func TestNewSession(t *testing.T) {
	sess := NewSession("user-1", "tok")
	if sess.Store == nil {
		t.Fatal("session must carry a fresh store")
	}
	if sess.UserID != "user-1" || sess.Token != "tok" {
		t.Errorf("session = %+v", sess)
	}
	if got := sess.Store.Snapshot(); got.TotalScore != 0 || len(got.CompletedLessons) != 0 {
		t.Error("fresh session store must start empty")
	}
}
