package service

import (
	"context"
	"errors"
	"testing"

	"finlearn_backend/internal/curriculum"
	"finlearn_backend/internal/model"
	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/util"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	val, ok := f.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}
	return val, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func newProgressService() (*ProgressService, *repository.RecordRepository) {
	records := repository.NewRecordRepository(newFakeKV())
	return NewProgressService(records, curriculum.Catalog()), records
}

func intPtr(v int) *int { return &v }

func TestRecordProgressWithScore(t *testing.T) {
	svc, records := newProgressService()
	ctx := context.Background()

	if err := records.SaveProfile(ctx, "u1", model.ProfileRecord{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	rec, err := svc.RecordProgress(ctx, "u1", "0-0", 0, intPtr(80))
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if len(rec.CompletedLessons) != 1 || rec.CompletedLessons[0] != "0-0" {
		t.Errorf("completedLessons = %v, want [0-0]", rec.CompletedLessons)
	}
	if rec.QuizScores["0-0"] != 80 {
		t.Errorf("quizScores[0-0] = %d, want 80", rec.QuizScores["0-0"])
	}
	if rec.TotalScore != 80 {
		t.Errorf("totalScore = %d, want 80", rec.TotalScore)
	}

	profile, err := records.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.LastActive == "" {
		t.Error("lastActive not bumped by completion")
	}
}

func TestRecordProgressMembershipOnly(t *testing.T) {
	svc, _ := newProgressService()
	ctx := context.Background()

	if _, err := svc.RecordProgress(ctx, "u1", "0-0", 0, intPtr(90)); err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}

	// no score: membership stays, existing score untouched
	rec, err := svc.RecordProgress(ctx, "u1", "0-0", 0, nil)
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if len(rec.CompletedLessons) != 1 {
		t.Errorf("completedLessons = %v, want single entry", rec.CompletedLessons)
	}
	if rec.QuizScores["0-0"] != 90 {
		t.Errorf("quizScores[0-0] = %d, want 90 preserved", rec.QuizScores["0-0"])
	}
}

func TestRecordProgressTotalScore(t *testing.T) {
	svc, _ := newProgressService()
	ctx := context.Background()

	if _, err := svc.RecordProgress(ctx, "u1", "0-0", 0, intPtr(71)); err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	rec, err := svc.RecordProgress(ctx, "u1", "1-0", 1, intPtr(80))
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	// mean of 71 and 80 rounds to 76
	if rec.TotalScore != 76 {
		t.Errorf("totalScore = %d, want 76", rec.TotalScore)
	}
}

func TestRecordProgressUnknownLesson(t *testing.T) {
	svc, _ := newProgressService()
	ctx := context.Background()

	cases := []struct {
		name     string
		lessonID string
		moduleID int
	}{
		{"malformed key", "zero-zero", 0},
		{"module mismatch", "0-0", 1},
		{"module out of range", "99-0", 99},
		{"lesson out of range", "0-99", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordProgress(ctx, "u1", tc.lessonID, tc.moduleID, nil)
			if !errors.Is(err, util.ErrLessonNotFound) {
				t.Errorf("err = %v, want ErrLessonNotFound", err)
			}
		})
	}
}

func TestSetPosition(t *testing.T) {
	svc, _ := newProgressService()
	ctx := context.Background()

	rec, err := svc.SetPosition(ctx, "u1", 3, 1)
	if err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if rec.CurrentModule != 3 || rec.CurrentLesson != 1 {
		t.Errorf("position = %d-%d, want 3-1", rec.CurrentModule, rec.CurrentLesson)
	}

	if _, err := svc.SetPosition(ctx, "u1", 99, 0); !errors.Is(err, util.ErrLessonNotFound) {
		t.Errorf("module out of range: err = %v, want ErrLessonNotFound", err)
	}
	if _, err := svc.SetPosition(ctx, "u1", 0, 99); !errors.Is(err, util.ErrLessonNotFound) {
		t.Errorf("lesson out of range: err = %v, want ErrLessonNotFound", err)
	}
}

func TestProfileWithoutProgressRecord(t *testing.T) {
	svc, records := newProgressService()
	ctx := context.Background()

	if err := records.SaveProfile(ctx, "u1", model.ProfileRecord{ID: "u1"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	profile, rec, err := svc.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.ID != "u1" {
		t.Errorf("profile id = %q, want u1", profile.ID)
	}
	if len(rec.CompletedLessons) != 0 || rec.TotalScore != 0 {
		t.Errorf("expected empty progress record, got %+v", rec)
	}

	if _, _, err := svc.Profile(ctx, "missing"); !errors.Is(err, repository.ErrKeyNotFound) {
		t.Errorf("missing profile: err = %v, want ErrKeyNotFound", err)
	}
}
