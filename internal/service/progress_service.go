package service

import (
	"context"
	"errors"
	"time"

	"finlearn_backend/internal/curriculum"
	"finlearn_backend/internal/model"
	"finlearn_backend/internal/progress"
	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/util"
)

// ProgressService owns the server-side read-modify-write cycle on the
// per-user progress blob.
type ProgressService struct {
	Records *repository.RecordRepository
	Modules []curriculum.Module
}

func NewProgressService(records *repository.RecordRepository, modules []curriculum.Module) *ProgressService {
	return &ProgressService{
		Records: records,
		Modules: modules,
	}
}

func (s *ProgressService) Profile(ctx context.Context, userID string) (model.ProfileRecord, progress.Record, error) {
	profile, err := s.Records.GetProfile(ctx, userID)
	if err != nil {
		return model.ProfileRecord{}, progress.Record{}, err
	}
	rec, err := s.Records.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			// progress record can lag a freshly seeded profile
			return profile, progress.NewRecord(), nil
		}
		return model.ProfileRecord{}, progress.Record{}, err
	}
	return profile, rec, nil
}

// RecordProgress marks a lesson completed. A nil quizScore records
// membership only; a present score also updates the lesson's quiz
// score and the total. The profile's lastActive is bumped alongside.
func (s *ProgressService) RecordProgress(ctx context.Context, userID, lessonID string, moduleID int, quizScore *int) (progress.Record, error) {
	if err := s.validateLesson(lessonID, moduleID); err != nil {
		return progress.Record{}, err
	}

	rec, err := s.Records.GetProgress(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			return progress.Record{}, err
		}
		rec = progress.NewRecord()
	}

	if quizScore != nil {
		rec.Complete(lessonID, *quizScore)
	} else if !rec.Has(lessonID) {
		rec.CompletedLessons = append(rec.CompletedLessons, lessonID)
	}

	if err := s.Records.SaveProgress(ctx, userID, rec); err != nil {
		return progress.Record{}, err
	}
	if err := s.touchProfile(ctx, userID); err != nil {
		return progress.Record{}, err
	}
	return rec, nil
}

// SetPosition stores the learner's current module and lesson.
func (s *ProgressService) SetPosition(ctx context.Context, userID string, moduleID, lessonID int) (progress.Record, error) {
	if moduleID < 0 || moduleID >= len(s.Modules) {
		return progress.Record{}, util.ErrLessonNotFound
	}
	if lessonID < 0 || lessonID >= len(s.Modules[moduleID].Lessons) {
		return progress.Record{}, util.ErrLessonNotFound
	}

	rec, err := s.Records.GetProgress(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			return progress.Record{}, err
		}
		rec = progress.NewRecord()
	}

	rec.CurrentModule = moduleID
	rec.CurrentLesson = lessonID

	if err := s.Records.SaveProgress(ctx, userID, rec); err != nil {
		return progress.Record{}, err
	}
	return rec, nil
}

func (s *ProgressService) validateLesson(lessonID string, moduleID int) error {
	m, l, err := curriculum.ParseLessonKey(lessonID)
	if err != nil {
		return util.ErrLessonNotFound
	}
	if m != moduleID {
		return util.ErrLessonNotFound
	}
	if m >= len(s.Modules) || l >= len(s.Modules[m].Lessons) {
		return util.ErrLessonNotFound
	}
	return nil
}

func (s *ProgressService) touchProfile(ctx context.Context, userID string) error {
	profile, err := s.Records.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	profile.LastActive = time.Now().UTC().Format(time.RFC3339)
	return s.Records.SaveProfile(ctx, userID, profile)
}
