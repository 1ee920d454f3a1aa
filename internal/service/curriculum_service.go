package service

import (
	"context"

	"finlearn_backend/internal/curriculum"
	"finlearn_backend/internal/finmath"
	"finlearn_backend/internal/lesson"
	"finlearn_backend/internal/progress"
	"finlearn_backend/internal/util"
	"finlearn_backend/pkg/logger"

	"go.uber.org/zap"
)

// CurriculumService serves the module roadmap, lesson content and the
// calculator formulas behind them.
type CurriculumService struct {
	Modules  []curriculum.Module
	Registry *finmath.Registry
	Tables   *finmath.TaxTables
	Storage  *StorageService
}

func NewCurriculumService(modules []curriculum.Module, registry *finmath.Registry, tables *finmath.TaxTables, storage *StorageService) *CurriculumService {
	return &CurriculumService{
		Modules:  modules,
		Registry: registry,
		Tables:   tables,
		Storage:  storage,
	}
}

// ModuleStatus is one roadmap entry with the learner's standing in it.
type ModuleStatus struct {
	Index          int    `json:"index"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	LessonCount    int    `json:"lessonCount"`
	CompletedCount int    `json:"completedCount"`
	Unlocked       bool   `json:"unlocked"`
}

// Overview maps the catalog against a progress record into the
// roadmap the client renders.
func (s *CurriculumService) Overview(rec progress.Record) []ModuleStatus {
	completed := rec.CompletedSet()
	out := make([]ModuleStatus, 0, len(s.Modules))
	for mi, m := range s.Modules {
		status := ModuleStatus{
			Index:       mi,
			Title:       m.Title,
			Description: m.Description,
			Icon:        m.Icon,
			LessonCount: len(m.Lessons),
			Unlocked:    curriculum.ModuleUnlocked(s.Modules, completed, mi),
		}
		for li := range m.Lessons {
			if completed[curriculum.LessonKey(mi, li)] {
				status.CompletedCount++
			}
		}
		out = append(out, status)
	}
	return out
}

func (s *CurriculumService) Lesson(moduleIdx, lessonIdx int) (curriculum.Lesson, error) {
	if moduleIdx < 0 || moduleIdx >= len(s.Modules) {
		return curriculum.Lesson{}, util.ErrLessonNotFound
	}
	m := s.Modules[moduleIdx]
	if lessonIdx < 0 || lessonIdx >= len(m.Lessons) {
		return curriculum.Lesson{}, util.ErrLessonNotFound
	}
	return m.Lessons[lessonIdx], nil
}

// CheatSheet renders a lesson's cheat sheet as downloadable text and
// archives a copy through the storage provider. Archive failures only
// log; the download must not depend on storage health.
func (s *CurriculumService) CheatSheet(ctx context.Context, moduleIdx, lessonIdx int) (filename, text string, err error) {
	l, err := s.Lesson(moduleIdx, lessonIdx)
	if err != nil {
		return "", "", err
	}
	filename = lesson.CheatSheetFilename(l.CheatSheet.Title)
	text = lesson.RenderCheatSheet(l.CheatSheet)

	if s.Storage != nil {
		if _, err := s.Storage.ArchiveCheatSheet(ctx, filename, text); err != nil {
			logger.Log.Warn("cheat sheet archive failed",
				zap.String("filename", filename),
				zap.Error(err))
		}
	}
	return filename, text, nil
}

func (s *CurriculumService) Evaluate(formulaID string, inputs []float64) ([]finmath.ResultRow, error) {
	return s.Registry.Evaluate(formulaID, inputs)
}

func (s *CurriculumService) Regimes() []finmath.Regime {
	return s.Tables.Set().Regimes
}

func (s *CurriculumService) CompareTax(gross float64, d finmath.Deductions) finmath.Comparison {
	return s.Tables.Compare(gross, d)
}
