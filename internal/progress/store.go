// Package progress holds a learner's progress record, the client-side
// store that mutates it, and the sync client that mirrors it to the
// backend. Local mutations always succeed; syncing is best effort.
package progress

import (
	"math"
	"sort"
	"sync"
)

// Record is the canonical progress blob, shared by the client store and
// the server's per-user KV record.
type Record struct {
	CompletedLessons []string       `json:"completedLessons"`
	QuizScores       map[string]int `json:"quizScores"`
	CurrentModule    int            `json:"currentModule"`
	CurrentLesson    int            `json:"currentLesson"`
	TotalScore       int            `json:"totalScore"`
}

// NewRecord returns an empty record with non-nil collections.
func NewRecord() Record {
	return Record{
		CompletedLessons: []string{},
		QuizScores:       map[string]int{},
	}
}

// Complete marks a lesson done with its quiz score. Membership is
// idempotent; a repeat completion only updates the score. TotalScore is
// recomputed as the rounded mean of all quiz scores.
func (r *Record) Complete(lessonKey string, score int) {
	if !r.Has(lessonKey) {
		r.CompletedLessons = append(r.CompletedLessons, lessonKey)
	}
	if r.QuizScores == nil {
		r.QuizScores = map[string]int{}
	}
	r.QuizScores[lessonKey] = score
	r.TotalScore = meanScore(r.QuizScores)
}

func (r *Record) Has(lessonKey string) bool {
	for _, k := range r.CompletedLessons {
		if k == lessonKey {
			return true
		}
	}
	return false
}

// CompletedSet returns completion membership keyed by lesson key.
func (r *Record) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(r.CompletedLessons))
	for _, k := range r.CompletedLessons {
		set[k] = true
	}
	return set
}

func (r *Record) clone() Record {
	out := *r
	out.CompletedLessons = append([]string{}, r.CompletedLessons...)
	out.QuizScores = make(map[string]int, len(r.QuizScores))
	for k, v := range r.QuizScores {
		out.QuizScores[k] = v
	}
	return out
}

func meanScore(scores map[string]int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sum += scores[k]
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

// Store is the thread-safe client-side progress holder. All mutations
// apply locally and immediately; the sync client mirrors them out.
type Store struct {
	mu     sync.RWMutex
	record Record
}

func NewStore() *Store {
	return &Store{record: NewRecord()}
}

// RecordCompletion applies a lesson completion locally.
func (s *Store) RecordCompletion(lessonKey string, score int) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Complete(lessonKey, score)
	return s.record.clone()
}

// SetPosition remembers where the learner currently is.
func (s *Store) SetPosition(moduleIdx, lessonIdx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.CurrentModule = moduleIdx
	s.record.CurrentLesson = lessonIdx
}

// Replace swaps in a remote record wholesale.
func (s *Store) Replace(r Record) {
	if r.CompletedLessons == nil {
		r.CompletedLessons = []string{}
	}
	if r.QuizScores == nil {
		r.QuizScores = map[string]int{}
	}
	s.mu.Lock()
	s.record = r
	s.mu.Unlock()
}

// Snapshot returns a copy of the current record.
func (s *Store) Snapshot() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.clone()
}

// Session ties an authenticated user to their local store. It exists
// from sign-in to sign-out; discarding it drops all local state.
type Session struct {
	UserID string
	Token  string
	Store  *Store
}

func NewSession(userID, token string) *Session {
	return &Session{
		UserID: userID,
		Token:  token,
		Store:  NewStore(),
	}
}
