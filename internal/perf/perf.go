// Package perf keeps the headline performance numbers of the latest
// whole-collection render available to other components, replacing ad-hoc
// globals with a narrow injected surface.
package perf

import (
	"sync"
	"time"
)

// Sample captures the headline numbers of one whole-collection render.
type Sample struct {
	StreakMax  float64   `json:"streakMax"`
	StreakCur  float64   `json:"streakCur"`
	DailyAvg   float64   `json:"dailyAvg"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Recorder receives samples as renders produce them.
type Recorder interface {
	Record(Sample)
}

// Store keeps the most recent sample. Last writer wins.
type Store struct {
	mu      sync.RWMutex
	current Sample
	set     bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Record replaces the current sample.
func (s *Store) Record(sample Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sample
	s.set = true
}

// Current returns the last recorded sample, if any.
func (s *Store) Current() (Sample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.set
}
