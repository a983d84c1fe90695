// Package store holds the single current lesson plan of a session.
package store

import (
	"fmt"
	"sync"

	"github.com/alexanderramin/splanner/internal/domain"
)

// Store owns one LessonPlan. Updates replace the whole value; readers always
// get a copy, never a reference into the stored plan.
type Store struct {
	mu        sync.RWMutex
	plan      domain.LessonPlan
	revision  uint64
	listeners []func(domain.LessonPlan)
}

// New creates a Store holding initial. An invalid initial plan falls back to
// the default plan so the store never holds a broken value.
func New(initial domain.LessonPlan) *Store {
	plan := initial.Clone()
	plan.Normalize()
	if plan.Validate() != nil {
		plan = domain.DefaultLessonPlan()
	}
	return &Store{plan: plan}
}

// Current returns a copy of the stored plan.
func (s *Store) Current() domain.LessonPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan.Clone()
}

// Revision increases by one on every successful Update.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Update replaces the stored plan with next. A plan that breaks a structural
// invariant is rejected and the previous value stays.
func (s *Store) Update(next domain.LessonPlan) error {
	plan := next.Clone()
	plan.Normalize()
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("updating lesson plan: %w", err)
	}

	s.mu.Lock()
	s.plan = plan
	s.revision++
	listeners := append([]func(domain.LessonPlan){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(plan.Clone())
	}
	return nil
}

// Subscribe registers fn to be called with a copy of every new value.
func (s *Store) Subscribe(fn func(domain.LessonPlan)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
