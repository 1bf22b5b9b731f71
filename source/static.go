package source

import (
	"context"
	"slices"
	"sync"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Static implements a cohort source with fixed lists of students and dorms.
type Static struct {
	mu       sync.RWMutex
	students []types.Student
	dorms    []types.Dorm
}

var _ types.CohortSource = (*Static)(nil)

// NewStatic creates a new static cohort source.
//
// The source keeps its own copies of both slices. Useful for tests, demos and
// callers that load records once at startup.
//
// Parameters:
//   - students: Students in input order
//   - dorms: Dorms in input order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(students, dorms)
//	alloc, err := engine.AllocateFrom(ctx, dormalloc.KindGreedy, src)
func NewStatic(students []types.Student, dorms []types.Dorm) *Static {
	return &Static{
		students: slices.Clone(students),
		dorms:    slices.Clone(dorms),
	}
}

// ListStudents returns a copy of the student list.
//
// Returns:
//   - []types.Student: The current students
//   - error: Always nil (never fails)
func (s *Static) ListStudents(_ context.Context) ([]types.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.students), nil
}

// ListDorms returns a copy of the dorm list.
//
// Returns:
//   - []types.Dorm: The current dorms
//   - error: Always nil (never fails)
func (s *Static) ListDorms(_ context.Context) ([]types.Dorm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.dorms), nil
}

// Update replaces both lists.
//
// This lets the static source stand in for an editable store, e.g. adding a
// dorm before reallocating the waitlist.
//
// Example:
//
//	src := source.NewStatic(students, dorms)
//	// Later: open a new dorm
//	src.Update(students, append(dorms, newDorm))
func (s *Static) Update(students []types.Student, dorms []types.Dorm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = slices.Clone(students)
	s.dorms = slices.Clone(dorms)
}
