package types

import "context"

// CohortSource supplies the students and dorms an allocation runs over.
//
// Implementations are the seam to the collaborator layer (files, databases,
// forms). They must return slices the caller may keep without affecting the
// source.
type CohortSource interface {
	// ListStudents returns the current students in input order.
	ListStudents(ctx context.Context) ([]Student, error)

	// ListDorms returns the current dorms in input order.
	ListDorms(ctx context.Context) ([]Dorm, error)
}
