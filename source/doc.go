// Package source provides built-in cohort source implementations.
//
// Cohort sources supply the students and dorms an allocation runs over.
// The package includes:
//
//   - Static: Fixed, replaceable lists of students and dorms
//
// Custom sources can be implemented by satisfying the types.CohortSource interface.
package source
