// Package sample generates a synthetic cohort for demos and load tests.
//
// Records are produced in the field-keyed form the collaborator layer uses,
// so loading them exercises the same coercion path as real input.
package sample

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/javdevA/SmartDormCapstonePro/studentid"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// DefaultStudents is the cohort size of the built-in sample.
const DefaultStudents = 20

var (
	firstNames = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}
	tagChoices = []string{"quiet", "studious", "party", ""}

	dormRecords = []map[string]string{
		{"dorm_id": "D1", "name": "Lepka Palace", "capacity": "3", "attributes": "quiet"},
		{"dorm_id": "D2", "name": "Study Hall", "capacity": "4", "attributes": "studious"},
		{"dorm_id": "D3", "name": "Party Central", "capacity": "5", "attributes": "party"},
		{"dorm_id": "D4", "name": "Quiet Zone", "capacity": "2", "attributes": "quiet"},
		{"dorm_id": "D5", "name": "Freshman Dorm", "capacity": "6", "attributes": "new"},
	}
)

// StudentRecords generates n student records with checksummed identifiers.
//
// Identifiers are 1000+i followed by their checksum digit. Year, priority,
// two preferred dorms (D1-D5) and one tag are drawn from r.
func StudentRecords(r *rand.Rand, n int) []map[string]string {
	out := make([]map[string]string, n)
	for i := range out {
		out[i] = map[string]string{
			"student_id":      studentid.ComputeChecksum(strconv.Itoa(1000 + i)),
			"name":            fmt.Sprintf("%s %c", firstNames[r.IntN(len(firstNames))], rune('A'+i%10)),
			"year":            strconv.Itoa(1 + r.IntN(4)),
			"priority":        strconv.Itoa(r.IntN(4)),
			"preferred_dorms": fmt.Sprintf("D%d,D%d", 1+r.IntN(5), 1+r.IntN(5)),
			"tags":            tagChoices[r.IntN(len(tagChoices))],
		}
	}

	return out
}

// DormRecords returns the five sample dorms (20 beds in total).
func DormRecords() []map[string]string {
	out := make([]map[string]string, len(dormRecords))
	for i, rec := range dormRecords {
		cp := make(map[string]string, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out[i] = cp
	}

	return out
}

// Load generates n students plus the sample dorms and coerces them into records.
//
// Returns:
//   - []types.Student: Generated students
//   - []types.Dorm: Sample dorms
//   - error: types.ErrInvalidRecord (wrapped) if coercion fails
func Load(r *rand.Rand, n int) ([]types.Student, []types.Dorm, error) {
	studentRecs := StudentRecords(r, n)
	students := make([]types.Student, 0, len(studentRecs))
	for _, rec := range studentRecs {
		s, err := types.StudentFromRecord(rec)
		if err != nil {
			return nil, nil, err
		}
		students = append(students, s)
	}

	dormRecs := DormRecords()
	dorms := make([]types.Dorm, 0, len(dormRecs))
	for _, rec := range dormRecs {
		d, err := types.DormFromRecord(rec)
		if err != nil {
			return nil, nil, err
		}
		dorms = append(dorms, d)
	}

	return students, dorms, nil
}
