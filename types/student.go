package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Student is a read-only applicant record.
//
// PreferredDorms and Tags hold the raw comma-delimited text supplied by the
// collaborator layer. Use Preferences and TagSet for the parsed forms; the raw
// tag text is kept because scoring matches tags by substring.
type Student struct {
	// ID is the checksum-suffixed student identifier.
	ID string `json:"student_id" yaml:"student_id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Year is the study year (1-4 typical, not constrained).
	Year int `json:"year" yaml:"year"`

	// Priority is a non-negative priority level; higher is served first by
	// the priority-first strategy and scores higher everywhere.
	Priority int `json:"priority" yaml:"priority"`

	// PreferredDorms is the ordered, comma-delimited list of dorm IDs.
	// Position encodes rank: the first entry is the most preferred.
	PreferredDorms string `json:"preferred_dorms" yaml:"preferred_dorms"`

	// Tags is the comma-delimited list of free-text labels.
	Tags string `json:"tags" yaml:"tags"`
}

// Preferences returns the parsed preference list in rank order.
func (s Student) Preferences() []string {
	return ParsePreferences(s.PreferredDorms)
}

// TagSet returns the parsed tag labels as a set.
func (s Student) TagSet() map[string]struct{} {
	return ParseAttributes(s.Tags)
}

// Dorm is a read-only dormitory record.
type Dorm struct {
	// ID uniquely identifies the dorm.
	ID string `json:"dorm_id" yaml:"dorm_id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Capacity is the declared number of beds. Remaining capacity is tracked
	// per allocation call and never written back here.
	Capacity int `json:"capacity" yaml:"capacity"`

	// Attributes is the comma-delimited list of free-text labels (e.g. "quiet,near_library").
	Attributes string `json:"attributes" yaml:"attributes"`
}

// AttributeSet returns the parsed attribute labels as a set.
func (d Dorm) AttributeSet() map[string]struct{} {
	return ParseAttributes(d.Attributes)
}

// ParsePreferences splits comma-delimited text into an ordered list.
//
// Tokens are trimmed and empty tokens dropped; order is preserved because it
// encodes preference rank. The result is a fresh slice on every call.
//
// Example:
//
//	ParsePreferences(" D2, ,D1 ") // ["D2", "D1"]
func ParsePreferences(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ParseAttributes splits comma-delimited text into a set of labels.
//
// Tokens are trimmed, empty tokens dropped and duplicates collapse.
func ParseAttributes(text string) map[string]struct{} {
	parts := strings.Split(text, ",")
	out := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out[p] = struct{}{}
		}
	}

	return out
}

// StudentFromRecord coerces a field-keyed record into a Student.
//
// Recognized keys: student_id, name, year, priority, preferred_dorms, tags.
// A missing year defaults to 1 and a missing priority to 0. A present but
// non-numeric year or priority, or a negative priority, is an input-contract
// violation reported as ErrInvalidRecord.
//
// Parameters:
//   - rec: Field-keyed record as produced by the collaborator layer
//
// Returns:
//   - Student: Coerced student record
//   - error: ErrInvalidRecord (wrapped) on coercion failure
func StudentFromRecord(rec map[string]string) (Student, error) {
	s := Student{
		ID:             strings.TrimSpace(rec["student_id"]),
		Name:           rec["name"],
		PreferredDorms: rec["preferred_dorms"],
		Tags:           rec["tags"],
	}

	var err error
	if s.Year, err = intField(rec, "year", 1); err != nil {
		return Student{}, fmt.Errorf("student %q: %w", s.ID, err)
	}
	if s.Priority, err = intField(rec, "priority", 0); err != nil {
		return Student{}, fmt.Errorf("student %q: %w", s.ID, err)
	}
	if s.Priority < 0 {
		return Student{}, fmt.Errorf("student %q: priority %d is negative: %w", s.ID, s.Priority, ErrInvalidRecord)
	}

	return s, nil
}

// DormFromRecord coerces a field-keyed record into a Dorm.
//
// Recognized keys: dorm_id, name, capacity, attributes. A missing capacity is
// treated as 0. A blank dorm_id or a non-numeric or negative capacity is
// reported as ErrInvalidRecord.
func DormFromRecord(rec map[string]string) (Dorm, error) {
	d := Dorm{
		ID:         strings.TrimSpace(rec["dorm_id"]),
		Name:       rec["name"],
		Attributes: rec["attributes"],
	}
	if d.ID == "" {
		return Dorm{}, fmt.Errorf("dorm_id is blank: %w", ErrInvalidRecord)
	}

	capacity, err := intField(rec, "capacity", 0)
	if err != nil {
		return Dorm{}, fmt.Errorf("dorm %q: %w", d.ID, err)
	}
	if capacity < 0 {
		return Dorm{}, fmt.Errorf("dorm %q: capacity %d is negative: %w", d.ID, capacity, ErrInvalidRecord)
	}
	d.Capacity = capacity

	return d, nil
}

func intField(rec map[string]string, key string, def int) (int, error) {
	raw, ok := rec[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("field %s=%q: %w", key, raw, ErrInvalidRecord)
	}

	return v, nil
}
