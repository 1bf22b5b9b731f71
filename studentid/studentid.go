// Package studentid validates and derives checksum-suffixed student identifiers.
//
// An identifier is a core string followed by a single check digit equal to the
// sum of the decimal digits in the core, modulo 10. Non-digit characters in the
// core are ignored when summing. This is a single-digit integrity check, not a
// cryptographic one.
//
//	ComputeChecksum("1000") // "10001"
//	IsValid("10001")        // true
package studentid

import (
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Checksum returns the check digit for core as an ASCII byte ('0'..'9').
func Checksum(core string) byte {
	sum := 0
	for i := 0; i < len(core); i++ {
		if c := core[i]; c >= '0' && c <= '9' {
			sum += int(c - '0')
		}
	}

	return byte('0' + sum%10)
}

// ComputeChecksum returns core with its check digit appended.
func ComputeChecksum(core string) string {
	return core + string(Checksum(core))
}

// IsValid reports whether id carries a correct trailing check digit.
//
// Identifiers shorter than two characters, or whose last character is not an
// ASCII digit, are invalid.
func IsValid(id string) bool {
	if len(id) < 2 {
		return false
	}
	last := id[len(id)-1]
	if last < '0' || last > '9' {
		return false
	}

	return Checksum(id[:len(id)-1]) == last
}

// Normalize returns raw when it is already valid. Otherwise it treats the last
// character of raw as a wrong check digit, replaces it and returns the result.
// A single-character raw value is treated as a bare core.
//
// Returns:
//   - string: A valid identifier
//   - error: types.ErrEmptyID when raw is empty
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", types.ErrEmptyID
	}
	if IsValid(raw) {
		return raw, nil
	}

	core := raw
	if len(raw) > 1 {
		core = raw[:len(raw)-1]
	}

	return ComputeChecksum(core), nil
}

// Partition splits students into those with valid identifiers, in input order,
// and the invalid identifiers, in input order.
func Partition(students []types.Student) ([]types.Student, []string) {
	valid := make([]types.Student, 0, len(students))
	var invalid []string
	for _, s := range students {
		if IsValid(s.ID) {
			valid = append(valid, s)
		} else {
			invalid = append(invalid, s.ID)
		}
	}

	return valid, invalid
}
