// Package utils holds small helpers shared across the calendar service:
// pointer conveniences for the optional DTO fields and the date/time
// handling the calendar grid depends on.
package utils

// ToPtr returns a pointer to v. The update DTOs use pointer fields to
// tell "omitted" apart from "set to zero", so call sites build them with
// ToPtr rather than temporary variables.
func ToPtr[T any](v T) *T {
	return &v
}

// IsTrue reports whether an optional bool is present and set.
func IsTrue(b *bool) bool {
	return b != nil && *b
}
