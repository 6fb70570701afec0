package firmware

import (
	"errors"
	"fmt"
)

// PatternNotFoundError indicates that neither the needle nor a
// structurally valid advertising-name field exists in the image.
type PatternNotFoundError struct {
	// Needle is the marker string that was searched for first.
	Needle []byte
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("needle %q not found and adv-name pattern not found", e.Needle)
}

// NameTooLongError indicates that the candidate name exceeds the
// capacity of the located field.
type NameTooLongError struct {
	// Needed is the length of the candidate name in bytes.
	Needed int

	// Max is the capacity of the located field.
	Max int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("new name too long (%d > %d), max %d", e.Needed, e.Max, e.Max)
}

// IsPatternNotFound returns true if the error is a PatternNotFoundError.
func IsPatternNotFound(err error) bool {
	var e *PatternNotFoundError
	return errors.As(err, &e)
}

// IsNameTooLong returns true if the error is a NameTooLongError.
func IsNameTooLong(err error) bool {
	var e *NameTooLongError
	return errors.As(err, &e)
}
