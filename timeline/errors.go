package timeline

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every *MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("malformed timeline input")

// MalformedInputError reports raw input that cannot be normalized.
// Group, Label and Segment locate the offending record; Segment is -1 when
// the problem is not tied to a single segment.
type MalformedInputError struct {
	Group   string
	Label   string
	Segment int
	Reason  string
}

func (e *MalformedInputError) Error() string {
	loc := fmt.Sprintf("group %q", e.Group)
	if e.Label != "" {
		loc += fmt.Sprintf(" line %q", e.Label)
	}
	if e.Segment >= 0 {
		loc += fmt.Sprintf(" segment %d", e.Segment)
	}
	return fmt.Sprintf("malformed input at %s: %s", loc, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func malformed(group, label string, segment int, format string, args ...any) *MalformedInputError {
	return &MalformedInputError{
		Group:   group,
		Label:   label,
		Segment: segment,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// ComparatorError wraps a panic raised by a comparator during Sort.
type ComparatorError struct {
	Cause any
}

func (e *ComparatorError) Error() string {
	return fmt.Sprintf("comparator failed: %v", e.Cause)
}

func (e *ComparatorError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
