package tier

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is wrapped by InvalidTableError when a table has no tiers.
	ErrEmptyTable = errors.New("table has no tiers")
	// ErrThresholdOrder is wrapped by InvalidTableError when thresholds are
	// not strictly ascending.
	ErrThresholdOrder = errors.New("thresholds must be strictly ascending")
	// ErrNaNThreshold is wrapped by InvalidTableError for a NaN threshold.
	ErrNaNThreshold = errors.New("threshold is NaN")
	// ErrNegativeLevel is wrapped by InvalidTableError for a quality level below zero.
	ErrNegativeLevel = errors.New("quality level must be >= 0")
	// ErrBadDimensions is wrapped by InvalidTableError for a non-positive width or height.
	ErrBadDimensions = errors.New("width and height must be > 0")

	// ErrEmptyCandidateSet is returned by SnapToNearestSupported when no
	// display modes are supplied.
	ErrEmptyCandidateSet = errors.New("no candidate display modes")
)

// InvalidTableError reports a tier table rejected at construction.
type InvalidTableError struct {
	Table string
	Index int // -1 when the error concerns the whole table
	Err   error
}

func (e *InvalidTableError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s table: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("invalid %s table at index %d: %v", e.Table, e.Index, e.Err)
}

func (e *InvalidTableError) Unwrap() error {
	return e.Err
}

// ParseError reports a device name that carries the score marker but no
// usable score after it.
type ParseError struct {
	Input    string
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed capability score %q in %q: %v", e.Fragment, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
