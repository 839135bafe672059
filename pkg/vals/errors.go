package vals

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the concrete error types below through
// errors.Is.
var (
	// ErrTypeMismatch is matched by WrongType errors.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrRange is matched by OutOfRange errors.
	ErrRange = errors.New("out of range")
)

// WrongType is returned when a Value does not have the kind an operation
// needs.
type WrongType struct {
	WantKind string
	GotKind  string
}

func (err WrongType) Error() string {
	return fmt.Sprintf("wrong type: need %s, got %s", err.WantKind, err.GotKind)
}

// Is reports whether target is ErrTypeMismatch.
func (err WrongType) Is(target error) bool { return target == ErrTypeMismatch }

// OutOfRange is returned when a number or an index does not fit into the range
// the operation accepts.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

func (err OutOfRange) Error() string {
	if err.ValidLow == "" && err.ValidHigh == "" {
		return fmt.Sprintf("out of range: %s has no valid value, but is %s", err.What, err.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		err.What, err.ValidLow, err.ValidHigh, err.Actual)
}

// Is reports whether target is ErrRange.
func (err OutOfRange) Is(target error) bool { return target == ErrRange }

// NoSuchKey is returned by Index when a map or an object has no such key.
type NoSuchKey struct {
	Key string
}

func (err NoSuchKey) Error() string {
	return "no such key: " + quote(err.Key)
}
