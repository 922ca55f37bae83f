package jsonvalue

import (
	"errors"
	"fmt"
)

// Core error definitions carried by invalid values
var (
	// Navigation errors
	ErrIndexOutOfRange = errors.New("array index out of range")
	ErrKeyNotFound     = errors.New("object key not found")
	ErrNotArray        = errors.New("value is not an array")
	ErrNotObject       = errors.New("value is not an object")

	// Construction and decoding errors
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrInvalidPath     = errors.New("invalid path format")
)

// ValueError represents a failed navigation, coercion, or construction with
// essential context. It is never returned directly by an accessor; it travels
// inside the invalid Value produced by the failed operation and is surfaced
// through (*Value).Err.
type ValueError struct {
	Op      string `json:"op"`      // Operation that failed
	Key     string `json:"key"`     // Object key involved, if any
	Index   int    `json:"index"`   // Array index involved, if any
	Length  int    `json:"length"`  // Array length at the time of access
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying sentinel error
}

func (e *ValueError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("json %s failed for key %q: %s", e.Op, e.Key, e.Message)
	}
	return fmt.Sprintf("json %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is
func (e *ValueError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*ValueError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}
	return errors.Is(e.Err, target)
}

// Error helper functions for creating consistent error values

// newIndexError creates a ValueError for an out-of-range array access
func newIndexError(index, length int) error {
	return &ValueError{
		Op:      "index",
		Index:   index,
		Length:  length,
		Message: fmt.Sprintf("index %d outside [0, %d)", index, length),
		Err:     ErrIndexOutOfRange,
	}
}

// newKeyError creates a ValueError for a missing object key
func newKeyError(key string) error {
	return &ValueError{
		Op:      "key",
		Key:     key,
		Message: fmt.Sprintf("key %q does not exist", key),
		Err:     ErrKeyNotFound,
	}
}

// newNotArrayError creates a ValueError for index access on a non-array
func newNotArrayError(kind Kind) error {
	return &ValueError{
		Op:      "index",
		Message: fmt.Sprintf("cannot index into %s value", kind),
		Err:     ErrNotArray,
	}
}

// newNotObjectError creates a ValueError for key access on a non-object
func newNotObjectError(kind Kind) error {
	return &ValueError{
		Op:      "key",
		Message: fmt.Sprintf("cannot look up key in %s value", kind),
		Err:     ErrNotObject,
	}
}

// newUnsupportedTypeError creates a ValueError for an unrepresentable raw shape
func newUnsupportedTypeError(raw any) error {
	return &ValueError{
		Op:      "construct",
		Message: fmt.Sprintf("cannot represent %T as a JSON value", raw),
		Err:     ErrUnsupportedType,
	}
}

// newParseError creates a ValueError for a byte-level decode failure
func newParseError(op string, err error) error {
	return &ValueError{
		Op:      op,
		Message: err.Error(),
		Err:     ErrInvalidJSON,
	}
}

// newPathError creates a ValueError for a malformed navigation path
func newPathError(path, message string) error {
	return &ValueError{
		Op:      "path",
		Key:     path,
		Message: message,
		Err:     ErrInvalidPath,
	}
}
