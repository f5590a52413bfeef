package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrMultipleResults is returned by lookups that expect exactly one match.
	ErrMultipleResults = errors.New("multiple results found")
	// ErrInconsistentState means an update was accepted but the record could not be read back.
	ErrInconsistentState = errors.New("inconsistent state")
)

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
