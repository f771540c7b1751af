package include

import (
	"errors"
	"fmt"
	"strings"

	"template-validator/internal/diagnostic"
)

// ErrFragmentNotFound is wrapped by Source implementations for unknown names.
var ErrFragmentNotFound = errors.New("include fragment not found")

// DuplicateKeyError reports a collection key defined twice.
type DuplicateKeyError struct {
	Path diagnostic.Path
	Key  string
	// First and Second describe where each definition came from:
	// "inline" or `include "name"`.
	First  string
	Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key %q is defined twice (%s and %s)", e.Key, e.First, e.Second)
}

// CircularIncludeError reports an include chain that loops.
type CircularIncludeError struct {
	Path  diagnostic.Path
	Chain []string
}

func (e *CircularIncludeError) Error() string {
	return "circular include: " + strings.Join(e.Chain, " -> ")
}

// UnresolvedIncludeError reports a marker whose fragment is missing or unusable.
type UnresolvedIncludeError struct {
	Path   diagnostic.Path
	Name   string
	Reason string
	Err    error
}

func (e *UnresolvedIncludeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("include %q: %s", e.Name, e.Reason)
	}

	return fmt.Sprintf("include %q: %v", e.Name, e.Err)
}

func (e *UnresolvedIncludeError) Unwrap() error {
	return e.Err
}

// Violation converts a resolver error into the violation reported for it.
// ok is false for errors that are not resolution failures.
func Violation(err error) (diagnostic.Violation, bool) {
	var (
		dup      *DuplicateKeyError
		circular *CircularIncludeError
		missing  *UnresolvedIncludeError
	)

	switch {
	case errors.As(err, &dup):
		return diagnostic.New(diagnostic.DuplicateKey, dup.Path, "%s", dup.Error()), true
	case errors.As(err, &circular):
		return diagnostic.New(diagnostic.CircularInclude, circular.Path, "%s", circular.Error()), true
	case errors.As(err, &missing):
		return diagnostic.New(diagnostic.UnresolvedInclude, missing.Path, "%s", missing.Error()), true
	default:
		return diagnostic.Violation{}, false
	}
}
