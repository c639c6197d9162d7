// Package gateway holds the error type shared by the outbound enrichment clients (news, language model).
package gateway

import "fmt"

// DependencyError reports that an external enrichment dependency failed.
// Callers on the analysis path degrade instead of aborting when they see it.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s dependency failed: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// NewDependencyError wraps err for the named dependency.
func NewDependencyError(dependency string, err error) *DependencyError {
	return &DependencyError{Dependency: dependency, Err: err}
}
