package resolver

import (
	"errors"
	"fmt"
)

// ErrPathNotFound matches any PathNotFoundError under errors.Is.
var ErrPathNotFound = errors.New("path not found")

// PathNotFoundError is returned when a path name cannot be resolved
// against a path list.
type PathNotFoundError struct {
	// Name is the path name exactly as the caller supplied it.
	Name string
}

// Error implements the error interface.
func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("Cannot resolve path \"%s\" from path list", e.Name)
}

// Is reports whether target is ErrPathNotFound.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}
