// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrTaskNotFound is returned when no task matches the given ID.
var ErrTaskNotFound = errors.New("task not found")

// ErrEmptyTitle is returned when a task is created with a blank title.
var ErrEmptyTitle = errors.New("task title is empty")

// ErrAmbiguousID is returned when an ID prefix matches more than one task.
var ErrAmbiguousID = errors.New("ambiguous task id")
