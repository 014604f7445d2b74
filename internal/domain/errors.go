package domain

import "errors"

// Domain errors. All are non-fatal: a failed operation leaves the task
// list in its previous state.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrBusy          = errors.New("another draft is already in progress")
	ErrNoDraft       = errors.New("no draft in progress")
	ErrMalformedFile = errors.New("malformed task file")
)
