package domain

// TaskStore persists an ordered task sequence to a user-chosen file.
type TaskStore interface {
	// Read loads the full task sequence from path. Filesystem failures and
	// decode failures (ErrMalformedFile) are reported as distinct errors.
	Read(path string) ([]Task, error)

	// Write persists the full task sequence to path atomically: either the
	// file is fully replaced or it is left untouched.
	Write(path string, tasks []Task) error
}
