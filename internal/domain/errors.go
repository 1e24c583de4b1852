package domain

import (
	"fmt"

	m "cmerge.dev/pkg/cmerge/internal/model"
)

// FileAccessError reports a failed read, write or directory creation. It is
// fatal for the run.
type FileAccessError struct {
	Op   string
	Path m.Path
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
