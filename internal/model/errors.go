package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")
var ErrSubmissionInProgress = errors.New("submission already in progress")

// ValidationError blocks a submission.
type ValidationError struct {
	Fields ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// DataSourceError wraps anything that went wrong inside a user source.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
