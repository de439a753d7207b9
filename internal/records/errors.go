package records

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNurseNotFound   = errors.New("nurse not found")
	// ErrStoreFailure is returned when a record could not be written.
	ErrStoreFailure = errors.New("store failure")
)
