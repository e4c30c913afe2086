package domain

import "errors"

// Sentinel errors for the company directory. Use errors.Is() to check these.
var (
	// ErrCompanyNotFound indicates no company has the requested id.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyAlreadyExists indicates a company with the same id is already stored.
	ErrCompanyAlreadyExists = errors.New("company already exists")

	// ErrInvalidCompany indicates the company fields violate directory rules.
	ErrInvalidCompany = errors.New("invalid company")

	// ErrDirectoryUnavailable indicates the backing store could not be read or written.
	// The directory is unchanged when a mutation fails with this error.
	ErrDirectoryUnavailable = errors.New("company directory unavailable")

	// ErrDirectoryConflict indicates the backing store changed underneath a mutation.
	ErrDirectoryConflict = errors.New("company directory changed concurrently")
)
