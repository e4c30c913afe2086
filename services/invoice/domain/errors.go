package domain

import "errors"

// Sentinel errors for the invoice domain. Use errors.Is() to check these.
var (
	// ErrDraftNotFound indicates no draft is stored under the requested id.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrUnknownCurrency indicates a currency outside the supported set.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownHeaderField indicates a header edit targeting a field that does not exist.
	ErrUnknownHeaderField = errors.New("unknown header field")

	// ErrInvalidHeaderValue indicates a header value that cannot be converted to the field's type.
	ErrInvalidHeaderValue = errors.New("invalid header value")

	// ErrExportFailed indicates the PDF could not be produced. The draft is left untouched.
	ErrExportFailed = errors.New("export failed")
)
