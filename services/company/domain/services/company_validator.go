// Package services contains stateless domain services for the company bounded context.
package services

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
)

const maxFieldLength = 255

// ValidateFields enforces directory rules on normalized company fields:
//   - name is required
//   - every field is at most 255 characters
//   - no control characters
func ValidateFields(f models.CompanyFields) error {
	var errs []error
	if f.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"idCode", f.TaxID},
		{"address", f.Address},
	} {
		if utf8.RuneCountInString(field.value) > maxFieldLength {
			errs = append(errs, fmt.Errorf("%s must not exceed %d characters", field.name, maxFieldLength))
		}
		for _, r := range field.value {
			if unicode.IsControl(r) {
				errs = append(errs, fmt.Errorf("%s must not contain control characters", field.name))
				break
			}
		}
	}
	return errors.Join(errs...)
}
