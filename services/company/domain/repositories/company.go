package repositories

import (
	"context"

	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
)

// CompanyRepository is the persistence interface for the company directory.
// The domain layer owns this interface; infrastructure implements it for
// Postgres, a local JSON file and a file committed to a GitHub repository.
type CompanyRepository interface {
	// List returns every company in directory order. The first entry is the default selection.
	List(ctx context.Context) ([]*models.Company, error)

	// Add stores a new company. A failed Add leaves the directory unchanged.
	Add(ctx context.Context, company *models.Company) error

	// Delete removes the company with the given id. Returns ErrCompanyNotFound if absent.
	Delete(ctx context.Context, id string) error
}
