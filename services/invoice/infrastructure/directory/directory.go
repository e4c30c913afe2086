// Package directory adapts the company context to the invoice context's
// read-only view of buyers.
package directory

import (
	"context"

	companysvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
	companymodels "github.com/onyxtech/onyx-invoice/services/company/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// ReconcileFunc receives a deletion in the invoice context's terms.
type ReconcileFunc func(ctx context.Context, deletedID string, remaining []models.CompanyRecord)

// CompanyDirectory serves CompanyRecords from the company service.
type CompanyDirectory struct {
	svc *companysvcs.CompanyService
}

func NewCompanyDirectory(svc *companysvcs.CompanyService) *CompanyDirectory {
	return &CompanyDirectory{svc: svc}
}

func (d *CompanyDirectory) List(ctx context.Context) ([]models.CompanyRecord, error) {
	companies, err := d.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return Records(companies), nil
}

// OnDelete forwards company deletions to fn.
func (d *CompanyDirectory) OnDelete(fn ReconcileFunc) {
	d.svc.OnDelete(func(ctx context.Context, deletedID string, remaining []*companymodels.Company) {
		fn(ctx, deletedID, Records(remaining))
	})
}

// Records converts directory entries to invoice buyer records, keeping order.
func Records(companies []*companymodels.Company) []models.CompanyRecord {
	out := make([]models.CompanyRecord, len(companies))
	for i, c := range companies {
		out[i] = models.CompanyRecord{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Address: c.Address}
	}
	return out
}
