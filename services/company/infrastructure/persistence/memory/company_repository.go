// Package memory provides an in-process CompanyRepository for tests.
package memory

import (
	"context"
	"slices"
	"sync"

	companydomain "github.com/onyxtech/onyx-invoice/services/company/domain"
	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
)

// CompanyRepository keeps companies in insertion order.
type CompanyRepository struct {
	mu        sync.RWMutex
	companies []*models.Company
	// Err, when set, is returned by every call.
	Err error
}

// NewCompanyRepository returns a repository seeded with companies.
func NewCompanyRepository(companies ...*models.Company) *CompanyRepository {
	return &CompanyRepository{companies: slices.Clone(companies)}
}

func (r *CompanyRepository) List(_ context.Context) ([]*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*models.Company, len(r.companies))
	for i, c := range r.companies {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (r *CompanyRepository) Add(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.indexOf(company.ID) >= 0 {
		return companydomain.ErrCompanyAlreadyExists
	}
	cp := *company
	r.companies = append(r.companies, &cp)
	return nil
}

func (r *CompanyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	i := r.indexOf(id)
	if i < 0 {
		return companydomain.ErrCompanyNotFound
	}
	r.companies = slices.Delete(r.companies, i, i+1)
	return nil
}

func (r *CompanyRepository) indexOf(id string) int {
	return slices.IndexFunc(r.companies, func(c *models.Company) bool { return c.ID == id })
}
