package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	pkgcache "github.com/onyxtech/onyx-invoice/pkg/cache"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/telemetry"
	companydomain "github.com/onyxtech/onyx-invoice/services/company/domain"
	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
	"github.com/onyxtech/onyx-invoice/services/company/domain/repositories"
	domainsvcs "github.com/onyxtech/onyx-invoice/services/company/domain/services"
)

// DeleteListener is notified after a company has been removed, with the
// directory as it stands afterwards. Listeners run synchronously in
// registration order; their failures are theirs to log.
type DeleteListener func(ctx context.Context, deletedID string, remaining []*models.Company)

// CompanyService orchestrates the company directory.
// Mutations are serialized so read-modify-write backends cannot race.
// Listings are served from Redis when a cache is configured.
type CompanyService struct {
	mu        sync.Mutex
	repo      repositories.CompanyRepository
	cache     *pkgcache.DirectoryCache
	log       logger.Logger
	metrics   *telemetry.Metrics
	listeners []DeleteListener
}

// NewCompanyService returns a CompanyService. cache and metrics may be nil.
func NewCompanyService(repo repositories.CompanyRepository, cache *pkgcache.DirectoryCache, log logger.Logger, metrics *telemetry.Metrics) *CompanyService {
	return &CompanyService{repo: repo, cache: cache, log: log, metrics: metrics}
}

// OnDelete registers l to run after every successful Delete.
func (s *CompanyService) OnDelete(l DeleteListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// List returns the directory in order. The first entry is the default buyer.
func (s *CompanyService) List(ctx context.Context) ([]*models.Company, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return fromCache(cached), nil
		}
		if !errors.Is(err, pkgcache.ErrCacheMiss) {
			s.log.WarnContext(ctx, "directory cache read failed", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(ctx)
}

// Add validates fields, assigns a fresh id and stores the company.
func (s *CompanyService) Add(ctx context.Context, fields models.CompanyFields) (company *models.Company, err error) {
	defer func() { s.metrics.RecordDirectoryMutation(ctx, "add", err) }()

	fields = fields.Normalize()
	if err := domainsvcs.ValidateFields(fields); err != nil {
		return nil, fmt.Errorf("%w: %w", companydomain.ErrInvalidCompany, err)
	}
	company = models.NewCompany(fields)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Add(ctx, company); err != nil {
		return nil, classify("add company", err)
	}
	s.invalidate(ctx)

	s.log.InfoContext(ctx, "company added", "company_id", company.ID)
	return company, nil
}

// Delete removes the company with id and notifies deletion listeners.
// Returns ErrCompanyNotFound when id is unknown; the directory is unchanged on any error.
// remaining is the directory read before the delete, minus id, so listeners
// run even when the backend cannot be re-read afterwards.
func (s *CompanyService) Delete(ctx context.Context, id string) (remaining []*models.Company, err error) {
	defer func() { s.metrics.RecordDirectoryMutation(ctx, "delete", err) }()

	s.mu.Lock()
	before, err := s.repo.List(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, classify("delete company", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.mu.Unlock()
		return nil, classify("delete company", err)
	}
	s.invalidate(ctx)
	listeners := append([]DeleteListener(nil), s.listeners...)
	s.mu.Unlock()

	remaining = slices.DeleteFunc(slices.Clone(before), func(c *models.Company) bool { return c.ID == id })
	s.log.InfoContext(ctx, "company deleted", "company_id", id, "remaining", len(remaining))
	for _, l := range listeners {
		l(ctx, id, remaining)
	}
	return remaining, nil
}

func (s *CompanyService) listLocked(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify("list companies", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, toCache(companies)); err != nil {
			s.log.WarnContext(ctx, "directory cache write failed", "error", err)
		}
	}
	return companies, nil
}

func (s *CompanyService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "directory cache invalidation failed", "error", err)
	}
}

// classify keeps directory sentinels and marks everything else as a backing-store failure.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, companydomain.ErrCompanyNotFound),
		errors.Is(err, companydomain.ErrCompanyAlreadyExists),
		errors.Is(err, companydomain.ErrDirectoryConflict),
		errors.Is(err, companydomain.ErrInvalidCompany):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, companydomain.ErrDirectoryUnavailable, err)
	}
}

func toCache(companies []*models.Company) []pkgcache.CachedCompany {
	out := make([]pkgcache.CachedCompany, len(companies))
	for i, c := range companies {
		out[i] = pkgcache.CachedCompany{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Address: c.Address}
	}
	return out
}

func fromCache(cached []pkgcache.CachedCompany) []*models.Company {
	out := make([]*models.Company, len(cached))
	for i, c := range cached {
		out[i] = &models.Company{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Address: c.Address}
	}
	return out
}
