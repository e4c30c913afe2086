// Package memory provides an in-process DraftRepository for tests and the CLI.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/repositories"
)

// DraftRepository keeps drafts in a map guarded by a mutex.
type DraftRepository struct {
	mu     sync.Mutex
	drafts map[string]models.InvoiceState
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]models.InvoiceState)}
}

func (r *DraftRepository) Create(_ context.Context, s models.InvoiceState) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.NewString()
	r.drafts[id] = s
	return id, nil
}

func (r *DraftRepository) Get(_ context.Context, id string) (models.InvoiceState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.drafts[id]
	if !ok {
		return models.InvoiceState{}, invoicedomain.ErrDraftNotFound
	}
	return s, nil
}

func (r *DraftRepository) Update(_ context.Context, id string, fn repositories.DraftMutation) (models.InvoiceState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.drafts[id]
	if !ok {
		return models.InvoiceState{}, invoicedomain.ErrDraftNotFound
	}
	next, err := fn(s)
	if err != nil {
		return s, err
	}
	r.drafts[id] = next
	return next, nil
}

func (r *DraftRepository) Replace(_ context.Context, id string, s models.InvoiceState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[id] = s
	return nil
}

func (r *DraftRepository) IDs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.drafts))
	for id := range r.drafts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
