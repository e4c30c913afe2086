package repositories

import (
	"context"

	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// DraftMutation computes the next state from the current one. Returning an
// error aborts the update and leaves the stored draft untouched.
type DraftMutation func(models.InvoiceState) (models.InvoiceState, error)

// DraftRepository is the persistence interface for invoice drafts.
// Implementations must apply Update atomically with respect to other
// Updates of the same draft.
type DraftRepository interface {
	// Create stores s under a fresh id and returns the id.
	Create(ctx context.Context, s models.InvoiceState) (string, error)

	// Get returns the draft stored under id. Returns ErrDraftNotFound if absent or expired.
	Get(ctx context.Context, id string) (models.InvoiceState, error)

	// Update applies fn to the stored draft and stores the result.
	// Returns ErrDraftNotFound if absent or expired.
	Update(ctx context.Context, id string, fn DraftMutation) (models.InvoiceState, error)

	// Replace overwrites the draft stored under id, creating it if needed.
	Replace(ctx context.Context, id string, s models.InvoiceState) error

	// IDs lists every stored draft id.
	IDs(ctx context.Context) ([]string, error)
}
