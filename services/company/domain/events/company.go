package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicCompanyDeleted is the Watermill topic published when a company is removed from the directory.
const TopicCompanyDeleted = "company.deleted"

// CompanyDeletedEvent is published in the same transaction as the delete.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicCompanyDeleted).
type CompanyDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
