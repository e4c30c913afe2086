package session

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const draftIDKey contextKey = "draft_id"

// ErrDraftIDNotFound is returned when the request carries no bound draft.
// Handlers respond by creating a fresh draft and binding it.
var ErrDraftIDNotFound = errors.New("draft_id not found in context")

// DraftIDFromCtx extracts the draft bound to the caller's session.
func DraftIDFromCtx(ctx context.Context) (string, error) {
	id, ok := ctx.Value(draftIDKey).(string)
	if !ok || id == "" {
		return "", ErrDraftIDNotFound
	}
	return id, nil
}

// WithDraftID returns a new context with the given draft id attached.
func WithDraftID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, draftIDKey, id)
}
