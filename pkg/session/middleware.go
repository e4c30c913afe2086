package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/logger"
)

const sessionName = "onyx_invoice_session"
const sessionDraftIDKey = "draft_id"

// LoadDraft is a chi middleware that copies the draft id stored in the
// session cookie into the request context. Requests without a session, or
// with an unreadable one, pass through with no draft bound.
//
// After this middleware, handlers call session.DraftIDFromCtx(r.Context()).
func LoadDraft(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			id, ok := sess.Values[sessionDraftIDKey].(string)
			if !ok || id == "" {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithDraftID(r.Context(), id)))
		})
	}
}

// BindDraft stores id in the caller's session and writes the cookie.
// It must run before the response body is written.
func BindDraft(store sessions.Store, w http.ResponseWriter, r *http.Request, id string) error {
	sess, err := store.Get(r, sessionName)
	if err != nil {
		sess, err = store.New(r, sessionName)
		if sess == nil {
			return fmt.Errorf("open session: %w", err)
		}
	}
	sess.Values[sessionDraftIDKey] = id
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
