package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/session"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// sessionDraft resolves the draft bound to the caller's session. Every
// draft handler embeds it.
type sessionDraft struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// current returns the session's draft, creating and binding a fresh one when
// the session has none or its draft expired. On failure the error response
// has been written and ok is false.
func (d sessionDraft) current(w http.ResponseWriter, r *http.Request) (id string, state models.InvoiceState, ok bool) {
	bound, _ := session.DraftIDFromCtx(r.Context())

	id, state, err := d.svc.Draft.Current(r.Context(), bound)
	if err != nil {
		errhttp.WriteError(w, err)
		return "", models.InvoiceState{}, false
	}
	if id != bound {
		if err := session.BindDraft(d.store, w, r, id); err != nil {
			errhttp.WriteError(w, err)
			return "", models.InvoiceState{}, false
		}
	}
	return id, state, true
}
