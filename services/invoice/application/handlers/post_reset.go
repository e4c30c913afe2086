package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// PostResetHandler handles POST /draft/reset requests.
type PostResetHandler struct {
	sessionDraft
}

// NewPostResetHandler returns a PostResetHandler backed by the given services.
func NewPostResetHandler(svc *appsvcs.Services, store sessions.Store) *PostResetHandler {
	return &PostResetHandler{sessionDraft{svc: svc, store: store}}
}

// Execute discards every edit and starts over from the initial draft.
//
//	@Summary		Reset draft
//	@Tags			draft
//	@Produce		json
//	@Success		200	{object}	DraftResponse
//	@Router			/draft/reset [post]
func (h *PostResetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}
	state, err := h.svc.Draft.Reset(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(state))
}
