package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// GetDraftHandler handles GET /draft requests.
type GetDraftHandler struct {
	sessionDraft
}

// NewGetDraftHandler returns a GetDraftHandler backed by the given services.
func NewGetDraftHandler(svc *appsvcs.Services, store sessions.Store) *GetDraftHandler {
	return &GetDraftHandler{sessionDraft{svc: svc, store: store}}
}

// Execute returns the session's draft, starting a new one if needed.
//
//	@Summary		Get draft
//	@Description	Returns the session's invoice draft with formatted totals
//	@Tags			draft
//	@Produce		json
//	@Success		200	{object}	DraftResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/draft [get]
func (h *GetDraftHandler) Execute(w http.ResponseWriter, r *http.Request) {
	_, state, ok := h.current(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(state))
}
