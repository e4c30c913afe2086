package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// PostItemHandler handles POST /draft/items requests.
type PostItemHandler struct {
	sessionDraft
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, store sessions.Store) *PostItemHandler {
	return &PostItemHandler{sessionDraft{svc: svc, store: store}}
}

// Execute appends a blank line; the new item is last in the response.
//
//	@Summary		Add item
//	@Tags			draft
//	@Produce		json
//	@Success		201	{object}	DraftResponse
//	@Router			/draft/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}
	state, err := h.svc.Draft.AddItem(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toDraftResponse(state))
}
