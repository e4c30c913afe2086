package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// DeleteItemHandler handles DELETE /draft/items/{itemID} requests.
type DeleteItemHandler struct {
	sessionDraft
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, store sessions.Store) *DeleteItemHandler {
	return &DeleteItemHandler{sessionDraft{svc: svc, store: store}}
}

// Execute removes an item. Removing the last one leaves an empty table.
//
//	@Summary		Remove item
//	@Tags			draft
//	@Produce		json
//	@Param			itemID	path		string	true	"Item id"
//	@Success		200		{object}	DraftResponse
//	@Router			/draft/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}
	state, err := h.svc.Draft.RemoveItem(r.Context(), id, chi.URLParam(r, "itemID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(state))
}
