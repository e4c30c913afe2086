package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	pkgvalidator "github.com/onyxtech/onyx-invoice/pkg/validator"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// ItemRequest is the request body for PUT /draft/items/{itemID}.
type ItemRequest struct {
	Description string `json:"description" validate:"max=2000" example:"Consulting services"`
} // @name ItemRequest

// PutItemHandler handles PUT /draft/items/{itemID} requests.
type PutItemHandler struct {
	sessionDraft
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, store sessions.Store) *PutItemHandler {
	return &PutItemHandler{sessionDraft{svc: svc, store: store}}
}

// Execute replaces an item's description. Unknown item ids change nothing.
//
//	@Summary		Update item
//	@Tags			draft
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string		true	"Item id"
//	@Param			request	body		ItemRequest	true	"New description"
//	@Success		200		{object}	DraftResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/draft/items/{itemID} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Draft.UpdateItemDescription(r.Context(), id, chi.URLParam(r, "itemID"), req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(state))
}
