package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	pkgvalidator "github.com/onyxtech/onyx-invoice/pkg/validator"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// HeaderRequest is the request body for PATCH /draft/header. Dates use
// YYYY-MM-DD; currencies are USD or GEL.
type HeaderRequest struct {
	Field string `json:"field" validate:"required"  example:"invoiceNumber"`
	Value string `json:"value" validate:"max=255"   example:"INV-2024-001"`
} // @name HeaderRequest

// PatchHeaderHandler handles PATCH /draft/header requests.
type PatchHeaderHandler struct {
	sessionDraft
}

// NewPatchHeaderHandler returns a PatchHeaderHandler backed by the given services.
func NewPatchHeaderHandler(svc *appsvcs.Services, store sessions.Store) *PatchHeaderHandler {
	return &PatchHeaderHandler{sessionDraft{svc: svc, store: store}}
}

// Execute replaces one header value of the session's draft.
//
//	@Summary		Set header field
//	@Description	Replaces invoiceNumber, date, currency or selectedCompanyId
//	@Tags			draft
//	@Accept			json
//	@Produce		json
//	@Param			request	body		HeaderRequest	true	"Field and value"
//	@Success		200		{object}	DraftResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/draft/header [patch]
func (h *PatchHeaderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[HeaderRequest](w, r)
	if !ok {
		return
	}
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Draft.SetHeaderField(r.Context(), id, models.HeaderField(req.Field), req.Value)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(state))
}
