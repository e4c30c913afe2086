package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	pkgvalidator "github.com/onyxtech/onyx-invoice/pkg/validator"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// UnitPriceRequest is the request body for PUT /draft/unit-price.
type UnitPriceRequest struct {
	Text string `json:"text" example:"1250.50"`
} // @name UnitPriceRequest

// PutUnitPriceHandler handles PUT /draft/unit-price requests.
type PutUnitPriceHandler struct {
	sessionDraft
}

// NewPutUnitPriceHandler returns a PutUnitPriceHandler backed by the given services.
func NewPutUnitPriceHandler(svc *appsvcs.Services, store sessions.Store) *PutUnitPriceHandler {
	return &PutUnitPriceHandler{sessionDraft{svc: svc, store: store}}
}

// Execute stores the unit price text. Text that is not a non-negative
// decimal is ignored and reported with accepted=false.
//
//	@Summary		Set unit price
//	@Tags			draft
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UnitPriceRequest	true	"Price text, excluding VAT"
//	@Success		200		{object}	UnitPriceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/draft/unit-price [put]
func (h *PutUnitPriceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UnitPriceRequest](w, r)
	if !ok {
		return
	}
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}

	state, accepted, err := h.svc.Draft.SetUnitPrice(r.Context(), id, req.Text)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, UnitPriceResponse{Accepted: accepted, Draft: toDraftResponse(state)})
}
