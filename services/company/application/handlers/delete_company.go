package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
)

// DeleteCompanyHandler handles DELETE /companies/{id} requests.
type DeleteCompanyHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCompanyHandler returns a DeleteCompanyHandler backed by the given services.
func NewDeleteCompanyHandler(svc *appsvcs.Services) *DeleteCompanyHandler {
	return &DeleteCompanyHandler{svc: svc}
}

// Execute removes a company. Drafts selecting it move to the first remaining entry.
//
//	@Summary		Delete company
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string	true	"Company id"
//	@Success		200	{object}	SuccessResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/companies/{id} [delete]
func (h *DeleteCompanyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Company.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}
