package handlers

import (
	"net/http"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
)

// ListCompaniesHandler handles GET /companies requests.
type ListCompaniesHandler struct {
	svc *appsvcs.Services
}

// NewListCompaniesHandler returns a ListCompaniesHandler backed by the given services.
func NewListCompaniesHandler(svc *appsvcs.Services) *ListCompaniesHandler {
	return &ListCompaniesHandler{svc: svc}
}

// Execute lists the directory.
//
//	@Summary		List companies
//	@Description	Returns every buyer in directory order. The first entry is the default selection for new drafts.
//	@Tags			companies
//	@Produce		json
//	@Success		200	{array}		CompanyResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/companies [get]
func (h *ListCompaniesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.Company.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(companies))
}
