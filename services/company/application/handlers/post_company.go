package handlers

import (
	"net/http"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	pkgvalidator "github.com/onyxtech/onyx-invoice/pkg/validator"
	appsvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
)

// CreateCompanyRequest is the request body for POST /companies.
// Any id in the body is ignored; the directory assigns one.
type CreateCompanyRequest struct {
	Name    string `json:"name"    validate:"required,max=255" example:"TOYOTA CAUCASUS LLC"`
	TaxID   string `json:"idCode"  validate:"max=255"          example:"404567890"`
	Address string `json:"address" validate:"max=255"          example:"Tbilisi, Georgia"`
} // @name CreateCompanyRequest

// PostCompanyHandler handles POST /companies requests.
type PostCompanyHandler struct {
	svc *appsvcs.Services
}

// NewPostCompanyHandler returns a PostCompanyHandler backed by the given services.
func NewPostCompanyHandler(svc *appsvcs.Services) *PostCompanyHandler {
	return &PostCompanyHandler{svc: svc}
}

// Execute adds a company to the directory.
//
//	@Summary		Add company
//	@Description	Adds a buyer to the directory and returns it with its assigned id
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCompanyRequest	true	"Company fields"
//	@Success		201		{object}	CompanyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/companies [post]
func (h *PostCompanyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCompanyRequest](w, r)
	if !ok {
		return
	}

	company, err := h.svc.Company.Add(r.Context(), models.CompanyFields{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(company))
}
