package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// GetPDFHandler handles GET /draft/pdf requests.
type GetPDFHandler struct {
	sessionDraft
}

// NewGetPDFHandler returns a GetPDFHandler backed by the given services.
func NewGetPDFHandler(svc *appsvcs.Services, store sessions.Store) *GetPDFHandler {
	return &GetPDFHandler{sessionDraft{svc: svc, store: store}}
}

// Execute exports the draft as an A4 PDF download named after the invoice number.
//
//	@Summary		Export PDF
//	@Tags			draft
//	@Produce		application/pdf
//	@Success		200	{file}		binary
//	@Failure		500	{object}	ErrorResponse
//	@Router			/draft/pdf [get]
func (h *GetPDFHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}
	name, data, err := h.svc.Draft.ExportPDF(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Attachment(w, "application/pdf", name, data)
}
