package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/errhttp"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// GetDocumentHandler handles GET /draft/document requests.
type GetDocumentHandler struct {
	sessionDraft
}

// NewGetDocumentHandler returns a GetDocumentHandler backed by the given services.
func NewGetDocumentHandler(svc *appsvcs.Services, store sessions.Store) *GetDocumentHandler {
	return &GetDocumentHandler{sessionDraft{svc: svc, store: store}}
}

// Execute renders the draft as a standalone printable HTML page.
//
//	@Summary		Preview document
//	@Tags			draft
//	@Produce		html
//	@Success		200	{string}	string	"HTML document"
//	@Failure		500	{object}	ErrorResponse
//	@Router			/draft/document [get]
func (h *GetDocumentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.current(w, r)
	if !ok {
		return
	}
	page, err := h.svc.Draft.RenderHTML(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Document(w, "text/html; charset=utf-8", page)
}
