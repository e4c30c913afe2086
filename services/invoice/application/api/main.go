package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/session"
	"github.com/onyxtech/onyx-invoice/services/invoice/application/handlers"
	appsvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// DraftRoutes registers the draft endpoints. Every route works on the draft
// bound to the caller's session cookie.
func DraftRoutes(r chi.Router, svcs *appsvcs.Services, store sessions.Store, log logger.Logger) {
	r.Route("/draft", func(r chi.Router) {
		r.Use(session.LoadDraft(store, log))

		r.Get("/", handlers.NewGetDraftHandler(svcs, store).Execute)
		r.Patch("/header", handlers.NewPatchHeaderHandler(svcs, store).Execute)
		r.Put("/unit-price", handlers.NewPutUnitPriceHandler(svcs, store).Execute)
		r.Post("/items", handlers.NewPostItemHandler(svcs, store).Execute)
		r.Put("/items/{itemID}", handlers.NewPutItemHandler(svcs, store).Execute)
		r.Delete("/items/{itemID}", handlers.NewDeleteItemHandler(svcs, store).Execute)
		r.Get("/document", handlers.NewGetDocumentHandler(svcs, store).Execute)
		r.Get("/pdf", handlers.NewGetPDFHandler(svcs, store).Execute)
		r.Post("/reset", handlers.NewPostResetHandler(svcs, store).Execute)
	})
}
