package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/onyxtech/onyx-invoice/services/company/application/handlers"
	appsvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
)

// CompanyRoutes registers directory endpoints on the provided chi router.
// The container is built by the caller because the invoice context shares it.
func CompanyRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", handlers.NewListCompaniesHandler(svcs).Execute)
		r.Post("/", handlers.NewPostCompanyHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteCompanyHandler(svcs).Execute)
	})
}
