package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/navboard/pkg/app"
	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/services/navigation/application/handlers"
	appsvcs "github.com/ghuser/navboard/services/navigation/application/services"
)

// NavigationRoutes registers navbar endpoints on the provided chi router.
// Reads are public; every mutation requires an authenticated session.
func NavigationRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/navbar", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
		r.Get("/sections", handlers.NewGetSectionsHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
			r.Put("/reorder", handlers.NewReorderHandler(svcs).Execute)
			r.Post("/sections", handlers.NewPostSectionHandler(svcs).Execute)
			r.Delete("/sections/{id}", handlers.NewDeleteSectionHandler(svcs).Execute)
		})
	})
}
