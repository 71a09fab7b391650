package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/navboard/pkg/app"
	"github.com/ghuser/navboard/pkg/auth"
	"github.com/ghuser/navboard/services/user/application/handlers"
	appsvcs "github.com/ghuser/navboard/services/user/application/services"
)

// UserRoutes registers user-management and auth endpoints on the provided
// chi router. The auth endpoints manage their own session state and are not
// gated; everything under /users requires an authenticated session.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore).Execute)
		r.Post("/logout", handlers.NewLogoutHandler(svcs, a.SessionStore).Execute)
		r.Get("/session", handlers.NewGetSessionHandler(svcs, a.SessionStore).Execute)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Get("/", handlers.NewGetUsersHandler(svcs).Execute)
		r.Post("/", handlers.NewPostUserHandler(svcs).Execute)
		r.Put("/", handlers.NewPutUserHandler(svcs).Execute)
		r.Delete("/", handlers.NewDeleteUserHandler(svcs).Execute)
		r.Get("/stats", handlers.NewGetStatsHandler(svcs).Execute)
		r.Get("/{id}/activities", handlers.NewGetActivitiesHandler(svcs).Execute)
	})
}
