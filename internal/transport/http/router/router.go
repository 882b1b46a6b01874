package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/baechuer/cityevents/services/listing-service/internal/config"
	"github.com/baechuer/cityevents/services/listing-service/internal/metrics"
	"github.com/baechuer/cityevents/services/listing-service/internal/transport/http/handlers"
	mw "github.com/baechuer/cityevents/services/listing-service/internal/transport/http/middleware"
)

type Handlers struct {
	Events       *handlers.EventsHandler
	Requests     *handlers.RequestsHandler
	Comments     *handlers.CommentsHandler
	Categories   *handlers.CategoriesHandler
	Users        *handlers.UsersHandler
	Compilations *handlers.CompilationsHandler
	Health       *handlers.HealthHandler
}

func New(h Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.AccessLog)

	if cfg != nil && cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", h.Health.Healthz)
	r.Handle("/metrics", metrics.Handler())

	// public
	r.Get("/events", h.Events.ListPublic)
	r.Get("/events/{event_id}", h.Events.GetPublic)
	r.Get("/events/{event_id}/comments", h.Comments.ListForEvent)
	r.Get("/categories", h.Categories.List)
	r.Get("/categories/{category_id}", h.Categories.Get)
	r.Get("/compilations", h.Compilations.List)
	r.Get("/compilations/{compilation_id}", h.Compilations.Get)

	// private (caller identity rides the path)
	r.Route("/users/{user_id}", func(r chi.Router) {
		r.Post("/events", h.Events.Create)
		r.Get("/events", h.Events.ListOwn)
		r.Get("/events/{event_id}", h.Events.GetOwn)
		r.Patch("/events/{event_id}", h.Events.UpdateOwn)
		r.Post("/events/{event_id}/comments", h.Comments.Create)
		r.Get("/events/{event_id}/requests", h.Requests.ListForEvent)
		r.Patch("/events/{event_id}/requests", h.Requests.BatchUpdate)

		r.Post("/requests", h.Requests.Create)
		r.Get("/requests", h.Requests.ListOwn)
		r.Patch("/requests/{request_id}/cancel", h.Requests.Cancel)
	})

	// admin
	r.Route("/admin", func(r chi.Router) {
		r.Get("/events", h.Events.ListAdmin)
		r.Patch("/events/{event_id}", h.Events.UpdateAdmin)

		r.Post("/users", h.Users.Create)
		r.Get("/users", h.Users.List)
		r.Delete("/users/{user_id}", h.Users.Delete)

		r.Post("/categories", h.Categories.Create)
		r.Patch("/categories/{category_id}", h.Categories.Rename)
		r.Delete("/categories/{category_id}", h.Categories.Delete)

		r.Post("/compilations", h.Compilations.Create)
		r.Patch("/compilations/{compilation_id}", h.Compilations.Update)
		r.Delete("/compilations/{compilation_id}", h.Compilations.Delete)
	})

	return r
}
