package httpserver

import (
	"net/http"
	"time"

	"donation-hub-go/internal/config"
	"donation-hub-go/internal/transport/httpserver/handler"
	authmw "donation-hub-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/donations", handlers.CreateDonation)

		r.Get("/campaigns", handlers.ListCampaigns)
		r.Get("/campaigns/{id}", handlers.GetCampaign)
		r.Get("/programs", handlers.ListPrograms)
		r.Get("/stories", handlers.ListStories)
		r.Get("/stories/{id}", handlers.GetStory)
		r.Get("/content/{key}", handlers.GetContentSection)
		r.Post("/contact", handlers.SubmitContact)

		auth := authmw.NewAdminAuth(cfg.AdminToken)
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/donations", handlers.ListDonations)
			r.Get("/donations/analytics", handlers.DonationsAnalytics)
			r.Get("/donations/by-source", handlers.DonationsBySource)
			r.Get("/donations/status-breakdown", handlers.DonationsStatusBreakdown)
			r.Get("/donations/export", handlers.ExportDonations)

			r.Get("/campaigns", handlers.ListCampaignsAdmin)
			r.Post("/campaigns", handlers.CreateCampaign)
			r.Put("/campaigns/{id}", handlers.UpdateCampaign)
			r.Delete("/campaigns/{id}", handlers.DeleteCampaign)

			r.Post("/programs", handlers.CreateProgram)
			r.Put("/programs/{id}", handlers.UpdateProgram)
			r.Delete("/programs/{id}", handlers.DeleteProgram)

			r.Post("/stories", handlers.CreateStory)
			r.Put("/stories/{id}", handlers.UpdateStory)
			r.Delete("/stories/{id}", handlers.DeleteStory)

			r.Get("/messages", handlers.ListMessages)
			r.Post("/messages/{id}/read", handlers.MarkMessageRead)
			r.Delete("/messages/{id}", handlers.DeleteMessage)

			r.Put("/content/{key}", handlers.PutContentSection)
		})
	})

	return r
}
