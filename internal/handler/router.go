package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the full API route tree. Cross-cutting middleware
// (request id, logging, CORS, recovery, body limits) is wired in main.go;
// only the session gate lives here because it applies to a subtree.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		// Public reads with the fetch-with-fallback policy.
		r.Get("/waste-items", s.ListWasteItems)
		r.Get("/stations", s.ListStations)
		r.Get("/gallery", s.ListGallery)

		r.Get("/blog", s.ListBlogPosts)
		r.Get("/blog/featured", s.GetFeaturedPost)

		r.Get("/compost-logs", s.ListCompostLogs)
		r.Get("/compost-logs/pairs", s.ListCompostPairs)

		r.Get("/overview", s.GetOverview)

		// Compost lab: a stateless simulate endpoint plus the shared
		// server-side animation, controllable like a transport.
		r.Route("/lab", func(r chi.Router) {
			r.Get("/stages", s.ListStages)
			r.Post("/simulate", s.SimulateStage)
			r.Get("/state", s.GetLabState)
			r.Post("/play", s.PlayLab)
			r.Post("/pause", s.PauseLab)
			r.Post("/reset", s.ResetLab)
			r.Post("/speed", s.SetLabSpeed)
			r.Post("/stage/{index}", s.SelectLabStage)
		})

		// Public forms.
		r.Post("/suggestions", s.CreateSuggestion)
		r.Post("/registrations", s.CreateRegistration)

		// Auth.
		r.Post("/auth/login", s.Login)
		r.Get("/auth/session", s.GetSession)
		r.Post("/auth/logout", s.Logout)

		// Admin console, session-gated as a whole.
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.RequireSession)
			r.Get("/tabs", s.ListTabs)
			r.Get("/{tab}", s.AdminList)
			r.Post("/{tab}", s.AdminCreate)
			r.Delete("/{tab}/{id}", s.AdminDelete)
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
