package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tj2904.com/internal/catalog"
	"tj2904.com/internal/config"
	"tj2904.com/internal/icons"
	"tj2904.com/internal/middleware"
	"tj2904.com/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, projects *catalog.Catalog, logger *slog.Logger) http.Handler {
	r := newRouter(logger)

	// Initialize services
	projectService := services.NewProjectService(projects, cfg.Site())

	// Initialize handlers
	pageHandler := NewPageHandler(projectService, icons.Default(), logger)
	projectHandler := NewProjectHandler(projectService, logger)
	ogHandler := NewOGHandler(projectService.Site())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Social preview card
		r.Get("/og", ogHandler.Card)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]any{
				"status":   "ok",
				"projects": projectService.Count(),
			})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, logger, http.StatusNotFound, "Not found")
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/{slug}", pageHandler.Project)
	r.NotFound(pageHandler.NotFound)

	return r
}

// newRouter installs the middleware shared by every route.
// Logger wraps Recovery so a recovered panic is logged with its 500 status.
func newRouter(logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encoding JSON response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
