package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"tj2904.com/internal/icons"
	"tj2904.com/internal/services"
	"tj2904.com/internal/views"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	icons          *icons.Registry
	logger         *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, registry *icons.Registry, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		projectService: ps,
		icons:          registry,
		logger:         logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	body := views.Home(h.projectService.ListSorted())
	h.render(w, r, http.StatusOK, h.projectService.HomePreview(), body)
}

// Project handles GET /{slug}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.FindBySlug(slug)
	if errors.Is(err, services.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	body, err := views.Project(project, h.icons)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	preview, err := h.projectService.DescribeForPreview(project)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, preview, body)
}

// NotFound renders the 404 page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	site := h.projectService.Site()
	preview := services.Preview{Title: "Page not found", Description: "Sorry, we couldn’t find the page you’re looking for."}
	preview.URL = site.URL + r.URL.Path
	h.render(w, r, http.StatusNotFound, preview, views.NotFound())
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, preview services.Preview, body templ.Component) {
	ctx := templ.WithChildren(r.Context(), body)
	layout := views.Layout(h.projectService.Site(), preview)
	templ.Handler(layout,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.serverError(w, r, err)
			})
		}),
	).ServeHTTP(w, r.WithContext(ctx))
}

func (h *PageHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("rendering page", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
