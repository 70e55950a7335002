package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tj2904.com/internal/models"
	"tj2904.com/internal/services"
)

// ProjectHandler serves the catalog as JSON
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

type projectResponse struct {
	Project models.Record    `json:"project"`
	Preview services.Preview `json:"preview"`
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.ListSorted()
	records := make([]models.Record, len(projects))
	for i, p := range projects {
		records[i] = p.Record()
	}
	respondJSON(w, h.logger, http.StatusOK, records)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.FindBySlug(slug)
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to load project")
		return
	}

	preview, err := h.projectService.DescribeForPreview(project)
	if err != nil {
		h.logger.Error("describing project", "slug", slug, "error", err)
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, projectResponse{
		Project: project.Record(),
		Preview: preview,
	})
}
