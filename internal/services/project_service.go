package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"tj2904.com/internal/catalog"
	"tj2904.com/internal/models"
)

// ErrNotFound is returned when no project has the requested slug
var ErrNotFound = errors.New("project not found")

// ProjectService answers the queries every page needs
type ProjectService struct {
	catalog *catalog.Catalog
	site    Site
}

// NewProjectService creates a new ProjectService
func NewProjectService(c *catalog.Catalog, site Site) *ProjectService {
	return &ProjectService{catalog: c, site: site.withDefaults()}
}

// Site returns the site settings used for metadata
func (s *ProjectService) Site() Site {
	return s.site
}

// Count returns the number of projects in the catalog
func (s *ProjectService) Count() int {
	return s.catalog.Len()
}

// ListSorted returns all projects ordered by sort order.
// Projects sharing a sort order keep their catalog order.
func (s *ProjectService) ListSorted() []models.Project {
	projects := s.catalog.All()
	slices.SortStableFunc(projects, func(a, b models.Project) int {
		return cmp.Compare(a.Common().SortOrder, b.Common().SortOrder)
	})
	return projects
}

// FindBySlug returns the project whose slug matches exactly
func (s *ProjectService) FindBySlug(slug string) (models.Project, error) {
	for _, p := range s.catalog.All() {
		if p.Common().Slug == slug {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
}
