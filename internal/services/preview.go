package services

import (
	"errors"
	"fmt"
	"strings"

	"tj2904.com/internal/models"
)

const screenshotsPath = "/assets/screenshots/"

// ErrUnsupportedProject is returned for a project variant with no preview wording
var ErrUnsupportedProject = errors.New("no preview for project type")

// Site describes the fixed identity of the portfolio
type Site struct {
	URL    string
	Author string
	Title  string
}

func (s Site) withDefaults() Site {
	if s.URL == "" {
		s.URL = "https://tj2904.com"
	}
	s.URL = strings.TrimRight(s.URL, "/")
	if s.Author == "" {
		s.Author = "Tim Jackson"
	}
	if s.Title == "" {
		s.Title = s.Author + "'s Portfolio"
	}
	return s
}

// AssetBase is the absolute prefix for screenshot images
func (s Site) AssetBase() string {
	return s.URL + screenshotsPath
}

// Preview is the metadata used for document head tags and social cards.
// ImageURL is empty when the page has no preview image.
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// DescribeForPreview builds the metadata for a project page
func (s *ProjectService) DescribeForPreview(p models.Project) (Preview, error) {
	base := p.Common()
	preview := Preview{
		Title: "Projects - " + base.Title,
		URL:   s.site.URL + "/" + base.Slug,
	}

	switch p.(type) {
	case models.Software:
		preview.Description = fmt.Sprintf(
			"Details of %s's %s project, including the technologies used and links to the live site and repository.",
			s.site.Author, base.Title)
		if base.Image != "" {
			preview.ImageURL = s.site.AssetBase() + base.Image
		}
	case models.Report:
		preview.Description = fmt.Sprintf(
			"Details of %s's %s report, including the abstract and link to the full text as PDF.",
			s.site.Author, base.Title)
	default:
		return Preview{}, fmt.Errorf("%w: %T", ErrUnsupportedProject, p)
	}

	return preview, nil
}

// HomePreview builds the metadata for the project listing
func (s *ProjectService) HomePreview() Preview {
	return Preview{
		Title:       s.site.Title,
		Description: fmt.Sprintf("A collection of %s's work and projects.", s.site.Author),
		URL:         s.site.URL + "/",
	}
}
