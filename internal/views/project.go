package views

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"

	"tj2904.com/internal/icons"
	"tj2904.com/internal/models"
)

// ErrUnknownVariant is returned for a project type with no detail page
var ErrUnknownVariant = errors.New("no detail page for project type")

type header struct {
	Title       string
	Date        dateView
	Description string
}

type techItem struct {
	IconClass   string
	Fallback    bool
	Tech        string
	Explanation string
}

type softwareData struct {
	Header     header
	Image      string
	Rational   string
	Stack      []techItem
	Deployment []techItem
	LiveLink   string
	Repo       string
	LiveIcon   string
	RepoIcon   string
}

type reportData struct {
	Header   header
	Image    string
	ImageAlt string
	Rational string
	Document string
	PDFIcon  string
}

// Project renders the detail page body for p.
// Software and Report have their own layouts; any other variant is an error.
func Project(p models.Project, registry *icons.Registry) (templ.Component, error) {
	switch v := p.(type) {
	case models.Software:
		return component("software", newSoftwareData(v, registry)), nil
	case models.Report:
		return component("report", newReportData(v)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownVariant, p)
	}
}

func newHeader(b models.Base) header {
	return header{
		Title:       b.Title,
		Date:        newDateView(b.Published),
		Description: b.Description,
	}
}

func newSoftwareData(s models.Software, registry *icons.Registry) softwareData {
	return softwareData{
		Header:     newHeader(s.Base),
		Image:      screenshot(s.Image),
		Rational:   s.Rational,
		Stack:      techItems(s.Stack, registry),
		Deployment: techItems(s.Deployment, registry),
		LiveLink:   s.Link,
		Repo:       s.Repo,
		LiveIcon:   icons.LiveSite.Class(),
		RepoIcon:   icons.Repo.Class(),
	}
}

func newReportData(r models.Report) reportData {
	return reportData{
		Header:   newHeader(r.Base),
		Image:    screenshot(r.Image),
		ImageAlt: r.Title + " screenshot",
		Rational: r.Rational,
		Document: r.Link,
		PDFIcon:  icons.PDF.Class(),
	}
}

func techItems(refs []models.TechRef, registry *icons.Registry) []techItem {
	items := make([]techItem, len(refs))
	for i, ref := range refs {
		icon := registry.IconOrDefault(ref.Tech)
		items[i] = techItem{
			IconClass:   icon.Class(),
			Fallback:    icon.Fallback,
			Tech:        ref.Tech,
			Explanation: ref.Explanation,
		}
	}
	return items
}
