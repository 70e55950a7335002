// Package views renders the portfolio pages.
//
// Page bodies are html/template definitions embedded from templates/ and
// exposed as templ components, so handlers compose them with the layout
// through templ.WithChildren and serve them with templ.Handler.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"tj2904.com/internal/services"
)

//go:embed templates/*.html templates/*.svg
var templateFS embed.FS

var templates = template.Must(template.New("views").ParseFS(templateFS, "templates/*.html", "templates/*.svg"))

const (
	screenshotsDir = "/assets/screenshots/"
	displayDate    = "January 2006"
)

func component(name string, data any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), data)
}

type layoutData struct {
	Title       string
	Description string
	URL         string
	OGTitle     string
	OGImage     string
	SiteTitle   string
	Year        int
}

// Layout wraps the page body passed through templ.WithChildren in the
// document shell and head metadata.
func Layout(site services.Site, preview services.Preview) templ.Component {
	data := layoutData{
		Title:       site.Title,
		Description: preview.Description,
		URL:         preview.URL,
		OGTitle:     preview.Title,
		OGImage:     preview.ImageURL,
		SiteTitle:   site.Title,
		Year:        time.Now().Year(),
	}
	if preview.Title != "" && preview.Title != site.Title {
		data.Title = site.Author + " - " + preview.Title
	}
	if data.OGTitle == "" {
		data.OGTitle = site.Title
	}
	if data.OGImage == "" {
		data.OGImage = site.URL + "/api/og?title=" + url.QueryEscape(data.OGTitle)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		if err := component("layout_start", data).Render(ctx, w); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		return component("layout_end", data).Render(ctx, w)
	})
}

// NotFound renders the 404 page body
func NotFound() templ.Component {
	return component("not_found", nil)
}

type dateView struct {
	Display string
	ISO     string
}

func newDateView(t time.Time) dateView {
	return dateView{
		Display: t.Format(displayDate),
		ISO:     t.UTC().Format(time.RFC3339),
	}
}

func screenshot(image string) string {
	if image == "" {
		return ""
	}
	return screenshotsDir + image
}
