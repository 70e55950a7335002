package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"tj2904.com/internal/services"
	"tj2904.com/internal/views"
)

const maxTitleLength = 200

// OGHandler renders social preview cards
type OGHandler struct {
	site services.Site
	host string
}

// NewOGHandler creates a new OGHandler
func NewOGHandler(site services.Site) *OGHandler {
	host := site.URL
	if u, err := url.Parse(site.URL); err == nil && u.Host != "" {
		host = u.Host
	}
	return &OGHandler{site: site, host: host}
}

// Card handles GET /api/og?title=
func (h *OGHandler) Card(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		title = h.site.Title
	}
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength])
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	templ.Handler(views.OGCard(title, h.host),
		templ.WithContentType("image/svg+xml"),
	).ServeHTTP(w, r)
}
