package views

import (
	"github.com/a-h/templ"

	"tj2904.com/internal/icons"
	"tj2904.com/internal/models"
)

type homeEntry struct {
	ID          int
	Slug        string
	Title       string
	Date        dateView
	Image       string
	Description string
	LiveLink    string
}

type homeData struct {
	Entries     []homeEntry
	LiveIcon    string
	DetailsIcon string
}

// Home renders the project listing in the order given
func Home(projects []models.Project) templ.Component {
	data := homeData{
		Entries:     make([]homeEntry, 0, len(projects)),
		LiveIcon:    icons.LiveSite.Class(),
		DetailsIcon: icons.Checks.Class(),
	}
	for _, p := range projects {
		base := p.Common()
		entry := homeEntry{
			ID:          base.ID,
			Slug:        base.Slug,
			Title:       base.Title,
			Date:        newDateView(base.Published),
			Image:       screenshot(base.Image),
			Description: base.Description,
		}
		if p.Kind() == models.KindSoftware {
			entry.LiveLink = base.Link
		}
		data.Entries = append(data.Entries, entry)
	}
	return component("home", data)
}
