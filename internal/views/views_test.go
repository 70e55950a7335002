package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tj2904.com/internal/icons"
	"tj2904.com/internal/models"
	"tj2904.com/internal/services"
)

var published = time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func softwareProject() models.Software {
	return models.Software{
		Base: models.Base{
			ID:          1,
			SortOrder:   1,
			Published:   published,
			Slug:        "positive-press",
			Title:       "Positive Press (Frontend)",
			Description: "News ranked by positivity.",
			Image:       "positive-press.png",
			Link:        "https://positive-press.vercel.app/",
			Rational:    "Negative news harms mental health.",
		},
		Repo: "https://www.github.com/tj2904/postive-press",
		Stack: []models.TechRef{
			{Tech: "NextJS"},
			{Tech: "Python", Explanation: "Used for the backend API"},
		},
		Deployment: []models.TechRef{{Tech: "Vercel"}},
	}
}

func reportProject(rational string) models.Report {
	return models.Report{Base: models.Base{
		ID:          4,
		SortOrder:   10,
		Published:   time.Date(2023, time.December, 22, 0, 0, 0, 0, time.UTC),
		Slug:        "challenges-of-unstructured-data",
		Title:       "The Challenges of Unstructured Data",
		Description: "A report.",
		Link:        "/assets/The Challenges.pdf",
		Rational:    rational,
	}}
}

type otherProject struct{ models.Software }

func (otherProject) Kind() models.Kind { return "video" }

func TestProjectSoftware(t *testing.T) {
	c, err := Project(softwareProject(), icons.Default())
	require.NoError(t, err)
	html := render(t, c)

	assert.Contains(t, html, "Positive Press (Frontend)")
	assert.Contains(t, html, "May 2023")
	assert.Contains(t, html, `datetime="2023-05-01T00:00:00Z"`)
	assert.Contains(t, html, `src="/assets/screenshots/positive-press.png"`)
	assert.Contains(t, html, "Rationale for the project:")
	assert.Contains(t, html, "Negative news harms mental health.")
	assert.Contains(t, html, "si si-nextdotjs")
	assert.Contains(t, html, " - Used for the backend API")
	assert.Contains(t, html, "Deployment:")
	assert.Contains(t, html, "Live Site")
	assert.Contains(t, html, `href="https://www.github.com/tj2904/postive-press"`)
	assert.NotContains(t, html, "Abstract:")
}

func TestProjectSoftwareOptionalSections(t *testing.T) {
	p := softwareProject()
	p.Image = ""
	p.Link = ""
	p.Rational = ""
	p.Deployment = []models.TechRef{}

	c, err := Project(p, icons.Default())
	require.NoError(t, err)
	html := render(t, c)

	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "Rationale for the project:")
	assert.NotContains(t, html, "Deployment:")
	assert.NotContains(t, html, "Live Site")
	assert.Contains(t, html, "Project Repo")
}

func TestProjectUnknownTechUsesFallback(t *testing.T) {
	p := softwareProject()
	p.Stack = []models.TechRef{{Tech: "Unlisted-Tool"}}

	c, err := Project(p, icons.Default())
	require.NoError(t, err)
	html := render(t, c)

	assert.Contains(t, html, `<span class="tech-name">Unlisted-Tool</span>`)
	assert.Contains(t, html, `class="tb tb-code inline-block" data-icon-fallback="true"`)
}

func TestProjectReportAbstract(t *testing.T) {
	c, err := Project(reportProject(""), icons.Default())
	require.NoError(t, err)
	html := render(t, c)
	assert.NotContains(t, html, "Abstract:")
	assert.Contains(t, html, "Document Downloads:")
	assert.Contains(t, html, `href="/assets/The%20Challenges.pdf"`)

	c, err = Project(reportProject("Unstructured data is now most data."), icons.Default())
	require.NoError(t, err)
	html = render(t, c)
	assert.Contains(t, html, "Abstract:")
	assert.Contains(t, html, "<p>Unstructured data is now most data.</p>")
	assert.NotContains(t, html, "Technologies used:")
	assert.NotContains(t, html, "Project Repo")
}

func TestProjectUnknownVariant(t *testing.T) {
	_, err := Project(otherProject{}, icons.Default())
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestProjectEscapesContent(t *testing.T) {
	p := softwareProject()
	p.Description = `<script>alert("x")</script>`

	c, err := Project(p, icons.Default())
	require.NoError(t, err)
	html := render(t, c)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestHome(t *testing.T) {
	report := reportProject("")
	report.Link = "/assets/report.pdf"
	noLink := softwareProject()
	noLink.Slug = "iris-classification"
	noLink.Title = "Iris Classification"
	noLink.Link = ""
	noLink.Image = ""

	html := render(t, Home([]models.Project{softwareProject(), report, noLink}))

	assert.Equal(t, 3, strings.Count(html, "<article"))
	assert.Less(t, strings.Index(html, "Positive Press"), strings.Index(html, "The Challenges of Unstructured Data"))
	assert.Less(t, strings.Index(html, "The Challenges of Unstructured Data"), strings.Index(html, "Iris Classification"))
	assert.Equal(t, 1, strings.Count(html, "Live Deployment"), "only software with a link gets a live link")
	assert.Contains(t, html, `href="/iris-classification"`)
	assert.Contains(t, html, `id="project-4-title"`)
}

func TestLayout(t *testing.T) {
	site := services.Site{URL: "https://tj2904.com", Author: "Tim Jackson", Title: "Tim Jackson's Portfolio"}
	preview := services.Preview{
		Title:       "Projects - Kitchen Helper",
		Description: "Details of Kitchen Helper.",
		URL:         "https://tj2904.com/kitchen-helper",
	}

	ctx := templ.WithChildren(context.Background(), NotFound())
	var buf bytes.Buffer
	require.NoError(t, Layout(site, preview).Render(ctx, &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Tim Jackson - Projects - Kitchen Helper</title>")
	assert.Contains(t, html, `<meta property="og:url" content="https://tj2904.com/kitchen-helper">`)
	assert.Contains(t, html, `content="https://tj2904.com/api/og?title=Projects&#43;-&#43;Kitchen&#43;Helper"`)
	assert.Contains(t, html, "Page not found")
	assert.Less(t, strings.Index(html, "<main>"), strings.Index(html, "Page not found"))
	assert.Less(t, strings.Index(html, "Page not found"), strings.Index(html, "</main>"))
}

func TestLayoutUsesPreviewImage(t *testing.T) {
	site := services.Site{URL: "https://tj2904.com", Author: "Tim Jackson", Title: "Tim Jackson's Portfolio"}
	html := render(t, Layout(site, services.Preview{
		Title:    site.Title,
		ImageURL: "https://tj2904.com/assets/screenshots/a.png",
	}))

	assert.Contains(t, html, "<title>Tim Jackson&#39;s Portfolio</title>")
	assert.Contains(t, html, `content="https://tj2904.com/assets/screenshots/a.png"`)
	assert.NotContains(t, html, "/api/og")
}

func TestNotFound(t *testing.T) {
	html := render(t, NotFound())
	assert.Contains(t, html, "404")
	assert.Contains(t, html, "Page not found")
	assert.Contains(t, html, `<a href="/"`)
	assert.Contains(t, html, "Go back home")
}

func TestOGCard(t *testing.T) {
	html := render(t, OGCard("Kitchen & <Co>", "tj2904.com"))

	assert.True(t, strings.HasPrefix(html, "<svg"))
	assert.Contains(t, html, `width="1200" height="630"`)
	assert.Contains(t, html, "Kitchen &amp; &lt;Co&gt;")
	assert.Contains(t, html, "tj2904.com")
}

func TestWrapTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"single line", "Kitchen Helper", 20, []string{"Kitchen Helper"}},
		{"wraps on spaces", "one two three four", 10, []string{"one two", "three four"}},
		{"long word is cut", "abcdefghijkl", 10, []string{"abcdefghi…"}},
		{"overflow is marked", "aa bb cc dd ee ff gg", 6, []string{"aa bb", "cc dd", "ee ff…"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapTitle(tt.title, tt.width, 3))
		})
	}
}
