// Package icons maps technology names to the icons shown next to them.
//
// The mapping is data: adding a technology means adding an entry, never a
// branch. Lookups always succeed; names without an entry get the registry's
// fallback icon so unknown technologies still render.
package icons

// Icon identifies a glyph in the site's icon sprite
type Icon struct {
	// Set is the icon family, e.g. "si" for Simple Icons.
	Set string
	// Name is the glyph name within the set.
	Name string
	// Fallback is true when no mapping existed for the requested name.
	Fallback bool
}

// Class returns the CSS class list used to render the icon
func (i Icon) Class() string {
	return i.Set + " " + i.Set + "-" + i.Name
}

// Fixed icons used by the page chrome
var (
	Code     = Icon{Set: "tb", Name: "code"}
	LiveSite = Icon{Set: "vsc", Name: "vm-running"}
	Checks   = Icon{Set: "vsc", Name: "checklist"}
	Repo     = Icon{Set: "si", Name: "github"}
	PDF      = Icon{Set: "im", Name: "file-pdf"}
)

var techIcons = map[string]string{
	"Anaconda":       "anaconda",
	"AWS":            "amazonaws",
	"Axios":          "axios",
	"ChartJS":        "chartdotjs",
	"CircleCI":       "circleci",
	"CloudFlare":     "cloudflare",
	"Docker":         "docker",
	"FastAPI":        "fastapi",
	"FireBase":       "firebase",
	"Flask":          "flask",
	"GeoPandas":      "geopandas",
	"GitHub Actions": "githubactions",
	"Go":             "go",
	"Heroku":         "heroku",
	"JavaScript":     "javascript",
	"Jest":           "jest",
	"Jupyter":        "jupyter",
	"MicrosoftSQL":   "microsoftsqlserver",
	"Netlify":        "netlify",
	"NextJS":         "nextdotjs",
	"Numpy":          "numpy",
	"Pandas":         "pandas",
	"Ploty":          "plotly",
	"PostgreSQL":     "postgresql",
	"PowerBI":        "powerbi",
	"Prisma":         "prisma",
	"Pydantic":       "pydantic",
	"Pytest":         "pytest",
	"Python":         "python",
	"React":          "react",
	"Render":         "render",
	"Scikit-Learn":   "scikitlearn",
	"SciKitLearn":    "scikitlearn",
	"Sentry":         "sentry",
	"SupaBase":       "supabase",
	"Swagger":        "swagger",
	"Tableau":        "tableau",
	"TailwindCSS":    "tailwindcss",
	"TypeScript":     "typescript",
	"Vercel":         "vercel",
}

// Registry resolves technology names to icons
type Registry struct {
	icons    map[string]Icon
	fallback Icon
}

// NewRegistry builds a registry from a name to icon mapping.
// The mapping is copied.
func NewRegistry(mapping map[string]Icon, fallback Icon) *Registry {
	icons := make(map[string]Icon, len(mapping))
	for name, icon := range mapping {
		icons[name] = icon
	}
	fallback.Fallback = true
	return &Registry{icons: icons, fallback: fallback}
}

// Default returns the registry of Simple Icons brand glyphs with the
// generic code glyph as fallback.
func Default() *Registry {
	mapping := make(map[string]Icon, len(techIcons))
	for tech, name := range techIcons {
		mapping[tech] = Icon{Set: "si", Name: name}
	}
	return NewRegistry(mapping, Code)
}

// Lookup returns the icon for tech and whether a mapping existed
func (r *Registry) Lookup(tech string) (Icon, bool) {
	icon, ok := r.icons[tech]
	return icon, ok
}

// IconOrDefault returns the icon for tech, or the fallback icon when
// tech is not mapped.
func (r *Registry) IconOrDefault(tech string) Icon {
	if icon, ok := r.icons[tech]; ok {
		return icon
	}
	return r.fallback
}
