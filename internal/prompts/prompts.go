// README: Prompt templates kept as embedded data files and rendered with named placeholders.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

const (
	RouteGuide        = "route_guide.tmpl"
	RegionItineraries = "region_itineraries.tmpl"
	EcoPersona        = "eco_persona.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("prompts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

// RouteGuideData feeds RouteGuide.
type RouteGuideData struct {
	CourseText string
}

// RegionData feeds RegionItineraries.
type RegionData struct {
	Region string
}

// Render executes the named template with data.
func Render(name string, data any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return b.String(), nil
}
