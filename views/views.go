// Package views holds the HTML templates of the dashboard pages.
package views

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"researchflow/helper"
	"researchflow/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Load parses every page template. now is used for relative times.
func Load(now func() time.Time) (*template.Template, error) {
	return template.New("").Funcs(FuncMap(now)).ParseFS(templateFS, "templates/*.html")
}

func FuncMap(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"date":     helper.FormatDate,
		"longDate": helper.FormatLongDate,
		"dateTime": helper.FormatDateTime,
		"timeAgo":  func(t time.Time) string { return helper.TimeAgo(t, now()) },
		"markdown": helper.RenderMarkdown,
		"initials": models.Initials,
		"join":     strings.Join,
		"percent":  percent,
		"statuses": models.StatusCatalog,
	}
}

// percent is part/whole as a whole percentage, 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return part * 100 / whole
}
