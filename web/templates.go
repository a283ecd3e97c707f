package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcMap = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("Jan 2, 2006")
	},
	"money": func(d decimal.Decimal) string {
		return "$" + d.StringFixed(2)
	},
	"cap": capitalize,
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"))
}
