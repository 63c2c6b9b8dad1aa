// Package renderer turns ledgers and reports into text for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/expense"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// RenderYearly renders a yearly report to a markdown string, amounts in cur.
func RenderYearly(r *expense.YearlyReport, cur expense.Currency) string {
	partials := map[string]string{
		"yearly_months":  "yearly_months.md",
		"yearly_largest": "yearly_largest.md",
	}
	return renderTemplate("yearly", "yearly.md", partials, funcs(cur), r)
}

// funcs returns the template helpers shared by all templates.
func funcs(cur expense.Currency) template.FuncMap {
	return template.FuncMap{
		"money": cur.Format,
		"cell":  escapeCell,
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, fm template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(fm).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
