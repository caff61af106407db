package generator

import (
	"bytes"
	"embed"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(templateFuncs).
	ParseFS(templateFS, "templates/*.tmpl"))

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
}

// executeTemplate executes a template by name and returns the formatted bytes.
// Unformattable output is returned as-is together with the format error.
func executeTemplate(name, filename string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return buf.Bytes(), err
	}
	return formatted, nil
}
