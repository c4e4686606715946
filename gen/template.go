package gen

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

const (
	contractTemplate = "contract.sol.tmpl"
	supportTemplate  = "support.sol.tmpl"
)

var tmpl = template.Must(template.New("").ParseFS(templates, "templates/*.tmpl"))

// render executes the named embedded template with data.
func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
