package assistant

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var prompts = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

const (
	tailorPrompt      = "tailor.tmpl"
	coverLetterPrompt = "cover_letter.tmpl"
)

func renderPrompt(name string, req Request) (string, error) {
	var b strings.Builder
	if err := prompts.ExecuteTemplate(&b, name, req); err != nil {
		return "", err
	}
	return b.String(), nil
}
